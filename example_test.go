package xml2json_test

import (
	"encoding/json"
	"fmt"

	"github.com/jacoelho/xml2json"
	"github.com/jacoelho/xml2json/errors"
)

func ExampleConvert() {
	doc := `<?xml version="1.0"?>
<order id="42">
  <item sku="a-1">Widget</item>
  <item>Gadget</item>
  <gift/>
</order>`

	v, err := xml2json.Convert(doc)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	out, err := json.Marshal(v)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(string(out))
	// Output: {"order":{"item":[{"@attributes":{"sku":"a-1"},"#text":"Widget"},"Gadget"],"gift":{},"@attributes":{"id":"42"}}}
}

func ExampleConvert_error() {
	_, err := xml2json.Convert("<a><  ></a>")
	if pe, ok := errors.AsParseError(err); ok {
		fmt.Println(pe.Code)
	}
	// Output: xml2json-tag-no-name
}
