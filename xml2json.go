// Package xml2json converts XML documents into JSON-shaped values.
//
// Conversion is lenient: closing tags end the nearest open element whatever
// their name, malformed attributes are skipped, and unclosed elements are
// closed at the end of input. Attributes are stored under "@attributes",
// repeated sibling names become arrays, and an element that holds both
// attributes and text stores the text under "#text".
package xml2json

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/jacoelho/xml2json/errors"
	"github.com/jacoelho/xml2json/internal/preprocess"
	"github.com/jacoelho/xml2json/internal/token"
	"github.com/jacoelho/xml2json/internal/tree"
	"github.com/jacoelho/xml2json/pkg/jsonvalue"
)

// Value is a converted document: either Text or *Node.
type Value = jsonvalue.Value

// Text is a string leaf value.
type Text = jsonvalue.Text

// Node is an ordered mapping of element names to values.
type Node = jsonvalue.Node

// Equal reports whether a and b are structurally equal, including key order.
func Equal(a, b Value) bool {
	return jsonvalue.Equal(a, b)
}

// Convert converts doc with default options.
func Convert(doc string) (Value, error) {
	return ConvertWithOptions(doc, NewOptions())
}

// ConvertWithOptions converts doc using explicit limits.
// Root-level siblings merge into a single node. The result is Text when the
// document ends in bare top-level text.
func ConvertWithOptions(doc string, opts Options) (Value, error) {
	limits, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return convert(doc, limits)
}

// ConvertBytes converts UTF-8 encoded data.
func ConvertBytes(data []byte, opts Options) (Value, error) {
	limits, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return convertBytes(data, limits)
}

// ConvertReader reads a UTF-8 document from r and converts it.
func ConvertReader(r io.Reader, opts Options) (Value, error) {
	if r == nil {
		return nil, errors.NewParseError(errors.ErrNilReader, "nil reader", -1)
	}
	limits, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	n, err := buf.ReadFrom(io.LimitReader(r, limits.maxInputBytes+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrRead, err, "read document")
	}
	if n > limits.maxInputBytes {
		return nil, errors.NewParseErrorf(errors.ErrInputTooLarge, -1, "document exceeds %d bytes", limits.maxInputBytes)
	}
	return convertBytes(buf.Bytes(), limits)
}

// ConvertFile converts the XML file at path.
func ConvertFile(path string, opts Options) (v Value, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open xml file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close xml file %s: %w", path, closeErr)
		}
	}()

	v, err = ConvertReader(f, opts)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}
	return v, nil
}

func convertBytes(data []byte, limits convertLimits) (Value, error) {
	if !utf8.Valid(data) {
		return nil, errors.NewParseError(errors.ErrInvalidUTF8, "document is not valid UTF-8", -1)
	}
	return convert(string(data), limits)
}

func convert(doc string, limits convertLimits) (Value, error) {
	tokens := token.Tokenize(preprocess.Clean(doc))
	return tree.Build(tokens, limits.tree())
}
