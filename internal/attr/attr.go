// Package attr extracts name="value" pairs from the attribute part of a tag.
package attr

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jacoelho/xml2json/internal/entity"
	"github.com/jacoelho/xml2json/pkg/jsonvalue"
)

// Attribute is a decoded attribute pair.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute list with unique names.
type Attributes []Attribute

// Len returns the number of attributes.
func (a Attributes) Len() int { return len(a) }

// Get returns the value for name.
func (a Attributes) Get(name string) (string, bool) {
	for _, at := range a {
		if at.Name == name {
			return at.Value, true
		}
	}
	return "", false
}

// Node returns the attributes as a node of text values.
func (a Attributes) Node() *jsonvalue.Node {
	n := jsonvalue.NewNode()
	for _, at := range a {
		n.Set(at.Name, jsonvalue.Text(at.Value))
	}
	return n
}

func (a Attributes) set(name, value string) Attributes {
	for i := range a {
		if a[i].Name == name {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attribute{Name: name, Value: value})
}

// Parse scans s for pairs of the form name = "value", where name is a run of
// word characters and the value is double-quoted. Anything else, including
// single-quoted and unquoted values, is skipped. Values are entity-decoded.
// A repeated name overwrites the earlier value and keeps its position.
func Parse(s string) Attributes {
	var attrs Attributes
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isWordRune(r) {
			i += size
			continue
		}
		nameEnd := scanWord(s, i)
		value, next, ok := scanValue(s, nameEnd)
		if !ok {
			// Starting inside the same word cannot match either.
			i = nameEnd
			continue
		}
		attrs = attrs.set(s[i:nameEnd], entity.Decode(value))
		i = next
	}
	return attrs
}

// scanValue matches \s*=\s*"[^"]*" at i and returns the quoted text and the
// offset after the closing quote.
func scanValue(s string, i int) (string, int, bool) {
	i = skipSpace(s, i)
	if i >= len(s) || s[i] != '=' {
		return "", 0, false
	}
	i = skipSpace(s, i+1)
	if i >= len(s) || s[i] != '"' {
		return "", 0, false
	}
	end := strings.IndexByte(s[i+1:], '"')
	if end < 0 {
		return "", 0, false
	}
	end += i + 1
	return s[i+1 : end], end + 1, true
}

func scanWord(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isWordRune(r) {
			break
		}
		i += size
	}
	return i
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func isWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
