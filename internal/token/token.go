// Package token splits a preprocessed XML document into tag and text tokens.
package token

import "fmt"

// Kind identifies the kind of a token.
type Kind byte

const (
	KindNone Kind = iota
	KindTag
	KindText
)

// String returns a stable name for the kind, suitable for debugging.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindTag:
		return "Tag"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Token is a tag or a text run.
//
// For KindTag, Data is the raw interior between '<' and '>', neither trimmed
// nor entity-decoded. For KindText, Data is trimmed and entity-decoded and is
// never empty. Offset is the byte offset of the token in the tokenized input.
type Token struct {
	Data   string
	Offset int
	Kind   Kind
}

// Tag returns a tag token.
func Tag(raw string, offset int) Token {
	return Token{Kind: KindTag, Data: raw, Offset: offset}
}

// Text returns a text token.
func Text(decoded string, offset int) Token {
	return Token{Kind: KindText, Data: decoded, Offset: offset}
}

// String formats the token for debugging.
func (t Token) String() string {
	switch t.Kind {
	case KindTag:
		return fmt.Sprintf("Tag(%q)@%d", t.Data, t.Offset)
	case KindText:
		return fmt.Sprintf("Text(%q)@%d", t.Data, t.Offset)
	default:
		return t.Kind.String()
	}
}
