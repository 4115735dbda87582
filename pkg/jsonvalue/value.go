// Package jsonvalue defines the JSON-shaped values produced by xml2json.
//
// A Value is either Text or a *Node. Nodes keep their keys in first-seen
// order and serialize to JSON objects in that order.
package jsonvalue

// Kind identifies the variant of a Value.
type Kind byte

const (
	KindText Kind = iota + 1
	KindNode
)

// String returns a stable name for the kind, suitable for debugging.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindNode:
		return "Node"
	default:
		return "Unknown"
	}
}

// Value is the tagged union of Text and *Node.
type Value interface {
	Kind() Kind
	// Interface returns the value as plain Go data: string,
	// map[string]any, or []any for repeated members.
	Interface() any
	isValue()
}

// Text is a string leaf.
type Text string

// Kind returns KindText.
func (Text) Kind() Kind { return KindText }

// Interface returns the text as a string.
func (t Text) Interface() any { return string(t) }

func (Text) isValue() {}

// Equal reports whether a and b are structurally equal.
// Node key order is significant.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case *Node:
		bv, ok := b.(*Node)
		return ok && av.Equal(bv)
	default:
		return false
	}
}

const (
	// AttributesKey holds an element's attributes.
	AttributesKey = "@attributes"
	// TextKey holds an element's text when it also has attributes.
	TextKey = "#text"
)
