package jsonvalue

import (
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// MarshalJSON encodes the node as a JSON object with keys in first-seen order.
func (n *Node) MarshalJSON() ([]byte, error) {
	return AppendJSON(nil, n), nil
}

// AppendJSON appends the compact JSON encoding of v to dst.
// A nil Value encodes as null. HTML characters are not escaped.
func AppendJSON(dst []byte, v Value) []byte {
	switch v := v.(type) {
	case nil:
		return append(dst, "null"...)
	case Text:
		return appendString(dst, string(v))
	case *Node:
		return appendNode(dst, v)
	default:
		return append(dst, "null"...)
	}
}

func appendNode(dst []byte, n *Node) []byte {
	dst = append(dst, '{')
	if n != nil {
		for i, m := range n.members {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, m.Name)
			dst = append(dst, ':')
			if !m.IsArray() {
				dst = AppendJSON(dst, m.Values[0])
				continue
			}
			dst = append(dst, '[')
			for j, item := range m.Values {
				if j > 0 {
					dst = append(dst, ',')
				}
				dst = AppendJSON(dst, item)
			}
			dst = append(dst, ']')
		}
	}
	return append(dst, '}')
}

// appendString quotes s the way encoding/json does with HTML escaping off.
// Invalid UTF-8 is replaced by U+FFFD.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		b := s[i]
		if b < utf8.RuneSelf {
			if b >= 0x20 && b != '"' && b != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch b {
			case '"', '\\':
				dst = append(dst, '\\', b)
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = append(dst, `\ufffd`...)
			i += size
			start = i
			continue
		}
		// U+2028 and U+2029 break JavaScript string literals.
		if r == '\u2028' || r == '\u2029' {
			dst = append(dst, s[start:i]...)
			dst = append(dst, '\\', 'u', '2', '0', '2', hexDigits[r&0xF])
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
