// Package tree builds a jsonvalue.Value from a token sequence.
package tree

import (
	"strings"
	"unicode"

	"github.com/jacoelho/xml2json/errors"
	"github.com/jacoelho/xml2json/internal/attr"
	"github.com/jacoelho/xml2json/internal/token"
	"github.com/jacoelho/xml2json/pkg/jsonvalue"
)

// DefaultMaxDepth bounds element nesting when Limits.MaxDepth is zero.
const DefaultMaxDepth = 1000

// Limits bounds the resources used by Build.
type Limits struct {
	// MaxDepth is the deepest element nesting accepted. Zero selects DefaultMaxDepth.
	MaxDepth int
}

// Build consumes tokens from the start and returns the top-level value.
//
// Closing tags end the nearest open element whatever their name. An element
// that collected text returns the text joined by single spaces and drops any
// child elements it had. Running out of tokens closes every open element.
func Build(tokens []token.Token, limits Limits) (jsonvalue.Value, error) {
	b := builder{tokens: tokens, maxDepth: limits.MaxDepth}
	if b.maxDepth <= 0 {
		b.maxDepth = DefaultMaxDepth
	}
	v, _, err := b.parseNode(0, 0)
	if err != nil {
		return nil, err
	}
	return v, nil
}

type builder struct {
	tokens   []token.Token
	maxDepth int
}

func (b *builder) parseNode(cursor, depth int) (jsonvalue.Value, int, error) {
	result := jsonvalue.NewNode()
	var textParts []string

	for cursor < len(b.tokens) {
		tok := b.tokens[cursor]
		if tok.Kind == token.KindText {
			textParts = append(textParts, tok.Data)
			cursor++
			continue
		}

		content := strings.TrimSpace(tok.Data)
		switch {
		case strings.HasPrefix(content, "/"):
			return finish(result, textParts), cursor + 1, nil

		case strings.HasSuffix(content, "/"):
			name, rest := splitName(strings.TrimSuffix(content, "/"))
			child := jsonvalue.NewNode()
			if attrs := attr.Parse(rest); attrs.Len() > 0 {
				child.Set(jsonvalue.AttributesKey, attrs.Node())
			}
			result.Merge(name, child)
			cursor++

		default:
			name, rest := splitName(content)
			if name == "" {
				return nil, 0, errors.NewParseError(errors.ErrTagNoName, "tag has no name", tok.Offset)
			}
			if depth >= b.maxDepth {
				e := errors.NewParseErrorf(errors.ErrDepthLimit, tok.Offset, "element nesting exceeds %d", b.maxDepth)
				e.Tag = name
				return nil, 0, e
			}
			attrs := attr.Parse(rest)
			child, next, err := b.parseNode(cursor+1, depth+1)
			if err != nil {
				return nil, 0, err
			}
			result.Merge(name, element(child, attrs))
			cursor = next
		}
	}
	return finish(result, textParts), cursor, nil
}

func finish(result *jsonvalue.Node, textParts []string) jsonvalue.Value {
	if len(textParts) > 0 {
		return jsonvalue.Text(strings.Join(textParts, " "))
	}
	return result
}

func element(child jsonvalue.Value, attrs attr.Attributes) jsonvalue.Value {
	switch c := child.(type) {
	case *jsonvalue.Node:
		if attrs.Len() > 0 {
			c.Set(jsonvalue.AttributesKey, attrs.Node())
		}
		return c
	case jsonvalue.Text:
		if attrs.Len() == 0 {
			return c
		}
		n := jsonvalue.NewNode()
		n.Set(jsonvalue.AttributesKey, attrs.Node())
		n.Set(jsonvalue.TextKey, c)
		return n
	default:
		return child
	}
}

// splitName splits a tag interior at its first whitespace into the tag name
// and the attribute text.
func splitName(content string) (string, string) {
	i := strings.IndexFunc(content, unicode.IsSpace)
	if i < 0 {
		return strings.TrimSpace(content), ""
	}
	return content[:i], strings.TrimSpace(content[i:])
}
