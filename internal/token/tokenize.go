package token

import (
	"strings"

	"github.com/jacoelho/xml2json/internal/entity"
)

// Tokenize scans doc eagerly and returns its tokens in document order.
//
// A tag is '<', one or more bytes other than '>', then '>'. Everything else is
// text: each run between tags is trimmed and, when not empty, entity-decoded
// and emitted as a single Text token. Adjacent Text tokens never occur.
func Tokenize(doc string) []Token {
	var tokens []Token
	pending := 0
	i := 0
	for i < len(doc) {
		lt := strings.IndexByte(doc[i:], '<')
		if lt < 0 {
			break
		}
		lt += i
		gt := strings.IndexByte(doc[lt+1:], '>')
		if gt < 0 {
			break
		}
		gt += lt + 1
		if gt == lt+1 {
			// "<>" has an empty interior and is text.
			i = gt
			continue
		}
		tokens = appendText(tokens, doc, pending, lt)
		tokens = append(tokens, Tag(doc[lt+1:gt], lt))
		pending = gt + 1
		i = pending
	}
	return appendText(tokens, doc, pending, len(doc))
}

func appendText(tokens []Token, doc string, start, end int) []Token {
	if start >= end {
		return tokens
	}
	text := strings.TrimSpace(doc[start:end])
	if text == "" {
		return tokens
	}
	return append(tokens, Text(entity.Decode(text), start))
}
