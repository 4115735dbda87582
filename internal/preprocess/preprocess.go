// Package preprocess strips the XML declaration and comments from a document
// before tokenization.
package preprocess

import (
	"regexp"
	"strings"
)

var (
	xmlDeclPattern = regexp.MustCompile(`(?s)<\?xml.*?\?>`)
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// Clean removes every XML declaration and every comment from doc, then trims
// surrounding whitespace. Remaining content is not otherwise normalized.
func Clean(doc string) string {
	if strings.Contains(doc, "<?xml") {
		doc = xmlDeclPattern.ReplaceAllLiteralString(doc, "")
	}
	if strings.Contains(doc, "<!--") {
		doc = commentPattern.ReplaceAllLiteralString(doc, "")
	}
	return strings.TrimSpace(doc)
}
