// Package entity decodes the five predefined XML character references.
package entity

import "strings"

type replacement struct {
	ref  string
	text string
}

// references is applied in order, one full pass each. Later passes see the
// output of earlier ones, so "&amp;lt;" decodes to "<".
var references = [...]replacement{
	{ref: "&amp;", text: "&"},
	{ref: "&lt;", text: "<"},
	{ref: "&gt;", text: ">"},
	{ref: "&quot;", text: `"`},
	{ref: "&apos;", text: "'"},
}

// Decode replaces &amp;, &lt;, &gt;, &quot; and &apos; in s.
// Numeric and unknown references are left untouched.
func Decode(s string) string {
	if strings.IndexByte(s, '&') < 0 {
		return s
	}
	for _, r := range references {
		s = strings.ReplaceAll(s, r.ref, r.text)
	}
	return s
}
