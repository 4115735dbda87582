package entity

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello world", want: "hello world"},
		{name: "empty", in: "", want: ""},
		{name: "amp", in: "a &amp; b", want: "a & b"},
		{name: "lt gt", in: "&lt;tag&gt;", want: "<tag>"},
		{name: "quotes", in: "&quot;x&quot; &apos;y&apos;", want: `"x" 'y'`},
		{name: "cascade amp lt", in: "5 &amp;lt; 10", want: "5 < 10"},
		{name: "cascade amp quot", in: "&amp;quot;", want: `"`},
		{name: "double amp", in: "&amp;amp;", want: "&amp;"},
		{name: "numeric untouched", in: "&#60;", want: "&#60;"},
		{name: "unknown untouched", in: "&nbsp;", want: "&nbsp;"},
		{name: "bare ampersand", in: "a & b", want: "a & b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.in); got != tt.want {
				t.Fatalf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeOrderIsFixed(t *testing.T) {
	want := []string{"&amp;", "&lt;", "&gt;", "&quot;", "&apos;"}
	if len(references) != len(want) {
		t.Fatalf("len(references) = %d, want %d", len(references), len(want))
	}
	for i, r := range references {
		if r.ref != want[i] {
			t.Fatalf("references[%d] = %q, want %q", i, r.ref, want[i])
		}
	}
}
