package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestRunStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runWithArgs([]string{"--indent", "0"}, strings.NewReader("<a>5 &amp;lt; 10</a>"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit = %d, want 0 (stderr %q)", code, stderr.String())
	}
	if got, want := stdout.String(), "{\"a\":\"5 < 10\"}\n"; got != want {
		t.Fatalf("stdout = %q, want %q", got, want)
	}
}

func TestRunIndentedFiles(t *testing.T) {
	dir := t.TempDir()
	one := writeFile(t, dir, "one.xml", "<r><i>1</i><i>2</i></r>")
	two := writeFile(t, dir, "two.xml", `<a x="1"/>`)

	var stdout, stderr bytes.Buffer
	code := runWithArgs([]string{one, two}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit = %d, want 0 (stderr %q)", code, stderr.String())
	}
	want := "{\n  \"r\": {\n    \"i\": [\n      \"1\",\n      \"2\"\n    ]\n  }\n}\n" +
		"{\n  \"a\": {\n    \"@attributes\": {\n      \"x\": \"1\"\n    }\n  }\n}\n"
	if got := stdout.String(); got != want {
		t.Fatalf("stdout =\n%s\nwant\n%s", got, want)
	}
}

func TestRunOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.xml", "<a>1</a>")
	out := filepath.Join(dir, "out.json")

	var stdout, stderr bytes.Buffer
	code := runWithArgs([]string{"-i", "0", "-o", out, in}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit = %d, want 0 (stderr %q)", code, stderr.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got := string(data); got != "{\"a\":\"1\"}\n" {
		t.Fatalf("output = %q, want %q", got, "{\"a\":\"1\"}\n")
	}
	if stdout.Len() != 0 {
		t.Fatalf("stdout = %q, want empty", stdout.String())
	}
}

func TestRunRejectsNonXMLExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.txt", "<a>1</a>")

	var stdout, stderr bytes.Buffer
	if code := runWithArgs([]string{path}, strings.NewReader(""), &stdout, &stderr); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "not an .xml file") {
		t.Fatalf("stderr = %q, want extension error", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := runWithArgs([]string{"--force", "-i", "0", path}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("exit with --force = %d, want 0 (stderr %q)", code, stderr.String())
	}
	if got := stdout.String(); got != "{\"a\":\"1\"}\n" {
		t.Fatalf("stdout = %q, want %q", got, "{\"a\":\"1\"}\n")
	}
}

func TestRunReportsConversionFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.xml", "<a/>")
	bad := writeFile(t, dir, "bad.xml", "<a><  ></a>")
	missing := filepath.Join(dir, "missing.xml")

	var stdout, stderr bytes.Buffer
	code := runWithArgs([]string{"-i", "0", good, bad, missing}, strings.NewReader(""), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if got := stdout.String(); got != "{\"a\":{}}\n" {
		t.Fatalf("stdout = %q, want only the good document", got)
	}
	for _, want := range []string{"xml2json-tag-no-name", "missing.xml", "2 of 3 files failed"} {
		if !strings.Contains(stderr.String(), want) {
			t.Fatalf("stderr = %q, want substring %q", stderr.String(), want)
		}
	}
}

func TestRunDepthLimit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runWithArgs([]string{"--max-depth", "1"}, strings.NewReader("<a><b>x</b></a>"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "xml2json-depth-limit") {
		t.Fatalf("stderr = %q, want depth limit error", stderr.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "negative indent", args: []string{"--indent", "-1"}},
		{name: "negative depth", args: []string{"--max-depth", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := runWithArgs(tt.args, strings.NewReader(""), &stdout, &stderr); code != 2 {
				t.Fatalf("exit = %d, want 2 (stderr %q)", code, stderr.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runWithArgs([]string{"--help"}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("exit = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "Converts XML documents to JSON.") {
		t.Fatalf("help = %q, want description", stdout.String())
	}
}
