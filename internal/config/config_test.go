package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
server:
  listen: "127.0.0.1:9000"
  allowed_origins: ["https://app.example.com", "http://localhost:3000"]
  read_timeout: 5s
convert:
  max_depth: 64
log:
  level: debug
  encoding: console
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Default()
	want.Server.Listen = "127.0.0.1:9000"
	want.Server.AllowedOrigins = []string{"https://app.example.com", "http://localhost:3000"}
	want.Server.ReadTimeout = 5 * time.Second
	want.Convert.MaxDepth = 64
	want.Log.Level = "debug"
	want.Log.Encoding = "console"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Parse() mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.ConvertOptions().MaxDepth(); got != 64 {
		t.Fatalf("ConvertOptions().MaxDepth() = %d, want 64", got)
	}
	if got := cfg.ConvertOptions().MaxInputBytes(); got != 10<<20 {
		t.Fatalf("ConvertOptions().MaxInputBytes() = %d, want %d", got, 10<<20)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "unknown key", data: "server:\n  port: 80\n", wantErr: "decode yaml"},
		{name: "bad yaml", data: "server: [", wantErr: "decode yaml"},
		{name: "empty listen", data: "server:\n  listen: \"\"\n", wantErr: "server.listen"},
		{name: "zero upload", data: "server:\n  max_upload_bytes: 0\n", wantErr: "max_upload_bytes"},
		{name: "negative timeout", data: "server:\n  write_timeout: -1s\n", wantErr: "timeouts"},
		{name: "empty origin", data: "server:\n  allowed_origins: [\" \"]\n", wantErr: "allowed_origins"},
		{name: "bad encoding", data: "log:\n  encoding: xml\n", wantErr: "log.encoding"},
		{name: "negative depth", data: "convert:\n  max_depth: -2\n", wantErr: "max depth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatalf("Parse() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Parse() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xml2json.yaml")
	if err := os.WriteFile(path, []byte("server:\n  listen: \":9999\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Listen != ":9999" {
		t.Fatalf("Listen = %q, want %q", cfg.Server.Listen, ":9999")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("Load(missing) error = nil, want error")
	}
}
