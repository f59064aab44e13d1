package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
parser:
  skip_dates: ["01/21/26", "01/20/26"]
  ignore_markers: ["sauna", "rower"]
output:
  format: "sqlite"
  path: "history.db"
server:
  host: "0.0.0.0"
  port: 9090
auth:
  api_key: "test-key-123"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Parser.SkipDates) != 2 || cfg.Parser.SkipDates[0] != "01/21/26" {
		t.Errorf("parser.skip_dates = %v", cfg.Parser.SkipDates)
	}
	if len(cfg.Parser.IgnoreMarkers) != 2 {
		t.Errorf("parser.ignore_markers = %v", cfg.Parser.IgnoreMarkers)
	}
	if cfg.Output.Format != FormatSQLite {
		t.Errorf("output.format = %q, want %q", cfg.Output.Format, FormatSQLite)
	}
	if cfg.Output.Path != "history.db" {
		t.Errorf("output.path = %q, want %q", cfg.Output.Path, "history.db")
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "test-key-123" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "test-key-123")
	}
	// Untouched sections keep defaults
	if cfg.Tailscale.Hostname != "liftnotes" {
		t.Errorf("tailscale.hostname = %q, want default", cfg.Tailscale.Hostname)
	}
}

// TestLoadNoFile verifies an empty path yields the defaults: CSV to stdout.
func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != FormatCSV || cfg.Output.Path != "-" {
		t.Errorf("output = %+v, want csv to stdout", cfg.Output)
	}
	if len(cfg.Parser.SkipDates) != 0 {
		t.Errorf("skip_dates = %v, want none by default", cfg.Parser.SkipDates)
	}
}

// TestEnvOverride verifies that LIFTNOTES_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("LIFTNOTES_SKIP_DATES", "01/14/26, 01/18/26")
	t.Setenv("LIFTNOTES_OUTPUT_FORMAT", "json")
	t.Setenv("LIFTNOTES_SERVER_PORT", "9999")
	t.Setenv("LIFTNOTES_AUTH_API_KEY", "env-key")
	t.Setenv("LIFTNOTES_TAILSCALE_ENABLED", "true")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Parser.SkipDates) != 2 || cfg.Parser.SkipDates[1] != "01/18/26" {
		t.Errorf("skip_dates = %v, want [01/14/26 01/18/26]", cfg.Parser.SkipDates)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("output.format = %q, want json", cfg.Output.Format)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "env-key" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "env-key")
	}
	if !cfg.Tailscale.Enabled {
		t.Error("tailscale.enabled = false, want true")
	}
	// Unchanged fields should keep YAML values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
}

// TestValidation verifies each rule rejects a bad config with an error.
func TestValidation(t *testing.T) {
	tests := map[string]string{
		"bad skip date": `
parser:
  skip_dates: ["2026-01-21"]
`,
		"unknown format": `
output:
  format: "xlsx"
`,
		"sqlite without path": `
output:
  format: "sqlite"
  path: "-"
`,
		"postgres without dsn": `
output:
  format: "postgres"
`,
		"port out of range": `
server:
  port: 70000
`,
		"blank marker": `
parser:
  ignore_markers: ["sauna", "  "]
`,
	}
	for name, yaml := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeTemp(t, yaml)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

// TestLoadInvalidYAML verifies malformed YAML is reported.
func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeTemp(t, "parser: [unterminated"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

// TestValidateSkipDates verifies the MM/DD/YY check shared with request overrides.
func TestValidateSkipDates(t *testing.T) {
	if err := ValidateSkipDates([]string{"01/21/26", "12/31/25"}); err != nil {
		t.Errorf("valid dates: %v", err)
	}
	if err := ValidateSkipDates(nil); err != nil {
		t.Errorf("nil dates: %v", err)
	}
	for _, d := range []string{"1/21/26", "2026-01-21", "01/21/2026", ""} {
		if err := ValidateSkipDates([]string{d}); err == nil {
			t.Errorf("ValidateSkipDates(%q) = nil, want error", d)
		}
	}
}
