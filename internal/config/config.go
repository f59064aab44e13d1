package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the export layer.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatSQLite   = "sqlite"
	FormatPostgres = "postgres"
)

var skipDateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`)

type Config struct {
	Parser    ParserConfig    `yaml:"parser"`
	Output    OutputConfig    `yaml:"output"`
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ParserConfig struct {
	// SkipDates are MM/DD/YY dates excluded from extraction.
	SkipDates []string `yaml:"skip_dates"`
	// IgnoreMarkers replace the built-in non-strength markers when non-empty.
	IgnoreMarkers []string `yaml:"ignore_markers"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	// Path is a file path, or "-" for stdout. For sqlite it is the database file.
	Path string `yaml:"path"`
	// DSN is the postgres connection string.
	DSN string `yaml:"dsn"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// Default returns a config that converts to CSV on stdout and serves on localhost:8080.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: FormatCSV, Path: "-"},
		Server: ServerConfig{Host: "127.0.0.1", Port: 8080},
		Tailscale: TailscaleConfig{
			Hostname: "liftnotes",
			StateDir: "tsnet-state",
		},
	}
}

// Load reads config from a YAML file over the defaults, then applies environment
// variable overrides:
//
//	LIFTNOTES_SKIP_DATES (comma separated),
//	LIFTNOTES_OUTPUT_FORMAT, LIFTNOTES_OUTPUT_PATH, LIFTNOTES_OUTPUT_DSN,
//	LIFTNOTES_SERVER_HOST, LIFTNOTES_SERVER_PORT,
//	LIFTNOTES_AUTH_API_KEY, LIFTNOTES_TAILSCALE_ENABLED
//
// An empty path skips the file and starts from the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTNOTES_SKIP_DATES"); v != "" {
		cfg.Parser.SkipDates = splitList(v)
	}
	if v := os.Getenv("LIFTNOTES_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("LIFTNOTES_OUTPUT_PATH"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("LIFTNOTES_OUTPUT_DSN"); v != "" {
		cfg.Output.DSN = v
	}
	if v := os.Getenv("LIFTNOTES_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LIFTNOTES_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFTNOTES_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("LIFTNOTES_TAILSCALE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
}

// Validate checks the config after all overrides are applied. Callers that
// change fields after Load (CLI flags) should call it again.
func (c *Config) Validate() error {
	if err := ValidateSkipDates(c.Parser.SkipDates); err != nil {
		return fmt.Errorf("parser.skip_dates: %w", err)
	}
	for _, m := range c.Parser.IgnoreMarkers {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("parser.ignore_markers: empty marker")
		}
	}

	switch c.Output.Format {
	case FormatCSV, FormatJSON:
	case FormatSQLite:
		if c.Output.Path == "" || c.Output.Path == "-" {
			return fmt.Errorf("output.path is required for sqlite output")
		}
	case FormatPostgres:
		if c.Output.DSN == "" {
			return fmt.Errorf("output.dsn is required for postgres output")
		}
	default:
		return fmt.Errorf("output.format %q is not one of csv, json, sqlite, postgres", c.Output.Format)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}

// ValidateSkipDates rejects the first date that is not MM/DD/YY. Used for
// config values and for per-request overrides alike.
func ValidateSkipDates(dates []string) error {
	for _, d := range dates {
		if !skipDateRe.MatchString(d) {
			return fmt.Errorf("%q is not MM/DD/YY", d)
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
