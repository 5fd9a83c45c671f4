// Package config loads datenight settings.
//
// Sources, lowest precedence first:
//   - built-in defaults
//   - a YAML file named by --config or DATENIGHT_CONFIG
//   - a .env file in the working directory
//   - DATENIGHT_* environment variables
//   - root command-line flags (applied by the caller via Apply)
//
// A config file that is named but missing is an error. A missing .env is not.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/datenight/internal/api"
	"github.com/Makepad-fr/datenight/internal/model"
)

// Environment variable names.
const (
	EnvConfig   = "DATENIGHT_CONFIG"
	EnvAPIURL   = "DATENIGHT_API_URL"
	EnvTimeout  = "DATENIGHT_TIMEOUT"
	EnvTheme    = "DATENIGHT_THEME"
	EnvLogLevel = "DATENIGHT_LOG_LEVEL"
	EnvLogFile  = "DATENIGHT_LOG_FILE"
	EnvAddr     = "DATENIGHT_ADDR"
	EnvBudget   = "DATENIGHT_BUDGET"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Config holds every setting the CLI and TUI read.
type Config struct {
	// APIURL is the backend base URL, e.g. http://localhost:9090/api/date-night-ideas.
	APIURL string `yaml:"api_url"`

	// Timeout bounds each request. Zero keeps the transport default (no timeout).
	Timeout time.Duration `yaml:"timeout"`

	// Theme selects the CLI palette: classic, neon or mono.
	Theme string `yaml:"theme"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// LogFile receives diagnostic logs. Empty means stderr for the CLI and
	// nowhere for the TUI.
	LogFile string `yaml:"log_file"`

	// ServeAddr is the listen address of the reference backend.
	ServeAddr string `yaml:"serve_addr"`

	// Budget is the tier preselected for random picks.
	Budget string `yaml:"default_budget"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIURL:    api.DefaultBaseURL,
		Theme:     "classic",
		LogLevel:  "warn",
		ServeAddr: ":9090",
		Budget:    model.BudgetFree,
	}
}

// Options says where Load looks. Zero values use the defaults.
type Options struct {
	// ConfigPath overrides DATENIGHT_CONFIG.
	ConfigPath string
	// EnvFile overrides DefaultEnvFile.
	EnvFile string
}

// Load builds the configuration from defaults, file, .env and environment.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", envFile, err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str(EnvAPIURL, &c.APIURL)
	str(EnvTheme, &c.Theme)
	str(EnvLogLevel, &c.LogLevel)
	str(EnvLogFile, &c.LogFile)
	str(EnvAddr, &c.ServeAddr)
	str(EnvBudget, &c.Budget)
	if v, ok := lookup(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	return nil
}

// Overrides are values set on the command line. Empty fields are ignored.
type Overrides struct {
	APIURL   string
	Theme    string
	LogLevel string
	LogFile  string
}

// Apply layers o on top of c and re-validates.
func (c *Config) Apply(o Overrides) error {
	if o.APIURL != "" {
		c.APIURL = o.APIURL
	}
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	return c.Validate()
}

// Validate checks field values and normalizes the budget.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_url: scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("api_url: missing host in %q", c.APIURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout: must not be negative, got %s", c.Timeout)
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme: unknown theme %q (classic, neon, mono)", c.Theme)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q", c.LogLevel)
	}
	c.Budget = model.NormalizeBudget(c.Budget)
	if c.Budget == "" {
		c.Budget = model.BudgetFree
	}
	return nil
}
