package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/ariaid/internal/errors"
	"github.com/vango-dev/ariaid/pkg/ids"
)

const (
	// JSONFileName and YAMLFileName are the configuration file names searched
	// by Load, in that order.
	JSONFileName = "ariaid.json"
	YAMLFileName = "ariaid.yaml"

	// DefaultPort is the default showcase server port.
	DefaultPort = 3000

	// DefaultHost is the default showcase server host.
	DefaultHost = "localhost"

	// DefaultMetricsPath is where Prometheus metrics are served.
	DefaultMetricsPath = "/metrics"
)

// Config represents the complete ariaid configuration.
type Config struct {
	// IDs controls how the allocator composes IDs.
	IDs IDsConfig `json:"ids,omitempty" yaml:"ids,omitempty"`

	// Server contains showcase server configuration.
	Server ServerConfig `json:"server,omitempty" yaml:"server,omitempty"`

	// Audit contains audit policy.
	Audit AuditConfig `json:"audit,omitempty" yaml:"audit,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// IDsConfig mirrors ids.Config.
type IDsConfig struct {
	Prefix            string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Separator         string `json:"separator,omitempty" yaml:"separator,omitempty"`
	Scope             string `json:"scope,omitempty" yaml:"scope,omitempty"`
	OmitComponentName bool   `json:"omitComponentName,omitempty" yaml:"omitComponentName,omitempty"`
	DisableCache      bool   `json:"disableCache,omitempty" yaml:"disableCache,omitempty"`
}

// ServerConfig contains showcase server settings.
type ServerConfig struct {
	Host        string `json:"host,omitempty" yaml:"host,omitempty"`
	Port        int    `json:"port,omitempty" yaml:"port,omitempty"`
	MetricsPath string `json:"metricsPath,omitempty" yaml:"metricsPath,omitempty"`
}

// AuditConfig lists the issue kinds that fail an audit.
type AuditConfig struct {
	FailOn []string `json:"failOn,omitempty" yaml:"failOn,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from dir, trying ariaid.json then ariaid.yaml.
func Load(dir string) (*Config, error) {
	for _, name := range []string{JSONFileName, YAMLFileName, "ariaid.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E141").
		WithDetail("No ariaid.json or ariaid.yaml found in " + dir).
		WithSuggestion("Create ariaid.json or run without --config to use defaults")
}

// LoadFile reads configuration from path. The format is chosen by extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").WithFile(path)
		}
		return nil, errors.New("E120").WithFile(path).Wrap(err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E120").
				WithFile(path).
				WithDetail("Failed to parse YAML: " + err.Error()).
				WithSuggestion("Check that the file is valid YAML")
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E120").
				WithFile(path).
				WithDetail("Failed to parse JSON: " + err.Error()).
				WithSuggestion("Check that the file is valid JSON")
		}
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to path in the format its extension names.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").WithFile(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.IDs.Prefix == "" {
		c.IDs.Prefix = ids.DefaultPrefix
	}
	if c.IDs.Separator == "" {
		c.IDs.Separator = ids.DefaultSeparator
	}
	if c.IDs.Scope == "" {
		c.IDs.Scope = ids.ScopeGlobal.String()
	}

	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.MetricsPath == "" {
		c.Server.MetricsPath = DefaultMetricsPath
	}

	if c.Audit.FailOn == nil {
		c.Audit.FailOn = []string{"nondeterministic", "duplicate", "dangling-reference"}
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithFile(c.configPath).
			WithDetail("server.port must be between 0 and 65535")
	}
	if _, ok := ids.ParseScope(c.IDs.Scope); !ok {
		return errors.New("E122").
			WithFile(c.configPath).
			WithDetail(`ids.scope must be "global" or "component", got "` + c.IDs.Scope + `"`)
	}
	if scope, _ := ids.ParseScope(c.IDs.Scope); scope == ids.ScopeComponent && c.IDs.OmitComponentName {
		return errors.New("E122").
			WithFile(c.configPath).
			WithDetail("ids.omitComponentName cannot be combined with ids.scope \"component\": IDs would collide across components")
	}
	if strings.ContainsAny(c.IDs.Prefix+c.IDs.Separator, " \t\n\r") {
		return errors.New("E122").
			WithFile(c.configPath).
			WithDetail("ids.prefix and ids.separator must not contain whitespace")
	}
	if !ids.Validate(c.IDs.Prefix) {
		return errors.New("E010").
			WithFile(c.configPath).
			WithDetail("ids.prefix " + strconv.Quote(c.IDs.Prefix) + " looks non-deterministic")
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("E122").
			WithFile(c.configPath).
			WithDetail("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E122").
			WithFile(c.configPath).
			WithDetail(`log.format must be "text" or "json"`)
	}
	return nil
}

// IDConfig converts the IDs section into an ids.Config.
func (c *Config) IDConfig() ids.Config {
	scope, _ := ids.ParseScope(c.IDs.Scope)
	return ids.Config{
		Prefix:            c.IDs.Prefix,
		Separator:         c.IDs.Separator,
		OmitComponentName: c.IDs.OmitComponentName,
		DisableCache:      c.IDs.DisableCache,
		Scope:             scope,
	}
}

// ServerAddress returns the host:port listen address.
func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

// FailsOn reports whether issues of kind fail an audit.
func (c *Config) FailsOn(kind string) bool {
	for _, k := range c.Audit.FailOn {
		if k == kind {
			return true
		}
	}
	return false
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
