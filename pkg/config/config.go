package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/satchel/config"
	ConfigFileName    = "satchel.yml"
)

// SatchelConfig holds all Satchel server configuration settings.
//
// The token signing key is deliberately not part of this struct; it is a
// secret and is read from the SATCHEL_TOKEN_KEY environment variable via
// TokenKey.
type SatchelConfig struct {
	// BindAddress is the address the HTTP server listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP server listen port
	Port int `yaml:"port" json:"port"`

	// AccessTokenTTLSeconds is the lifetime of access tokens in seconds
	AccessTokenTTLSeconds int `yaml:"access_token_ttl" json:"access_token_ttl"`

	// RefreshTokenTTLSeconds is the lifetime of refresh tokens in seconds
	RefreshTokenTTLSeconds int `yaml:"refresh_token_ttl" json:"refresh_token_ttl"`

	// DocsEnabled serves the rendered API reference at /docs
	DocsEnabled bool `yaml:"docs_enabled" json:"docs_enabled"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *SatchelConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *SatchelConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *SatchelConfig {
	return &SatchelConfig{
		BindAddress:            "0.0.0.0",
		Port:                   8000,
		AccessTokenTTLSeconds:  3600,
		RefreshTokenTTLSeconds: 604800,
		DocsEnabled:            true,
		sources:                make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*SatchelConfig, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("SATCHEL_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig SatchelConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "access_token_ttl", "refresh_token_ttl",
		"docs_enabled",
	}
}

func (c *SatchelConfig) applyFileConfig(file *SatchelConfig) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.AccessTokenTTLSeconds != 0 {
		c.AccessTokenTTLSeconds = file.AccessTokenTTLSeconds
		c.sources["access_token_ttl"] = "file"
	}
	if file.RefreshTokenTTLSeconds != 0 {
		c.RefreshTokenTTLSeconds = file.RefreshTokenTTLSeconds
		c.sources["refresh_token_ttl"] = "file"
	}
}

func (c *SatchelConfig) applyEnvConfig() {
	if val := os.Getenv("SATCHEL_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("SATCHEL_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("SATCHEL_ACCESS_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.AccessTokenTTLSeconds = i
			c.sources["access_token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("SATCHEL_REFRESH_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RefreshTokenTTLSeconds = i
			c.sources["refresh_token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("SATCHEL_DOCS_ENABLED"); val != "" {
		c.DocsEnabled = val == "true" || val == "1"
		c.sources["docs_enabled"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *SatchelConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *SatchelConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// AccessTokenTTL returns the access token TTL as a duration
func (c *SatchelConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLSeconds) * time.Second
}

// RefreshTokenTTL returns the refresh token TTL as a duration
func (c *SatchelConfig) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenTTLSeconds) * time.Second
}

// TokenKey returns the access token signing key from the environment.
// Returns an empty slice when SATCHEL_TOKEN_KEY is unset; callers must
// treat that as a fatal configuration error at startup.
func TokenKey() []byte {
	return []byte(os.Getenv("SATCHEL_TOKEN_KEY"))
}

// Validate validates the configuration
func (c *SatchelConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.AccessTokenTTLSeconds <= 0 {
		return fmt.Errorf("access_token_ttl must be positive")
	}
	if c.RefreshTokenTTLSeconds <= 0 {
		return fmt.Errorf("refresh_token_ttl must be positive")
	}
	return nil
}

// Attributes returns all configuration attributes with their sources
func (c *SatchelConfig) Attributes() []Attribute {
	attrs := []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "access_token_ttl", Value: strconv.Itoa(c.AccessTokenTTLSeconds), Source: c.Source("access_token_ttl")},
		{Name: "refresh_token_ttl", Value: strconv.Itoa(c.RefreshTokenTTLSeconds), Source: c.Source("refresh_token_ttl")},
		{Name: "docs_enabled", Value: strconv.FormatBool(c.DocsEnabled), Source: c.Source("docs_enabled")},
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	return attrs
}

// FormatText formats the configuration as human-readable text
func (c *SatchelConfig) FormatText() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	for _, attr := range c.Attributes() {
		b.WriteString(fmt.Sprintf("%-20s %-10s (%s)\n", attr.Name, attr.Value, attr.Source))
	}
	return b.String()
}

// FormatJSON formats the configuration attributes as JSON
func (c *SatchelConfig) FormatJSON() (string, error) {
	out, err := json.MarshalIndent(c.Attributes(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
