// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Built-in defaults plus environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnv()
//	port := cfg.Server.Port
//	mediums := cfg.ClientByName("Nutrisystem").Mediums
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the entire application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Clients       []ClientConfig      `yaml:"clients"`
	Ingest        IngestConfig        `yaml:"ingest"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxUploadBytes int64    `yaml:"max_upload_bytes"`
}

// ClientConfig maps a client name to the acquisition mediums that qualify
// an order for matching. The set is read-only after load.
type ClientConfig struct {
	Name    string   `yaml:"name"`
	Mediums []string `yaml:"mediums"`
}

// IngestConfig names the columns expected in the two uploaded files.
// Defaults follow the export formats the reconciler was built against.
type IngestConfig struct {
	ClientIDColumn     string `yaml:"client_id_column"`
	ClientMediumColumn string `yaml:"client_medium_column"`
	ClientDateColumn   string `yaml:"client_date_column"`
	VendorIDColumn     string `yaml:"vendor_id_column"`
	VendorDateColumn   string `yaml:"vendor_date_column"`
	LeadsPrefix        string `yaml:"leads_prefix"`
	ErrorMarker        string `yaml:"error_marker"`
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration: the three known client
// profiles and the column names used by the client and Blockboard exports.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnvInt("PORT", 8080),
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
			MaxUploadBytes: 64 << 20,
		},
		Clients: []ClientConfig{
			{Name: "Crepe Erase", Mediums: []string{"paid_search", "direct", "none", "organic"}},
			{Name: "Nutrisystem", Mediums: []string{"cpc", "(none)", "organic", "tv", "null"}},
			{Name: "Smileactives", Mediums: []string{"paid_search", "direct", "none", "organic"}},
		},
		Ingest: IngestConfig{
			ClientIDColumn:     "transaction_id",
			ClientMediumColumn: "order_medium",
			ClientDateColumn:   "easternstandardate",
			VendorIDColumn:     "Order ID",
			VendorDateColumn:   "Date",
			LeadsPrefix:        "Leads",
			ErrorMarker:        "VALUE",
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "text"),
			},
		},
	}
}

// Load reads and parses the config file. Sections left empty in the file
// keep their built-in defaults, so a config.yaml only needs to name what
// it overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${PORT})
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrEnv tries to load from config.yaml, falls back to built-in defaults
// plus environment variables
func LoadOrEnv() *Config {
	return LoadOrEnvWithPath("config.yaml")
}

// LoadOrEnvWithPath tries to load from the specified path, falls back to
// built-in defaults plus environment variables
func LoadOrEnvWithPath(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return Default()
}

// ClientByName returns the profile for a client, or nil when the name is
// not configured. Callers treat nil as "no qualifying mediums".
func (c *Config) ClientByName(name string) *ClientConfig {
	for i := range c.Clients {
		if c.Clients[i].Name == name {
			return &c.Clients[i]
		}
	}
	return nil
}

// ClientNames returns the configured client names in declaration order.
func (c *Config) ClientNames() []string {
	names := make([]string, 0, len(c.Clients))
	for _, cl := range c.Clients {
		names = append(names, cl.Name)
	}
	return names
}

// applyDefaults backfills zero-valued fields a partial YAML file left unset
func (c *Config) applyDefaults() {
	def := Default()
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = def.Server.AllowedOrigins
	}
	if c.Server.MaxUploadBytes == 0 {
		c.Server.MaxUploadBytes = def.Server.MaxUploadBytes
	}
	if len(c.Clients) == 0 {
		c.Clients = def.Clients
	}
	if c.Ingest.ClientIDColumn == "" {
		c.Ingest.ClientIDColumn = def.Ingest.ClientIDColumn
	}
	if c.Ingest.ClientMediumColumn == "" {
		c.Ingest.ClientMediumColumn = def.Ingest.ClientMediumColumn
	}
	if c.Ingest.ClientDateColumn == "" {
		c.Ingest.ClientDateColumn = def.Ingest.ClientDateColumn
	}
	if c.Ingest.VendorIDColumn == "" {
		c.Ingest.VendorIDColumn = def.Ingest.VendorIDColumn
	}
	if c.Ingest.VendorDateColumn == "" {
		c.Ingest.VendorDateColumn = def.Ingest.VendorDateColumn
	}
	if c.Ingest.LeadsPrefix == "" {
		c.Ingest.LeadsPrefix = def.Ingest.LeadsPrefix
	}
	if c.Ingest.ErrorMarker == "" {
		c.Ingest.ErrorMarker = def.Ingest.ErrorMarker
	}
	if c.Observability.Logging.Level == "" {
		c.Observability.Logging.Level = def.Observability.Logging.Level
	}
	if c.Observability.Logging.Format == "" {
		c.Observability.Logging.Format = def.Observability.Logging.Format
	}
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable with a fallback default
func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var result int
		if _, err := fmt.Sscanf(val, "%d", &result); err == nil {
			return result
		}
	}
	return fallback
}
