package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wattlab/wattboard/pkg/models"
)

// Config holds the application configuration
type Config struct {
	Server        ServerConfig      `yaml:"server,omitempty"`
	Building      string            `yaml:"building,omitempty"`       // Display name of the building
	Year          int               `yaml:"year,omitempty"`           // Dataset year
	Tariff        []models.RateTier `yaml:"tariff,omitempty"`         // Progressive rate schedule
	MQTT          MQTTConfig        `yaml:"mqtt,omitempty"`
	HomeAssistant HAConfig          `yaml:"home_assistant,omitempty"`
}

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Port    int  `yaml:"port,omitempty"`
	DevMode bool `yaml:"dev_mode,omitempty"`
}

// MQTTConfig holds MQTT broker settings for publishing figures
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"`                 // e.g., "localhost:1883"
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"` // Default: "wattboard"
}

// HAConfig holds Home Assistant HTTP API configuration
type HAConfig struct {
	Enabled  bool   `yaml:"enabled"`
	URL      string `yaml:"url"`       // e.g., "http://yourdomain.local:5050"
	Token    string `yaml:"token"`     // Long-lived access token
	EntityID string `yaml:"entity_id"` // e.g., "sensor.building_energy_usage"
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetPort returns the HTTP port with a default of 8180
func (c *Config) GetPort() int {
	if c.Server.Port <= 0 {
		return 8180
	}
	return c.Server.Port
}

// GetBuilding returns the building display name, falling back to the
// reference building
func (c *Config) GetBuilding() string {
	if c.Building == "" {
		return "한빛타워"
	}
	return c.Building
}

// GetYear returns the dataset year with a default of 2025
func (c *Config) GetYear() int {
	if c.Year <= 0 {
		return 2025
	}
	return c.Year
}

// GetTariff returns the progressive rate schedule, falling back to the
// default commercial schedule (won per kWh)
func (c *Config) GetTariff() []models.RateTier {
	if len(c.Tariff) > 0 {
		return c.Tariff
	}
	return []models.RateTier{
		{UpToKWh: 100000, PricePerKWh: 250.0},
		{UpToKWh: 200000, PricePerKWh: 308.5},
		{PricePerKWh: 365.2},
	}
}

// GetTopicPrefix returns the MQTT topic prefix with a default of "wattboard"
func (c *Config) GetTopicPrefix() string {
	if c.MQTT.TopicPrefix == "" {
		return "wattboard"
	}
	return c.MQTT.TopicPrefix
}
