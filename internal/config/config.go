package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/arcanaland/mtgdc/internal/catalog"
	"github.com/arcanaland/mtgdc/internal/mtgjson"
)

// EnvPrefix prefixes environment overrides (e.g., MTGDC_DATA_DIR)
const EnvPrefix = "MTGDC"

// Config represents the application configuration
type Config struct {
	DataDir     string            `toml:"data_dir" mapstructure:"data_dir"`
	StaleDays   int               `toml:"stale_days" mapstructure:"stale_days"`
	CardsURL    string            `toml:"cards_url" mapstructure:"cards_url"`
	SetsURL     string            `toml:"sets_url" mapstructure:"sets_url"`
	LogLevel    string            `toml:"log_level" mapstructure:"log_level"`
	CommandZone CommandZoneConfig `toml:"command_zone" mapstructure:"command_zone"`
}

// CommandZoneConfig controls `mtgdc commander zone`
type CommandZoneConfig struct {
	JoinSymbol    string   `toml:"join_symbol" mapstructure:"join_symbol"`
	ExcludedTypes []string `toml:"excluded_types" mapstructure:"excluded_types"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDataDir returns the default directory for cached MTGJSON files
func GetDataDir() string {
	return filepath.Join(GetXDGDataHome(), "mtgdc")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "mtgdc", "config.toml")
}

// DefaultConfig returns the configuration written on first use
func DefaultConfig() *Config {
	zone := catalog.DefaultZoneOptions()
	return &Config{
		DataDir:   GetDataDir(),
		StaleDays: int(mtgjson.DefaultStaleAge / (24 * time.Hour)),
		CardsURL:  mtgjson.AtomicCardsURL,
		SetsURL:   mtgjson.SetListURL,
		LogLevel:  "info",
		CommandZone: CommandZoneConfig{
			JoinSymbol:    zone.JoinSymbol,
			ExcludedTypes: zone.ExcludedTypes,
		},
	}
}

// LoadConfig loads the config file at configPath, or the default location when empty.
// Priority order: environment variables > config file > defaults.
// A missing config file is created with the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = GetConfigFilePath()
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveConfig(configPath, DefaultConfig()); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("stale_days", defaults.StaleDays)
	v.SetDefault("cards_url", defaults.CardsURL)
	v.SetDefault("sets_url", defaults.SetsURL)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("command_zone.join_symbol", defaults.CommandZone.JoinSymbol)
	v.SetDefault("command_zone.excluded_types", defaults.CommandZone.ExcludedTypes)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.StaleDays <= 0 {
		return nil, fmt.Errorf("stale_days must be positive, got %d", config.StaleDays)
	}

	return &config, nil
}

// SaveConfig encodes config as TOML at configPath, creating parent directories
func SaveConfig(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Encode writes config as TOML
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// StaleAge returns how old cached files may get before they are downloaded again
func (c *Config) StaleAge() time.Duration {
	return time.Duration(c.StaleDays) * 24 * time.Hour
}

// ZoneOptions returns the command zone settings
func (c *Config) ZoneOptions() catalog.ZoneOptions {
	return catalog.ZoneOptions{
		JoinSymbol:    c.CommandZone.JoinSymbol,
		ExcludedTypes: c.CommandZone.ExcludedTypes,
	}
}
