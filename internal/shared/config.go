package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Library    LibraryConfig    `toml:"library"`
	Crate      CrateConfig      `toml:"crate"`
	Validation ValidationConfig `toml:"validation"`
	Report     ReportConfig     `toml:"report"`
}

// LibraryConfig contains limits for the fixed-size track library.
type LibraryConfig struct {
	MaxTracks int `toml:"max_tracks"`
}

// CrateConfig contains settings for the growable crate.
type CrateConfig struct {
	InitialCapacity int `toml:"initial_capacity"`
}

// ValidationConfig contains input validation bounds.
type ValidationConfig struct {
	BPMMin int `toml:"bpm_min"`
	BPMMax int `toml:"bpm_max"`
}

// ReportConfig contains output paths for text reports.
type ReportConfig struct {
	LibraryPath string `toml:"library_path"`
	CratePath   string `toml:"crate_path"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
