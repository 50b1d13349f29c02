package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "roverlab.yaml"

// Load loads the simulation configuration.
// Search order: customPath -> ~/.roverlab/configs/roverlab.yaml ->
// ./configs/roverlab.yaml -> embedded default -> hardcoded default.
//
// Files are layered over the embedded default, so a file only needs the
// keys it changes. The result is validated before it is returned.
func Load(customPath string) (Config, error) {
	base := embedded()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data, base)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return validated(cfg)
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or malformed files here are skipped.
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data, base)
		if err != nil {
			continue
		}
		cfg.Source = path
		return validated(cfg)
	}

	return validated(base)
}

// Parse decodes YAML data on top of base. Keys missing from data keep
// their value from base.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// embedded returns the embedded default YAML, or the hardcoded default if
// the embed cannot be parsed.
func embedded() Config {
	cfg, err := Parse(defaultYAML, Default())
	if err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg
}

func validated(cfg Config) (Config, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", cfg.Source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roverlab", "configs", filename)
}
