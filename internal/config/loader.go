package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDoodle loads the doodle configuration.
// Search order: customPath -> ~/.arcade/configs/doodle.yaml -> ./configs/doodle.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
func LoadDoodle(customPath string) (DoodleConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DoodleConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseDoodle(data)
		if err != nil {
			return DoodleConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User config directory
	if userCfgPath := userConfigPath("doodle.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseDoodle(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "doodle.yaml")); err == nil {
		if cfg, err := ParseDoodle(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDoodle(), nil
}

// ParseDoodle decodes YAML on top of the embedded defaults.
func ParseDoodle(data []byte) (DoodleConfig, error) {
	cfg := embeddedDoodle()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DoodleConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg DoodleConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func embeddedDoodle() DoodleConfig {
	cfg := DefaultDoodleConfig()
	if err := yaml.Unmarshal(defaultDoodleYAML, &cfg); err != nil {
		return DefaultDoodleConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
