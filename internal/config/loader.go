package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFloor loads a floor configuration file.
// Search order: customPath -> ~/.floorforge/configs/floor.yaml -> ./configs/floor.yaml -> embedded default
func LoadFloor(customPath string) (FloorFile, error) {
	var ff FloorFile

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ff, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &ff); err != nil {
			return ff, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return ff, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("floor.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &ff); err == nil {
				return ff, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/floor.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &ff); err == nil {
			return ff, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFloorYAML, &ff); err != nil {
		return DefaultFloorFile(), nil // Fallback to hardcoded if embed fails
	}
	return ff, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floorforge", "configs", filename)
}
