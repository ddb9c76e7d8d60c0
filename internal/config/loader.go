package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFrogger loads the game config. If customPath is non-empty it must
// exist and parse; otherwise the loader falls back through the user config,
// a local configs directory, and finally the embedded defaults.
//
// Search order:
//  1. customPath (explicit, errors are fatal)
//  2. ~/.frogger/config.yaml
//  3. ./configs/frogger.yaml
//  4. embedded defaults
func LoadFrogger(customPath string) (FroggerConfig, error) {
	if customPath != "" {
		cfg, err := loadFroggerFile(customPath)
		if err != nil {
			return FroggerConfig{}, err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFroggerFile(path)
		if err != nil {
			return FroggerConfig{}, err
		}
		return cfg, nil
	}

	cfg := DefaultFroggerConfig()
	if err := cfg.Validate(); err != nil {
		return FroggerConfig{}, err
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".frogger", "config.yaml"))
	}
	paths = append(paths, filepath.Join("configs", "frogger.yaml"))
	return paths
}

func loadFroggerFile(path string) (FroggerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FroggerConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg FroggerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FroggerConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return FroggerConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
