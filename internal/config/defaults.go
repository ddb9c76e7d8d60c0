package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the built-in default configuration. It panics
// if the embedded YAML is malformed, which is a build defect.
func DefaultFroggerConfig() FroggerConfig {
	var cfg FroggerConfig
	if err := yaml.Unmarshal(defaultFroggerYAML, &cfg); err != nil {
		panic("config: embedded frogger defaults are invalid: " + err.Error())
	}
	return cfg
}

// DefaultFroggerYAML returns the raw embedded default config, for writing a
// starter config file.
func DefaultFroggerYAML() []byte {
	out := make([]byte, len(defaultFroggerYAML))
	copy(out, defaultFroggerYAML)
	return out
}
