package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the operator.yaml configuration.
type Config struct {
	Handlers []string       `yaml:"handlers"`
	Output   OutputConfig   `yaml:"output"`
	Langlist LanglistConfig `yaml:"langlist"`
}

// OutputConfig controls where the generated Dockerfile is written,
// relative to the inspected directory.
type OutputConfig struct {
	File string `yaml:"file"`
}

// LanglistConfig controls the language-name registry file.
type LanglistConfig struct {
	Path string `yaml:"path"`
}

// Default returns a Config with every supported language enabled.
func Default() *Config {
	return &Config{
		Handlers: []string{
			"Python",
			"Node.js",
			"Java",
			"Ruby",
			"PHP",
			"Go",
			"C# (.NET)",
			"C++",
			"Rust",
		},
		Output:   OutputConfig{File: "Dockerfile"},
		Langlist: LanglistConfig{Path: "langlist.operator"},
	}
}

// Load reads a configuration file from the given path.
// Missing fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Ensure required defaults
	if cfg.Output.File == "" {
		cfg.Output.File = "Dockerfile"
	}
	if cfg.Langlist.Path == "" {
		cfg.Langlist.Path = "langlist.operator"
	}

	return cfg, nil
}

// IsHandlerEnabled returns true if the named handler is enabled.
func (c *Config) IsHandlerEnabled(name string) bool {
	for _, v := range c.Handlers {
		if v == name {
			return true
		}
	}
	return false
}
