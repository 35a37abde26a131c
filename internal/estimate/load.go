package estimate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads a configuration document. Fields the document leaves out keep
// the values of DefaultConfiguration.
func ParseYAML(data []byte) (Configuration, error) {
	cfg := DefaultConfiguration()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("parsing configuration YAML: %w", err)
	}
	return cfg, nil
}

// LoadFile reads a configuration from a YAML file.
func LoadFile(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("reading configuration file: %w", err)
	}
	return ParseYAML(data)
}
