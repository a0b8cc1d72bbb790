package caseforge

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"
)

// DomainConfig describes one domain of the scenario library: the keywords
// that match it and the field lists spanning its combination space.
type DomainConfig struct {
	Name         string   `yaml:"name"`
	Keywords     []string `yaml:"keywords"`
	TextFields   []string `yaml:"text_fields"`
	BinaryFields []string `yaml:"binary_fields"`
}

// Config is the scenario library. Domain order matters: the first domain
// whose keywords match wins, so more specific domains must come first.
type Config struct {
	Domains []DomainConfig `yaml:"domains"`
}

// DefaultScenariosBin contains the embedded default scenario library.
//
//go:embed scenarios.yaml
var DefaultScenariosBin []byte

// DefaultConfig holds the scenario library used when Options does not carry
// one. Loaded once from the embedded default, runner may override it from a
// user file.
var DefaultConfig Config

func init() {
	if err := yaml.Unmarshal(DefaultScenariosBin, &DefaultConfig); err != nil {
		panic("embedded scenario library is malformed: " + err.Error())
	}
}

// NewConfig reads a scenario library from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with the default scenario library
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0600)
}
