package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/inkline/outliner/layout"
)

// fileConfig is the optional YAML configuration schema. Every field is a
// pointer so that absent keys leave the built-in defaults untouched.
type fileConfig struct {
	MinH1SizeRatio    *float64 `yaml:"minH1SizeRatio"`
	MinH2SizeRatio    *float64 `yaml:"minH2SizeRatio"`
	MinH3SizeRatio    *float64 `yaml:"minH3SizeRatio"`
	H2IndentThreshold *float64 `yaml:"h2IndentThreshold"`
	H3IndentThreshold *float64 `yaml:"h3IndentThreshold"`
	MinHeadingLength  *int     `yaml:"minHeadingLength"`
	MaxHeadingLength  *int     `yaml:"maxHeadingLength"`
	MinTitleLength    *int     `yaml:"minTitleLength"`
}

// applyFileConfig layers YAML values over cfg. Flags set explicitly on the
// command line are applied afterwards by the caller and take precedence.
func applyFileConfig(path string, cfg *layout.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.MinH1SizeRatio != nil {
		cfg.MinH1SizeRatio = *fc.MinH1SizeRatio
	}
	if fc.MinH2SizeRatio != nil {
		cfg.MinH2SizeRatio = *fc.MinH2SizeRatio
	}
	if fc.MinH3SizeRatio != nil {
		cfg.MinH3SizeRatio = *fc.MinH3SizeRatio
	}
	if fc.H2IndentThreshold != nil {
		cfg.H2IndentThreshold = *fc.H2IndentThreshold
	}
	if fc.H3IndentThreshold != nil {
		cfg.H3IndentThreshold = *fc.H3IndentThreshold
	}
	if fc.MinHeadingLength != nil {
		cfg.MinHeadingLength = *fc.MinHeadingLength
	}
	if fc.MaxHeadingLength != nil {
		cfg.MaxHeadingLength = *fc.MaxHeadingLength
	}
	if fc.MinTitleLength != nil {
		cfg.MinTitleLength = *fc.MinTitleLength
	}
	return nil
}
