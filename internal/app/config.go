package app

import (
	"errors"
	"fmt"
)

// Output formats for loaded trees.
const (
	FormatTree = "tree"
	FormatYAML = "yaml"
)

// UIExtension is the file extension searched for in directory inputs.
const UIExtension = ".ui"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	UIPath string // a definition file or a directory of *.ui files
	Kit    string
	Format string
	// Emit prints the compiled class decorator of each root instead of the tree.
	Emit bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.UIPath == "" {
		return nil, errors.New("UIPath is a required configuration field and cannot be empty")
	}
	if cfg.Kit == "" {
		cfg.Kit = "tkinter"
	}

	switch cfg.Format {
	case "":
		cfg.Format = FormatTree
	case FormatTree, FormatYAML:
	default:
		return nil, fmt.Errorf("invalid format '%s': must be '%s' or '%s'", cfg.Format, FormatTree, FormatYAML)
	}

	return &cfg, nil
}
