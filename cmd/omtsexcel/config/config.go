// Package config loads generator settings from a YAML profile.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "omtsexcel.yaml"

// Files maps each standard artifact to its output file name.
type Files struct {
	Template            string `yaml:"template"`
	Example             string `yaml:"example"`
	SupplierList        string `yaml:"supplier_list"`
	SupplierListExample string `yaml:"supplier_list_example"`
}

// Config holds CLI-level generation settings.
type Config struct {
	// OutputDir receives the generated workbooks.
	OutputDir string `yaml:"output_dir"`
	// Author attributes the tooltip comments. Empty keeps the library
	// default.
	Author string `yaml:"author"`
	// Files overrides the standard artifact file names.
	Files Files `yaml:"files"`
}

// Default returns the built-in configuration: current directory, the
// artifact names the importer documentation refers to.
func Default() Config {
	return Config{
		OutputDir: ".",
		Files: Files{
			Template:            "omts-import-template.xlsx",
			Example:             "omts-import-example.xlsx",
			SupplierList:        "omts-supplier-list-template.xlsx",
			SupplierListExample: "omts-supplier-list-example.xlsx",
		},
	}
}

// Load reads a YAML config file and merges it over the defaults. A missing
// file yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	names := []string{c.Files.Template, c.Files.Example, c.Files.SupplierList, c.Files.SupplierListExample}
	for _, n := range names {
		if n == "" {
			return errors.New("artifact file names must not be empty")
		}
	}
	return nil
}

// FileName returns the configured artifact file name for a variant.
func (c Config) FileName(variant string, examples bool) string {
	switch {
	case variant == "supplier-list" && examples:
		return c.Files.SupplierListExample
	case variant == "supplier-list":
		return c.Files.SupplierList
	case examples:
		return c.Files.Example
	default:
		return c.Files.Template
	}
}
