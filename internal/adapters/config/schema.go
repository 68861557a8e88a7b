package config

import "gopkg.in/yaml.v3"

// Stitchfile represents the structure of the stitch.yaml configuration file.
type Stitchfile struct {
	Version  string    `yaml:"version"`
	Root     string    `yaml:"root"`
	Output   OutputDTO `yaml:"output"`
	Manifest string    `yaml:"manifest"`
	Pages    []PageDTO `yaml:"pages"`
}

// OutputDTO represents the bundler output options in the configuration.
type OutputDTO struct {
	Dir  string `yaml:"dir"`
	File string `yaml:"file"`
}

// PageDTO represents a page definition in the configuration.
type PageDTO struct {
	Template string   `yaml:"template"`
	Target   string   `yaml:"target"`
	Prefix   string   `yaml:"prefix"`
	Attrs    []string `yaml:"attrs"`
	// ReplaceVars is decoded by hand to keep the order of the mapping.
	ReplaceVars yaml.Node `yaml:"replaceVars"`
}
