// SPDX-License-Identifier: MIT
// Package: geokg/plan
//
// load.go - reading plan files (YAML or TOML) followed by validation.

package plan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects a plan file syntax.
type Format string

const (
	// FormatYAML is YAML 1.2 via gopkg.in/yaml.v3.
	FormatYAML Format = "yaml"
	// FormatTOML is TOML via github.com/BurntSushi/toml.
	FormatTOML Format = "toml"
)

// FormatFromPath infers the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("FormatFromPath(%q): unsupported extension: %w", path, ErrInvalidPlan)
	}
}

// Load reads, decodes and validates the plan at path.
func Load(path string) (*Plan, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	p, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return p, nil
}

// Decode parses r in the given format and validates the result. Unknown
// keys are rejected in both formats.
func Decode(r io.Reader, format Format) (*Plan, error) {
	var p Plan
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("Decode: yaml: %v: %w", err, ErrInvalidPlan)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&p)
		if err != nil {
			return nil, fmt.Errorf("Decode: toml: %v: %w", err, ErrInvalidPlan)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("Decode: toml: unknown key %q: %w", undecoded[0].String(), ErrInvalidPlan)
		}
	default:
		return nil, fmt.Errorf("Decode: format %q: %w", format, ErrInvalidPlan)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}
