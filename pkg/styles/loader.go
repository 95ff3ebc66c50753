package styles

import (
	"errors"
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// ErrManifestName is returned when a theme file has no name.
var ErrManifestName = errors.New("styles: theme name is required")

type manifestFile struct {
	Name     string                 `yaml:"name"`
	Version  string                 `yaml:"version"`
	Tokens   map[string]string      `yaml:"tokens"`
	Variants map[string]variantFile `yaml:"variants"`
}

type variantFile struct {
	Tokens map[string]string `yaml:"tokens"`
}

// ParseManifest decodes a YAML theme file:
//
//	name: acme
//	version: 1.0.0
//	tokens:
//	  danger.border: "#dc3545"
//	variants:
//	  dark:
//	    tokens:
//	      success.border: "#20c997"
func ParseManifest(data []byte) (*theme.Manifest, error) {
	var raw manifestFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("styles: decode theme: %w", err)
	}
	if strings.TrimSpace(raw.Name) == "" {
		return nil, ErrManifestName
	}

	manifest := &theme.Manifest{
		Name:    strings.TrimSpace(raw.Name),
		Version: raw.Version,
		Tokens:  raw.Tokens,
	}
	if len(raw.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(raw.Variants))
		for name, variant := range raw.Variants {
			manifest.Variants[name] = theme.Variant{Tokens: variant.Tokens}
		}
	}
	return manifest, nil
}

// LoadManifestFile reads and decodes a YAML theme file from disk.
func LoadManifestFile(path string) (*theme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("styles: read theme: %w", err)
	}
	return ParseManifest(data)
}

// Load resolves styles from a theme file. An empty path yields the defaults.
func Load(path, variant string) (Styles, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	manifest, err := LoadManifestFile(path)
	if err != nil {
		return Styles{}, err
	}
	return FromManifest(manifest, variant), nil
}
