package codegen

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Manifest selects which code systems to generate and how to name them.
type Manifest struct {
	Package     string  `yaml:"package"`
	FHIRVersion string  `yaml:"fhirVersion"`
	Systems     []Entry `yaml:"systems"`
}

// Entry binds one code system URL to a Go type name.
type Entry struct {
	URL      string `yaml:"url"`
	Type     string `yaml:"type"`
	ValueSet string `yaml:"valueSet,omitempty"`
	// Names overrides the constant suffix derived from a code, for codes
	// such as "<=" that have no letters.
	Names map[string]string `yaml:"names,omitempty"`
}

var goIdent = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("manifest: package is required")
	}
	if len(m.Systems) == 0 {
		return fmt.Errorf("manifest: no systems listed")
	}
	types := make(map[string]bool, len(m.Systems))
	urls := make(map[string]bool, len(m.Systems))
	for i, e := range m.Systems {
		if e.URL == "" {
			return fmt.Errorf("manifest: systems[%d]: url is required", i)
		}
		if !goIdent.MatchString(e.Type) {
			return fmt.Errorf("manifest: systems[%d]: type %q is not an exported Go identifier", i, e.Type)
		}
		if types[e.Type] {
			return fmt.Errorf("manifest: duplicate type %s", e.Type)
		}
		if urls[e.URL] {
			return fmt.Errorf("manifest: duplicate url %s", e.URL)
		}
		for code, name := range e.Names {
			if !goIdent.MatchString(name) {
				return fmt.Errorf("manifest: %s: name %q for code %q is not an exported Go identifier", e.Type, name, code)
			}
		}
		types[e.Type] = true
		urls[e.URL] = true
	}
	return nil
}
