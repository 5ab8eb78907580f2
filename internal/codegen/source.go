package codegen

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samply/golang-fhir-models/fhir-models/fhir"
)

// LoadSources reads CodeSystem resources from files holding either a single
// CodeSystem or a Bundle of resources. The result is keyed by canonical URL.
func LoadSources(paths ...string) (map[string]fhir.CodeSystem, error) {
	out := make(map[string]fhir.CodeSystem)
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		if err := collect(out, data); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return out, nil
}

// ParseSources is LoadSources for in-memory documents.
func ParseSources(docs ...[]byte) (map[string]fhir.CodeSystem, error) {
	out := make(map[string]fhir.CodeSystem)
	for _, d := range docs {
		if err := collect(out, d); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func resourceType(data []byte) (string, error) {
	var head struct {
		ResourceType string `json:"resourceType"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", err
	}
	return head.ResourceType, nil
}

func collect(out map[string]fhir.CodeSystem, data []byte) error {
	rt, err := resourceType(data)
	if err != nil {
		return err
	}
	switch rt {
	case "CodeSystem":
		return addCodeSystem(out, data)
	case "Bundle":
		bundle, err := fhir.UnmarshalBundle(data)
		if err != nil {
			return fmt.Errorf("bundle: %w", err)
		}
		for _, entry := range bundle.Entry {
			if len(entry.Resource) == 0 {
				continue
			}
			if rt, err := resourceType(entry.Resource); err != nil || rt != "CodeSystem" {
				continue
			}
			if err := addCodeSystem(out, entry.Resource); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported resourceType %q", rt)
	}
}

func addCodeSystem(out map[string]fhir.CodeSystem, data []byte) error {
	cs, err := fhir.UnmarshalCodeSystem(data)
	if err != nil {
		return fmt.Errorf("code system: %w", err)
	}
	if cs.Url == nil || *cs.Url == "" {
		return fmt.Errorf("code system without url")
	}
	out[*cs.Url] = cs
	return nil
}

// FlatConcept is a concept with its hierarchy removed.
type FlatConcept struct {
	Code       string
	Display    string
	Definition string
}

// Flatten lists concepts depth-first, parents before children.
func Flatten(concepts []fhir.CodeSystemConcept) []FlatConcept {
	var out []FlatConcept
	var walk func([]fhir.CodeSystemConcept)
	walk = func(cs []fhir.CodeSystemConcept) {
		for _, c := range cs {
			out = append(out, FlatConcept{
				Code:       c.Code,
				Display:    deref(c.Display),
				Definition: deref(c.Definition),
			})
			walk(c.Concept)
		}
	}
	walk(concepts)
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
