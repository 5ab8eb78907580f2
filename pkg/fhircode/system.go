package fhircode

import (
	"fmt"
	"strings"
)

// Concept is one code defined by a code system.
type Concept struct {
	Code       string `json:"code"`
	Display    string `json:"display,omitempty"`
	Definition string `json:"definition,omitempty"`
}

// SystemInfo describes a code system. Codes are case-sensitive unless
// CaseInsensitive is set.
type SystemInfo struct {
	URL             string `json:"url"`
	ValueSet        string `json:"valueSet,omitempty"`
	Name            string `json:"name"`
	Title           string `json:"title,omitempty"`
	Version         string `json:"version,omitempty"`
	CaseInsensitive bool   `json:"caseInsensitive,omitempty"`
}

// CodeSystem is an immutable, closed set of concepts.
type CodeSystem struct {
	info     SystemInfo
	concepts []Concept
	index    map[string]int
}

// NewCodeSystem builds a code system from its concepts, in definition order.
// It panics on an empty URL, an empty code or a duplicate code.
func NewCodeSystem(info SystemInfo, concepts ...Concept) *CodeSystem {
	cs, err := BuildCodeSystem(info, concepts...)
	if err != nil {
		panic(err)
	}
	return cs
}

// BuildCodeSystem is NewCodeSystem for data that did not come from generated
// code, returning an error instead of panicking.
func BuildCodeSystem(info SystemInfo, concepts ...Concept) (*CodeSystem, error) {
	if info.URL == "" {
		return nil, fmt.Errorf("code system %q: url is required", info.Name)
	}
	cs := &CodeSystem{
		info:     info,
		concepts: make([]Concept, len(concepts)),
		index:    make(map[string]int, len(concepts)),
	}
	copy(cs.concepts, concepts)
	for i, c := range cs.concepts {
		if c.Code == "" {
			return nil, &CodeError{System: info.URL, Err: ErrEmptyCode}
		}
		key := cs.key(c.Code)
		if _, dup := cs.index[key]; dup {
			return nil, fmt.Errorf("code system %s: duplicate code %q", info.URL, c.Code)
		}
		cs.index[key] = i
	}
	return cs, nil
}

func (cs *CodeSystem) key(code string) string {
	if cs.info.CaseInsensitive {
		return strings.ToLower(code)
	}
	return code
}

func (cs *CodeSystem) URL() string      { return cs.info.URL }
func (cs *CodeSystem) ValueSet() string { return cs.info.ValueSet }
func (cs *CodeSystem) Name() string     { return cs.info.Name }
func (cs *CodeSystem) Title() string    { return cs.info.Title }
func (cs *CodeSystem) Version() string  { return cs.info.Version }
func (cs *CodeSystem) Info() SystemInfo { return cs.info }
func (cs *CodeSystem) Len() int         { return len(cs.concepts) }

// Concepts returns a copy of the concepts in definition order.
func (cs *CodeSystem) Concepts() []Concept {
	out := make([]Concept, len(cs.concepts))
	copy(out, cs.concepts)
	return out
}

// Lookup returns the concept for code. For case-insensitive systems the
// returned concept carries the canonical spelling.
func (cs *CodeSystem) Lookup(code string) (Concept, bool) {
	i, ok := cs.index[cs.key(code)]
	if !ok {
		return Concept{}, false
	}
	return cs.concepts[i], true
}

// Contains reports whether code is defined by the system.
func (cs *CodeSystem) Contains(code string) bool {
	_, ok := cs.index[cs.key(code)]
	return ok
}

// Validate returns a *CodeError when code is empty or not defined.
func (cs *CodeSystem) Validate(code string) error {
	if code == "" {
		return &CodeError{System: cs.info.URL, Err: ErrEmptyCode}
	}
	if !cs.Contains(code) {
		return &CodeError{System: cs.info.URL, Code: code, Err: ErrUnknownCode}
	}
	return nil
}

// Coding returns a Coding for code, with the display filled in when the code
// is known.
func (cs *CodeSystem) Coding(code string) Coding {
	c := Coding{System: cs.info.URL, Version: cs.info.Version, Code: code}
	if concept, ok := cs.Lookup(code); ok {
		c.Code = concept.Code
		c.Display = concept.Display
	}
	return c
}
