package terminology

import (
	"github.com/ehr/fhircode/pkg/fhircode"
)

// StoredCodeSystem is a code system as held by a repository.
type StoredCodeSystem struct {
	System  *fhircode.CodeSystem
	Status  fhircode.PublicationStatusValue
	Builtin bool
}

// CodeSystemSummary describes a code system without its concepts.
type CodeSystemSummary struct {
	URL      string                          `json:"url"`
	ValueSet string                          `json:"valueSet,omitempty"`
	Name     string                          `json:"name"`
	Title    string                          `json:"title,omitempty"`
	Version  string                          `json:"version,omitempty"`
	Status   fhircode.PublicationStatusValue `json:"status"`
	Count    int                             `json:"count"`
	Builtin  bool                            `json:"builtin"`
}

func (s *StoredCodeSystem) Summary() CodeSystemSummary {
	return CodeSystemSummary{
		URL:      s.System.URL(),
		ValueSet: s.System.ValueSet(),
		Name:     s.System.Name(),
		Title:    s.System.Title(),
		Version:  s.System.Version(),
		Status:   s.Status,
		Count:    s.System.Len(),
		Builtin:  s.Builtin,
	}
}

// ListFilter narrows ListCodeSystems. URL matches exactly; Name matches a
// case-insensitive prefix.
type ListFilter struct {
	URL  string
	Name string
}

// LookupRequest is the input of CodeSystem $lookup.
type LookupRequest struct {
	System  string `json:"system"`
	Version string `json:"version,omitempty"`
	Code    string `json:"code"`
}

// ValidateCodeRequest is the input of CodeSystem $validate-code.
type ValidateCodeRequest struct {
	System  string `json:"system"`
	Version string `json:"version,omitempty"`
	Code    string `json:"code"`
	Display string `json:"display,omitempty"`
}

// ValueSetValidateRequest is the input of ValueSet $validate-code.
type ValueSetValidateRequest struct {
	URL     string `json:"url"`
	System  string `json:"system,omitempty"`
	Code    string `json:"code"`
	Display string `json:"display,omitempty"`
}

// ExpandRequest is the input of ValueSet $expand. URL may name a value set or
// a code system.
type ExpandRequest struct {
	URL    string `json:"url"`
	Filter string `json:"filter,omitempty"`
	Offset int    `json:"offset,omitempty"`
	Count  int    `json:"count,omitempty"`
}
