package fhir

import (
	"time"

	"github.com/google/uuid"

	"github.com/ehr/fhircode/pkg/fhircode"
)

// ExpandedValueSet represents the result of a $expand operation.
type ExpandedValueSet struct {
	URL      string
	Version  string
	Name     string
	Title    string
	Status   fhircode.PublicationStatusValue
	Filter   string
	Total    int
	Offset   int
	Count    int
	Contains []ValueSetContains
}

// ValueSetContains represents a concept within an expanded ValueSet.
type ValueSetContains struct {
	System  string `json:"system,omitempty"`
	Version string `json:"version,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

// ValueSet is the wire form of an expanded value set.
type ValueSet struct {
	ResourceType string                          `json:"resourceType"`
	ID           string                          `json:"id,omitempty"`
	URL          string                          `json:"url,omitempty"`
	Version      string                          `json:"version,omitempty"`
	Name         string                          `json:"name,omitempty"`
	Title        string                          `json:"title,omitempty"`
	Status       fhircode.PublicationStatusValue `json:"status"`
	Expansion    ValueSetExpansion               `json:"expansion"`
}

type ValueSetExpansion struct {
	Identifier string             `json:"identifier"`
	Timestamp  string             `json:"timestamp"`
	Total      int                `json:"total"`
	Offset     int                `json:"offset"`
	Parameter  []Parameter        `json:"parameter,omitempty"`
	Contains   []ValueSetContains `json:"contains,omitempty"`
}

// Resource renders the expansion as a ValueSet resource with a fresh
// expansion identifier.
func (vs *ExpandedValueSet) Resource() *ValueSet {
	status := vs.Status
	if status == "" {
		status = fhircode.PublicationStatusActive
	}
	out := &ValueSet{
		ResourceType: "ValueSet",
		URL:          vs.URL,
		Version:      vs.Version,
		Name:         vs.Name,
		Title:        vs.Title,
		Status:       status,
		Expansion: ValueSetExpansion{
			Identifier: "urn:uuid:" + uuid.NewString(),
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Total:      vs.Total,
			Offset:     vs.Offset,
			Contains:   vs.Contains,
		},
	}

	params := NewParameters().AddString("filter", vs.Filter)
	if vs.Offset > 0 {
		offset := vs.Offset
		params.Parameter = append(params.Parameter, Parameter{Name: "offset", ValueInteger: &offset})
	}
	if vs.Count > 0 {
		count := vs.Count
		params.Parameter = append(params.Parameter, Parameter{Name: "count", ValueInteger: &count})
	}
	out.Expansion.Parameter = params.Parameter
	return out
}
