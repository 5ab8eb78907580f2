// Package fhircode provides typed bindings for FHIR code systems.
//
// A coded value is a FHIR primitive: it may carry an element id and a list of
// extensions next to its value, or carry only extensions when the value itself
// is absent. Each bound code system defines a string type whose constants are
// the only codes Of and From will accept.
package fhircode

import (
	"fmt"
	"regexp"
)

//go:generate go run ../../cmd/fhircode generate --manifest codegen.yaml --input ${FHIR_DEFINITIONS}/valuesets.json --out .

// idPattern is the FHIR id datatype.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)

// Coding is a reference to a code defined by a code system.
type Coding struct {
	System  string `json:"system,omitempty"`
	Version string `json:"version,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

// Extension is a FHIR extension. It holds either one value or nested
// extensions, never both.
type Extension struct {
	ID           string      `json:"id,omitempty"`
	Extension    []Extension `json:"extension,omitempty"`
	URL          string      `json:"url"`
	ValueString  *string     `json:"valueString,omitempty"`
	ValueCode    *string     `json:"valueCode,omitempty"`
	ValueURI     *string     `json:"valueUri,omitempty"`
	ValueBoolean *bool       `json:"valueBoolean,omitempty"`
	ValueInteger *int        `json:"valueInteger,omitempty"`
	ValueCoding  *Coding     `json:"valueCoding,omitempty"`
}

func (e Extension) valueCount() int {
	n := 0
	if e.ValueString != nil {
		n++
	}
	if e.ValueCode != nil {
		n++
	}
	if e.ValueURI != nil {
		n++
	}
	if e.ValueBoolean != nil {
		n++
	}
	if e.ValueInteger != nil {
		n++
	}
	if e.ValueCoding != nil {
		n++
	}
	return n
}

// Validate checks the extension and any nested extensions.
func (e Extension) Validate() error {
	if e.URL == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidExtension)
	}
	if e.ID != "" && !idPattern.MatchString(e.ID) {
		return fmt.Errorf("%w: extension %s: %q", ErrInvalidID, e.URL, e.ID)
	}
	values := e.valueCount()
	if values > 1 {
		return fmt.Errorf("%w: %s has more than one value", ErrInvalidExtension, e.URL)
	}
	if values == 1 && len(e.Extension) > 0 {
		return fmt.Errorf("%w: %s has both a value and nested extensions", ErrInvalidExtension, e.URL)
	}
	if values == 0 && len(e.Extension) == 0 {
		return fmt.Errorf("%w: %s has neither a value nor nested extensions", ErrInvalidExtension, e.URL)
	}
	for _, child := range e.Extension {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func cloneExtensions(in []Extension) []Extension {
	if len(in) == 0 {
		return nil
	}
	out := make([]Extension, len(in))
	for i, e := range in {
		out[i] = e
		out[i].Extension = cloneExtensions(e.Extension)
		out[i].ValueString = clonePtr(e.ValueString)
		out[i].ValueCode = clonePtr(e.ValueCode)
		out[i].ValueURI = clonePtr(e.ValueURI)
		out[i].ValueBoolean = clonePtr(e.ValueBoolean)
		out[i].ValueInteger = clonePtr(e.ValueInteger)
		out[i].ValueCoding = clonePtr(e.ValueCoding)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Element holds the id and extensions every FHIR primitive may carry.
type Element struct {
	ID        string      `json:"id,omitempty"`
	Extension []Extension `json:"extension,omitempty"`
}

// IsEmpty reports whether the element has neither an id nor extensions.
func (e Element) IsEmpty() bool {
	return e.ID == "" && len(e.Extension) == 0
}

// Validate checks the id format and every extension.
func (e Element) Validate() error {
	if e.ID != "" && !idPattern.MatchString(e.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidID, e.ID)
	}
	for _, ext := range e.Extension {
		if err := ext.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DataAbsentReasonURL is the extension used to say why a value is missing.
const DataAbsentReasonURL = "http://hl7.org/fhir/StructureDefinition/data-absent-reason"

// DataAbsent returns a data-absent-reason extension carrying reason, which
// must be a code of the data-absent-reason system.
func DataAbsent(reason DataAbsentReasonValue) (Extension, error) {
	v, err := Parse[DataAbsentReasonValue](string(reason))
	if err != nil {
		return Extension{}, err
	}
	code := string(v)
	return Extension{URL: DataAbsentReasonURL, ValueCode: &code}, nil
}

// MustDataAbsent is DataAbsent for the generated DataAbsentReason constants.
func MustDataAbsent(reason DataAbsentReasonValue) Extension {
	ext, err := DataAbsent(reason)
	if err != nil {
		panic(err)
	}
	return ext
}
