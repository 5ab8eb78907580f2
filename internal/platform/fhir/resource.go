package fhir

import (
	"github.com/ehr/fhircode/pkg/fhircode"
)

type Coding struct {
	System  string `json:"system,omitempty"`
	Version string `json:"version,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

// CodingFrom converts a library coding to its wire form.
func CodingFrom(c fhircode.Coding) Coding {
	return Coding{System: c.System, Version: c.Version, Code: c.Code, Display: c.Display}
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// OperationOutcome represents a FHIR OperationOutcome for errors.
type OperationOutcome struct {
	ResourceType string                  `json:"resourceType"`
	Issue        []OperationOutcomeIssue `json:"issue"`
}

type OperationOutcomeIssue struct {
	Severity    fhircode.IssueSeverityValue `json:"severity"`
	Code        fhircode.IssueTypeValue     `json:"code"`
	Details     *CodeableConcept            `json:"details,omitempty"`
	Diagnostics string                      `json:"diagnostics,omitempty"`
	Expression  []string                    `json:"expression,omitempty"`
}

func NewOperationOutcome(severity fhircode.IssueSeverityValue, code fhircode.IssueTypeValue, diagnostics string) *OperationOutcome {
	return &OperationOutcome{
		ResourceType: "OperationOutcome",
		Issue: []OperationOutcomeIssue{
			{
				Severity:    severity,
				Code:        code,
				Diagnostics: diagnostics,
			},
		},
	}
}

func ErrorOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(fhircode.IssueSeverityError, fhircode.IssueTypeProcessing, diagnostics)
}

func NotFoundOutcome(resourceType, id string) *OperationOutcome {
	return NewOperationOutcome(fhircode.IssueSeverityError, fhircode.IssueTypeNotFound, resourceType+"/"+id+" not found")
}
