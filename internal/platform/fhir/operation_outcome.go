package fhir

import (
	"fmt"

	"github.com/ehr/fhircode/pkg/fhircode"
)

// OutcomeBuilder provides a fluent API for constructing OperationOutcome resources.
type OutcomeBuilder struct {
	outcome *OperationOutcome
}

func NewOutcomeBuilder() *OutcomeBuilder {
	return &OutcomeBuilder{
		outcome: &OperationOutcome{
			ResourceType: "OperationOutcome",
			Issue:        []OperationOutcomeIssue{},
		},
	}
}

// AddIssue adds a single issue to the OperationOutcome.
func (b *OutcomeBuilder) AddIssue(severity fhircode.IssueSeverityValue, code fhircode.IssueTypeValue, diagnostics string) *OutcomeBuilder {
	b.outcome.Issue = append(b.outcome.Issue, OperationOutcomeIssue{
		Severity:    severity,
		Code:        code,
		Diagnostics: diagnostics,
	})
	return b
}

// AddCodeIssue adds a code-invalid issue whose details carry the offending
// coding.
func (b *OutcomeBuilder) AddCodeIssue(severity fhircode.IssueSeverityValue, coding Coding, diagnostics string) *OutcomeBuilder {
	b.outcome.Issue = append(b.outcome.Issue, OperationOutcomeIssue{
		Severity:    severity,
		Code:        fhircode.IssueTypeCodeInvalid,
		Diagnostics: diagnostics,
		Details:     &CodeableConcept{Coding: []Coding{coding}},
	})
	return b
}

// AddIssueWithLocation adds an issue including an expression/location path.
func (b *OutcomeBuilder) AddIssueWithLocation(severity fhircode.IssueSeverityValue, code fhircode.IssueTypeValue, diagnostics, location string) *OutcomeBuilder {
	b.outcome.Issue = append(b.outcome.Issue, OperationOutcomeIssue{
		Severity:    severity,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  []string{location},
	})
	return b
}

func (b *OutcomeBuilder) Build() *OperationOutcome {
	return b.outcome
}

// HasErrors returns true if the outcome contains any error or fatal issues.
func (o *OperationOutcome) HasErrors() bool {
	for _, issue := range o.Issue {
		if issue.Severity == fhircode.IssueSeverityError || issue.Severity == fhircode.IssueSeverityFatal {
			return true
		}
	}
	return false
}

// Validate checks every issue severity and type against their code systems.
func (o *OperationOutcome) Validate() error {
	if len(o.Issue) == 0 {
		return fmt.Errorf("operation outcome has no issues")
	}
	for i, issue := range o.Issue {
		if _, err := fhircode.Of(issue.Severity); err != nil {
			return fmt.Errorf("issue[%d].severity: %w", i, err)
		}
		if _, err := fhircode.Of(issue.Code); err != nil {
			return fmt.Errorf("issue[%d].code: %w", i, err)
		}
	}
	return nil
}

// RequiredFieldOutcome creates an OperationOutcome for a missing required field.
func RequiredFieldOutcome(field string) *OperationOutcome {
	return NewOutcomeBuilder().
		AddIssueWithLocation(fhircode.IssueSeverityError, fhircode.IssueTypeRequired, fmt.Sprintf("%s is required", field), field).
		Build()
}

// InvalidOutcome reports content that could not be parsed or is invalid.
func InvalidOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(fhircode.IssueSeverityError, fhircode.IssueTypeInvalid, diagnostics)
}

func ConflictOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(fhircode.IssueSeverityError, fhircode.IssueTypeConflict, diagnostics)
}

func NotSupportedOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(fhircode.IssueSeverityError, fhircode.IssueTypeNotSupported, diagnostics)
}

// InternalErrorOutcome creates an OperationOutcome for internal server errors.
func InternalErrorOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(fhircode.IssueSeverityFatal, fhircode.IssueTypeException, diagnostics)
}

// ForbiddenOutcome reports a caller lacking the required role.
func ForbiddenOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(fhircode.IssueSeverityError, fhircode.IssueTypeForbidden, diagnostics)
}

// ThrottledOutcome reports a rate-limited request.
func ThrottledOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(fhircode.IssueSeverityError, fhircode.IssueTypeThrottled, diagnostics)
}

// LoginOutcome reports a request without valid credentials.
func LoginOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(fhircode.IssueSeverityError, fhircode.IssueTypeLogin, diagnostics)
}
