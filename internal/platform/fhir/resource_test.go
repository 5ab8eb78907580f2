package fhir

import (
	"encoding/json"
	"testing"

	"github.com/ehr/fhircode/pkg/fhircode"
)

func TestCodingFrom(t *testing.T) {
	c := CodingFrom(fhircode.MustOf(fhircode.HTTPVerbGET).Coding())
	want := Coding{System: "http://hl7.org/fhir/http-verb", Version: "4.0.1", Code: "GET", Display: "GET"}
	if c != want {
		t.Errorf("expected %+v, got %+v", want, c)
	}
}

func TestOperationOutcome_JSON(t *testing.T) {
	data, err := json.Marshal(ErrorOutcome("boom"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"resourceType":"OperationOutcome","issue":[{"severity":"error","code":"processing","diagnostics":"boom"}]}`
	if string(data) != want {
		t.Errorf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}
