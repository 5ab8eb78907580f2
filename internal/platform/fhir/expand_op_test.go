package fhir

import (
	"strings"
	"testing"
)

func TestExpandedValueSet_Resource(t *testing.T) {
	vs := &ExpandedValueSet{
		URL:    "http://hl7.org/fhir/ValueSet/address-use",
		Name:   "AddressUse",
		Filter: "ho",
		Total:  1,
		Offset: 0,
		Count:  10,
		Contains: []ValueSetContains{
			{System: "http://hl7.org/fhir/address-use", Code: "home", Display: "Home"},
		},
	}
	res := vs.Resource()

	if res.ResourceType != "ValueSet" {
		t.Errorf("expected ValueSet, got %s", res.ResourceType)
	}
	if res.Status != "active" {
		t.Errorf("expected default status active, got %s", res.Status)
	}
	if !strings.HasPrefix(res.Expansion.Identifier, "urn:uuid:") {
		t.Errorf("unexpected identifier %q", res.Expansion.Identifier)
	}
	if res.Expansion.Timestamp == "" {
		t.Error("expected timestamp")
	}
	if res.Expansion.Total != 1 || len(res.Expansion.Contains) != 1 {
		t.Errorf("unexpected expansion %+v", res.Expansion)
	}

	var names []string
	for _, p := range res.Expansion.Parameter {
		names = append(names, p.Name)
	}
	if strings.Join(names, ",") != "filter,count" {
		t.Errorf("unexpected expansion parameters %v", names)
	}
}

func TestExpandedValueSet_UniqueIdentifiers(t *testing.T) {
	vs := &ExpandedValueSet{URL: "http://example.org/vs"}
	if vs.Resource().Expansion.Identifier == vs.Resource().Expansion.Identifier {
		t.Error("expected a fresh identifier per rendering")
	}
}

func TestLookupResult_Parameters(t *testing.T) {
	p := (&LookupResult{Name: "AddressUse", Version: "4.0.1", Display: "Home"}).Parameters()
	if got, _ := p.Get("name"); got.Text() != "AddressUse" {
		t.Errorf("unexpected name %+v", got)
	}
	if _, ok := p.Get("definition"); ok {
		t.Error("empty definition should be omitted")
	}
	abstract, ok := p.Get("abstract")
	if !ok || abstract.ValueBoolean == nil || *abstract.ValueBoolean {
		t.Errorf("expected abstract=false, got %+v", abstract)
	}
}

func TestValidateCodeResult_Parameters(t *testing.T) {
	p := (&ValidateCodeResult{Result: false, Message: "unknown code"}).Parameters()
	result, ok := p.Get("result")
	if !ok || result.ValueBoolean == nil || *result.ValueBoolean {
		t.Errorf("expected result=false, got %+v", result)
	}
	if got, _ := p.Get("message"); got.Text() != "unknown code" {
		t.Errorf("unexpected message %+v", got)
	}
	if _, ok := p.Get("display"); ok {
		t.Error("empty display should be omitted")
	}
}
