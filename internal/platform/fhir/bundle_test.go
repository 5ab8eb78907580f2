package fhir

import (
	"encoding/json"
	"testing"
)

func TestNewSearchBundleWithLinks_FirstPage(t *testing.T) {
	resources := []interface{}{
		map[string]string{"resourceType": "CodeSystem", "id": "AddressType"},
		map[string]string{"resourceType": "CodeSystem", "id": "AddressUse"},
	}
	bundle, err := NewSearchBundleWithLinks(resources, SearchBundleParams{
		BaseURL: "/fhir/CodeSystem",
		Count:   2,
		Offset:  0,
		Total:   5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bundle.ResourceType != "Bundle" {
		t.Errorf("expected resourceType Bundle, got %s", bundle.ResourceType)
	}
	if bundle.Type != "searchset" {
		t.Errorf("expected type searchset, got %s", bundle.Type)
	}
	if *bundle.Total != 5 {
		t.Errorf("expected total 5, got %d", *bundle.Total)
	}
	if len(bundle.Entry) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(bundle.Entry))
	}
	if bundle.Entry[0].FullURL != "CodeSystem/AddressType" {
		t.Errorf("unexpected fullUrl %q", bundle.Entry[0].FullURL)
	}
	if bundle.Entry[0].Search == nil || bundle.Entry[0].Search.Mode != "match" {
		t.Error("expected search mode 'match'")
	}
	if len(bundle.Link) != 2 {
		t.Fatalf("expected self and next links, got %+v", bundle.Link)
	}
	if bundle.Link[1].Relation != "next" || bundle.Link[1].URL != "/fhir/CodeSystem?_count=2&_offset=2" {
		t.Errorf("unexpected next link %+v", bundle.Link[1])
	}
}

func TestNewSearchBundleWithLinks_Unencodable(t *testing.T) {
	_, err := NewSearchBundleWithLinks([]interface{}{make(chan int)}, SearchBundleParams{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildPaginationLinks(t *testing.T) {
	tests := []struct {
		name   string
		params SearchBundleParams
		want   []BundleLink
	}{
		{
			name:   "middle page",
			params: SearchBundleParams{BaseURL: "/fhir/CodeSystem", QueryStr: "name=Address", Count: 10, Offset: 10, Total: 30},
			want: []BundleLink{
				{Relation: "self", URL: "/fhir/CodeSystem?name=Address&_count=10&_offset=10"},
				{Relation: "next", URL: "/fhir/CodeSystem?name=Address&_count=10&_offset=20"},
				{Relation: "previous", URL: "/fhir/CodeSystem?name=Address&_count=10&_offset=0"},
			},
		},
		{
			name:   "last page",
			params: SearchBundleParams{BaseURL: "/fhir/CodeSystem", Count: 10, Offset: 25, Total: 30},
			want: []BundleLink{
				{Relation: "self", URL: "/fhir/CodeSystem?_count=10&_offset=25"},
				{Relation: "previous", URL: "/fhir/CodeSystem?_count=10&_offset=15"},
			},
		},
		{
			name:   "previous clamps to zero",
			params: SearchBundleParams{BaseURL: "/x", Count: 10, Offset: 3, Total: 5},
			want: []BundleLink{
				{Relation: "self", URL: "/x?_count=10&_offset=3"},
				{Relation: "previous", URL: "/x?_count=10&_offset=0"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildPaginationLinks(tt.params)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d links, got %+v", len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("link %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestExtractFullURL(t *testing.T) {
	raw := json.RawMessage(`{"resourceType":"CodeSystem","id":"HTTPVerb"}`)
	if got := extractFullURL(raw, ""); got != "CodeSystem/HTTPVerb" {
		t.Errorf("unexpected %q", got)
	}
	if got := extractFullURL(raw, "http://localhost:8000/fhir"); got != "http://localhost:8000/fhir/CodeSystem/HTTPVerb" {
		t.Errorf("unexpected %q", got)
	}
	if got := extractFullURL(json.RawMessage(`{"id":"x"}`), ""); got != "" {
		t.Errorf("expected empty fullUrl, got %q", got)
	}
}

func TestNewCapabilityStatement(t *testing.T) {
	cs := NewCapabilityStatement("http://localhost:8000/fhir", "1.0.0", []CSResource{
		{
			Type:        "CodeSystem",
			Interaction: []CSInteraction{{Code: "read"}},
			SearchParam: []CSSearchParam{{Name: "url", Type: "uri"}},
			Operation:   []CSOperation{{Name: "lookup", Definition: OperationDefinitionURL("CodeSystem", "lookup")}},
		},
	})

	data, err := json.Marshal(cs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["resourceType"] != "CapabilityStatement" {
		t.Errorf("unexpected resourceType %v", out["resourceType"])
	}
	if out["status"] != "active" {
		t.Errorf("expected status active, got %v", out["status"])
	}
	if out["fhirVersion"] != "4.0.1" {
		t.Errorf("unexpected fhirVersion %v", out["fhirVersion"])
	}
	rest := out["rest"].([]interface{})[0].(map[string]interface{})
	res := rest["resource"].([]interface{})[0].(map[string]interface{})
	op := res["operation"].([]interface{})[0].(map[string]interface{})
	if op["definition"] != "http://hl7.org/fhir/OperationDefinition/CodeSystem-lookup" {
		t.Errorf("unexpected operation %v", op)
	}
}
