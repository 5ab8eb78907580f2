package codegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadSources(t *testing.T) {
	sources, err := LoadSources("testdata/bundle.json", "testdata/quantity-comparator.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, url := range []string{
		"http://hl7.org/fhir/address-type",
		"http://terminology.hl7.org/CodeSystem/data-absent-reason",
		"http://hl7.org/fhir/quantity-comparator",
	} {
		if _, ok := sources[url]; !ok {
			t.Errorf("missing %s", url)
		}
	}
	if len(sources) != 3 {
		t.Errorf("expected 3 code systems, got %d", len(sources))
	}
}

func TestParseSources_Errors(t *testing.T) {
	tests := map[string]string{
		"not json":     `{`,
		"unsupported":  `{"resourceType":"Patient"}`,
		"without url":  `{"resourceType":"CodeSystem","status":"active","content":"complete"}`,
		"bad resource": `{"resourceType":"Bundle","type":"collection","entry":[{"resource":{"resourceType":"CodeSystem","concept":"x"}}]}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseSources([]byte(doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFlatten_DepthFirst(t *testing.T) {
	sources, err := LoadSources("testdata/bundle.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var codes []string
	for _, c := range Flatten(sources["http://terminology.hl7.org/CodeSystem/data-absent-reason"].Concept) {
		codes = append(codes, c.Code)
	}
	want := []string{"unknown", "asked-unknown", "temp-unknown", "masked"}
	if diff := cmp.Diff(want, codes); diff != "" {
		t.Errorf("flatten order (-want +got):\n%s", diff)
	}
}
