package codegen

import (
	"strings"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest("testdata/codegen.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Package != "fhircode" || m.FHIRVersion != "4.0.1" {
		t.Errorf("unexpected header: %+v", m)
	}
	if len(m.Systems) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(m.Systems))
	}
	if got := m.Systems[2].Names["<="]; got != "LessOrEqual" {
		t.Errorf("expected names override, got %q", got)
	}
}

func TestLoadManifest_Missing(t *testing.T) {
	if _, err := LoadManifest("testdata/nope.yaml"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseManifest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"no package", "systems: [{url: a, type: A}]", "package is required"},
		{"no systems", "package: x", "no systems"},
		{"no url", "package: x\nsystems: [{type: A}]", "url is required"},
		{"bad type", "package: x\nsystems: [{url: a, type: lower}]", "not an exported Go identifier"},
		{"dup type", "package: x\nsystems: [{url: a, type: A}, {url: b, type: A}]", "duplicate type"},
		{"dup url", "package: x\nsystems: [{url: a, type: A}, {url: a, type: B}]", "duplicate url"},
		{"bad name", "package: x\nsystems: [{url: a, type: A, names: {'<': lt}}]", "name \"lt\""},
		{"not yaml", "package: [", "parse manifest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
