// Package codegen generates typed Go bindings for FHIR code systems from
// CodeSystem resources.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"

	"github.com/samply/golang-fhir-models/fhir-models/fhir"
)

// LibraryImport is the package generated code builds on when it is emitted
// outside of it.
const LibraryImport = "github.com/ehr/fhircode/pkg/fhircode"

const libraryPackage = "fhircode"

// File is one generated source file.
type File struct {
	Name   string
	Source []byte
}

type constant struct {
	Name       string
	Code       string
	Display    string
	Definition string
}

type bindingData struct {
	Package         string
	Import          string
	Q               string
	FHIRVersion     string
	Type            string
	Var             string
	URL             string
	ValueSet        string
	Name            string
	Title           string
	Version         string
	CaseInsensitive bool
	Constants       []constant
}

type registryData struct {
	Package     string
	Import      string
	Q           string
	FHIRVersion string
	ListName    string
	Vars        []string
}

var funcs = template.FuncMap{"quote": strconv.Quote}

var bindingTmpl = template.Must(template.New("binding").Funcs(funcs).Parse(`// Code generated by fhircode generate from FHIR {{.FHIRVersion}}. DO NOT EDIT.

package {{.Package}}
{{if .Import}}
import "{{.Import}}"
{{end}}
// {{.Type}}Value is a code defined by {{.URL}}.
type {{.Type}}Value string

// {{.Type}} codes.
const (
{{- range .Constants}}
	{{.Name}} {{$.Type}}Value = {{quote .Code}}
{{- end}}
)

var {{.Var}} = {{.Q}}NewCodeSystem({{.Q}}SystemInfo{
	URL: {{quote .URL}},
{{- if .ValueSet}}
	ValueSet: {{quote .ValueSet}},
{{- end}}
	Name: {{quote .Name}},
{{- if .Title}}
	Title: {{quote .Title}},
{{- end}}
	Version: {{quote .Version}},
{{- if .CaseInsensitive}}
	CaseInsensitive: true,
{{- end}}
},
{{- range .Constants}}
	{{$.Q}}Concept{Code: {{quote .Code}}, Display: {{quote .Display}}, Definition: {{quote .Definition}}},
{{- end}}
)

// System returns the code system that defines {{.Type}}Value.
func ({{.Type}}Value) System() *{{.Q}}CodeSystem { return {{.Var}} }

// {{.Type}} is a code primitive bound to {{.URL}}.
type {{.Type}} = {{.Q}}Code[{{.Type}}Value]
`))

var registryTmpl = template.Must(template.New("registry").Parse(`// Code generated by fhircode generate from FHIR {{.FHIRVersion}}. DO NOT EDIT.

package {{.Package}}
{{if .Import}}
import "{{.Import}}"
{{end}}
var {{.ListName}} = []*{{.Q}}CodeSystem{
{{- range .Vars}}
	{{.}},
{{- end}}
}
`))

// Generate renders one file per manifest entry plus the registry list.
func Generate(m *Manifest, sources map[string]fhir.CodeSystem) ([]File, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	base := bindingData{Package: m.Package, FHIRVersion: m.FHIRVersion}
	reg := registryData{Package: m.Package, FHIRVersion: m.FHIRVersion, ListName: "builtinSystems"}
	if m.Package != libraryPackage {
		base.Import, base.Q = LibraryImport, libraryPackage+"."
		reg.Import, reg.Q = LibraryImport, libraryPackage+"."
		reg.ListName = "Systems"
	}

	// declared maps each exported identifier of the generated package to
	// what declares it. Type names are reserved before any constant.
	declared := make(map[string]string, 2*len(m.Systems))
	for _, e := range m.Systems {
		for _, name := range []string{e.Type, e.Type + "Value"} {
			if owner, dup := declared[name]; dup {
				return nil, fmt.Errorf("%s: type %s collides with %s", e.Type, name, owner)
			}
			declared[name] = "type " + name
		}
	}

	files := make([]File, 0, len(m.Systems)+1)
	for _, e := range m.Systems {
		cs, ok := sources[e.URL]
		if !ok {
			return nil, fmt.Errorf("%s: code system %s not found in input", e.Type, e.URL)
		}
		data, err := bindingFor(base, e, cs, declared)
		if err != nil {
			return nil, err
		}
		src, err := render(bindingTmpl, data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Type, err)
		}
		files = append(files, File{Name: snake(e.Type) + ".go", Source: src})
		reg.Vars = append(reg.Vars, data.Var)
	}

	sort.Strings(reg.Vars)
	src, err := render(registryTmpl, reg)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	files = append(files, File{Name: "builtin_systems.go", Source: src})
	return files, nil
}

func bindingFor(base bindingData, e Entry, cs fhir.CodeSystem, declared map[string]string) (bindingData, error) {
	concepts := Flatten(cs.Concept)
	if len(concepts) == 0 {
		return bindingData{}, fmt.Errorf("%s: code system %s has no concepts", e.Type, e.URL)
	}

	d := base
	d.Type = e.Type
	d.Var = unexport(e.Type) + "System"
	d.URL = e.URL
	d.Name = deref(cs.Name)
	if d.Name == "" {
		d.Name = e.Type
	}
	d.Title = oneLine(deref(cs.Title))
	d.Version = deref(cs.Version)
	if d.Version == "" {
		d.Version = base.FHIRVersion
	}
	d.ValueSet = e.ValueSet
	if d.ValueSet == "" {
		d.ValueSet = deref(cs.ValueSet)
	}
	d.CaseInsensitive = cs.CaseSensitive != nil && !*cs.CaseSensitive

	seen := make(map[string]string, len(concepts))
	for _, c := range concepts {
		suffix, ok := e.Names[c.Code]
		if !ok {
			if suffix, ok = Symbol(c.Code); !ok {
				return bindingData{}, fmt.Errorf("%s: code %q needs a names override", e.Type, c.Code)
			}
		}
		name := e.Type + suffix
		if prev, dup := seen[name]; dup {
			return bindingData{}, fmt.Errorf("%s: codes %q and %q both map to %s", e.Type, prev, c.Code, name)
		}
		if owner, dup := declared[name]; dup {
			return bindingData{}, fmt.Errorf("%s: code %q maps to %s, which collides with %s", e.Type, c.Code, name, owner)
		}
		seen[name] = c.Code
		declared[name] = fmt.Sprintf("%s code %q", e.Type, c.Code)
		d.Constants = append(d.Constants, constant{
			Name:       name,
			Code:       c.Code,
			Display:    oneLine(c.Display),
			Definition: oneLine(c.Definition),
		})
	}
	return d, nil
}

func render(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return src, nil
}

// WriteFiles writes files into dir, creating it if needed.
func WriteFiles(dir string, files []File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Source, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	return nil
}
