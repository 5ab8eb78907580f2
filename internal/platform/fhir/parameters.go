package fhir

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Parameters is the FHIR Parameters resource used for operation input and
// output.
type Parameters struct {
	ResourceType string      `json:"resourceType"`
	Parameter    []Parameter `json:"parameter,omitempty"`
}

type Parameter struct {
	Name         string          `json:"name"`
	ValueString  *string         `json:"valueString,omitempty"`
	ValueCode    *string         `json:"valueCode,omitempty"`
	ValueURI     *string         `json:"valueUri,omitempty"`
	ValueBoolean *bool           `json:"valueBoolean,omitempty"`
	ValueInteger *int            `json:"valueInteger,omitempty"`
	ValueCoding  *Coding         `json:"valueCoding,omitempty"`
	Resource     json.RawMessage `json:"resource,omitempty"`
	Part         []Parameter     `json:"part,omitempty"`
}

// Text returns the parameter value as a string, whichever primitive carries it.
func (p Parameter) Text() string {
	switch {
	case p.ValueString != nil:
		return *p.ValueString
	case p.ValueCode != nil:
		return *p.ValueCode
	case p.ValueURI != nil:
		return *p.ValueURI
	case p.ValueBoolean != nil:
		return strconv.FormatBool(*p.ValueBoolean)
	case p.ValueInteger != nil:
		return strconv.Itoa(*p.ValueInteger)
	}
	return ""
}

func NewParameters() *Parameters {
	return &Parameters{ResourceType: "Parameters"}
}

// AddString appends a valueString parameter. Empty values are skipped.
func (p *Parameters) AddString(name, value string) *Parameters {
	if value != "" {
		p.Parameter = append(p.Parameter, Parameter{Name: name, ValueString: &value})
	}
	return p
}

// AddCode appends a valueCode parameter. Empty values are skipped.
func (p *Parameters) AddCode(name, value string) *Parameters {
	if value != "" {
		p.Parameter = append(p.Parameter, Parameter{Name: name, ValueCode: &value})
	}
	return p
}

// AddURI appends a valueUri parameter. Empty values are skipped.
func (p *Parameters) AddURI(name, value string) *Parameters {
	if value != "" {
		p.Parameter = append(p.Parameter, Parameter{Name: name, ValueURI: &value})
	}
	return p
}

func (p *Parameters) AddBoolean(name string, value bool) *Parameters {
	p.Parameter = append(p.Parameter, Parameter{Name: name, ValueBoolean: &value})
	return p
}

func (p *Parameters) AddCoding(name string, value Coding) *Parameters {
	p.Parameter = append(p.Parameter, Parameter{Name: name, ValueCoding: &value})
	return p
}

// AddPart appends a parameter made of nested parts.
func (p *Parameters) AddPart(name string, parts ...Parameter) *Parameters {
	p.Parameter = append(p.Parameter, Parameter{Name: name, Part: parts})
	return p
}

// Get returns the first parameter called name.
func (p *Parameters) Get(name string) (Parameter, bool) {
	for _, param := range p.Parameter {
		if param.Name == name {
			return param, true
		}
	}
	return Parameter{}, false
}

// ParseParameters decodes a Parameters resource.
func ParseParameters(data []byte) (*Parameters, error) {
	var params Parameters
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("invalid Parameters: %w", err)
	}
	if params.ResourceType != "Parameters" {
		return nil, fmt.Errorf("expected resourceType Parameters, got %q", params.ResourceType)
	}
	return &params, nil
}

// OperationInput collects the scalar inputs of an operation call. Query
// parameters are read first; a POSTed Parameters body overrides them. A
// "coding" parameter fills system, version, code and display where those are
// not given directly.
func OperationInput(c echo.Context) (map[string]string, error) {
	in := make(map[string]string)
	for name, values := range c.QueryParams() {
		if len(values) > 0 {
			in[name] = values[0]
		}
	}

	if c.Request().Method != http.MethodPost || c.Request().Body == nil {
		return in, nil
	}
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(body) == 0 {
		return in, nil
	}
	params, err := ParseParameters(body)
	if err != nil {
		return nil, err
	}

	var coding *Coding
	for _, p := range params.Parameter {
		if p.ValueCoding != nil {
			if p.Name == "coding" {
				coding = p.ValueCoding
			}
			continue
		}
		if v := p.Text(); v != "" {
			in[p.Name] = v
		}
	}
	if coding != nil {
		fill := func(key, v string) {
			if _, ok := in[key]; !ok && v != "" {
				in[key] = v
			}
		}
		fill("system", coding.System)
		fill("version", coding.Version)
		fill("code", coding.Code)
		fill("display", coding.Display)
	}
	return in, nil
}

// IntInput parses an integer input, returning def when absent and an error
// when malformed or negative.
func IntInput(in map[string]string, name string, def int) (int, error) {
	v, ok := in[name]
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("parameter %s must be a non-negative integer", name)
	}
	return n, nil
}
