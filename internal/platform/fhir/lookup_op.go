package fhir

// LookupResult represents the result of a CodeSystem $lookup operation.
type LookupResult struct {
	Name       string
	Version    string
	Display    string
	Definition string
	Abstract   bool
}

// Parameters renders the result as the $lookup output Parameters.
func (r *LookupResult) Parameters() *Parameters {
	p := NewParameters().
		AddString("name", r.Name).
		AddString("version", r.Version).
		AddString("display", r.Display).
		AddString("definition", r.Definition)
	return p.AddBoolean("abstract", r.Abstract)
}
