package terminology

import (
	"encoding/json"
	"strconv"

	models "github.com/samply/golang-fhir-models/fhir-models/fhir"
)

// toResource renders a stored code system as a CodeSystem resource. The
// resource id is the code system name.
func toResource(s *StoredCodeSystem) (models.CodeSystem, error) {
	info := s.System.Info()
	caseSensitive := !info.CaseInsensitive
	count := s.System.Len()

	var status models.PublicationStatus
	if err := status.UnmarshalJSON([]byte(strconv.Quote(string(s.Status)))); err != nil {
		return models.CodeSystem{}, err
	}

	r := models.CodeSystem{
		Id:            optional(info.Name),
		Url:           optional(info.URL),
		Version:       optional(info.Version),
		Name:          optional(info.Name),
		Title:         optional(info.Title),
		Status:        status,
		CaseSensitive: &caseSensitive,
		ValueSet:      optional(info.ValueSet),
		Content:       models.CodeSystemContentModeComplete,
		Count:         &count,
	}
	for _, c := range s.System.Concepts() {
		r.Concept = append(r.Concept, models.CodeSystemConcept{
			Code:       c.Code,
			Display:    optional(c.Display),
			Definition: optional(c.Definition),
		})
	}
	return r, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func marshalResource(s *StoredCodeSystem) (json.RawMessage, error) {
	r, err := toResource(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(r)
}
