package fhir

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ehr/fhircode/pkg/fhircode"
	"github.com/ehr/fhircode/pkg/pagination"
)

// Bundle represents a FHIR Bundle resource.
type Bundle struct {
	ResourceType string                   `json:"resourceType"`
	ID           string                   `json:"id,omitempty"`
	Type         fhircode.BundleTypeValue `json:"type"`
	Total        *int                     `json:"total,omitempty"`
	Link         []BundleLink             `json:"link,omitempty"`
	Entry        []BundleEntry            `json:"entry,omitempty"`
	Timestamp    *time.Time               `json:"timestamp,omitempty"`
}

type BundleLink struct {
	Relation string `json:"relation"`
	URL      string `json:"url"`
}

type BundleEntry struct {
	FullURL  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource,omitempty"`
	Search   *BundleSearch   `json:"search,omitempty"`
}

type BundleSearch struct {
	Mode string `json:"mode,omitempty"`
}

// SearchBundleParams holds pagination and link information for a search bundle.
// BaseURL is the search endpoint used for links; FHIRBase prefixes entry
// fullUrls.
type SearchBundleParams struct {
	BaseURL  string
	FHIRBase string
	QueryStr string
	Count    int
	Offset   int
	Total    int
}

// NewSearchBundleWithLinks creates a searchset Bundle with pagination links.
// Resources that cannot be encoded are reported as an error.
func NewSearchBundleWithLinks(resources []interface{}, params SearchBundleParams) (*Bundle, error) {
	now := time.Now().UTC()
	entries := make([]BundleEntry, len(resources))
	for i, r := range resources {
		raw, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("bundle entry %d: %w", i, err)
		}
		entries[i] = BundleEntry{
			FullURL:  extractFullURL(raw, params.FHIRBase),
			Resource: raw,
			Search:   &BundleSearch{Mode: "match"},
		}
	}

	return &Bundle{
		ResourceType: "Bundle",
		Type:         fhircode.BundleTypeSearchset,
		Total:        &params.Total,
		Timestamp:    &now,
		Link:         buildPaginationLinks(params),
		Entry:        entries,
	}, nil
}

// extractFullURL builds a fullUrl from an encoded resource's resourceType and id.
func extractFullURL(raw json.RawMessage, baseURL string) string {
	var head struct {
		ResourceType string `json:"resourceType"`
		ID           string `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil || head.ResourceType == "" || head.ID == "" {
		return ""
	}
	if baseURL == "" {
		return fmt.Sprintf("%s/%s", head.ResourceType, head.ID)
	}
	return fmt.Sprintf("%s/%s/%s", baseURL, head.ResourceType, head.ID)
}

// buildPaginationLinks creates self, next, and previous links for searchset bundles.
func buildPaginationLinks(params SearchBundleParams) []BundleLink {
	link := func(offset int) string {
		return fmt.Sprintf("%s?%s_count=%d&_offset=%d", params.BaseURL, conditionalAmpersand(params.QueryStr), params.Count, offset)
	}
	page := pagination.Params{Count: params.Count, Offset: params.Offset}
	links := []BundleLink{{Relation: "self", URL: link(page.Offset)}}
	if page.HasNext(params.Total) {
		links = append(links, BundleLink{Relation: "next", URL: link(page.NextOffset())})
	}
	if page.HasPrevious() {
		links = append(links, BundleLink{Relation: "previous", URL: link(page.PreviousOffset())})
	}
	return links
}

func conditionalAmpersand(qs string) string {
	if qs == "" {
		return ""
	}
	return qs + "&"
}

// CapabilityStatement represents the FHIR CapabilityStatement (metadata).
type CapabilityStatement struct {
	ResourceType   string                          `json:"resourceType"`
	Status         fhircode.PublicationStatusValue `json:"status"`
	Date           string                          `json:"date"`
	Kind           string                          `json:"kind"`
	FHIRVersion    string                          `json:"fhirVersion"`
	Format         []string                        `json:"format"`
	Software       *CSSoftware                     `json:"software,omitempty"`
	Implementation *CSImplementation               `json:"implementation,omitempty"`
	Rest           []CSRest                        `json:"rest"`
}

type CSSoftware struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type CSImplementation struct {
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

type CSRest struct {
	Mode     string       `json:"mode"`
	Resource []CSResource `json:"resource"`
	Security *CSSecurity  `json:"security,omitempty"`
}

type CSResource struct {
	Type        string          `json:"type"`
	Interaction []CSInteraction `json:"interaction"`
	SearchParam []CSSearchParam `json:"searchParam,omitempty"`
	Operation   []CSOperation   `json:"operation,omitempty"`
}

type CSInteraction struct {
	Code string `json:"code"`
}

type CSSearchParam struct {
	Name string                        `json:"name"`
	Type fhircode.SearchParamTypeValue `json:"type"`
}

type CSOperation struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

type CSSecurity struct {
	CORS    bool              `json:"cors"`
	Service []CodeableConcept `json:"service,omitempty"`
}

// NewCapabilityStatement creates the server's capability statement.
func NewCapabilityStatement(baseURL, version string, resources []CSResource) *CapabilityStatement {
	return &CapabilityStatement{
		ResourceType: "CapabilityStatement",
		Status:       fhircode.PublicationStatusActive,
		Date:         time.Now().UTC().Format("2006-01-02"),
		Kind:         "instance",
		FHIRVersion:  "4.0.1",
		Format:       []string{"json"},
		Software:     &CSSoftware{Name: "fhircode", Version: version},
		Implementation: &CSImplementation{
			Description: "FHIR R4 terminology server",
			URL:         baseURL,
		},
		Rest: []CSRest{
			{
				Mode:     "server",
				Resource: resources,
				Security: &CSSecurity{
					CORS: true,
					Service: []CodeableConcept{
						{
							Coding: []Coding{
								{
									System:  "http://terminology.hl7.org/CodeSystem/restful-security-service",
									Code:    "OAuth",
									Display: "OAuth",
								},
							},
							Text: "Bearer JWT",
						},
					},
				},
			},
		},
	}
}

// OperationDefinitionURL returns the canonical definition of a standard operation.
func OperationDefinitionURL(resourceType, name string) string {
	return fmt.Sprintf("http://hl7.org/fhir/OperationDefinition/%s-%s", resourceType, name)
}
