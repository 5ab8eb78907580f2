package terminology

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ehr/fhircode/internal/platform/auth"
	"github.com/ehr/fhircode/internal/platform/fhir"
)

const testBase = "http://localhost:8000/fhir"

func newTestServer(roles ...string) (*Service, *echo.Echo) {
	svc := newTestService()
	e := echo.New()
	g := e.Group("/fhir", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := context.WithValue(c.Request().Context(), auth.UserRolesKey, roles)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})
	NewHandler(svc, testBase, "test").RegisterRoutes(g)
	return svc, e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, "application/fhir+json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeParameters(t *testing.T, rec *httptest.ResponseRecorder) *fhir.Parameters {
	t.Helper()
	p, err := fhir.ParseParameters(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("decode parameters: %v (body %s)", err, rec.Body.String())
	}
	return p
}

func decodeOutcome(t *testing.T, rec *httptest.ResponseRecorder) *fhir.OperationOutcome {
	t.Helper()
	var oo fhir.OperationOutcome
	if err := json.Unmarshal(rec.Body.Bytes(), &oo); err != nil {
		t.Fatalf("decode outcome: %v", err)
	}
	if oo.ResourceType != "OperationOutcome" || len(oo.Issue) == 0 {
		t.Fatalf("expected an OperationOutcome, got %s", rec.Body.String())
	}
	return &oo
}

// =========== Metadata ===========

func TestHandler_Metadata(t *testing.T) {
	_, e := newTestServer()
	rec := do(e, http.MethodGet, "/fhir/metadata", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var cs fhir.CapabilityStatement
	if err := json.Unmarshal(rec.Body.Bytes(), &cs); err != nil {
		t.Fatal(err)
	}
	if cs.FHIRVersion != "4.0.1" || len(cs.Rest) != 1 || len(cs.Rest[0].Resource) != 2 {
		t.Fatalf("unexpected capability statement %s", rec.Body.String())
	}
	ops := cs.Rest[0].Resource[1].Operation
	if len(ops) != 2 || ops[0].Definition != "http://hl7.org/fhir/OperationDefinition/ValueSet-expand" {
		t.Errorf("unexpected ValueSet operations %+v", ops)
	}
}

// =========== CodeSystem read / search ===========

func TestHandler_ReadCodeSystem(t *testing.T) {
	_, e := newTestServer()
	rec := do(e, http.MethodGet, "/fhir/CodeSystem/AddressType", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["resourceType"] != "CodeSystem" || body["id"] != "AddressType" {
		t.Errorf("unexpected resource header %v %v", body["resourceType"], body["id"])
	}
	if body["status"] != "active" || body["content"] != "complete" || body["caseSensitive"] != true {
		t.Errorf("unexpected status/content/caseSensitive: %v %v %v", body["status"], body["content"], body["caseSensitive"])
	}
	concepts, _ := body["concept"].([]interface{})
	if len(concepts) != 3 {
		t.Errorf("expected 3 concepts, got %d", len(concepts))
	}
}

func TestHandler_ReadCodeSystem_NotFound(t *testing.T) {
	_, e := newTestServer()
	rec := do(e, http.MethodGet, "/fhir/CodeSystem/Nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	oo := decodeOutcome(t, rec)
	if oo.Issue[0].Diagnostics != "CodeSystem/Nope not found" {
		t.Errorf("unexpected diagnostics %q", oo.Issue[0].Diagnostics)
	}
}

func TestHandler_SearchCodeSystems(t *testing.T) {
	_, e := newTestServer()
	rec := do(e, http.MethodGet, "/fhir/CodeSystem?name=request&_count=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var bundle fhir.Bundle
	if err := json.Unmarshal(rec.Body.Bytes(), &bundle); err != nil {
		t.Fatal(err)
	}
	if bundle.Total == nil || *bundle.Total != 3 {
		t.Fatalf("expected total 3, got %v", bundle.Total)
	}
	if len(bundle.Entry) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(bundle.Entry))
	}
	if bundle.Entry[0].FullURL != testBase+"/CodeSystem/RequestIntent" {
		t.Errorf("unexpected fullUrl %s", bundle.Entry[0].FullURL)
	}
	var next string
	for _, l := range bundle.Link {
		if l.Relation == "next" {
			next = l.URL
		}
	}
	if next != testBase+"/CodeSystem?name=request&_count=2&_offset=2" {
		t.Errorf("unexpected next link %q", next)
	}
}

func TestHandler_SearchCodeSystems_BadCount(t *testing.T) {
	_, e := newTestServer()
	rec := do(e, http.MethodGet, "/fhir/CodeSystem?_count=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	decodeOutcome(t, rec)
}

// =========== Operations ===========

func TestHandler_Lookup_Get(t *testing.T) {
	_, e := newTestServer()
	rec := do(e, http.MethodGet, "/fhir/CodeSystem/$lookup?system=http://hl7.org/fhir/administrative-gender&code=male", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	p := decodeParameters(t, rec)
	if d, _ := p.Get("display"); d.Text() != "Male" {
		t.Errorf("expected display Male, got %q", d.Text())
	}
	if n, _ := p.Get("name"); n.Text() != "AdministrativeGender" {
		t.Errorf("expected name AdministrativeGender, got %q", n.Text())
	}
}

func TestHandler_Lookup_PostCoding(t *testing.T) {
	_, e := newTestServer()
	body := `{"resourceType": "Parameters", "parameter": [
		{"name": "coding", "valueCoding": {"system": "http://hl7.org/fhir/address-type", "code": "both"}}
	]}`
	rec := do(e, http.MethodPost, "/fhir/CodeSystem/$lookup", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	p := decodeParameters(t, rec)
	if d, _ := p.Get("display"); d.Text() != "Postal & Physical" {
		t.Errorf("unexpected display %q", d.Text())
	}
}

func TestHandler_Lookup_Errors(t *testing.T) {
	_, e := newTestServer()
	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"missing code", http.MethodGet, "/fhir/CodeSystem/$lookup?system=http://hl7.org/fhir/address-type", "", http.StatusBadRequest},
		{"unknown code", http.MethodGet, "/fhir/CodeSystem/$lookup?system=http://hl7.org/fhir/address-type&code=nope", "", http.StatusNotFound},
		{"bad body", http.MethodPost, "/fhir/CodeSystem/$lookup", `{"resourceType": "Patient"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.target, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			decodeOutcome(t, rec)
		})
	}
}

func TestHandler_ValidateCode(t *testing.T) {
	_, e := newTestServer()
	rec := do(e, http.MethodGet, "/fhir/CodeSystem/$validate-code?url=http://hl7.org/fhir/encounter-status&code=done", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	p := decodeParameters(t, rec)
	result, _ := p.Get("result")
	if result.ValueBoolean == nil || *result.ValueBoolean {
		t.Errorf("expected result false, got %+v", result)
	}
	if msg, ok := p.Get("message"); !ok || msg.Text() == "" {
		t.Error("expected a message")
	}
}

func TestHandler_ValidateValueSetCode(t *testing.T) {
	_, e := newTestServer()
	body := `{"resourceType": "Parameters", "parameter": [
		{"name": "url", "valueUri": "http://hl7.org/fhir/ValueSet/administrative-gender"},
		{"name": "code", "valueCode": "female"},
		{"name": "display", "valueString": "Female"}
	]}`
	rec := do(e, http.MethodPost, "/fhir/ValueSet/$validate-code", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	p := decodeParameters(t, rec)
	result, _ := p.Get("result")
	if result.ValueBoolean == nil || !*result.ValueBoolean {
		t.Errorf("expected result true, got %+v", result)
	}
}

func TestHandler_Expand(t *testing.T) {
	_, e := newTestServer()
	rec := do(e, http.MethodGet, "/fhir/ValueSet/$expand?url=http://hl7.org/fhir/ValueSet/address-type&filter=post&count=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var vs fhir.ValueSet
	if err := json.Unmarshal(rec.Body.Bytes(), &vs); err != nil {
		t.Fatal(err)
	}
	if vs.ResourceType != "ValueSet" || vs.Expansion.Total != 2 {
		t.Fatalf("unexpected expansion %s", rec.Body.String())
	}
	if !strings.HasPrefix(vs.Expansion.Identifier, "urn:uuid:") {
		t.Errorf("unexpected identifier %s", vs.Expansion.Identifier)
	}
}

func TestHandler_Expand_BadOffset(t *testing.T) {
	_, e := newTestServer()
	rec := do(e, http.MethodGet, "/fhir/ValueSet/$expand?url=http://hl7.org/fhir/ValueSet/address-type&offset=-1", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// =========== Import / Delete ===========

func TestHandler_ImportAndDelete(t *testing.T) {
	_, e := newTestServer(AdminRole)

	rec := do(e, http.MethodPost, "/fhir/CodeSystem", triageJSON)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != testBase+"/CodeSystem/TriageLevel" {
		t.Errorf("unexpected Location %q", loc)
	}

	rec = do(e, http.MethodPost, "/fhir/CodeSystem", triageJSON)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on re-import, got %d", rec.Code)
	}
	decodeOutcome(t, rec)

	rec = do(e, http.MethodGet, "/fhir/CodeSystem/$lookup?system=http://example.org/fhir/CodeSystem/triage-level&code=immediate", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected imported system to be queryable, got %d", rec.Code)
	}

	rec = do(e, http.MethodDelete, "/fhir/CodeSystem/TriageLevel", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = do(e, http.MethodDelete, "/fhir/CodeSystem/TriageLevel", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestHandler_DeleteBuiltin(t *testing.T) {
	_, e := newTestServer("admin")
	rec := do(e, http.MethodDelete, "/fhir/CodeSystem/AddressType", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestHandler_Import_RequiresRole(t *testing.T) {
	_, e := newTestServer("reader")
	rec := do(e, http.MethodPost, "/fhir/CodeSystem", triageJSON)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	oo := decodeOutcome(t, rec)
	if oo.Issue[0].Code != "forbidden" {
		t.Errorf("expected forbidden issue, got %s", oo.Issue[0].Code)
	}
}

func TestHandler_Import_Invalid(t *testing.T) {
	_, e := newTestServer(AdminRole)
	rec := do(e, http.MethodPost, "/fhir/CodeSystem", `{"resourceType": "CodeSystem", "name": "X"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	decodeOutcome(t, rec)
}

func TestHandler_Import_BuiltinName(t *testing.T) {
	_, e := newTestServer(AdminRole)
	body := codeSystemJSON("http://example.org/fhir/CodeSystem/gender", "AdministrativeGender", "", "x")
	rec := do(e, http.MethodPost, "/fhir/CodeSystem", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	decodeOutcome(t, rec)

	rec = do(e, http.MethodGet, "/fhir/CodeSystem/AdministrativeGender", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var cs map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &cs); err != nil {
		t.Fatal(err)
	}
	if cs["url"] != "http://hl7.org/fhir/administrative-gender" {
		t.Errorf("expected the built-in system, got %v", cs["url"])
	}
}

func TestHandler_Import_NameNotAnID(t *testing.T) {
	_, e := newTestServer(AdminRole)
	body := codeSystemJSON("http://example.org/fhir/CodeSystem/colon", "urn:colon", "", "x")
	rec := do(e, http.MethodPost, "/fhir/CodeSystem", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	decodeOutcome(t, rec)
}
