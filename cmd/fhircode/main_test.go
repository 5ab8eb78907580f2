package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehr/fhircode/internal/config"
	"github.com/ehr/fhircode/internal/domain/terminology"
	"github.com/ehr/fhircode/pkg/fhircode"
)

const testSigningKey = "test-signing-key"

const triageJSON = `{
  "resourceType": "CodeSystem",
  "url": "http://example.org/fhir/CodeSystem/triage-level",
  "name": "TriageLevel",
  "status": "active",
  "content": "complete",
  "concept": [
    {"code": "immediate", "display": "Immediate"},
    {"code": "urgent", "display": "Urgent"}
  ]
}`

func testEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AUTH_SIGNING_KEY", testSigningKey)
	t.Setenv("AUTH_ISSUER", "")
	t.Setenv("AUTH_JWKS_URL", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLookupCommand(t *testing.T) {
	testEnv(t)
	out, err := run(t, "lookup", "http://hl7.org/fhir/administrative-gender", "female")
	require.NoError(t, err)
	assert.Contains(t, out, `"resourceType": "Parameters"`)
	assert.Contains(t, out, `"valueString": "Female"`)
}

func TestLookupCommand_UnknownCode(t *testing.T) {
	testEnv(t)
	_, err := run(t, "lookup", "http://hl7.org/fhir/administrative-gender", "yes")
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	testEnv(t)

	out, err := run(t, "validate", "http://hl7.org/fhir/issue-severity", "fatal")
	require.NoError(t, err)
	assert.Contains(t, out, `"valueBoolean": true`)

	out, err = run(t, "validate", "http://hl7.org/fhir/issue-severity", "catastrophic")
	require.NoError(t, err)
	assert.Contains(t, out, `"valueBoolean": false`)
}

func TestValidateCommand_ValueSet(t *testing.T) {
	testEnv(t)
	out, err := run(t, "validate", "--value-set", "http://hl7.org/fhir/ValueSet/name-use", "", "official")
	require.NoError(t, err)
	assert.Contains(t, out, `"valueBoolean": true`)
}

func TestListCommand(t *testing.T) {
	testEnv(t)
	out, err := run(t, "list", "--name", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "AdministrativeGender")
	assert.Contains(t, out, "http://hl7.org/fhir/administrative-gender")
	assert.NotContains(t, out, "IssueType")
}

func TestImportCommand(t *testing.T) {
	testEnv(t)
	path := filepath.Join(t.TempDir(), "triage.json")
	require.NoError(t, os.WriteFile(path, []byte(triageJSON), 0o644))

	out, err := run(t, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "http://example.org/fhir/CodeSystem/triage-level")
	assert.Contains(t, out, `"count": 2`)
}

func TestImportCommand_MissingFile(t *testing.T) {
	testEnv(t)
	_, err := run(t, "import", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestMigrateCommand_RequiresDatabase(t *testing.T) {
	testEnv(t)
	_, err := run(t, "migrate", "up")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestInvalidConfig(t *testing.T) {
	testEnv(t)
	t.Setenv("ENV", "qa")
	_, err := run(t, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV must be")
}

func TestGenerateCommand(t *testing.T) {
	out := t.TempDir()
	testdata := filepath.Join("..", "..", "internal", "codegen", "testdata")

	stdout, err := run(t, "generate",
		"--manifest", filepath.Join(testdata, "codegen.yaml"),
		"--input", filepath.Join(testdata, "bundle.json"),
		"--input", filepath.Join(testdata, "quantity-comparator.json"),
		"--out", out,
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "generated 4 file(s)")

	for _, name := range []string{"address_type.go", "data_absent_reason.go", "quantity_comparator.go", "builtin_systems.go"} {
		src, err := os.ReadFile(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(src), "// Code generated by fhircode generate"), name)
	}
	src, err := os.ReadFile(filepath.Join(out, "quantity_comparator.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), `QuantityComparatorLessThan`)
}

func TestGenerateCommand_RequiresInput(t *testing.T) {
	_, err := run(t, "generate", "--out", t.TempDir())
	require.Error(t, err)
}

// =========== Server ===========

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	testEnv(t)
	cfg, err := config.Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	svc := terminology.NewService(terminology.NewBuiltinRepo(fhircode.Default()), terminology.NewMemoryRepo(), zerolog.Nop())
	return newServer(cfg, zerolog.Nop(), svc, nil)
}

func token(t *testing.T, roles ...string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "tester",
		"roles": roles,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return s
}

func request(e *echo.Echo, method, target, bearer, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, "application/fhir+json")
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(t)

	rec := request(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = request(e, http.MethodGet, "/health/db", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"memory"`)
}

func TestServer_MetadataIsPublic(t *testing.T) {
	e := newTestServer(t)
	rec := request(e, http.MethodGet, "/fhir/metadata", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"CapabilityStatement"`)
}

func TestServer_RequiresToken(t *testing.T) {
	e := newTestServer(t)
	rec := request(e, http.MethodGet, "/fhir/CodeSystem", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"login"`)

	rec = request(e, http.MethodGet, "/fhir/CodeSystem", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_LookupWithToken(t *testing.T) {
	e := newTestServer(t)
	rec := request(e, http.MethodGet,
		"/fhir/CodeSystem/$lookup?system=http://hl7.org/fhir/administrative-gender&code=male",
		token(t), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"Male"`)
}

func TestServer_ImportRequiresAdminRole(t *testing.T) {
	e := newTestServer(t)

	rec := request(e, http.MethodPost, "/fhir/CodeSystem", token(t), triageJSON)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = request(e, http.MethodPost, "/fhir/CodeSystem", token(t, terminology.AdminRole), triageJSON)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = request(e, http.MethodGet,
		"/fhir/CodeSystem/$validate-code?url=http://example.org/fhir/CodeSystem/triage-level&code=urgent",
		token(t), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valueBoolean":true`)
}

func TestServer_UnknownRouteIsOperationOutcome(t *testing.T) {
	e := newTestServer(t)
	rec := request(e, http.MethodGet, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"OperationOutcome"`)
}

func TestServer_SecurityHeaders(t *testing.T) {
	e := newTestServer(t)
	rec := request(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestServer_ClientIPIgnoresForwardedFor(t *testing.T) {
	e := newTestServer(t)
	require.NotNil(t, e.IPExtractor)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "192.0.2.10:5555"
	req.Header.Set(echo.HeaderXForwardedFor, "203.0.113.7")
	assert.Equal(t, "192.0.2.10", e.IPExtractor(req))
}
