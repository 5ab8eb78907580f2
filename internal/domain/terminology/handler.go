package terminology

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/ehr/fhircode/internal/platform/auth"
	"github.com/ehr/fhircode/internal/platform/fhir"
	"github.com/ehr/fhircode/pkg/fhircode"
	"github.com/ehr/fhircode/pkg/pagination"
)

// AdminRole may import and delete code systems.
const AdminRole = "terminology-admin"

// Handler serves the FHIR terminology endpoints.
type Handler struct {
	svc     *Service
	baseURL string
	version string
}

func NewHandler(svc *Service, baseURL, version string) *Handler {
	return &Handler{svc: svc, baseURL: baseURL, version: version}
}

// RegisterRoutes registers terminology routes on the FHIR group.
func (h *Handler) RegisterRoutes(fhirGroup *echo.Group) {
	fhirGroup.GET("/metadata", h.Metadata)

	fhirGroup.GET("/CodeSystem", h.SearchCodeSystems)
	fhirGroup.GET("/CodeSystem/:id", h.ReadCodeSystem)
	fhirGroup.GET("/CodeSystem/$lookup", h.Lookup)
	fhirGroup.POST("/CodeSystem/$lookup", h.Lookup)
	fhirGroup.GET("/CodeSystem/$validate-code", h.ValidateCode)
	fhirGroup.POST("/CodeSystem/$validate-code", h.ValidateCode)
	fhirGroup.GET("/ValueSet/$validate-code", h.ValidateValueSetCode)
	fhirGroup.POST("/ValueSet/$validate-code", h.ValidateValueSetCode)
	fhirGroup.GET("/ValueSet/$expand", h.Expand)
	fhirGroup.POST("/ValueSet/$expand", h.Expand)

	admin := fhirGroup.Group("", auth.RequireRole(AdminRole))
	admin.POST("/CodeSystem", h.ImportCodeSystem)
	admin.DELETE("/CodeSystem/:id", h.DeleteCodeSystem)
}

// errorResponse maps service errors onto OperationOutcome responses.
func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrInvalid):
		return c.JSON(http.StatusBadRequest, fhir.InvalidOutcome(err.Error()))
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, fhir.NewOperationOutcome(
			fhircode.IssueSeverityError, fhircode.IssueTypeNotFound, err.Error()))
	case errors.Is(err, ErrConflict), errors.Is(err, ErrReadOnly):
		return c.JSON(http.StatusConflict, fhir.ConflictOutcome(err.Error()))
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, fhir.InternalErrorOutcome("internal server error"))
	}
}

// Metadata handles GET /fhir/metadata
func (h *Handler) Metadata(c echo.Context) error {
	ops := func(rt string, names ...string) []fhir.CSOperation {
		out := make([]fhir.CSOperation, len(names))
		for i, n := range names {
			out[i] = fhir.CSOperation{Name: n, Definition: fhir.OperationDefinitionURL(rt, n)}
		}
		return out
	}
	resources := []fhir.CSResource{
		{
			Type: "CodeSystem",
			Interaction: []fhir.CSInteraction{
				{Code: "read"}, {Code: "search-type"}, {Code: "create"}, {Code: "delete"},
			},
			SearchParam: []fhir.CSSearchParam{
				{Name: "url", Type: fhircode.SearchParamTypeUri},
				{Name: "name", Type: fhircode.SearchParamTypeString},
			},
			Operation: ops("CodeSystem", "lookup", "validate-code"),
		},
		{
			Type:        "ValueSet",
			Interaction: []fhir.CSInteraction{},
			Operation:   ops("ValueSet", "expand", "validate-code"),
		},
	}
	return c.JSON(http.StatusOK, fhir.NewCapabilityStatement(h.baseURL, h.version, resources))
}

// SearchCodeSystems handles GET /fhir/CodeSystem
func (h *Handler) SearchCodeSystems(c echo.Context) error {
	page, err := pagination.FromContext(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fhir.InvalidOutcome(err.Error()))
	}
	limit, offset := page.Count, page.Offset
	if limit == 0 {
		limit = defaultListLimit
	}

	filter := ListFilter{URL: c.QueryParam("url"), Name: c.QueryParam("name")}
	summaries, total, err := h.svc.ListCodeSystems(c.Request().Context(), filter, limit, offset)
	if err != nil {
		return errorResponse(c, err)
	}

	resources := make([]interface{}, 0, len(summaries))
	for _, sum := range summaries {
		cs, err := h.svc.GetCodeSystem(c.Request().Context(), sum.URL)
		if err != nil {
			return errorResponse(c, err)
		}
		raw, err := marshalResource(cs)
		if err != nil {
			return errorResponse(c, err)
		}
		resources = append(resources, raw)
	}

	q := url.Values{}
	if filter.URL != "" {
		q.Set("url", filter.URL)
	}
	if filter.Name != "" {
		q.Set("name", filter.Name)
	}
	bundle, err := fhir.NewSearchBundleWithLinks(resources, fhir.SearchBundleParams{
		BaseURL:  h.baseURL + "/CodeSystem",
		FHIRBase: h.baseURL,
		QueryStr: q.Encode(),
		Count:    limit,
		Offset:   offset,
		Total:    total,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, bundle)
}

// ReadCodeSystem handles GET /fhir/CodeSystem/:id
func (h *Handler) ReadCodeSystem(c echo.Context) error {
	cs, err := h.svc.GetCodeSystem(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, fhir.NotFoundOutcome("CodeSystem", c.Param("id")))
	}
	if err != nil {
		return errorResponse(c, err)
	}
	raw, err := marshalResource(cs)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, raw)
}

// ImportCodeSystem handles POST /fhir/CodeSystem
func (h *Handler) ImportCodeSystem(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fhir.InvalidOutcome("failed to read request body"))
	}
	summaries, err := h.svc.Import(c.Request().Context(), body)
	if err != nil {
		return errorResponse(c, err)
	}
	if len(summaries) == 1 {
		c.Response().Header().Set("Location", h.baseURL+"/CodeSystem/"+summaries[0].Name)
	}
	return c.JSON(http.StatusCreated, summaries)
}

// DeleteCodeSystem handles DELETE /fhir/CodeSystem/:id
func (h *Handler) DeleteCodeSystem(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Lookup handles GET|POST /fhir/CodeSystem/$lookup
func (h *Handler) Lookup(c echo.Context) error {
	in, err := fhir.OperationInput(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fhir.InvalidOutcome(err.Error()))
	}
	res, err := h.svc.Lookup(c.Request().Context(), LookupRequest{
		System:  in["system"],
		Version: in["version"],
		Code:    in["code"],
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, res.Parameters())
}

// ValidateCode handles GET|POST /fhir/CodeSystem/$validate-code
func (h *Handler) ValidateCode(c echo.Context) error {
	in, err := fhir.OperationInput(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fhir.InvalidOutcome(err.Error()))
	}
	system := in["system"]
	if system == "" {
		system = in["url"]
	}
	res, err := h.svc.ValidateCode(c.Request().Context(), ValidateCodeRequest{
		System:  system,
		Version: in["version"],
		Code:    in["code"],
		Display: in["display"],
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, res.Parameters())
}

// ValidateValueSetCode handles GET|POST /fhir/ValueSet/$validate-code
func (h *Handler) ValidateValueSetCode(c echo.Context) error {
	in, err := fhir.OperationInput(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fhir.InvalidOutcome(err.Error()))
	}
	res, err := h.svc.ValidateValueSetCode(c.Request().Context(), ValueSetValidateRequest{
		URL:     in["url"],
		System:  in["system"],
		Code:    in["code"],
		Display: in["display"],
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, res.Parameters())
}

// Expand handles GET|POST /fhir/ValueSet/$expand
func (h *Handler) Expand(c echo.Context) error {
	in, err := fhir.OperationInput(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fhir.InvalidOutcome(err.Error()))
	}
	offset, err := fhir.IntInput(in, "offset", 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fhir.InvalidOutcome(err.Error()))
	}
	count, err := fhir.IntInput(in, "count", 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fhir.InvalidOutcome(err.Error()))
	}
	vs, err := h.svc.Expand(c.Request().Context(), ExpandRequest{
		URL:    in["url"],
		Filter: in["filter"],
		Offset: offset,
		Count:  count,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, vs.Resource())
}
