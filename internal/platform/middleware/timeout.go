package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ehr/fhircode/internal/platform/fhir"
	"github.com/ehr/fhircode/pkg/fhircode"
)

// RequestTimeout puts a deadline on the request context. A handler that
// fails with context.DeadlineExceeded before writing a response gets a 504
// OperationOutcome.
func RequestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if errors.Is(err, context.DeadlineExceeded) && !c.Response().Committed {
				return c.JSON(http.StatusGatewayTimeout, fhir.NewOperationOutcome(
					fhircode.IssueSeverityError, fhircode.IssueTypeTimeout,
					"request processing exceeded the allowed time limit"))
			}
			return err
		}
	}
}
