package http

import (
	"errors"
	"net/http"

	"bbip/internal/plan"
	pkgErrors "bbip/pkg/errors"
)

var errScopeMissing = pkgErrors.NewHTTPError(http.StatusUnauthorized, "authentication required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, plan.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid plan data")
	case errors.Is(err, plan.ErrEmptyBulk):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "plans must not be empty")
	case errors.Is(err, plan.ErrBulkTooLarge):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "too many plans in one request")
	case errors.Is(err, plan.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	case errors.Is(err, plan.ErrTextTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is too long")
	case errors.Is(err, plan.ErrPlanNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "plan not found")
	case errors.Is(err, plan.ErrAIUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "AI parsing is not configured")
	case errors.Is(err, plan.ErrAIFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "AI parsing failed")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
