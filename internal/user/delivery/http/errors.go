package http

import (
	"errors"
	"net/http"

	"bbip/internal/user"
	pkgErrors "bbip/pkg/errors"
)

var errScopeMissing = pkgErrors.NewHTTPError(http.StatusUnauthorized, "authentication required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "name, email and a password of 4 characters to 72 bytes are required")
	case errors.Is(err, user.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, "email already registered")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "user not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
