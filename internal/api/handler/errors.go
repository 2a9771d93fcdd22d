package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/financeassistant/authform/internal/core/domain"
)

// messageResponse is the failure envelope the form client reads: {"message": "..."}.
type messageResponse struct {
	Message string `json:"message"`
}

// Resolve maps known domain errors to an HTTP status and client-facing message.
// ok is false for errors that are not part of the public contract.
func Resolve(err error) (code int, msg string, ok bool) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		if m, isStr := he.Message.(string); isStr {
			return he.Code, m, true
		}
		return he.Code, http.StatusText(he.Code), true
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": "), true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", true
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User already exists", true
	}
	return http.StatusInternalServerError, "Internal server error", false
}

func writeError(c echo.Context, err error) error {
	code, msg, ok := Resolve(err)
	if !ok {
		// Let the central error handler log it.
		return err
	}
	return c.JSON(code, messageResponse{Message: msg})
}
