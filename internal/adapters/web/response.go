package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"sakatsuku04/internal/domain"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// statusFor maps a domain error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidEncoding),
		errors.Is(err, domain.ErrUnsupportedLocale),
		errors.Is(err, domain.ErrUnknownMode),
		errors.Is(err, domain.ErrUnknownTab),
		errors.Is(err, domain.ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrStaleLoad),
		errors.Is(err, domain.ErrNoPendingRequest):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBridgeRejected):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a localized JSON error. A zero status is derived from
// the error.
func (h *Handler) fail(c echo.Context, status int, err error) error {
	if status == 0 {
		status = statusFor(err)
	}
	code := domain.Code(err)
	key := "error.unknown"
	if code != "" {
		key = "error." + code
	} else {
		code = "unknown"
	}
	if status >= http.StatusInternalServerError {
		log.Printf("❌ web: %s %s: %v", c.Request().Method, c.Path(), err)
	}
	locale := string(h.resolver.Language())
	msg := h.translator.T(locale, key, nil)
	if msg == "" {
		msg = h.translator.T(locale, "error.unknown", nil)
	}
	return c.JSON(status, errorResponse{
		Code:    code,
		Message: msg,
		Detail:  err.Error(),
	})
}
