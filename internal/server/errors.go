package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	templatedomain "github.com/smallbiznis/stencil/internal/invoicetemplate/domain"
)

var (
	ErrNotFound           = errors.New("not_found")
	ErrTooManyRequests    = errors.New("too_many_requests")
	ErrServiceUnavailable = errors.New("service_unavailable")
)

type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *apiError) Error() string { return e.Code }

func newValidationError(field, code, message string) error {
	return &apiError{Status: http.StatusBadRequest, Code: code, Field: field, Message: message}
}

func invalidRequestError() error {
	return &apiError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "request body could not be parsed"}
}

// AbortWithError translates domain errors into HTTP responses. Remote
// storage failures come back as 503 so the client treats them as
// transient and retries without losing editor state.
func AbortWithError(c *gin.Context, err error) {
	var api *apiError
	if errors.As(err, &api) {
		c.AbortWithStatusJSON(api.Status, gin.H{"error": api})
		return
	}

	status := http.StatusServiceUnavailable
	code := "storage_unavailable"
	switch {
	case errors.Is(err, templatedomain.ErrInvalidID),
		errors.Is(err, templatedomain.ErrInvalidName),
		errors.Is(err, templatedomain.ErrInvalidTemplateType),
		errors.Is(err, templatedomain.ErrInvalidLayout),
		errors.Is(err, templatedomain.ErrInvalidOrganization):
		status = http.StatusBadRequest
		code = err.Error()
	case errors.Is(err, templatedomain.ErrTemplateNotFound),
		errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
	case errors.Is(err, ErrTooManyRequests):
		status = http.StatusTooManyRequests
		code = "too_many_requests"
	}

	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"code": code}})
}
