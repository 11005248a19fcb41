package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/ukaji3/desde-go/pkg/desde"
)

// APIError represents a structured API error response
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// FieldError describes one invalid query parameter
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func errValidation(err error) *APIError {
	apiErr := &APIError{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  "VALIDATION_FAILED",
		Message:    "comuna and tipologia query parameters are required",
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		apiErr.Details = fields
	}
	return apiErr
}

func errLoad(err error) *APIError {
	code := "LOAD_FAILED"
	switch {
	case errors.Is(err, desde.ErrFileNotFound):
		code = "DATA_NOT_FOUND"
	case errors.Is(err, desde.ErrInvalidFormat):
		code = "DATA_INVALID"
	case errors.Is(err, desde.ErrMissingColumn), errors.Is(err, desde.ErrSheetNotFound):
		code = "DATA_SCHEMA"
	}
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  code,
		Message:    err.Error(),
	}
}

func errUnsupportedFormat(format string) *APIError {
	return &APIError{
		StatusCode: http.StatusNotFound,
		ErrorCode:  "UNSUPPORTED_FORMAT",
		Message:    "unsupported export format: " + format,
	}
}

func errRender(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  "RENDER_FAILED",
		Message:    err.Error(),
	}
}
