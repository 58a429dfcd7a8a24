package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ChicagoDave/roomplanner/pkg/session"
)

// APIError is the JSON body of every failed request.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func badRequest(format string, args ...any) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: fmt.Sprintf(format, args...)}
}

// fromEditor maps an editor command error to an API error.
func fromEditor(err error) *APIError {
	switch {
	case errors.Is(err, session.ErrUnknownAC),
		errors.Is(err, session.ErrVertexIndex),
		errors.Is(err, session.ErrRackIndex):
		return &APIError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, session.ErrExporting),
		errors.Is(err, session.ErrMinVertices):
		return &APIError{Status: http.StatusConflict, Code: "CONFLICT", Message: err.Error()}
	}
	return &APIError{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: err.Error()}
}

// ErrorHandler renders errors as APIError JSON.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var apiErr *APIError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &httpErr):
		apiErr = &APIError{Status: httpErr.Code, Code: "HTTP_ERROR", Message: fmt.Sprint(httpErr.Message)}
	default:
		apiErr = &APIError{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: err.Error()}
	}
	_ = c.JSON(apiErr.Status, apiErr)
}
