package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response. Validation
// failures additionally carry the per-field breakdown.
type ErrorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// OK writes data as-is with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes the created record with HTTP 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty HTTP 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error maps an AppError onto its HTTP status; anything else is a 500.
func Error(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(statusOf(appErr.Code), ErrorBody{
			Message: appErr.Message,
			Errors:  appErr.Fields,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorBody{Message: err.Error()})
}

// BadRequest writes a 400 with per-field validation detail.
func BadRequest(c *gin.Context, message string, fields []FieldError) {
	c.JSON(http.StatusBadRequest, ErrorBody{Message: message, Errors: fields})
}

func statusOf(code int) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
