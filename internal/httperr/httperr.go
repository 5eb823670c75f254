package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Respond maps a service error to its HTTP status. Anything that is not one of
// the typed errors of this package becomes a generic 500.
func Respond(c *gin.Context, err error) {
	var (
		validation *ValidationError
		notFound   *NotFoundError
		denied     *AccessDeniedError
	)

	switch {
	case errors.As(err, &validation):
		BadRequest(c, validation.Code(), validation.Error())
	case errors.As(err, &notFound):
		NotFound(c, notFound.Code(), notFound.Error())
	case errors.As(err, &denied):
		Forbidden(c, denied.Code(), denied.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		Internal(c, "internal_error", "internal server error")
	}
}
