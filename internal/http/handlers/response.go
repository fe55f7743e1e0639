// Package handlers holds the gin handlers of the medication API.
//
// Handlers never write to the response directly. Success bodies go out
// through ok, created or noContent as plain JSON; failures go through fail
// (or failErr in errors.go) as an ErrorResponse with a stable code and the
// request's correlation id. Anything at or above 500 is logged with the
// request-scoped logger before the envelope is written, so clients only ever
// see the generic message while the log keeps the detail.
//
//	HTTP/1.1 409 Conflict
//	{"request_id":"6f1c…","code":"duplicate_name","message":"medication name already exists"}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-medtrack-backend/internal/http/middleware"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	// Same value as the X-Request-ID response header.
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Machine-readable; one of the ErrCode constants.
	Code string `json:"code" example:"duplicate_name"`
	// Safe to show to end users.
	Message string `json:"message" example:"medication name already exists"`
}

func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("route", c.FullPath()).
			Msg(msg)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: middleware.RequestIDFrom(c),
		Code:      code,
		Message:   msg,
	})
}

// Fail writes an error envelope and aborts the chain. It is exported for
// the router's NoRoute and NoMethod fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// created answers 201 with body and points Location at the stored resource.
func created(c *gin.Context, location string, body any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, body)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
