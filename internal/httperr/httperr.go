package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

var messages = map[string]string{
	"unknown_source":    "Unknown source. Use memory, sql or builder.",
	"invalid_day":       "Invalid day. Use a weekday name such as MONDAY or Mon.",
	"invalid_time":      "Invalid time. Use HH:MM between 00:00 and 23:59.",
	"invalid_timestamp": "Invalid timestamp. Use RFC 3339, e.g. 2026-10-17T03:30:00-04:00.",
	"invalid_request":   "Invalid request.",
}

func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code string) {
	Write(c, http.StatusBadRequest, code, Message(code))
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// FromError answers 400 for business errors and 500 for anything else.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, http.StatusBadRequest, be.Code, be.Message())
		return
	}
	Internal(c, "internal_error", "Internal error.")
}
