package handlers

import (
	"net/http"
	"strconv"

	"shuttlelink/internal/http/middleware"
	"shuttlelink/internal/realtime"

	"github.com/gin-gonic/gin"
)

var (
	hub       *realtime.Hub
	jwtSecret []byte
)

// Configure wires the shared hub and token secret before the router mounts
// any handler.
func Configure(h *realtime.Hub, secret []byte) {
	hub = h
	jwtSecret = secret
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// ParamID parses a positive numeric path parameter, responding 400 itself
// on failure.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid "+name, err)
		return 0, false
	}
	return id, true
}
