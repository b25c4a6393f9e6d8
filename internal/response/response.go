package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK sends a 200 response with optional data and message.
func OK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// Created sends a 201 response with data and message.
func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: message})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	c.JSON(http.StatusNotFound, Envelope{Success: false, Error: message})
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	c.JSON(http.StatusConflict, Envelope{Success: false, Error: message})
}

// InternalError sends a 500 response. The underlying failure is logged by
// the caller and never echoed to the client.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Error: "Internal server error"})
}
