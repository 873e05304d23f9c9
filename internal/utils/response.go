package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResponseData represents the structure of a standard API response.
type ResponseData struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a standard success response.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, ResponseData{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Created sends a standard resource created response.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, ResponseData{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Error sends a standard error response.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ResponseData{
		Success: false,
		Message: message,
	})
}

// ErrorDetail sends an error response carrying detail about the offending
// input, e.g. the first violated validation rule.
func ErrorDetail(c *gin.Context, statusCode int, message, detail string) {
	c.JSON(statusCode, ResponseData{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 Conflict error response.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalServerError sends a 500 response with an opaque message. The
// underlying fault is logged server-side, never echoed to the client.
func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
