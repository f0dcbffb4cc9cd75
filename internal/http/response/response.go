// Package response shapes API replies. Successful calls return the record
// (or list) directly; failures return {"error": "...", "details": {...}} with
// a matching HTTP status code.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the failure payload.
type ErrorBody struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// OK writes 200 with the payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes 201 with the created record.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Deleted writes the 200 {"success": true} body used by delete endpoints.
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// BadRequest writes 400.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// BadRequestWithDetails writes 400 with field-level issues.
func BadRequestWithDetails(c *gin.Context, message string, details interface{}) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message, Details: details})
}

// Unauthorized writes 401.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Error: message})
}

// TooManyRequests writes 429.
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, ErrorBody{Error: message})
}

// NotFound writes 404.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: message})
}

// Internal writes 500 with a generic message; the cause stays in the logs.
func Internal(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: message})
}
