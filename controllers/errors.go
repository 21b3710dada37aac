package controllers

import (
	"net/http"
	"strings"

	"starwars/utils"

	"github.com/gin-gonic/gin"
)

// Machine-stable error codes returned next to the human message.
const (
	codeInvalidRequest  = "invalid_request"
	codeValidation      = "validation_error"
	codeConflict        = "conflict"
	codeNotFound        = "not_found"
	codeUnauthorized    = "unauthorized"
	codeTooManyRequests = "too_many_requests"
	codeInternal        = "internal_error"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": message, "code": code})
}

// respondInternal logs the real error and returns a generic body. Driver
// error text never reaches the client.
func respondInternal(c *gin.Context, err error, context string) {
	utils.LogError(err, context)
	respondError(c, http.StatusInternalServerError, codeInternal, "Internal server error")
}

// Postgres reports unique violations as 23505, sqlite as
// "UNIQUE constraint failed".
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "23505")
}
