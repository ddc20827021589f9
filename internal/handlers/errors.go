package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldViolation reports one violated constraint of one input field
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// violations unpacks a binding error into the full list of violated field
// constraints, not just the first one.
func violations(err error) []FieldViolation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldViolation{
			Field: strings.ToLower(fe.Field()),
			Rule:  fe.Tag(),
		})
	}
	return out
}

// respondValidation writes a 400 envelope listing every violated constraint
func respondValidation(c *gin.Context, err error) {
	details := violations(err)
	if details == nil {
		// Malformed JSON rather than constraint violations.
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "validation failed",
		"details": details,
	})
}

// respondConflict writes a 409 envelope with a generic message; the caller
// learns the precondition failed but no row-level detail.
func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"error": message})
}

// respondNotFound writes a 404 envelope
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// respondInternal logs the underlying cause and writes a generic 500
// envelope. Storage-layer error text is never echoed to the caller.
func respondInternal(c *gin.Context, logger *slog.Logger, operation string, err error) {
	logger.Error("request failed",
		"operation", operation,
		"path", c.FullPath(),
		"error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
