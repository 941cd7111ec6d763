package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsSetCodeAndStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"not found", NotFound("Job", nil), "NOT_FOUND", http.StatusNotFound},
		{"bad request", BadRequest("nope", nil), "BAD_REQUEST", http.StatusBadRequest},
		{"unauthorized", Unauthorized("nope", nil), "UNAUTHORIZED", http.StatusUnauthorized},
		{"forbidden", Forbidden("nope", nil), "FORBIDDEN", http.StatusForbidden},
		{"conflict", Conflict("nope"), "CONFLICT", http.StatusConflict},
		{"internal", Internal("boom", nil), "INTERNAL_ERROR", http.StatusInternalServerError},
		{"too many requests", TooManyRequests("slow down", nil), "TOO_MANY_REQUESTS", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.Status)
		})
	}
}

func TestIsMatchesWrappedErrors(t *testing.T) {
	err := NotFound("Job", nil)
	wrapped := fmt.Errorf("loading job: %w", err)

	assert.True(t, Is(wrapped, "NOT_FOUND"))
	assert.False(t, Is(wrapped, "BAD_REQUEST"))
	assert.False(t, Is(fmt.Errorf("plain"), "NOT_FOUND"))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Internal("boom", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
}
