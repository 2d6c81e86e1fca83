package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/portfolio-terminal/internal/terminal"
	"github.com/stretchr/testify/assert"
)

func TestErrSessionNotFound(t *testing.T) {
	err := &ErrSessionNotFound{ID: "abc"}
	assert.Equal(t, "terminal session not found: abc", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrUnknownSection(t *testing.T) {
	err := &ErrUnknownSection{Name: "hobbies"}
	assert.Equal(t, "unknown portfolio section: hobbies", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "line", Message: "failed 'required' rule"}
	assert.Equal(t, "validation error: line - failed 'required' rule", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrSessionNotFound",
			err:      &ErrSessionNotFound{ID: "x"},
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped ErrUnknownSection",
			err:      fmt.Errorf("lookup: %w", &ErrUnknownSection{Name: "x"}),
			expected: http.StatusNotFound,
		},
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "line"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "closed session",
			err:      terminal.ErrSessionClosed,
			expected: http.StatusGone,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
