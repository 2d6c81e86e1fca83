package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/portfolio-terminal/internal/terminal"
)

// ErrSessionNotFound indicates an unknown or expired terminal session
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("terminal session not found: %s", e.ID)
}

// ErrUnknownSection indicates a portfolio section name that does not exist
type ErrUnknownSection struct {
	Name string
}

func (e *ErrUnknownSection) Error() string {
	return fmt.Sprintf("unknown portfolio section: %s", e.Name)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound   *ErrSessionNotFound
		section    *ErrUnknownSection
		validation *ErrValidation
	)
	switch {
	case errors.As(err, &notFound), errors.As(err, &section):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, terminal.ErrSessionClosed):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}
