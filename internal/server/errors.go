package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-tailor/internal/llm"
)

// HTTPStatus returns the appropriate HTTP status code for an error
// from the tailoring engine. Configuration errors stay 500 with their
// distinguished message; backend failures map to 502.
func HTTPStatus(err error) int {
	var cfgErr *llm.ConfigError
	var provErr *llm.ProviderError
	switch {
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError
	case errors.As(err, &provErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
