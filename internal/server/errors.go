package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/linkedin-post-generator/internal/llm"
	"github.com/jonathan/linkedin-post-generator/internal/pipeline"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var invalid *pipeline.InvalidInputError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	var unavailable *llm.ProviderUnavailableError
	if errors.As(err, &unavailable) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
