package server

import (
	"errors"
	"net/http"

	"github.com/tmorimoto/writedesk/internal/collect"
	"github.com/tmorimoto/writedesk/internal/llm"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error.
// Extraction failures are the client's document, completion failures are
// the upstream provider; everything else is on us.
func HTTPStatus(err error) int {
	var extErr *collect.ExtractionError
	if errors.As(err, &extErr) {
		return http.StatusUnprocessableEntity
	}
	var compErr *llm.CompletionError
	if errors.As(err, &compErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
