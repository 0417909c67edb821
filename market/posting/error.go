package posting

import (
	"net/http"

	"github.com/careerbuddy/compass/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("POSTING")

// Error codes
var (
	CodeInvalidQuery    = ErrRegistry.Register("INVALID_QUERY", errx.TypeValidation, http.StatusBadRequest, "Invalid search parameters")
	CodeSearchFailed    = ErrRegistry.Register("SEARCH_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Job search failed")
	CodeProviderFailure = ErrRegistry.Register("PROVIDER_FAILURE", errx.TypeExternal, http.StatusBadGateway, "Job provider unavailable")
)

// Helper functions
func ErrInvalidQuery() *errx.Error {
	return ErrRegistry.New(CodeInvalidQuery)
}

func ErrSearchFailed() *errx.Error {
	return ErrRegistry.New(CodeSearchFailed)
}

func ErrProviderFailure() *errx.Error {
	return ErrRegistry.New(CodeProviderFailure)
}
