package chat

import (
	"net/http"

	"github.com/careerbuddy/compass/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CHAT")

// Error codes
var (
	CodeMessageRequired = ErrRegistry.Register("MESSAGE_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Message is required")
	CodeUpstreamFailure = ErrRegistry.Register("UPSTREAM_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Failed to fetch response from AI service")
	CodeEmptyCompletion = ErrRegistry.Register("EMPTY_COMPLETION", errx.TypeInternal, http.StatusInternalServerError, "Invalid response from AI service")
)

// Helper functions
func ErrMessageRequired() *errx.Error {
	return ErrRegistry.New(CodeMessageRequired)
}

func ErrUpstreamFailure() *errx.Error {
	return ErrRegistry.New(CodeUpstreamFailure)
}

func ErrEmptyCompletion() *errx.Error {
	return ErrRegistry.New(CodeEmptyCompletion)
}
