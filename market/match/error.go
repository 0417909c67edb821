package match

import (
	"net/http"

	"github.com/careerbuddy/compass/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("MATCH")

// Error codes
var (
	CodeSkillsRequired = ErrRegistry.Register("SKILLS_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "At least one skill is required")
)

// Helper functions
func ErrSkillsRequired() *errx.Error {
	return ErrRegistry.New(CodeSkillsRequired)
}
