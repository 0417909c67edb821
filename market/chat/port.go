package chat

import "context"

// Generator produces a completion for a fully built prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
