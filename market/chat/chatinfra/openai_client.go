package chatinfra

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const completionModel = "gpt-4o-mini"

// OpenAIGenerator implements chat.Generator over the OpenAI chat API
type OpenAIGenerator struct {
	client *openai.Client
}

// NewOpenAIGenerator creates a new generator
func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAIGenerator{
		client: &client,
	}
}

// Generate sends the prompt as a single user message and returns the
// completion text.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       completionModel,
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(500),
	})
	if err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}

	return completion.Choices[0].Message.Content, nil
}
