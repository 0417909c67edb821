package chatsrv

import (
	"context"
	"strings"
	"time"

	"github.com/careerbuddy/compass/market/chat"
	"github.com/careerbuddy/compass/pkg/logx"
)

// upstreamTimeout bounds the generative call so a stalled model endpoint
// cannot hold the request handler open.
const upstreamTimeout = 30 * time.Second

// ChatService proxies user messages to the generative model behind the
// fixed advisor prompt.
type ChatService struct {
	generator chat.Generator
}

// NewChatService creates a new chat service
func NewChatService(generator chat.Generator) *ChatService {
	return &ChatService{
		generator: generator,
	}
}

// Respond validates the message, wraps it in the advisor template and
// returns the model's reply. Upstream failures surface as a 500 with a
// generic message; the cause stays in the logs.
func (s *ChatService) Respond(ctx context.Context, req chat.ChatRequest) (*chat.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, chat.ErrMessageRequired()
	}

	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	reply, err := s.generator.Generate(ctx, chat.BuildPrompt(req.Message))
	if err != nil {
		logx.Errorf("Chat upstream call failed: %v", err)
		return nil, chat.ErrUpstreamFailure().WithCause(err)
	}

	if strings.TrimSpace(reply) == "" {
		logx.Error("Chat upstream returned an empty completion")
		return nil, chat.ErrEmptyCompletion()
	}

	return &chat.ChatResponse{Response: reply}, nil
}
