package chat

// ChatRequest - caller's message to the assistant
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse - assistant reply
type ChatResponse struct {
	Response string `json:"response"`
}
