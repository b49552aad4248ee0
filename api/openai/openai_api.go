package openai

import "context"

// OpenAIAPI defines the interface for the chat-completion model endpoint.
type OpenAIAPI interface {
	CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)
}
