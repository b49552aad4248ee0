package openai

import "context"

// OpenAIApiClientMock replays scripted responses and records every request
// it receives, so orchestrator tests can assert on the exact round-trips.
type OpenAIApiClientMock struct {
	Responses []*ChatCompletionResponse
	Err       error
	Requests  []*ChatCompletionRequest
	calls     int
}

// NewOpenAIApiClientMock creates a mock that returns the given responses in
// order, repeating the last one once the script runs out.
func NewOpenAIApiClientMock(responses ...*ChatCompletionResponse) *OpenAIApiClientMock {
	return &OpenAIApiClientMock{Responses: responses}
}

func (m *OpenAIApiClientMock) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Responses) == 0 {
		return &ChatCompletionResponse{Choices: []Choice{{Message: &ChatMessage{Role: RoleAssistant}}}}, nil
	}
	idx := m.calls
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	m.calls++
	return m.Responses[idx], nil
}
