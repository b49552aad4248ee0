package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const CHAT_COMPLETIONS_PATH = "/chat/completions"

// OpenAIApiClient talks to an OpenAI-compatible chat completions endpoint.
type OpenAIApiClient struct {
	client *resty.Client
}

// NewOpenAIApiClient creates a client with a request timeout and a single
// retry. A failed call after the retry is the caller's cue to fall back.
func NewOpenAIApiClient(baseURL, apiKey string, timeout time.Duration, retryCount int) *OpenAIApiClient {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+apiKey)

	return &OpenAIApiClient{client: client}
}

// CreateChatCompletion sends the message history (and optional tool
// declarations) and decodes the model's reply.
func (c *OpenAIApiClient) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(CHAT_COMPLETIONS_PATH)
	if err != nil {
		return nil, errors.Wrap(err, "chat completion request failed")
	}

	if resp.StatusCode() != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Error != nil {
			log.Error().Int("status", resp.StatusCode()).Str("type", errResp.Error.Type).
				Msg("OpenAI API returned an error")
			return nil, errors.Errorf("OpenAI API error [%d]: %s", resp.StatusCode(), errResp.Error.Message)
		}
		return nil, errors.Errorf("OpenAI API error [%d]: %s", resp.StatusCode(), resp.Status())
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal chat completion response")
	}
	if len(result.Choices) == 0 {
		return nil, errors.New("no response choices from model")
	}
	return &result, nil
}
