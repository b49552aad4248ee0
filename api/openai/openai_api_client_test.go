package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCreateChatCompletion(t *testing.T) {
	var received ChatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST; got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected path /chat/completions; got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q; want Bearer test-key", got)
		}

		b, _ := io.ReadAll(r.Body)
		json.Unmarshal(b, &received)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ChatCompletionResponse{
			ID: "cmpl-1",
			Choices: []Choice{
				{Message: &ChatMessage{Role: RoleAssistant, Content: "hello"}},
			},
		})
	}))
	defer srv.Close()

	client := NewOpenAIApiClient(srv.URL, "test-key", 5*time.Second, 0)

	got, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Model: "gpt-4o",
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: "sys"},
			{Role: RoleUser, Content: "hi"},
		},
		Tools:      []Tool{{Type: "function", Function: ToolFunction{Name: "get_venues"}}},
		ToolChoice: "auto",
	})
	if err != nil {
		t.Fatal(err)
	}

	if got.Choices[0].Message.Content != "hello" {
		t.Errorf("content = %q; want hello", got.Choices[0].Message.Content)
	}
	if received.Model != "gpt-4o" {
		t.Errorf("request model = %q; want gpt-4o", received.Model)
	}
	if len(received.Messages) != 2 {
		t.Errorf("request messages = %d; want 2", len(received.Messages))
	}
	if len(received.Tools) != 1 || received.Tools[0].Function.Name != "get_venues" {
		t.Errorf("request tools = %+v; want get_venues declaration", received.Tools)
	}
}

func TestCreateChatCompletion_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit_error"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIApiClient(srv.URL, "test-key", 5*time.Second, 0)

	_, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt-4o"})
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func TestCreateChatCompletion_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cmpl-2", "choices": []}`))
	}))
	defer srv.Close()

	client := NewOpenAIApiClient(srv.URL, "test-key", 5*time.Second, 0)

	_, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt-4o"})
	if err == nil {
		t.Fatal("expected an error for empty choices, got nil")
	}
}
