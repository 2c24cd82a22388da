package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thesisai/backend/config"
)

func TestNewClient(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			APIURL:      "https://api.example.com",
			APIKey:      "test-key",
			Model:       "gpt-4o",
			MaxTokens:   2000,
			Temperature: 0.3,
		},
	}
	client := NewClient(cfg)

	if client.BaseURL != "https://api.example.com" {
		t.Errorf("expected BaseURL https://api.example.com, got %s", client.BaseURL)
	}
	if client.APIKey != "test-key" {
		t.Errorf("expected APIKey test-key, got %s", client.APIKey)
	}
	if client.Model != "gpt-4o" {
		t.Errorf("expected Model gpt-4o, got %s", client.Model)
	}
	if client.MaxTokens != 2000 {
		t.Errorf("expected MaxTokens 2000, got %d", client.MaxTokens)
	}
	if client.Temperature != 0.3 {
		t.Errorf("expected Temperature 0.3, got %v", client.Temperature)
	}
	if client.Client == nil {
		t.Error("expected HTTP client to be initialized")
	}
}

func TestClientChat(t *testing.T) {
	// 创建模拟服务器
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST method, got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected path /chat/completions, got %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("expected bearer auth header, got %q", auth)
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request error: %v", err)
		}
		if req.Temperature != 0.3 {
			t.Errorf("expected fixed temperature 0.3, got %v", req.Temperature)
		}
		if req.MaxTokens != 1000 {
			t.Errorf("expected fixed max_tokens 1000, got %d", req.MaxTokens)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "test-id",
			"object": "chat.completion",
			"model": "gpt-4o",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "This is a test response"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30}
		}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		LLM: config.LLMConfig{
			APIURL:      server.URL,
			APIKey:      "test-key",
			Model:       "gpt-4o",
			MaxTokens:   1000,
			Temperature: 0.3,
		},
	}
	client := NewClient(cfg)

	content, err := client.Chat(context.Background(), []ChatMessage{
		{Role: "user", Content: "hello"},
	})
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if content != "This is a test response" {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestClientChatAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": {"message": "quota exceeded", "type": "insufficient_quota"}}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		LLM: config.LLMConfig{APIURL: server.URL, Model: "gpt-4o"},
	}
	client := NewClient(cfg)

	_, err := client.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hello"}})
	if err == nil {
		t.Fatal("expected API error")
	}
}
