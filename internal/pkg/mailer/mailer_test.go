package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thesisai/backend/config"
)

func TestMailerSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" {
			t.Errorf("expected path /emails, got %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer mail-key" {
			t.Errorf("expected bearer auth, got %q", auth)
		}

		var req sendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request error: %v", err)
		}
		if req.From != "ThesisAI <notifications@thesisai.app>" {
			t.Errorf("unexpected from: %q", req.From)
		}
		if len(req.To) != 1 || req.To[0] != "student@example.com" {
			t.Errorf("unexpected to: %v", req.To)
		}
		if req.Subject != "Comment integrated" {
			t.Errorf("unexpected subject: %q", req.Subject)
		}

		w.Write([]byte(`{"id": "mail-1"}`))
	}))
	defer server.Close()

	m := NewMailer(&config.Config{
		Mail: config.MailConfig{
			APIURL: server.URL,
			APIKey: "mail-key",
			From:   "ThesisAI <notifications@thesisai.app>",
		},
	})

	if err := m.Send(context.Background(), "student@example.com", "Comment integrated", "body"); err != nil {
		t.Fatalf("Send error: %v", err)
	}
}

func TestMailerSendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "invalid from address"}`))
	}))
	defer server.Close()

	m := NewMailer(&config.Config{
		Mail: config.MailConfig{APIURL: server.URL},
	})

	if err := m.Send(context.Background(), "student@example.com", "subject", "body"); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}
