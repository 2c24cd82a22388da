package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/thesisai/backend/config"
	"k8s.io/klog/v2"
)

// Mailer 事务邮件客户端，对接 Resend 风格的 HTTP API
type Mailer struct {
	BaseURL string
	APIKey  string
	From    string
	Client  *http.Client
}

// NewMailer 创建邮件客户端
func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		BaseURL: cfg.Mail.APIURL,
		APIKey:  cfg.Mail.APIKey,
		From:    cfg.Mail.From,
		Client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Send 发送一封邮件
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	klog.V(6).Infof("发送通知邮件: to=%s, subject=%s", to, subject)

	payload, err := json.Marshal(sendRequest{
		From:    m.From,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", m.BaseURL+"/emails", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.APIKey)

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	return nil
}
