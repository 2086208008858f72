package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bft-labs/wireletter/internal/ports"
	"github.com/bft-labs/wireletter/pkg/log"
)

// DefaultAPIURL is the Resend REST endpoint.
const DefaultAPIURL = "https://api.resend.com"

const emailsEndpoint = "/emails"

// ResendSender implements ports.Mailer against the Resend HTTP API.
type ResendSender struct {
	client  ports.HTTPClient
	baseURL string
	apiKey  string
	logger  log.Logger
}

// NewResendSender creates a sender. An empty baseURL selects DefaultAPIURL.
func NewResendSender(client ports.HTTPClient, baseURL, apiKey string, logger log.Logger) *ResendSender {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &ResendSender{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  logger,
	}
}

type resendAttachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	ContentType string `json:"content_type,omitempty"`
}

type resendEmail struct {
	From        string             `json:"from"`
	To          []string           `json:"to"`
	Cc          []string           `json:"cc,omitempty"`
	ReplyTo     string             `json:"reply_to,omitempty"`
	Subject     string             `json:"subject"`
	HTML        string             `json:"html"`
	Attachments []resendAttachment `json:"attachments,omitempty"`
}

type resendResponse struct {
	ID string `json:"id"`
}

// Send posts the message once. Non-2xx responses are returned as errors
// carrying the provider's status and body.
func (s *ResendSender) Send(ctx context.Context, msg ports.Message) error {
	payload := resendEmail{
		From:    msg.From,
		To:      msg.To,
		Cc:      msg.Cc,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}
	for _, a := range msg.Attachments {
		payload.Attachments = append(payload.Attachments, resendAttachment{
			Filename:    a.Filename,
			Content:     base64.StdEncoding.EncodeToString(a.Content),
			ContentType: a.ContentType,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+emailsEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("mail provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var out resendResponse
	if err := json.Unmarshal(respBody, &out); err == nil && out.ID != "" {
		s.logger.Debug("email accepted", log.String("id", out.ID), log.Strings("to", msg.To))
	}
	return nil
}
