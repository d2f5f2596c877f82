package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBrevoEndpoint = "https://api.brevo.com/v3/smtp/email"

type BrevoClient struct {
	apiKey      string
	senderEmail string
	senderName  string
	recipient   string
	sandbox     bool
	endpoint    string
	httpClient  *http.Client
}

func NewBrevoClient(apiKey, senderEmail, senderName, recipient string, sandbox bool) *BrevoClient {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(senderEmail) == "" {
		return nil
	}
	if strings.TrimSpace(senderName) == "" {
		senderName = senderEmail
	}
	if strings.TrimSpace(recipient) == "" {
		recipient = senderEmail
	}
	return &BrevoClient{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		recipient:   recipient,
		sandbox:     sandbox,
		endpoint:    defaultBrevoEndpoint,
		httpClient:  &http.Client{Timeout: 8 * time.Second},
	}
}

// SendContactNotification forwards a contact-form submission to the site
// operator's inbox, with reply-to set to the visitor's address.
func (c *BrevoClient) SendContactNotification(ctx context.Context, name, email, message string) (string, error) {
	if c == nil {
		return "", errors.New("brevo client is nil")
	}
	subject := fmt.Sprintf("Portfolio Contact Form: Message from %s", name)
	htmlBody := buildContactHTML(name, email, message)

	payload := brevoSendRequest{
		Sender: brevoSender{
			Name:  c.senderName,
			Email: c.senderEmail,
		},
		To: []brevoRecipient{
			{Email: c.recipient},
		},
		ReplyTo:     &brevoRecipient{Email: email, Name: name},
		Subject:     subject,
		HtmlContent: htmlBody,
	}
	if c.sandbox {
		payload.Headers = map[string]string{
			"X-Sib-Sandbox": "drop",
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("brevo marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("brevo create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("brevo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("brevo send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out brevoSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("brevo decode response: %w", err)
	}
	return out.MessageID, nil
}

func buildContactHTML(name, email, message string) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #333; border-bottom: 2px solid #007acc; padding-bottom: 10px;">New Contact Form Submission</h2>`)
	b.WriteString(`<div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	fmt.Fprintf(&b, `<p style="margin: 10px 0;"><strong>Name:</strong> %s</p>`, html.EscapeString(name))
	fmt.Fprintf(&b, `<p style="margin: 10px 0;"><strong>Email:</strong> %s</p>`, html.EscapeString(email))
	fmt.Fprintf(&b, `<p style="margin: 10px 0;"><strong>Submitted:</strong> %s</p>`, time.Now().Format("Jan 2, 2006 15:04 MST"))
	b.WriteString(`</div>`)
	b.WriteString(`<div style="margin: 20px 0;"><p style="margin-bottom: 10px;"><strong>Message:</strong></p>`)
	fmt.Fprintf(&b, `<div style="padding: 15px; background-color: #f5f5f5; border-left: 4px solid #007acc; white-space: pre-wrap;">%s</div>`, html.EscapeString(message))
	b.WriteString(`</div>`)
	b.WriteString(`<hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">`)
	b.WriteString(`<p style="color: #666; font-size: 12px; text-align: center;">This message was sent from your portfolio contact form.</p>`)
	b.WriteString(`</div>`)
	return b.String()
}

type brevoSendRequest struct {
	Sender      brevoSender       `json:"sender"`
	To          []brevoRecipient  `json:"to"`
	ReplyTo     *brevoRecipient   `json:"replyTo,omitempty"`
	Subject     string            `json:"subject"`
	HtmlContent string            `json:"htmlContent"`
	Headers     map[string]string `json:"headers,omitempty"`
}

type brevoSender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type brevoRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoSendResponse struct {
	MessageID string `json:"messageId"`
}
