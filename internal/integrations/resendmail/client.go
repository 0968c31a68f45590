package resendmail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Client клиент для отправки транзакционных писем через Resend
type Client struct {
	client   *resend.Client
	from     string
	fromName string
	log      Logger
}

// NewClient создает новый экземпляр клиента Resend
func NewClient(apiKey, fromEmail, fromName string, log Logger) *Client {
	return &Client{
		client:   resend.NewClient(apiKey),
		from:     fromEmail,
		fromName: fromName,
		log:      log,
	}
}

// Send sends a single email and returns the provider message id
func (c *Client) Send(ctx context.Context, to, subject, html, text string) (string, error) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.from),
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: to=%s subject=%q: %v", ErrSendFailed, to, subject, err)
	}

	c.log.Info("resendmail: email sent to=%s subject=%q id=%s", to, subject, sent.Id)
	return sent.Id, nil
}
