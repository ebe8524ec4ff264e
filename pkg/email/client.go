// Package email sends operational notifications over SMTP. The clinic
// uses it for low stock alerts to the purchasing mailbox.
package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/shinewhite/clinic_backend/config"
)

type Client struct {
	cfg config.EmailConfig
}

func NewFromConfig(cfg config.EmailConfig) (*Client, error) {
	if cfg.Enabled && cfg.From == "" {
		return nil, fmt.Errorf("email.from required when email enabled")
	}
	return &Client{cfg: cfg}, nil
}

// IsEnabled returns whether mail delivery is enabled.
func (c *Client) IsEnabled() bool {
	return c.cfg.Enabled
}

// Send delivers a plain-text message. When disabled it is a no-op.
func (c *Client) Send(ctx context.Context, to []string, subject, body string) error {
	if !c.cfg.Enabled {
		return nil
	}

	subject = strings.TrimSpace(subject)
	if len(to) == 0 || subject == "" {
		return fmt.Errorf("recipient and subject are required")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", c.cfg.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(c.cfg.SMTP.Host, c.cfg.SMTP.Port, c.cfg.SMTP.Username, c.cfg.SMTP.Password)

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(30 * time.Second):
		return context.DeadlineExceeded
	}
}

// SendLowStockAlert notifies the purchasing mailbox that an item fell
// to or below its reorder threshold. No-op when no recipient is set.
func (c *Client) SendLowStockAlert(ctx context.Context, itemName, quantity string, minQuantity int64) error {
	if !c.cfg.Enabled || c.cfg.LowStockRecipient == "" {
		return nil
	}

	subject := fmt.Sprintf("Low stock: %s", itemName)
	body := fmt.Sprintf(
		"Inventory item %q is low on stock.\n\nRemaining quantity: %s\nReorder threshold: %d\n\nPlease reorder.\n",
		itemName, quantity, minQuantity,
	)

	return c.Send(ctx, []string{c.cfg.LowStockRecipient}, subject, body)
}
