// Package whatsapp talks to an HTTP WhatsApp gateway. When disabled it
// degrades to a no-op client so that development and tests run without
// a gateway.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nyaruka/phonenumbers"

	"github.com/shinewhite/clinic_backend/config"
)

// Client provides message delivery via a WhatsApp Business gateway.
type Client struct {
	httpClient    *http.Client
	endpoint      string
	token         string
	defaultRegion string
	enabled       bool
}

// NewFromConfig creates a new WhatsApp client from the application
// configuration. If WhatsApp is disabled, returns a client that no-ops
// on all operations.
func NewFromConfig(cfg config.WhatsAppConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false, defaultRegion: cfg.DefaultRegion}, nil
	}

	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("gateway endpoint required when whatsapp enabled")
	}

	return &Client{
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		endpoint:      cfg.Endpoint,
		token:         cfg.Token,
		defaultRegion: cfg.DefaultRegion,
		enabled:       true,
	}, nil
}

// Send delivers a text message to the given phone number. The number
// is normalized to E.164 when it parses; unparseable numbers are passed
// through as entered. If WhatsApp is disabled, this is a no-op and
// returns nil.
func (c *Client) Send(ctx context.Context, phoneNumber, message string) error {
	if !c.enabled {
		return nil
	}

	if phoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	if message == "" {
		return fmt.Errorf("message is required")
	}

	payload, err := json.Marshal(map[string]string{
		"to":   c.Normalize(phoneNumber),
		"body": message,
	})
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("gateway send failed: status %d", resp.StatusCode)
	}

	return nil
}

// Normalize returns the E.164 form of number when it parses in the
// configured default region. Numbers that do not parse are returned
// unchanged; patients are stored with whatever contact string the
// front desk entered.
func (c *Client) Normalize(number string) string {
	region := c.defaultRegion
	if region == "" {
		region = "EG"
	}

	parsed, err := phonenumbers.Parse(number, region)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return number
	}

	return phonenumbers.Format(parsed, phonenumbers.E164)
}

// IsEnabled returns whether message delivery is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}
