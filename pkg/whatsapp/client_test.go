package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shinewhite/clinic_backend/config"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	cfg := config.WhatsAppConfig{
		Enabled: false,
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if client.IsEnabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestNewFromConfig_EnabledWithoutEndpoint(t *testing.T) {
	cfg := config.WhatsAppConfig{
		Enabled:  true,
		Endpoint: "",
	}

	_, err := NewFromConfig(cfg)
	if err == nil {
		t.Error("Expected error when endpoint is missing")
	}
}

func TestSend_DisabledClient(t *testing.T) {
	client := &Client{enabled: false}

	err := client.Send(context.Background(), "+201001234567", "hello")
	if err != nil {
		t.Errorf("Expected no error for disabled client, got: %v", err)
	}
}

func TestSend_Validation(t *testing.T) {
	client := &Client{enabled: true}

	if err := client.Send(context.Background(), "", "hello"); err == nil {
		t.Error("Expected error for empty phone number")
	}
	if err := client.Send(context.Background(), "+201001234567", ""); err == nil {
		t.Error("Expected error for empty message")
	}
}

func TestSend_PostsToGateway(t *testing.T) {
	var got map[string]string
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewFromConfig(config.WhatsAppConfig{
		Enabled:       true,
		Endpoint:      srv.URL,
		Token:         "secret-token",
		DefaultRegion: "EG",
	})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if err := client.Send(context.Background(), "01001234567", "appointment reminder"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if auth != "Bearer secret-token" {
		t.Errorf("Authorization = %q", auth)
	}
	if got["to"] != "+201001234567" {
		t.Errorf("to = %q, want normalized E.164", got["to"])
	}
	if got["body"] != "appointment reminder" {
		t.Errorf("body = %q", got["body"])
	}
}

func TestSend_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewFromConfig(config.WhatsAppConfig{Enabled: true, Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if err := client.Send(context.Background(), "+201001234567", "hi"); err == nil {
		t.Error("Expected error for gateway failure")
	}
}

func TestNormalize(t *testing.T) {
	client := &Client{defaultRegion: "EG"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local mobile", "01001234567", "+201001234567"},
		{"already e164", "+201001234567", "+201001234567"},
		{"unparseable passes through", "000", "000"},
		{"free text passes through", "front desk", "front desk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := client.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
