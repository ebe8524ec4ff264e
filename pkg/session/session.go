// Package session provides cookie-token session storage with
// pluggable backends (in-memory for development, redis for
// multi-instance deployments).
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Session is the per-login state attached to a browser cookie token.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"userId"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store interface {
	// Create saves a new session and returns it with a fresh token.
	Create(ctx context.Context, userID int64, role, name string) (*Session, error)
	// Get returns the session for token, or ErrNotFound when the token
	// is unknown or expired.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete removes the session for token. Unknown tokens are a no-op.
	Delete(ctx context.Context, token string) error
}

func newToken() string {
	return uuid.NewString()
}
