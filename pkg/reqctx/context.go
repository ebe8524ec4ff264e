// Package reqctx provides centralized request context management for
// request metadata and the authenticated session.
//
// All context keys are private unexported types to prevent collisions.
// Access is provided through type-safe getter and setter functions.
package reqctx

import (
	"context"
	"time"

	"github.com/shinewhite/clinic_backend/pkg/session"
)

// ctxKey is a private type for context keys to prevent collisions.
type ctxKey int

const (
	keyRequestMeta ctxKey = iota
	keySession
)

// RequestMeta holds per-request metadata set by HTTP middleware.
type RequestMeta struct {
	// RequestID is a unique identifier for this request.
	// Format: UUID v4 string.
	RequestID string

	// ClientIP is the client's IP address.
	ClientIP string

	// UserAgent is the client's User-Agent header value.
	UserAgent string

	// RequestedAt is when the request was received.
	RequestedAt time.Time
}

// WithRequestMeta stores RequestMeta in the context.
func WithRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, keyRequestMeta, meta)
}

// RequestMetaFromContext retrieves RequestMeta from the context.
// Returns nil, false if not set.
func RequestMetaFromContext(ctx context.Context) (*RequestMeta, bool) {
	v := ctx.Value(keyRequestMeta)
	if v == nil {
		return nil, false
	}
	meta, ok := v.(*RequestMeta)
	return meta, ok
}

// RequestIDFromContext is a convenience function to get just the request ID.
// Returns empty string if RequestMeta is not set.
func RequestIDFromContext(ctx context.Context) string {
	meta, ok := RequestMetaFromContext(ctx)
	if !ok || meta == nil {
		return ""
	}
	return meta.RequestID
}

// WithSession stores the authenticated session in the context.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, keySession, s)
}

// SessionFromContext retrieves the authenticated session from the
// context. Returns nil if the request is not authenticated.
func SessionFromContext(ctx context.Context) *session.Session {
	v := ctx.Value(keySession)
	if v == nil {
		return nil
	}
	s, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return s
}

// UserIDFromContext extracts the authenticated user's id.
// Returns 0 and false if not authenticated.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	s := SessionFromContext(ctx)
	if s == nil {
		return 0, false
	}
	return s.UserID, true
}
