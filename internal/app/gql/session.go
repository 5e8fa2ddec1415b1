package gql

import (
	"context"

	"partner-ads/internal/auth"
)

// Session is the per-request state shared between the transport and the
// resolvers. Token is filled by a successful login.
type Session struct {
	Claims *auth.Claims
	Token  string
}

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the request session, or nil outside a request.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}
