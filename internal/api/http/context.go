package http

import (
	"context"

	"carservice-backend/internal/security"
)

type contextKey string

const (
	contextKeyClaims    contextKey = "claims"
	contextKeyRequestID contextKey = "request_id"
)

// ClaimsFrom returns the authenticated staff claims, or nil on an
// unauthenticated request.
func ClaimsFrom(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(contextKeyClaims).(*security.UserClaims)
	return claims
}

// ActorFrom returns the audit actor id for the request. Falls back to
// "system" so audit entries are never attributed to an empty actor.
func ActorFrom(ctx context.Context) string {
	if claims := ClaimsFrom(ctx); claims != nil && claims.Username != "" {
		return claims.Username
	}
	return "system"
}

// RequestIDFrom returns the request id set by the middleware.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}
