package http

import (
	"context"

	"hoteldesk-backoffice/internal/security"
)

type contextKey string

const (
	actorContextKey     contextKey = "actor"
	requestIDContextKey contextKey = "request_id"
)

func withActor(ctx context.Context, claims *security.ActorClaims) context.Context {
	return context.WithValue(ctx, actorContextKey, claims)
}

// actorFrom returns the authenticated actor, or nil when the request was not
// authenticated (only possible on routes outside the auth middleware).
func actorFrom(ctx context.Context) *security.ActorClaims {
	claims, _ := ctx.Value(actorContextKey).(*security.ActorClaims)
	return claims
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
