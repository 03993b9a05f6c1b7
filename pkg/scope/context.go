package scope

import (
	"context"

	"fieldservice-srv/internal/model"
)

type payloadKey struct{}
type scopeKey struct{}

// SetPayloadToContext stores the verified token payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

// GetPayloadFromContext returns the token payload from the context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadKey{}).(Payload)
	return payload, ok
}

// SetScopeToContext stores the request scope in the context.
func SetScopeToContext(ctx context.Context, scope model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// GetScopeFromContext returns the request scope from the context, or the
// zero scope when the auth middleware has not run.
func GetScopeFromContext(ctx context.Context) model.Scope {
	scope, _ := ctx.Value(scopeKey{}).(model.Scope)
	return scope
}
