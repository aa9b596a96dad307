package scope

import (
	"context"

	"email-task-assistant/internal/model"
)

// SetPayloadToContext stores the verified payload for downstream handlers.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// GetPayloadFromContext returns the payload stored by SetPayloadToContext.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(ctxKey{}).(Payload)
	return p, ok
}

// NewScope converts a payload into the use-case scope.
func NewScope(p Payload) model.Scope {
	return model.Scope{UserID: p.UserID, Email: p.Email}
}

// GetScopeFromContext is a shortcut for handlers.
func GetScopeFromContext(ctx context.Context) model.Scope {
	p, _ := GetPayloadFromContext(ctx)
	return NewScope(p)
}
