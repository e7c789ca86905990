package context

import (
	"context"

	"passport/internal/domain/entity"
)

// KeyIdentity is the key for storing the authenticated account's identity in context.
const KeyIdentity ContextKey = "identity"

// WithIdentity returns a new context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// CurrentUser extracts the authenticated identity from the context.
// The second return is false when the request did not pass the access guard.
func CurrentUser(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(*entity.Identity)

	return identity, ok
}
