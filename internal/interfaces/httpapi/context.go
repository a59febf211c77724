package httpapi

import (
	"context"

	"github.com/riskibarqy/transfer-auction/internal/domain/identity"
)

type contextKey string

const identityContextKey contextKey = "auth_identity"

func withIdentity(ctx context.Context, id identity.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

func identityFromContext(ctx context.Context) (identity.Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(identity.Identity)
	return id, ok
}
