package httpx

import "context"

type ctxKey string

const (
	// CtxKeyIdentityID carries the authenticated identity id.
	CtxKeyIdentityID ctxKey = "identity_id"
	// CtxKeyScopes carries the token's scope list.
	CtxKeyScopes ctxKey = "scopes"
	// CtxKeyClaims carries the full decoded claims.
	CtxKeyClaims ctxKey = "claims"
)

// IdentityIDFromContext returns the authenticated identity id, or "" when
// the request is anonymous.
func IdentityIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyIdentityID).(string); ok {
		return v
	}
	return ""
}

func scopesFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyScopes).([]string); ok {
		return v
	}
	return nil
}
