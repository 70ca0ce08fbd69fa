package httpx

import (
	"context"

	"github.com/aussiebroadwan/securefile/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeySessionID ctxKey = "session_id"
	CtxKeyUsername  ctxKey = "username"
	CtxKeyClaims    ctxKey = "claims"
)

func contextWithSession(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeySessionID, c.SID)
	ctx = context.WithValue(ctx, CtxKeyUsername, c.Username)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// SessionID returns the authenticated session id or "".
func SessionID(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeySessionID).(string)
	return v
}

// Username returns the authenticated username or "".
func Username(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeyUsername).(string)
	return v
}
