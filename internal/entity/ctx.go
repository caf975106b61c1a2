package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeySession CtxKey = iota
)

func CtxWithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, CtxKeySession, s)
}

// SessionFromCtx returns the session from context or ErrUnauthenticated if there is none.
func SessionFromCtx(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(CtxKeySession).(Session)
	if !ok {
		return s, ErrUnauthenticated
	}

	return s, nil
}

// TokenFromCtx returns the bearer token of the session in context or empty string.
func TokenFromCtx(ctx context.Context) string {
	s, ok := ctx.Value(CtxKeySession).(Session)
	if !ok {
		return ""
	}

	return s.Token
}
