package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

const sessionIDKey ctxKey = "session_id"

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// NewSession tags ctx with a fresh session id, one per login.
func NewSession(ctx context.Context) context.Context {
	return WithSessionID(ctx, uuid.NewString())
}

func SessionIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(sessionIDKey).(string); ok {
		return v
	}
	return ""
}

// FromCtx returns logger with session_id automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	sid := SessionIDFrom(ctx)
	if sid == "" {
		return L()
	}
	return L().With(zap.String("session_id", sid))
}
