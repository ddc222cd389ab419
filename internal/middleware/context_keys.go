package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the key type for values this package stores in contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey      = contextKey("logger")
	callerEmailCtxKey = contextKey("callerEmail")
)

// GetCallerEmailFromContext retrieves the verified caller email from the Gin context.
// It returns the email and a boolean indicating if it was found.
func GetCallerEmailFromContext(c *gin.Context) (string, bool) {
	return GetCallerEmailFromCtx(c.Request.Context())
}

// GetCallerEmailFromCtx retrieves the verified caller email from a standard context.
func GetCallerEmailFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(callerEmailCtxKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// WithCallerEmail returns a context carrying the verified caller email.
func WithCallerEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, callerEmailCtxKey, email)
}
