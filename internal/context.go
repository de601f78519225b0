package internal

import "context"

type ctxKey string

const userIDKey ctxKey = "userID"

// ContextWithUserID stores the authenticated user's id after the access
// token has been verified.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user's id, or "" on an
// unauthenticated request.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}
