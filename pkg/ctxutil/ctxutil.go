package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	userRoleKey  ctxKey = "user_role"
	requestIDKey ctxKey = "request_id"
	claimTokKey  ctxKey = "claim_token"
)

// Role names as carried in access tokens.
const (
	RoleUser  = "USER"
	RoleStaff = "STAFF"
	RoleAdmin = "ADMIN"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithUserRole stores the caller's role in the context.
func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleKey, role)
}

// UserRoleFromCtx returns the caller's role, or RoleUser when none is set.
func UserRoleFromCtx(ctx context.Context) string {
	role, ok := ctx.Value(userRoleKey).(string)
	if !ok || role == "" {
		return RoleUser
	}
	return role
}

// IsAdminCtx reports whether the caller is an admin.
func IsAdminCtx(ctx context.Context) bool {
	return UserRoleFromCtx(ctx) == RoleAdmin
}

// IsStaffCtx reports whether the caller is staff or admin.
func IsStaffCtx(ctx context.Context) bool {
	role := UserRoleFromCtx(ctx)
	return role == RoleStaff || role == RoleAdmin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClaimToken stores the anonymous claim token presented by the caller.
func WithClaimToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, claimTokKey, token)
}

// ClaimTokenFromCtx returns the anonymous claim token, if one was presented.
func ClaimTokenFromCtx(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(claimTokKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
