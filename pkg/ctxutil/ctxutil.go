package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	teacherIDKey ctxKey = "teacher_id"
	requestIDKey ctxKey = "request_id"
	roleKey      ctxKey = "role"
)

// WithTeacherID stores the authenticated teacher's ID in the context.
func WithTeacherID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, teacherIDKey, id)
}

// TeacherIDFromCtx extracts the authenticated teacher's ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func TeacherIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(teacherIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
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

// WithRole stores the authenticated teacher's role in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the authenticated teacher's role from the context.
// Returns an empty string if absent.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}
