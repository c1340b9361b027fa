package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"github.com/heartmarshall/lessonbell-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	ExtractUsername(token string) (string, error)
	ExtractRole(token string) (string, error)
}

type teacherLookup interface {
	GetByUsername(ctx context.Context, username string) (*domain.Teacher, error)
}

// Auth resolves a bearer token to a teacher and stores the teacher id and
// role in the request context. Requests without a token pass through
// anonymously; a bad token or an unknown username is rejected with 401.
func Auth(verifier tokenVerifier, teachers teacherLookup, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			username, err := verifier.ExtractUsername(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			role, err := verifier.ExtractRole(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			teacher, err := teachers.GetByUsername(r.Context(), username)
			if err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					logger.ErrorContext(r.Context(), "resolve token subject",
						slog.String("username", username),
						slog.String("error", err.Error()),
					)
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			annotateTeacher(r.Context(), teacher.ID.String())
			ctx := ctxutil.WithTeacherID(r.Context(), teacher.ID)
			ctx = ctxutil.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
