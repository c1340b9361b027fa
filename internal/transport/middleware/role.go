package middleware

import (
	"net/http"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"github.com/heartmarshall/lessonbell-backend/pkg/ctxutil"
)

// RequireTeacher rejects anonymous requests with 401 and callers whose token
// role may not manage lessons with 403. Mount it after Auth.
func RequireTeacher(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.TeacherIDFromCtx(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		role, ok := domain.ParseTeacherRole(ctxutil.RoleFromCtx(r.Context()))
		if !ok || !role.CanManageLessons() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
