package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/drims/application/user"
	"github.com/muhammadheryan/drims/constant"
	utilsContext "github.com/muhammadheryan/drims/utils/context"
	"github.com/muhammadheryan/drims/utils/errors"
)

// AuthMiddleware validates the bearer session and resolves the acting user, whose user name
// is the audit identity stamped on every write of the request.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			actor, err := userApp.ResolveActor(r.Context(), userID)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := utilsContext.WithActor(r.Context(), actor.UserID, actor.UserName)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath lists the endpoints served without a session. /internal/ has its own key check.
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	return path == "/login" || path == "/register"
}
