package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/drims/constant"
	"github.com/muhammadheryan/drims/utils/errors"
)

// InternalMiddleware checks the static service key. An empty key disables the internal routes.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	want := []byte("Bearer " + apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get("Authorization"))
			if apiKey == "" || subtle.ConstantTimeCompare(got, want) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
