package http

import (
	"net/http"

	"librarycatalog/internal/httpx"
	"librarycatalog/internal/session"
)

const SessionCookieName = session.CookieName

// SessionMiddleware copies the session cookie value into the request context.
// It does not check that the session exists.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(SessionCookieName)
		if err != nil || c.Value == "" {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(httpx.ContextWithSessionID(r.Context(), c.Value)))
	})
}
