package session

import (
	"net/http"
	"time"
)

const CookieName = "librarian_session"

// Cookie binds a browser to session id.
func Cookie(id string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func ExpiredCookie(secure bool) *http.Cookie {
	c := Cookie("", secure)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}
