// Package testutil holds fixtures and request helpers shared by handler tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"librarycatalog/internal/book"
	"librarycatalog/internal/session"
)

// TestSession is a logged-in user as the catalog facade would return it.
var TestSession = session.Session{
	UserID:        "user123",
	Name:          "Test User",
	Email:         "test@example.com",
	BorrowedBooks: []book.Book{},
}

// UnavailableBook returns a catalog record that is checked out.
func UnavailableBook() book.Book {
	return book.Book{
		Title:     "Beloved",
		Author:    "Toni Morrison",
		ISBN:      "9781400033416",
		Genre:     "Fiction",
		Year:      1987,
		Available: false,
	}
}

// NewFormRequest creates a url-encoded form request.
func NewFormRequest(method, path string, values url.Values) *http.Request {
	r := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// WithCookie attaches a cookie to r and returns it.
func WithCookie(r *http.Request, name, value string) *http.Request {
	r.AddCookie(&http.Cookie{Name: name, Value: value})
	return r
}
