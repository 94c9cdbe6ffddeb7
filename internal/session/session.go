package session

import (
	"errors"
	"time"

	"librarycatalog/internal/book"
)

// ErrNotFound is returned when no session exists for an id.
var ErrNotFound = errors.New("session not found")

// Session is the logged-in user for the lifetime of the process.
type Session struct {
	ID            string      `json:"-"`
	UserID        string      `json:"user_id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	BorrowedBooks []book.Book `json:"borrowed_books"`
	CreatedAt     time.Time   `json:"created_at"`
}
