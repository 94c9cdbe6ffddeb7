package http

import (
	"context"

	"librarycatalog/internal/book"
	"librarycatalog/internal/session"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=http

// Facade is the catalog back-end as seen by the page.
type Facade interface {
	Login(ctx context.Context, email string) (session.Session, error)
	SearchBooks(ctx context.Context, query string) ([]book.Book, error)
}

// Sessions tracks who is logged in on which browser.
type Sessions interface {
	Start(ctx context.Context, s session.Session) (session.Session, error)
	Get(ctx context.Context, id string) (session.Session, error)
	End(ctx context.Context, id string) error
}
