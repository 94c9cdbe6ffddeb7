package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=book

// Repository defines the contract for reading the catalog.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
}

// Catalog is the back-end the JSON API answers from. Its calls may be slow and
// fail with the request's context error.
type Catalog interface {
	ListBooks(ctx context.Context) ([]Book, error)
	SearchBooks(ctx context.Context, query string) ([]Book, error)
}
