package session

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Authenticator resolves an email to the user it logs in as.
type Authenticator interface {
	Login(ctx context.Context, email string) (Session, error)
}
