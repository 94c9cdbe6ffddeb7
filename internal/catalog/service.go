// Package catalog is the stand-in for a remote catalog back-end. Every call
// resolves after a fixed delay and only fails if the caller gives up first.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"librarycatalog/internal/book"
	"librarycatalog/internal/logger"
	"librarycatalog/internal/metrics"
	"librarycatalog/internal/session"
)

const (
	DefaultDelay = 500 * time.Millisecond

	// Every login resolves to this identity; only the email varies.
	SyntheticUserID = "user123"
	SyntheticName   = "Test User"
)

type Service struct {
	books book.Repository
	delay time.Duration
	log   logrus.FieldLogger
}

type Option func(*Service)

// WithDelay sets the simulated round-trip time. Zero resolves immediately.
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(books book.Repository, opts ...Option) *Service {
	discard := logrus.New()
	discard.SetLevel(logrus.PanicLevel)
	s := &Service{
		books: books,
		delay: DefaultDelay,
		log:   discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login returns the synthetic user bound to email. The email is not validated.
func (s *Service) Login(ctx context.Context, email string) (session.Session, error) {
	defer logger.Track(ctx, s.log, "login", 2*s.delay+time.Millisecond)()

	if err := s.wait(ctx, "login"); err != nil {
		return session.Session{}, err
	}
	return session.Session{
		UserID:        SyntheticUserID,
		Name:          SyntheticName,
		Email:         email,
		BorrowedBooks: []book.Book{},
	}, nil
}

// SearchBooks returns every book whose title, author or genre contains query,
// in catalog order.
func (s *Service) SearchBooks(ctx context.Context, query string) ([]book.Book, error) {
	return s.SearchBooksBy(ctx, book.FieldAny, query)
}

// SearchBooksBy is SearchBooks limited to one field.
func (s *Service) SearchBooksBy(ctx context.Context, field book.Field, query string) ([]book.Book, error) {
	defer logger.Track(ctx, s.log, "search", 2*s.delay+time.Millisecond)()

	if err := s.wait(ctx, "search"); err != nil {
		return nil, err
	}
	all, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	found := book.FilterBy(all, field, query)
	metrics.SearchResults.Observe(float64(len(found)))
	logger.For(ctx, s.log).WithFields(logrus.Fields{"query": query, "field": field, "results": len(found)}).Debug("catalog search")
	return found, nil
}

// ListBooks returns the whole catalog.
func (s *Service) ListBooks(ctx context.Context) ([]book.Book, error) {
	defer logger.Track(ctx, s.log, "list", 2*s.delay+time.Millisecond)()

	if err := s.wait(ctx, "list"); err != nil {
		return nil, err
	}
	all, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return all, nil
}

func (s *Service) wait(ctx context.Context, op string) error {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			metrics.FacadeCallsTotal.WithLabelValues(op, "canceled").Inc()
			return ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		metrics.FacadeCallsTotal.WithLabelValues(op, "canceled").Inc()
		return err
	}
	metrics.FacadeCallsTotal.WithLabelValues(op, "ok").Inc()
	return nil
}
