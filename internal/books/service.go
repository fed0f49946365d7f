package books

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/patchbind/core/logger"
)

// Service implements the catalogue operations on top of a Store.
type Service struct {
	store Store
	log   *slog.Logger
	now   func() time.Time

	// serializes read-modify-write updates within this process
	mu sync.Mutex
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger (default: slog.Default()).
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service backed by store.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store: store,
		log:   slog.Default(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("books"))
	return s
}

// Create validates req and stores a new book.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Book, error) {
	now := s.now().UTC()
	b := Book{
		ID:        uuid.New(),
		Title:     req.Title,
		Author:    req.Author,
		Year:      req.Year,
		Tags:      slices.Clone(req.Tags),
		Available: req.Available,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validate(b); err != nil {
		return Book{}, err
	}
	if err := s.store.Put(ctx, b); err != nil {
		return Book{}, err
	}

	s.log.InfoContext(ctx, "book created", logger.Event("created"), logger.ID("book_id", b.ID))
	return b, nil
}

// Get returns the book with id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Book, error) {
	return s.store.Get(ctx, id)
}

// List returns all books ordered by creation time.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.store.List(ctx)
}

// Patch applies the touched fields of p to the book named by p.ID.
// A patch touching nothing but the id returns the stored book unchanged.
func (s *Service) Patch(ctx context.Context, p *BookPatch) (Book, error) {
	if !p.IsSet(FieldID) {
		return Book{}, invalid(FieldID, "is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.store.Get(ctx, p.ID)
	if err != nil {
		return Book{}, err
	}
	if !p.Apply(&b) {
		return b, nil
	}
	if err := validate(b); err != nil {
		return Book{}, err
	}

	b.UpdatedAt = s.now().UTC()
	if err := s.store.Put(ctx, b); err != nil {
		return Book{}, err
	}

	s.log.InfoContext(ctx, "book patched",
		logger.Event("patched"),
		logger.ID("book_id", b.ID),
		logger.Fields(p.Touched().Names()),
	)
	return b, nil
}

// Delete removes the book with id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "book deleted", logger.Event("deleted"), logger.ID("book_id", id))
	return nil
}
