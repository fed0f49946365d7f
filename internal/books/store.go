package books

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Store persists books.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (Book, error)
	Put(ctx context.Context, b Book) error
	List(ctx context.Context) ([]Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemoryStore keeps books in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	books map[uuid.UUID]Book
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{books: make(map[uuid.UUID]Book)}
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (Book, error) {
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return clone(b), nil
}

func (s *MemoryStore) Put(ctx context.Context, b Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books[b.ID] = clone(b)
	return nil
}

// List returns all books ordered by creation time.
func (s *MemoryStore) List(ctx context.Context) ([]Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, clone(b))
	}
	s.mu.RUnlock()

	sortBooks(out)
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return ErrNotFound
	}
	delete(s.books, id)
	return nil
}

func clone(b Book) Book {
	b.Tags = slices.Clone(b.Tags)
	return b
}

func sortBooks(books []Book) {
	slices.SortFunc(books, func(a, b Book) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
}
