package books_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patchbind/core/logger"
	"github.com/dmitrymomot/patchbind/internal/books"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newService(t *testing.T) (*books.Service, *clock, *bytes.Buffer) {
	t.Helper()

	c := &clock{now: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)}
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	return books.NewService(books.NewMemoryStore(), books.WithLogger(log), books.WithClock(c.Now)), c, &buf
}

func TestService_CreateAndPatch(t *testing.T) {
	t.Parallel()

	svc, c, logs := newService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, books.CreateRequest{Title: "Dune", Author: "Frank Herbert", Year: 1965, Tags: []string{"sf"}})
	require.NoError(t, err)
	assert.Equal(t, c.now, b.CreatedAt)
	assert.Equal(t, c.now, b.UpdatedAt)

	c.now = c.now.Add(time.Hour)
	p, err := bindPatch(t, b.ID.String(), `{"available":true}`, "")
	require.NoError(t, err)

	patched, err := svc.Patch(ctx, p)
	require.NoError(t, err)
	assert.True(t, patched.Available)
	assert.Equal(t, "Dune", patched.Title)
	assert.Equal(t, 1965, patched.Year)
	assert.Equal(t, b.CreatedAt, patched.CreatedAt)
	assert.Equal(t, c.now, patched.UpdatedAt)

	stored, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, patched, stored)

	assert.Contains(t, logs.String(), "book patched")
	assert.Contains(t, logs.String(), "component=books")
}

func TestService_PatchNothingKeepsUpdatedAt(t *testing.T) {
	t.Parallel()

	svc, c, _ := newService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, books.CreateRequest{Title: "Dune"})
	require.NoError(t, err)

	c.now = c.now.Add(time.Hour)
	p, err := bindPatch(t, b.ID.String(), `{}`, "")
	require.NoError(t, err)

	got, err := svc.Patch(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestService_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, books.CreateRequest{Title: "  "})
	assert.ErrorIs(t, err, books.ErrInvalidBook)

	_, err = svc.Create(ctx, books.CreateRequest{Title: "Dune", Year: -1})
	assert.ErrorIs(t, err, books.ErrInvalidBook)

	b, err := svc.Create(ctx, books.CreateRequest{Title: "Dune"})
	require.NoError(t, err)

	p, err := bindPatch(t, b.ID.String(), `{"title":null}`, "")
	require.NoError(t, err)
	_, err = svc.Patch(ctx, p)
	assert.ErrorIs(t, err, books.ErrInvalidBook)

	stored, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", stored.Title)

	_, err = svc.Patch(ctx, &books.BookPatch{})
	assert.ErrorIs(t, err, books.ErrInvalidBook)
}

func TestService_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(t)
	ctx := context.Background()

	p, err := bindPatch(t, uuid.NewString(), `{"title":"Dune"}`, "")
	require.NoError(t, err)

	_, err = svc.Patch(ctx, p)
	assert.ErrorIs(t, err, books.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, uuid.New()), books.ErrNotFound)
}
