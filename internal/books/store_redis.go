package books

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	bookKeyPrefix = "book:"
	indexKey      = "books"
)

// RedisStore keeps each book as a JSON value under book:<id> and tracks
// ids in the books set.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces every key, e.g. "test:" for isolated runs.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.keyPrefix = prefix
	}
}

// NewRedisStore creates a store on client. The client lifecycle is managed by the caller.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{client: client}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *RedisStore) bookKey(id uuid.UUID) string {
	return s.keyPrefix + bookKeyPrefix + id.String()
}

func (s *RedisStore) indexKey() string {
	return s.keyPrefix + indexKey
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (Book, error) {
	data, err := s.client.Get(ctx, s.bookKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Book{}, ErrNotFound
	}
	if err != nil {
		return Book{}, fmt.Errorf("get book %s: %w", id, err)
	}

	var b Book
	if err := json.Unmarshal(data, &b); err != nil {
		return Book{}, fmt.Errorf("decode book %s: %w", id, err)
	}
	return b, nil
}

func (s *RedisStore) Put(ctx context.Context, b Book) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode book %s: %w", b.ID, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.bookKey(b.ID), data, 0)
		pipe.SAdd(ctx, s.indexKey(), b.ID.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("put book %s: %w", b.ID, err)
	}
	return nil
}

// List returns all indexed books ordered by creation time.
// Ids whose value has disappeared are skipped.
func (s *RedisStore) List(ctx context.Context) ([]Book, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if len(ids) == 0 {
		return []Book{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		keys = append(keys, s.bookKey(id))
	}
	if len(keys) == 0 {
		return []Book{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	out := make([]Book, 0, len(values))
	for _, v := range values {
		data, ok := v.(string)
		if !ok {
			continue
		}
		var b Book
		if err := json.Unmarshal([]byte(data), &b); err != nil {
			return nil, fmt.Errorf("decode book: %w", err)
		}
		out = append(out, b)
	}

	sortBooks(out)
	return out, nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.bookKey(id))
		pipe.SRem(ctx, s.indexKey(), id.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete book %s: %w", id, err)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}
