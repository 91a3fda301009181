package services

import (
	"context"
	"errors"

	"github.com/judyrop/restaurant-pos/storage"
)

// lookup memoizes reference resolution for the length of one call. A missing
// row resolves to nil and is remembered as such.
type lookup[T any] struct {
	fetch func(ctx context.Context, id string) (T, error)
	seen  map[string]*T
}

func newLookup[T any](fetch func(ctx context.Context, id string) (T, error)) *lookup[T] {
	return &lookup[T]{fetch: fetch, seen: map[string]*T{}}
}

func (l *lookup[T]) get(ctx context.Context, id string) (*T, error) {
	if v, ok := l.seen[id]; ok {
		return v, nil
	}
	v, err := l.fetch(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		l.seen[id] = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	l.seen[id] = &v
	return &v, nil
}

// optional resolves a nullable reference.
func (l *lookup[T]) optional(ctx context.Context, id *string) (*T, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	return l.get(ctx, *id)
}
