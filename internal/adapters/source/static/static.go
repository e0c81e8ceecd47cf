package static

import (
	"context"
	"slices"
)

// Source devuelve siempre la misma colección en memoria (seed de desarrollo).
type Source[T any] struct {
	name  string
	items []T
}

func New[T any](name string, items []T) *Source[T] {
	return &Source[T]{name: name, items: items}
}

func (s *Source[T]) Name() string { return "static:" + s.name }

// Fetch devuelve una copia; quien la reciba puede modificarla.
func (s *Source[T]) Fetch(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.items) == 0 {
		return []T{}, nil
	}
	return slices.Clone(s.items), nil
}
