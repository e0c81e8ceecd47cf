package httpsource

import (
	"context"
	"fmt"

	"dental-lab/internal/platform/httpclient"
)

// Paths de cada recurso en la API upstream.
const (
	PathDoctors   = "doctor"
	PathPatients  = "patient"
	PathPractices = "practice/practiceInfo"
)

// Source trae una colección completa con GET <base>/<path>.
type Source[T any] struct {
	client *httpclient.Client
	path   string
}

func New[T any](client *httpclient.Client, path string) *Source[T] {
	return &Source[T]{client: client, path: path}
}

func (s *Source[T]) Name() string {
	if s.client == nil || s.client.BaseURL == "" {
		return "http:" + s.path
	}
	return "http:" + s.client.BaseURL + "/" + s.path
}

func (s *Source[T]) Fetch(ctx context.Context) ([]T, error) {
	var out []T
	if err := s.client.GetJSON(ctx, s.path, &out); err != nil {
		return nil, fmt.Errorf("httpsource %s: %w", s.path, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
