package filesource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrNoSeedFile = errors.New("filesource: no seed file")

// Source lee una colección desde un archivo YAML o JSON (según extensión).
// El archivo se relee en cada Fetch.
type Source[T any] struct {
	path string
}

func New[T any](path string) *Source[T] {
	return &Source[T]{path: path}
}

// Locate busca <dir>/<name>.yaml, .yml o .json, en ese orden.
func Locate[T any](dir, name string) (*Source[T], error) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		p := filepath.Join(dir, name+ext)
		if _, err := os.Stat(p); err == nil {
			return New[T](p), nil
		}
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrNoSeedFile, name, dir)
}

func (s *Source[T]) Name() string { return "file:" + s.path }

func (s *Source[T]) Fetch(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	var out []T
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(raw)) == 0 {
			break
		}
		if err := yaml.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.path, err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.path, err)
		}
	default:
		return nil, fmt.Errorf("filesource: unsupported extension %q", filepath.Ext(s.path))
	}

	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Write guarda items como YAML en path. Lo usa el comando export.
func Write[T any](path string, items []T) error {
	raw, err := yaml.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write seed: %w", err)
	}
	return nil
}
