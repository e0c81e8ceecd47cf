// Package remotesync llena un store desde una fuente externa.
//
// Una fuente que falla deja la colección vacía (nunca nil) y el error queda en
// logs y métricas; la UI sigue funcionando sin datos.
package remotesync

import (
	"context"
	"fmt"
	"time"

	"dental-lab/internal/platform/logger"
	"dental-lab/internal/store"
)

// Source devuelve la colección completa de un recurso.
type Source[T any] interface {
	Name() string
	Fetch(ctx context.Context) ([]T, error)
}

// Recorder recibe el resultado de cada sync. err == nil es éxito.
type Recorder interface {
	SyncResult(collection string, err error, took time.Duration)
}

// Sync hace un fetch y reemplaza el contenido de st.
// Siempre deja el store seteado y nunca propaga un panic de la fuente.
func Sync[T store.Entity](ctx context.Context, st *store.Store[T], src Source[T], log logger.Logger, rec Recorder) (err error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"collection": st.Name(), "source": src.Name()})
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("remotesync: source panicked: %v", p)
		}
		took := time.Since(start)
		if err != nil {
			st.ReplaceAll([]T{})
			log.Error("fetch failed, collection left empty", map[string]any{"error": err, "took_ms": took.Milliseconds()})
		}
		if rec != nil {
			rec.SyncResult(st.Name(), err, took)
		}
	}()

	items, err := src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", st.Name(), err)
	}
	if items == nil {
		items = []T{}
	}
	st.ReplaceAll(items)

	log.Info("collection loaded", map[string]any{"count": len(items), "took_ms": time.Since(start).Milliseconds()})
	return nil
}

// Start corre Sync en background. El canal recibe el resultado y se cierra.
func Start[T store.Entity](ctx context.Context, st *store.Store[T], src Source[T], log logger.Logger, rec Recorder) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- Sync(ctx, st, src, log, rec)
	}()
	return done
}

// SourceFunc adapta una función a Source.
type SourceFunc[T any] struct {
	Label string
	Fn    func(ctx context.Context) ([]T, error)
}

func (f SourceFunc[T]) Name() string { return f.Label }

func (f SourceFunc[T]) Fetch(ctx context.Context) ([]T, error) { return f.Fn(ctx) }
