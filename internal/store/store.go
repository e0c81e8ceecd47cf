// Package store mantiene una colección de entidades por sesión y emite la
// colección completa a sus subscribers en cada cambio.
//
// Cada mutación reemplaza la colección entera: cada emisión es el estado
// actual completo, nunca un delta.
package store

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"dental-lab/internal/query"

	"github.com/google/uuid"
)

// Entity es cualquier registro con id numérico.
type Entity = query.Entity

// Observer recibe la colección completa en cada emisión.
type Observer[T Entity] func(items []T)

type Store[T Entity] struct {
	name string

	// emitMu serializa mutación + notificación: todos los observers ven
	// todas las colecciones, en orden.
	emitMu sync.Mutex

	mu      sync.RWMutex
	items   []T
	version uint64
	subs    map[uuid.UUID]*subscriber[T]
	order   []uuid.UUID
}

func New[T Entity](name string) *Store[T] {
	return &Store[T]{
		name:  name,
		items: []T{},
		subs:  make(map[uuid.UUID]*subscriber[T]),
	}
}

func (s *Store[T]) Name() string { return s.name }

// Initialize fija la colección inicial (seed o resultado de un fetch) y la emite.
func (s *Store[T]) Initialize(items []T) {
	s.ReplaceAll(items)
}

// ReplaceAll reemplaza la colección completa. nil equivale a vacía.
func (s *Store[T]) ReplaceAll(items []T) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.items = cloneOrEmpty(items)
	snap, v, subs := s.emitLocked()
	s.mu.Unlock()

	notify(subs, snap, v)
}

// Add agrega una entidad ya formada (con id asignado). No valida ids duplicados.
func (s *Store[T]) Add(item T) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.items = appendCopy(s.items, item)
	snap, v, subs := s.emitLocked()
	s.mu.Unlock()

	notify(subs, snap, v)
}

// Insert asigna el siguiente id (max+1, o 1 si está vacía), construye la
// entidad con build y la agrega. Dos Insert concurrentes nunca comparten id.
func (s *Store[T]) Insert(build func(id int) T) T {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	id, err := query.NextID(s.items)
	if errors.Is(err, query.ErrEmptyCollection) {
		id = 1
	}
	item := build(id)
	s.items = appendCopy(s.items, item)
	snap, v, subs := s.emitLocked()
	s.mu.Unlock()

	notify(subs, snap, v)
	return item
}

// Snapshot devuelve una copia de la colección actual.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Subscribe registra fn y la invoca de inmediato con la colección actual.
// Un observer puede leer el store, llamar a Subscribe o a Unsubscribe durante
// una emisión. No puede mutarlo de forma síncrona (Add, Insert, ReplaceAll):
// la mutación espera a que termine la emisión en curso.
//
// Si una mutación concurrente ya entregó una colección más nueva, la inicial
// se descarta: un observer nunca retrocede a un estado anterior.
func (s *Store[T]) Subscribe(fn Observer[T]) *Subscription {
	id := uuid.New()
	sub := &subscriber[T]{fn: fn}

	s.mu.Lock()
	s.subs[id] = sub
	s.order = append(s.order, id)
	snap, v := s.items, s.version
	s.mu.Unlock()

	sub.deliver(snap, v)

	return &Subscription{id: id, cancel: func() { s.unsubscribe(id) }}
}

// Subscribers devuelve la cantidad de observers registrados.
func (s *Store[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

func (s *Store[T]) unsubscribe(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[id]
	if !ok {
		return
	}
	sub.closed.Store(true)
	delete(s.subs, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
}

// emitLocked avanza la versión y devuelve lo que hay que emitir. Requiere mu.
func (s *Store[T]) emitLocked() ([]T, uint64, []*subscriber[T]) {
	s.version++
	out := make([]*subscriber[T], 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.subs[id])
	}
	return s.items, s.version, out
}

type subscriber[T Entity] struct {
	fn     Observer[T]
	closed atomic.Bool

	mu        sync.Mutex
	seen      uint64
	delivered bool
}

// deliver entrega snap salvo que el observer ya haya visto una versión igual
// o más nueva, o que se haya dado de baja.
func (sub *subscriber[T]) deliver(snap []T, v uint64) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if sub.closed.Load() || (sub.delivered && v <= sub.seen) {
		return
	}
	sub.seen, sub.delivered = v, true
	sub.fn(slices.Clone(snap))
}

// Subscription permite dejar de recibir emisiones. Unsubscribe es idempotente.
type Subscription struct {
	id     uuid.UUID
	once   sync.Once
	cancel func()
}

func (s *Subscription) ID() string { return s.id.String() }

func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

func notify[T Entity](subs []*subscriber[T], snap []T, v uint64) {
	for _, sub := range subs {
		sub.deliver(snap, v)
	}
}

// appendCopy nunca reutiliza el backing array anterior: snapshots ya
// entregados no cambian.
func appendCopy[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

func cloneOrEmpty[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return slices.Clone(items)
}
