// Package query tiene funciones puras sobre snapshots de una colección.
package query

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
)

var ErrEmptyCollection = errors.New("empty collection")

// Entity es cualquier registro con id numérico.
type Entity interface {
	EntityID() int
}

// Blank reporta si term está vacío después de TrimSpace.
func Blank(term string) bool {
	return strings.TrimSpace(term) == ""
}

// Fold normaliza s para comparaciones sin distinguir mayúsculas.
func Fold(s string) string {
	// cases.Caser no es seguro para uso concurrente: uno por llamada.
	return cases.Fold().String(s)
}

// Contains reporta si alguno de fields contiene term (sin distinguir mayúsculas).
func Contains(term string, fields ...string) bool {
	needle := Fold(strings.TrimSpace(term))
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(Fold(f), needle) {
			return true
		}
	}
	return false
}

// Search devuelve items sin cambios si term está en blanco; si no, los items
// en los que algún campo devuelto por fields contiene term. Conserva el orden.
func Search[T any](items []T, term string, fields func(T) []string) []T {
	if Blank(term) {
		return items
	}
	return Filter(items, func(it T) bool {
		return Contains(term, fields(it)...)
	})
}

// Filter devuelve los items para los que keep es true, en orden.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Find devuelve el primer item con el id dado.
func Find[T Entity](items []T, id int) (T, bool) {
	for _, it := range items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// NextID devuelve max(id)+1. Solo está definido para colecciones no vacías.
func NextID[T Entity](items []T) (int, error) {
	if len(items) == 0 {
		return 0, ErrEmptyCollection
	}
	max := items[0].EntityID()
	for _, it := range items[1:] {
		if id := it.EntityID(); id > max {
			max = id
		}
	}
	return max + 1, nil
}
