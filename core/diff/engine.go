// Package diff compares and merges pairs of records field by field using the
// descriptors of a field.Registry.
package diff

import (
	"record-merger/core/field"
)

// Engine runs the active descriptors of a registry over record pairs.
type Engine[T any] struct {
	registry *field.Registry[T]
}

// New creates an engine over r.
func New[T any](r *field.Registry[T]) *Engine[T] {
	return &Engine[T]{registry: r}
}

// Registry exposes the underlying registry for configuration.
func (e *Engine[T]) Registry() *field.Registry[T] {
	return e.registry
}

// Compare returns one conflict per active field whose values differ, in field
// order. An empty result means the records agree.
func (e *Engine[T]) Compare(src, dst *T) []field.Conflict {
	var conflicts []field.Conflict
	for _, d := range e.registry.Active() {
		if ok, c := d.Equal(src, dst); !ok {
			conflicts = append(conflicts, *c)
		}
	}
	return conflicts
}

// MergeMissing fills the fields of dst that hold no value with those of src.
// Fields already set on dst are left alone.
func (e *Engine[T]) MergeMissing(src, dst *T) {
	for _, d := range e.registry.Active() {
		if d.IsDefault(dst) {
			d.Copy(src, dst)
		}
	}
}

// MergeAll copies every active field from src to dst.
func (e *Engine[T]) MergeAll(src, dst *T) {
	for _, d := range e.registry.Active() {
		d.Copy(src, dst)
	}
}

// Fields lists the active field names.
func (e *Engine[T]) Fields() []string {
	return e.registry.Names()
}
