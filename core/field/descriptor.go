package field

import (
	"reflect"
	"strings"

	"record-merger/core/equality"
	"record-merger/core/utils"
)

// Conflict records one field whose values disagree between a source and a
// destination record. Values are rendered as text; absent values render as "".
type Conflict struct {
	Property    string `json:"property" yaml:"property"`
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
}

// Descriptor is the per-field unit of work of the diff engine.
type Descriptor[T any] interface {
	// Name is the field name, unique within a record type.
	Name() string
	// Copy overwrites the field of dst with the value from src.
	Copy(src, dst *T)
	// Equal compares the field of both records and reports the conflict when they
	// differ.
	Equal(src, dst *T) (bool, *Conflict)
	// IsDefault reports whether the field of rec holds no meaningful value.
	IsDefault(rec *T) bool
}

// descriptor serves both typed and discovered fields; values travel as any and
// the comparer is erased accordingly.
type descriptor[T any] struct {
	info
	cmp  equality.Comparer[any]
	zero equality.Comparer[any]
}

// New builds a descriptor for acc compared with cmp. A nil cmp selects the
// default equality for V.
func New[T any, V any](acc Accessor[T, V], cmp equality.Comparer[V]) Descriptor[T] {
	return NewWithProvider(acc, cmp, nil)
}

// NewWithProvider is like New but resolves a nil cmp through p.
func NewWithProvider[T any, V any](acc Accessor[T, V], cmp equality.Comparer[V], p equality.Provider) Descriptor[T] {
	if cmp == nil {
		return reflected[T](acc.info, p)
	}
	return &descriptor[T]{
		info: acc.info,
		cmp:  equality.Erase(cmp),
		zero: equality.DefaultProvider().ComparerFor(acc.typ),
	}
}

func reflected[T any](fi info, p equality.Provider) Descriptor[T] {
	if p == nil {
		p = equality.DefaultProvider()
	}
	return &descriptor[T]{
		info: fi,
		cmp:  p.ComparerFor(fi.typ),
		zero: equality.DefaultProvider().ComparerFor(fi.typ),
	}
}

func (d *descriptor[T]) Name() string {
	return d.name
}

func (d *descriptor[T]) value(rec *T) reflect.Value {
	return reflect.ValueOf(rec).Elem().Field(d.index)
}

func (d *descriptor[T]) Copy(src, dst *T) {
	d.value(dst).Set(d.value(src))
}

func (d *descriptor[T]) Equal(src, dst *T) (bool, *Conflict) {
	s, t := d.value(src).Interface(), d.value(dst).Interface()
	if d.cmp.Equal(s, t) {
		return true, nil
	}
	return false, &Conflict{
		Property:    d.name,
		Source:      utils.ToString(s),
		Destination: utils.ToString(t),
	}
}

func (d *descriptor[T]) IsDefault(rec *T) bool {
	v := d.value(rec)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return true
		}
		if v.Elem().Kind() == reflect.String {
			return strings.TrimSpace(v.Elem().String()) == ""
		}
		return false
	}
	if v.Kind() == reflect.String {
		return strings.TrimSpace(v.String()) == ""
	}
	return d.zero.Equal(v.Interface(), reflect.Zero(d.typ).Interface())
}
