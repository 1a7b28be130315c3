package field

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	uuidType    = reflect.TypeOf(uuid.UUID{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// info locates one direct field inside a struct.
type info struct {
	name  string
	index int
	typ   reflect.Type
}

// Accessor is a validated handle to a direct scalar field of T holding a V.
// The only way to obtain one is Of.
type Accessor[T any, V any] struct {
	info
}

// Of validates that name is a direct exported scalar field of T with type V.
func Of[T any, V any](name string) (Accessor[T, V], error) {
	fi, err := lookup(reflect.TypeFor[T](), name, true)
	if err != nil {
		return Accessor[T, V]{}, err
	}
	if want := reflect.TypeFor[V](); fi.typ != want {
		return Accessor[T, V]{}, configErr(reflect.TypeFor[T](), name, "has type %v, not %v", fi.typ, want)
	}
	return Accessor[T, V]{info: fi}, nil
}

// MustOf is like Of but panics on error. Intended for package-level tables.
func MustOf[T any, V any](name string) Accessor[T, V] {
	a, err := Of[T, V](name)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the field name.
func (a Accessor[T, V]) Name() string {
	return a.name
}

// Get reads the field from rec.
func (a Accessor[T, V]) Get(rec *T) V {
	return reflect.ValueOf(rec).Elem().Field(a.index).Interface().(V)
}

// Set writes v into the field of rec.
func (a Accessor[T, V]) Set(rec *T, v V) {
	reflect.ValueOf(rec).Elem().Field(a.index).Set(reflect.ValueOf(&v).Elem())
}

// lookup resolves name to a direct field of t. Methods, dotted paths, promoted
// fields of embedded structs and unexported fields are rejected.
func lookup(t reflect.Type, name string, requireScalar bool) (info, error) {
	if t.Kind() != reflect.Struct {
		return info{}, configErr(t, name, "record type must be a struct")
	}
	if name == "" {
		return info{}, configErr(t, name, "empty field name")
	}
	if strings.ContainsAny(name, ".()[] ") {
		return info{}, configErr(t, name, "not a direct field read")
	}

	sf, ok := t.FieldByName(name)
	if !ok {
		if _, isMethod := reflect.PointerTo(t).MethodByName(name); isMethod {
			return info{}, configErr(t, name, "is a method, not a field")
		}
		return info{}, configErr(t, name, "no such field")
	}
	if len(sf.Index) != 1 {
		return info{}, configErr(t, name, "is promoted from an embedded struct")
	}
	if !sf.IsExported() {
		return info{}, configErr(t, name, "is unexported")
	}
	if requireScalar && !IsScalar(sf.Type) {
		return info{}, configErr(t, name, "type %v is not a scalar", sf.Type)
	}

	return info{name: sf.Name, index: sf.Index[0], typ: sf.Type}, nil
}

// IsScalar reports whether fields of type t take part in discovery: booleans,
// numbers, strings, time.Time, time.Duration, uuid.UUID, decimal.Decimal and single
// pointers to them.
func IsScalar(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
		if t.Kind() == reflect.Pointer {
			return false
		}
	}
	if t == timeType || t == uuidType || t == decimalType {
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Check validates that name is a direct exported field of T of any type.
func Check[T any](name string) error {
	_, err := lookup(reflect.TypeFor[T](), name, false)
	return err
}
