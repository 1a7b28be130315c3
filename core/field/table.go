package field

import (
	"reflect"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"record-merger/core/equality"
	"record-merger/core/utils"
)

// funcDescriptor is a descriptor over plain accessor functions. It never
// touches reflect after construction.
type funcDescriptor[T any, V any] struct {
	name string
	get  func(*T) V
	set  func(*T, V)
	cmp  equality.Comparer[V]
	zero equality.Comparer[V]
}

// Define builds a descriptor from a getter and a setter. name must be a direct
// exported scalar field of T holding a V, and get and set must read and write
// exactly that field; both are exercised once on a zero T to verify it. A nil
// cmp selects the default equality for V.
func Define[T any, V any](name string, get func(*T) V, set func(*T, V), cmp equality.Comparer[V]) (Descriptor[T], error) {
	t := reflect.TypeFor[T]()
	if get == nil || set == nil {
		return nil, configErr(t, name, "getter and setter are required")
	}
	fi, err := lookup(t, name, true)
	if err != nil {
		return nil, err
	}
	if want := reflect.TypeFor[V](); fi.typ != want {
		return nil, configErr(t, name, "has type %v, not %v", fi.typ, want)
	}
	if err := verifyAccess(fi, get, set); err != nil {
		return nil, err
	}

	zero := equality.ForType[V](nil)
	if cmp == nil {
		cmp = zero
	}
	return &funcDescriptor[T, V]{name: fi.name, get: get, set: set, cmp: cmp, zero: zero}, nil
}

// verifyAccess writes a marker value through set into a zero T and requires
// that only field fi changed and that get reads the marker back.
func verifyAccess[T any, V any](fi info, get func(*T) V, set func(*T, V)) (err error) {
	t := reflect.TypeFor[T]()
	defer func() {
		if p := recover(); p != nil {
			err = configErr(t, fi.name, "accessor panicked: %v", p)
		}
	}()

	var rec T
	var zero V
	if !reflect.DeepEqual(get(&rec), zero) {
		return configErr(t, fi.name, "getter does not read the field")
	}

	want := marker(fi.typ).Interface().(V)
	set(&rec, want)
	rv := reflect.ValueOf(&rec).Elem()
	for i := 0; i < rv.NumField(); i++ {
		if i != fi.index && !rv.Field(i).IsZero() {
			return configErr(t, fi.name, "setter writes field %s", t.Field(i).Name)
		}
	}
	if !reflect.DeepEqual(rv.Field(fi.index).Interface(), any(want)) {
		return configErr(t, fi.name, "setter does not write the field")
	}
	if !reflect.DeepEqual(get(&rec), want) {
		return configErr(t, fi.name, "getter does not read the field")
	}
	return nil
}

// marker returns a non-zero value of the scalar type typ.
func marker(typ reflect.Type) reflect.Value {
	v := reflect.New(typ).Elem()
	switch typ {
	case timeType:
		v.Set(reflect.ValueOf(time.Unix(1700000000, 0).UTC()))
		return v
	case uuidType:
		v.Set(reflect.ValueOf(uuid.UUID{0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad}))
		return v
	case decimalType:
		v.Set(reflect.ValueOf(decimal.New(125, -2)))
		return v
	}

	switch typ.Kind() {
	case reflect.Pointer:
		v.Set(reflect.New(typ.Elem()))
		v.Elem().Set(marker(typ.Elem()))
	case reflect.Bool:
		v.SetBool(true)
	case reflect.String:
		v.SetString("marker")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(7)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(7)
	case reflect.Float32, reflect.Float64:
		v.SetFloat(7.5)
	}
	return v
}

func (d *funcDescriptor[T, V]) Name() string {
	return d.name
}

func (d *funcDescriptor[T, V]) Copy(src, dst *T) {
	d.set(dst, d.get(src))
}

func (d *funcDescriptor[T, V]) Equal(src, dst *T) (bool, *Conflict) {
	s, t := d.get(src), d.get(dst)
	if d.cmp.Equal(s, t) {
		return true, nil
	}
	return false, &Conflict{
		Property:    d.name,
		Source:      utils.ToString(s),
		Destination: utils.ToString(t),
	}
}

func (d *funcDescriptor[T, V]) IsDefault(rec *T) bool {
	v := d.get(rec)
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return true
		}
		if rv.Elem().Kind() == reflect.String {
			return strings.TrimSpace(rv.Elem().String()) == ""
		}
		return false
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	}
	var zero V
	return d.zero.Equal(v, zero)
}

// NewTable creates a registry over an explicit, ordered descriptor table.
// Discovery never runs; Ignore and Override work as for NewRegistry. Names
// must be unique.
func NewTable[T any](descriptors ...Descriptor[T]) (*Registry[T], error) {
	r, err := NewRegistry[T]()
	if err != nil {
		return nil, err
	}

	names := mapset.NewThreadUnsafeSetWithSize[string](len(descriptors))
	for _, d := range descriptors {
		if d == nil {
			return nil, configErr(reflect.TypeFor[T](), "", "nil descriptor in table")
		}
		if !names.Add(d.Name()) {
			return nil, configErr(reflect.TypeFor[T](), d.Name(), "listed twice in table")
		}
	}

	r.once.Do(func() {
		r.discovered = append([]Descriptor[T](nil), descriptors...)
	})
	return r, nil
}
