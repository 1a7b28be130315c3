package field

import (
	"reflect"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"record-merger/core/equality"
)

// Registry holds the active descriptors of a record type. Fields are discovered on
// first use, exactly once; ignores and overrides must be registered before that
// and are applied on every call to Active.
type Registry[T any] struct {
	once       sync.Once
	discovered []Descriptor[T]

	provider  equality.Provider
	ignored   mapset.Set[string]
	overrides map[string]Descriptor[T]
	order     []string
}

// NewRegistry creates a registry for T, which must be a struct type.
func NewRegistry[T any]() (*Registry[T], error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, configErr(t, "", "record type must be a struct")
	}
	return &Registry[T]{
		provider:  equality.DefaultProvider(),
		ignored:   mapset.NewThreadUnsafeSet[string](),
		overrides: make(map[string]Descriptor[T]),
	}, nil
}

// SetProvider replaces the strategy provider used for discovered fields and for
// overrides registered without a comparer.
func (r *Registry[T]) SetProvider(p equality.Provider) {
	if p == nil {
		p = equality.DefaultProvider()
	}
	r.provider = p
}

// Provider returns the current strategy provider.
func (r *Registry[T]) Provider() equality.Provider {
	return r.provider
}

// Ignore removes the named field from every future Active call. The name must
// denote a direct exported field of T.
func (r *Registry[T]) Ignore(name string) error {
	fi, err := lookup(reflect.TypeFor[T](), name, false)
	if err != nil {
		return err
	}
	r.ignored.Add(fi.name)
	return nil
}

// Ignored reports whether name was ignored.
func (r *Registry[T]) Ignored(name string) bool {
	return r.ignored.Contains(name)
}

// Override installs d in place of the discovered descriptor with the same name.
// The last override for a name wins.
func (r *Registry[T]) Override(d Descriptor[T]) {
	name := d.Name()
	if _, ok := r.overrides[name]; !ok {
		r.order = append(r.order, name)
	}
	r.overrides[name] = d
}

// Active returns the descriptors in use: discovered fields in declaration order
// with overrides applied, followed by overrides for names discovery did not
// produce, minus everything ignored.
func (r *Registry[T]) Active() []Descriptor[T] {
	r.once.Do(r.discover)

	active := make([]Descriptor[T], 0, len(r.discovered)+len(r.overrides))
	seen := mapset.NewThreadUnsafeSetWithSize[string](len(r.discovered))
	for _, d := range r.discovered {
		name := d.Name()
		seen.Add(name)
		if r.ignored.Contains(name) {
			continue
		}
		if o, ok := r.overrides[name]; ok {
			d = o
		}
		active = append(active, d)
	}
	for _, name := range r.order {
		if seen.Contains(name) || r.ignored.Contains(name) {
			continue
		}
		active = append(active, r.overrides[name])
	}
	return active
}

// Names returns the names of the active descriptors.
func (r *Registry[T]) Names() []string {
	active := r.Active()
	names := make([]string, len(active))
	for i, d := range active {
		names[i] = d.Name()
	}
	return names
}

func (r *Registry[T]) discover() {
	t := reflect.TypeFor[T]()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Anonymous || !IsScalar(sf.Type) {
			continue
		}
		r.discovered = append(r.discovered, reflected[T](info{name: sf.Name, index: i, typ: sf.Type}, r.provider))
	}
}
