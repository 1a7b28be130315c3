package equality

import (
	"reflect"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Provider supplies the comparer used for a field type when no strategy was given
// explicitly.
type Provider interface {
	ComparerFor(t reflect.Type) Comparer[any]
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(t reflect.Type) Comparer[any]

// ComparerFor calls f(t).
func (f ProviderFunc) ComparerFor(t reflect.Type) Comparer[any] {
	return f(t)
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})

	defaultProvider = ProviderFunc(defaultComparerFor)
)

// DefaultProvider answers native equality for comparable types, instant equality
// for time.Time, numeric equality for decimal.Decimal, and value equality behind
// pointers.
func DefaultProvider() Provider {
	return defaultProvider
}

// ForType returns the comparer p would use for V, typed for direct use.
func ForType[V any](p Provider) Comparer[V] {
	if p == nil {
		p = defaultProvider
	}
	untyped := p.ComparerFor(reflect.TypeFor[V]())
	return Func[V](func(x, y V) bool { return untyped.Equal(x, y) })
}

func defaultComparerFor(t reflect.Type) Comparer[any] {
	if t == timeType {
		return Erase(Time())
	}
	if t == decimalType {
		return Erase(Decimal())
	}
	if t.Kind() == reflect.Pointer {
		elem := defaultComparerFor(t.Elem())
		return Func[any](func(x, y any) bool {
			xv, yv := reflect.ValueOf(x), reflect.ValueOf(y)
			xnil := !xv.IsValid() || xv.IsNil()
			ynil := !yv.IsValid() || yv.IsNil()
			if xnil || ynil {
				return xnil && ynil
			}
			return elem.Equal(xv.Elem().Interface(), yv.Elem().Interface())
		})
	}
	if t.Comparable() {
		return Func[any](func(x, y any) bool { return x == y })
	}
	return Func[any](reflect.DeepEqual)
}

// TypeProvider resolves comparers from explicit per-type registrations and falls back
// to another provider for everything else. It is safe for concurrent use.
type TypeProvider struct {
	mu        sync.RWMutex
	comparers map[reflect.Type]Comparer[any]
	fallback  Provider
}

// NewTypeProvider creates a provider that defers to fallback, or to DefaultProvider
// when fallback is nil.
func NewTypeProvider(fallback Provider) *TypeProvider {
	if fallback == nil {
		fallback = defaultProvider
	}
	return &TypeProvider{
		comparers: make(map[reflect.Type]Comparer[any]),
		fallback:  fallback,
	}
}

// Register installs c for every field of type V; a later call replaces it.
func Register[V any](p *TypeProvider, c Comparer[V]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.comparers[reflect.TypeFor[V]()] = Erase(c)
}

// ComparerFor implements Provider.
func (p *TypeProvider) ComparerFor(t reflect.Type) Comparer[any] {
	p.mu.RLock()
	c, ok := p.comparers[t]
	p.mu.RUnlock()
	if ok {
		return c
	}
	return p.fallback.ComparerFor(t)
}

func isNilable[V any]() bool {
	switch reflect.TypeFor[V]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
