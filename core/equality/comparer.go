package equality

import (
	"time"

	"github.com/shopspring/decimal"
)

// Comparer decides whether two values of the same type are equal enough.
type Comparer[V any] interface {
	Equal(x, y V) bool
}

// Func adapts an ordinary function to the Comparer interface.
type Func[V any] func(x, y V) bool

// Equal calls f(x, y).
func (f Func[V]) Equal(x, y V) bool {
	return f(x, y)
}

// Default returns the native equality of V.
func Default[V comparable]() Comparer[V] {
	return Func[V](func(x, y V) bool { return x == y })
}

// Nullable compares the values behind two pointers. Two nil pointers are equal,
// a nil and a non-nil pointer are not.
func Nullable[V comparable]() Comparer[*V] {
	return Func[*V](func(x, y *V) bool {
		if x == nil || y == nil {
			return x == nil && y == nil
		}
		return *x == *y
	})
}

// NullAware treats an absent value on either side as equal to anything.
func NullAware[V comparable]() Comparer[*V] {
	return Func[*V](func(x, y *V) bool {
		if x == nil || y == nil {
			return true
		}
		return *x == *y
	})
}

// Time compares instants, ignoring location and monotonic clock readings.
func Time() Comparer[time.Time] {
	return Func[time.Time](func(x, y time.Time) bool { return x.Equal(y) })
}

// Decimal compares decimals by value, so 1.5 equals 1.50.
func Decimal() Comparer[decimal.Decimal] {
	return Func[decimal.Decimal](func(x, y decimal.Decimal) bool { return x.Equal(y) })
}

// Erase wraps a typed comparer so it can be applied to values held as any.
// Values of another dynamic type are never equal.
func Erase[V any](c Comparer[V]) Comparer[any] {
	return Func[any](func(x, y any) bool {
		xv, xok := asType[V](x)
		yv, yok := asType[V](y)
		if !xok || !yok {
			return false
		}
		return c.Equal(xv, yv)
	})
}

// asType converts x to V, mapping an untyped nil to V's zero value so that
// nil pointers survive the round trip through any.
func asType[V any](x any) (V, bool) {
	if x == nil {
		var zero V
		return zero, isNilable[V]()
	}
	v, ok := x.(V)
	return v, ok
}
