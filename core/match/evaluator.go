package match

import (
	"errors"

	"record-merger/core/equality"
)

// ErrNilComparer is returned when an evaluator is registered without a usable
// comparison strategy.
var ErrNilComparer = errors.New("match: nil comparer")

// Evaluator is one weighted similarity criterion over records of type T.
type Evaluator[T any] interface {
	Weight() int
	// Matches reports whether both records agree on the projected value.
	Matches(x, y *T) bool
}

type evaluator[T any, V any] struct {
	weight  int
	project func(*T) V
	cmp     equality.Comparer[V]
}

// NewEvaluator builds an evaluator from a weight, a projection and a comparer.
func NewEvaluator[T any, V any](weight int, project func(*T) V, cmp equality.Comparer[V]) (Evaluator[T], error) {
	if cmp == nil {
		return nil, ErrNilComparer
	}
	if project == nil {
		return nil, errors.New("match: nil projection")
	}
	return &evaluator[T, V]{weight: weight, project: project, cmp: cmp}, nil
}

func (e *evaluator[T, V]) Weight() int {
	return e.weight
}

func (e *evaluator[T, V]) Matches(x, y *T) bool {
	return e.cmp.Equal(e.project(x), e.project(y))
}
