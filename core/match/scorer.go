package match

import (
	"math"

	"record-merger/core/equality"
	"record-merger/core/field"
)

// Scorer sums evaluator weights over pairs of records. Register evaluators before
// scoring; Score itself only reads and may be called concurrently.
type Scorer[T any] struct {
	evaluators []Evaluator[T]
	provider   equality.Provider
}

// NewScorer creates a scorer with no evaluators and the default strategy provider.
func NewScorer[T any]() *Scorer[T] {
	return &Scorer[T]{provider: equality.DefaultProvider()}
}

// SetProvider changes the provider consulted by evaluators added without a
// comparer from now on.
func (s *Scorer[T]) SetProvider(p equality.Provider) {
	if p == nil {
		p = equality.DefaultProvider()
	}
	s.provider = p
}

// Provider returns the current strategy provider.
func (s *Scorer[T]) Provider() equality.Provider {
	return s.provider
}

// Use appends a prepared evaluator.
func (s *Scorer[T]) Use(e Evaluator[T]) {
	s.evaluators = append(s.evaluators, e)
}

// Add registers an evaluator projecting V out of each record. A nil cmp falls
// back to the scorer's provider for V.
func Add[T any, V any](s *Scorer[T], weight int, project func(*T) V, cmp equality.Comparer[V]) error {
	if cmp == nil {
		cmp = equality.ForType[V](s.provider)
	}
	e, err := NewEvaluator(weight, project, cmp)
	if err != nil {
		return err
	}
	s.Use(e)
	return nil
}

// AddField registers an evaluator over a validated field.
func AddField[T any, V any](s *Scorer[T], weight int, acc field.Accessor[T, V], cmp equality.Comparer[V]) error {
	return Add(s, weight, acc.Get, cmp)
}

// Score rates how alike x and y are. The same record scores math.MaxInt.
func (s *Scorer[T]) Score(x, y *T) int {
	if x == y {
		return math.MaxInt
	}
	score := 0
	for _, e := range s.evaluators {
		if e.Matches(x, y) {
			score += e.Weight()
		}
	}
	return score
}

// Len returns the number of registered evaluators.
func (s *Scorer[T]) Len() int {
	return len(s.evaluators)
}
