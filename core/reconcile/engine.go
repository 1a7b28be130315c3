package reconcile

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"record-merger/core/diff"
	"record-merger/core/equality"
	"record-merger/core/field"
	"record-merger/core/match"
)

// Engine reconciles collections of *T.
type Engine[T any] struct {
	key      string
	registry *field.Registry[T]
	scorer   *match.Scorer[T]
	differ   *diff.Engine[T]
	opts     options
}

// New creates an engine keyed on the named field of T whose fields are
// discovered from T. When ignoreKey is set the key never shows up in conflicts
// and is never merged. The key is not used for matching unless an evaluator is
// registered for it.
func New[T any](key string, ignoreKey bool, opts ...Option) (*Engine[T], error) {
	registry, err := field.NewRegistry[T]()
	if err != nil {
		return nil, err
	}
	return NewWithRegistry(key, ignoreKey, registry, opts...)
}

// NewWithRegistry is like New but diffs with the descriptors of registry,
// typically a table built with field.NewTable.
func NewWithRegistry[T any](key string, ignoreKey bool, registry *field.Registry[T], opts ...Option) (*Engine[T], error) {
	if registry == nil {
		return nil, errors.New("reconcile: nil registry")
	}
	var err error
	if ignoreKey {
		err = registry.Ignore(key)
	} else {
		err = field.Check[T](key)
	}
	if err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine[T]{
		key:      key,
		registry: registry,
		scorer:   match.NewScorer[T](),
		differ:   diff.New(registry),
		opts:     o,
	}, nil
}

// Key returns the key field name.
func (e *Engine[T]) Key() string {
	return e.key
}

// Match exposes the scorer for registering evaluators.
func (e *Engine[T]) Match() *match.Scorer[T] {
	return e.scorer
}

// Diff exposes the field-level engine.
func (e *Engine[T]) Diff() *diff.Engine[T] {
	return e.differ
}

// Fields lists the fields that take part in compare and merge.
func (e *Engine[T]) Fields() []string {
	return e.differ.Fields()
}

// AddEvaluator scores pairs agreeing on the named field with weight. A nil cmp
// uses the default strategy for V.
func AddEvaluator[T any, V any](e *Engine[T], weight int, name string, cmp equality.Comparer[V]) error {
	acc, err := field.Of[T, V](name)
	if err != nil {
		return err
	}
	return match.AddField(e.scorer, weight, acc, cmp)
}

// IgnoreField excludes the named field from compare and merge.
func (e *Engine[T]) IgnoreField(name string) error {
	return e.registry.Ignore(name)
}

// ForField sets the strategy used to compare the named field. A nil cmp uses the
// default strategy for V.
func ForField[T any, V any](e *Engine[T], name string, cmp equality.Comparer[V]) error {
	acc, err := field.Of[T, V](name)
	if err != nil {
		return err
	}
	e.registry.Override(field.NewWithProvider(acc, cmp, e.registry.Provider()))
	return nil
}

// SetDefaultProvider changes the provider used by fields and evaluators configured
// without an explicit strategy.
func (e *Engine[T]) SetDefaultProvider(p equality.Provider) {
	e.registry.SetProvider(p)
	e.scorer.SetProvider(p)
}

// Compare pairs the records and reports conflicts without changing anything.
func (e *Engine[T]) Compare(sources, destinations []*T) []CompareResult[T] {
	return e.run(ModeCompare, sources, destinations)
}

// MergeMissingAndCompare fills empty destination fields of every pair from the
// source, then reports the remaining conflicts.
func (e *Engine[T]) MergeMissingAndCompare(sources, destinations []*T) []CompareResult[T] {
	return e.run(ModeMergeMissing, sources, destinations)
}

// Merge overwrites every destination field of every pair with the source value.
// The returned results carry no conflicts for matched pairs.
func (e *Engine[T]) Merge(sources, destinations []*T) []CompareResult[T] {
	return e.run(ModeMerge, sources, destinations)
}

// Run dispatches on mode.
func (e *Engine[T]) Run(mode Mode, sources, destinations []*T) ([]CompareResult[T], error) {
	switch mode {
	case ModeCompare, ModeMergeMissing, ModeMerge:
		return e.run(mode, sources, destinations), nil
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}

func (e *Engine[T]) run(mode Mode, sources, destinations []*T) []CompareResult[T] {
	pairs := e.assign(sources, destinations)

	results := make([]CompareResult[T], 0, len(pairs))
	for _, p := range pairs {
		results = append(results, e.resolve(mode, p))
	}

	if ce := e.opts.logger.Check(zap.DebugLevel, "reconcile finished"); ce != nil {
		s := Summarize(results)
		ce.Write(
			zap.String("mode", string(mode)),
			zap.Int("sources", len(sources)),
			zap.Int("destinations", len(destinations)),
			zap.Int("matched", s.Matched),
			zap.Int("source_only", s.SourceOnly),
			zap.Int("destination_only", s.DestinationOnly),
			zap.Int("conflicts", s.Conflicts),
		)
	}
	return results
}

func (e *Engine[T]) resolve(mode Mode, p pair[T]) CompareResult[T] {
	if p.src == nil || p.dst == nil {
		instance := p.src
		if instance == nil {
			instance = p.dst
		}
		return CompareResult[T]{
			Instance:    instance,
			Conflicts:   []field.Conflict{},
			Source:      p.src,
			Destination: p.dst,
		}
	}

	switch mode {
	case ModeMergeMissing:
		e.differ.MergeMissing(p.src, p.dst)
	case ModeMerge:
		e.differ.MergeAll(p.src, p.dst)
	}

	conflicts := e.differ.Compare(p.src, p.dst)
	if conflicts == nil {
		conflicts = []field.Conflict{}
	}
	return CompareResult[T]{
		Instance:    p.dst,
		Conflicts:   conflicts,
		Source:      p.src,
		Destination: p.dst,
		Score:       p.score,
	}
}
