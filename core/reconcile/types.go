package reconcile

import (
	"fmt"
	"strings"

	"record-merger/core/field"
)

// CompareResult is the outcome for one matched pair or one unmatched record.
type CompareResult[T any] struct {
	// Instance is the destination of a matched pair, or the only record of a
	// singleton.
	Instance *T `json:"instance"`

	// Conflicts lists the fields that still disagree after the optional merge.
	// Always empty for singletons.
	Conflicts []field.Conflict `json:"conflicts"`

	// Source is the source record, nil for destination-only results.
	Source *T `json:"-"`

	// Destination is the destination record, nil for source-only results.
	Destination *T `json:"-"`

	// Score is the match score of the pair, zero for singletons.
	Score int `json:"score"`
}

// Matched reports whether the result pairs a source with a destination.
func (r CompareResult[T]) Matched() bool {
	return r.Source != nil && r.Destination != nil
}

// SourceOnly reports whether the result is an unmatched source.
func (r CompareResult[T]) SourceOnly() bool {
	return r.Source != nil && r.Destination == nil
}

// DestinationOnly reports whether the result is an unmatched destination.
func (r CompareResult[T]) DestinationOnly() bool {
	return r.Source == nil && r.Destination != nil
}

// Summary provides aggregate counts over a set of results.
type Summary struct {
	// Total is the number of results.
	Total int `json:"total" yaml:"total"`

	// Matched counts source/destination pairs.
	Matched int `json:"matched" yaml:"matched"`

	// SourceOnly counts sources without a counterpart.
	SourceOnly int `json:"source_only" yaml:"source_only"`

	// DestinationOnly counts destinations without a counterpart.
	DestinationOnly int `json:"destination_only" yaml:"destination_only"`

	// Conflicting counts pairs with at least one conflict.
	Conflicting int `json:"conflicting" yaml:"conflicting"`

	// Conflicts is the total number of conflicting fields.
	Conflicts int `json:"conflicts" yaml:"conflicts"`
}

// Summarize counts results by kind.
func Summarize[T any](results []CompareResult[T]) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Matched():
			s.Matched++
		case r.SourceOnly():
			s.SourceOnly++
		case r.DestinationOnly():
			s.DestinationOnly++
		}
		if len(r.Conflicts) > 0 {
			s.Conflicting++
			s.Conflicts += len(r.Conflicts)
		}
	}
	return s
}

// Mode selects what happens to matched pairs before they are compared.
type Mode string

const (
	// ModeCompare compares pairs without changing them.
	ModeCompare Mode = "compare"
	// ModeMergeMissing fills empty destination fields from the source first.
	ModeMergeMissing Mode = "merge-missing"
	// ModeMerge copies every field from source to destination first.
	ModeMerge Mode = "merge"
)

// Modes lists the supported modes.
var Modes = []Mode{ModeCompare, ModeMergeMissing, ModeMerge}

// ParseMode parses a mode name. The empty string selects ModeCompare.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeCompare, nil
	case ModeCompare, ModeMergeMissing, ModeMerge:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (want one of %v)", s, Modes)
}

// Merges reports whether the mode writes to destination records.
func (m Mode) Merges() bool {
	return m == ModeMergeMissing || m == ModeMerge
}
