// Package reconcile pairs up two collections of same-shaped records and reports or
// resolves the field-level disagreements between the pairs.
//
// Typical callers hold a freshly fetched view of some entities (the sources) and a
// stored copy of them (the destinations), with no reliable shared identity.
//
// # Architecture
//
// The engine combines three parts:
//
// 1. Match: a weighted scorer (package match). Each registered evaluator compares one
// projection of both records and contributes its weight when they agree.
//
// 2. Pairing: every source is scored against every destination, candidates are sorted
// by score and committed greedily, highest first, skipping zero scores and records
// already claimed. Leftovers on either side become singletons. The assignment is an
// approximation of maximum-weight matching, not an optimal one.
//
// 3. Diff: each matched pair is optionally merged and then compared field by field
// (package diff), yielding one CompareResult per pair or singleton.
//
// # Performance
//
// Scoring is the dominant cost (sources x destinations evaluations). WithWorkers
// spreads it over several goroutines; results are identical to the sequential run.
//
// # Field Tables
//
// New discovers the scalar fields of T by reflection, once. NewWithRegistry
// accepts a registry built from an explicit table of field.Define descriptors
// instead, whose getters and setters are plain functions.
//
// # Usage Example
//
//	engine, err := reconcile.New[Product]("ID", true)
//	if err != nil {
//	    return err
//	}
//	_ = reconcile.AddEvaluator[Product, string](engine, 100, "SKU", equality.Text(equality.CaseInsensitive))
//	_ = engine.IgnoreField("UpdatedAt")
//
//	results := engine.Compare(feed, stored)
//	for _, r := range results {
//	    for _, c := range r.Conflicts {
//	        fmt.Printf("changing %s from %s to %s\n", c.Property, c.Destination, c.Source)
//	    }
//	}
//
// Configure the engine fully before the first Compare or Merge call and treat it as
// read-only afterwards; it may then be shared between goroutines.
package reconcile
