// Package match scores how likely two records are to describe the same entity.
//
// A Scorer holds weighted evaluators. Each evaluator projects a value out of both
// records and compares the projections; the score of a pair is the sum of the
// weights of the evaluators that agree. A record compared with itself (the same
// pointer) scores math.MaxInt regardless of evaluators.
package match
