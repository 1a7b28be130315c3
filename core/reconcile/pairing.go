package reconcile

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// pair is a committed match or a singleton; exactly one side is nil for
// singletons.
type pair[T any] struct {
	src, dst *T
	score    int
}

type candidate struct {
	src, dst int
	score    int
}

// assign pairs sources to destinations greedily by descending score. Each index
// is committed at most once and zero scores never match.
//
// Output order: sources in input order (matched or not), then unmatched
// destinations in input order.
func (e *Engine[T]) assign(sources, destinations []*T) []pair[T] {
	candidates := e.candidates(sources, destinations)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	srcMatch := make([]int, len(sources))
	for i := range srcMatch {
		srcMatch[i] = -1
	}
	dstUsed := make([]bool, len(destinations))
	scores := make([]int, len(sources))

	for _, c := range candidates {
		if srcMatch[c.src] >= 0 || dstUsed[c.dst] {
			continue
		}
		srcMatch[c.src] = c.dst
		dstUsed[c.dst] = true
		scores[c.src] = c.score
	}

	pairs := make([]pair[T], 0, len(sources)+len(destinations))
	for i, src := range sources {
		if j := srcMatch[i]; j >= 0 {
			pairs = append(pairs, pair[T]{src: src, dst: destinations[j], score: scores[i]})
		} else {
			pairs = append(pairs, pair[T]{src: src})
		}
	}
	for j, dst := range destinations {
		if !dstUsed[j] {
			pairs = append(pairs, pair[T]{dst: dst})
		}
	}
	return pairs
}

// candidates evaluates the full cross product. Rows are independent, so they are
// spread over the configured number of workers.
func (e *Engine[T]) candidates(sources, destinations []*T) []candidate {
	m := len(destinations)
	rows := make([][]candidate, len(sources))

	scoreRow := func(i int) {
		row := make([]candidate, 0, m)
		for j, dst := range destinations {
			if s := e.scorer.Score(sources[i], dst); s != 0 {
				row = append(row, candidate{src: i, dst: j, score: s})
			}
		}
		rows[i] = row
	}

	if e.opts.workers <= 1 || len(sources) < 2 {
		for i := range sources {
			scoreRow(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(e.opts.workers)
		for i := range sources {
			g.Go(func() error {
				scoreRow(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	var total int
	for _, row := range rows {
		total += len(row)
	}
	candidates := make([]candidate, 0, total)
	for _, row := range rows {
		candidates = append(candidates, row...)
	}
	return candidates
}
