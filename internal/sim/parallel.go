package sim

import (
	"context"
	"sort"
	"sync"
)

// Ensemble plays numRuns independent games concurrently, seeded from
// seedStart upward.
type Ensemble struct {
	base      *Simulator
	numRuns   int
	seedStart int64
}

func NewEnsemble(s *Simulator, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: s, numRuns: numRuns, seedStart: seedStart}
}

// Run waits for every game. On error the results are returned alongside the
// first error; games cut short by ctx keep their partial results.
func (e *Ensemble) Run(ctx context.Context, frames int) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = e.base.Run(ctx, e.seedStart+int64(idx), frames)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// Stat is the spread of one metric across an ensemble.
type Stat struct {
	Name           string
	Mean, Min, Max float64
}

// Summarize aggregates the metrics of results, sorted by name.
func Summarize(results []*Result) []Stat {
	byName := make(map[string]*Stat)
	n := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		n++
		for name, v := range r.Metrics {
			st, ok := byName[name]
			if !ok {
				st = &Stat{Name: name, Min: v, Max: v}
				byName[name] = st
			}
			st.Mean += v
			if v < st.Min {
				st.Min = v
			}
			if v > st.Max {
				st.Max = v
			}
		}
	}

	stats := make([]Stat, 0, len(byName))
	for _, st := range byName {
		st.Mean /= float64(n)
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}
