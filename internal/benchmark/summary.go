package benchmark

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// AlgoSummary aggregates the records of a single algorithm.
type AlgoSummary struct {
	Algo          string
	Reads         int
	ExploredPerBP float64 // mean
	TMapPerBP     float64 // mean
	ErrorRate     float64 // mean

	code int
}

// Summarize groups records by algo and averages the per-bp metrics.
// Non-finite values (zero-length reads) are counted as reads but left out of
// the means. Groups follow the category order; unknown algos come last,
// sorted by name.
func Summarize(records []Record, cats *Categories) []AlgoSummary {
	if cats == nil {
		cats = DefaultCategories()
	}

	type acc struct {
		sum   [3]float64
		count [3]int
	}
	groups := make(map[string]*AlgoSummary)
	accs := make(map[string]*acc)

	for _, r := range records {
		s, ok := groups[r.Algo]
		if !ok {
			s = &AlgoSummary{Algo: r.Algo, code: cats.Code(r.Algo)}
			groups[r.Algo] = s
			accs[r.Algo] = &acc{}
		}
		s.Reads++
		a := accs[r.Algo]
		for i, v := range [3]float64{r.ExploredPerBP, r.TMapPerBP, r.ErrorRate} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			a.sum[i] += v
			a.count[i]++
		}
	}

	out := make([]AlgoSummary, 0, len(groups))
	for algo, s := range groups {
		a := accs[algo]
		s.ExploredPerBP = mean(a.sum[0], a.count[0])
		s.TMapPerBP = mean(a.sum[1], a.count[1])
		s.ErrorRate = mean(a.sum[2], a.count[2])
		out = append(out, *s)
	}

	slices.SortFunc(out, func(a, b AlgoSummary) int {
		if c := compareCodes(a.code, b.code); c != 0 {
			return c
		}
		return cmp.Compare(a.Algo, b.Algo)
	})
	return out
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

func (s AlgoSummary) String() string {
	return fmt.Sprintf("%s: %d reads, %.4g explored/bp, %.4g s/bp, %.4g error rate",
		s.Algo, s.Reads, s.ExploredPerBP, s.TMapPerBP, s.ErrorRate)
}
