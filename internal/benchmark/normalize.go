package benchmark

import (
	"cmp"
	"log/slog"
	"slices"

	"alignbench/internal/table"
	"alignbench/internal/telemetry"
)

// Options controls NormalizePerformance.
type Options struct {
	// AlgoOverride, when non-empty, replaces every row's algo.
	AlgoOverride string
	// Categories orders the algo column. Defaults to DefaultCategories.
	Categories *Categories
	// Logger receives diagnostics. Defaults to slog.Default.
	Logger *slog.Logger
}

// PerformanceTable is a normalized performance table indexed by read name.
type PerformanceTable struct {
	Records   []Record
	HasCrumbs bool

	categories *Categories
	source     *table.Table
	index      map[string][]int
}

// NormalizePerformance parses raw and appends the derived per-read metrics.
// raw is not modified.
func NormalizePerformance(raw *table.Table, opts Options) (*PerformanceTable, error) {
	for _, col := range RequiredColumns {
		if !raw.Has(col) {
			return nil, &ColumnError{Column: col}
		}
	}
	cats := opts.Categories
	if cats == nil {
		cats = DefaultCategories()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	hasCrumbs := raw.Has(ColCrumbs)
	// Derived columns are recomputed, so stale input copies are not kept.
	known := map[string]bool{
		ColReadName: true, ColAlgo: true,
		ColPushedPopped: true, ColExploredPerBP: true, ColTMapPerBP: true, ColCrumbsPerBP: true, ColErrorRate: true,
	}
	numeric := []string{ColPushed, ColPopped, ColExploredStates, ColLen, ColTMap, ColCost}
	if hasCrumbs {
		numeric = append(numeric, ColCrumbs)
	}
	idx := make(map[string]int, len(numeric)+2)
	for _, col := range slices.Concat(numeric, []string{ColReadName, ColAlgo}) {
		idx[col] = raw.Index(col)
		known[col] = true
	}

	pt := &PerformanceTable{
		Records:    make([]Record, 0, len(raw.Rows)),
		HasCrumbs:  hasCrumbs,
		categories: cats,
		source:     raw.Clone(),
		index:      make(map[string][]int, len(raw.Rows)),
	}

	for i, row := range raw.Rows {
		values := make(map[string]float64, len(numeric))
		for _, col := range numeric {
			cell := row[idx[col]]
			v, err := table.ParseFloat(cell)
			if err != nil {
				return nil, &CellError{Row: i, Column: col, Value: cell, Err: err}
			}
			values[col] = v
		}

		rec := Record{
			ReadName:       row[idx[ColReadName]],
			Pushed:         values[ColPushed],
			Popped:         values[ColPopped],
			ExploredStates: values[ColExploredStates],
			Len:            values[ColLen],
			TMap:           values[ColTMap],
			Cost:           values[ColCost],
			Crumbs:         values[ColCrumbs],
			HasCrumbs:      hasCrumbs,
		}
		rec.derive()

		algo := row[idx[ColAlgo]]
		if opts.AlgoOverride != "" {
			algo = opts.AlgoOverride
		} else if !cats.Contains(algo) {
			logger.Debug("algo outside category vocabulary", "algo", algo, "readname", rec.ReadName)
			algo = ""
		}
		rec.Algo = algo
		rec.AlgoCode = cats.Code(algo)

		for j, h := range raw.Header {
			if known[h] {
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[h] = row[j]
		}

		pt.index[rec.ReadName] = append(pt.index[rec.ReadName], len(pt.Records))
		pt.Records = append(pt.Records, rec)
	}

	telemetry.TrackRowsNormalized("performance", len(pt.Records))
	return pt, nil
}

// Lookup returns every record for readname, in input order. Read names are
// not unique in practice.
func (pt *PerformanceTable) Lookup(readname string) []Record {
	positions := pt.index[readname]
	out := make([]Record, len(positions))
	for i, p := range positions {
		out[i] = pt.Records[p]
	}
	return out
}

// ReadNames returns the distinct read names in first-seen order.
func (pt *PerformanceTable) ReadNames() []string {
	seen := make(map[string]bool, len(pt.index))
	var names []string
	for _, r := range pt.Records {
		if !seen[r.ReadName] {
			seen[r.ReadName] = true
			names = append(names, r.ReadName)
		}
	}
	return names
}

// Categories returns the vocabulary the table was normalized with.
func (pt *PerformanceTable) Categories() *Categories {
	return pt.categories
}

// SortByAlgo returns the records stable-sorted by category code. Records
// outside the vocabulary sort last.
func (pt *PerformanceTable) SortByAlgo() []Record {
	out := slices.Clone(pt.Records)
	slices.SortStableFunc(out, func(a, b Record) int {
		return compareCodes(a.AlgoCode, b.AlgoCode)
	})
	return out
}

// compareCodes orders category codes with -1 (missing) last.
func compareCodes(a, b int) int {
	switch {
	case a == b:
		return 0
	case a < 0:
		return 1
	case b < 0:
		return -1
	}
	return cmp.Compare(a, b)
}

type derivedColumn struct {
	name string
	get  func(r Record) float64
}

// Table renders the normalized records: the input columns in input order,
// with algo rewritten, followed by the derived columns.
func (pt *PerformanceTable) Table() *table.Table {
	out := pt.source.Clone()
	algoIdx := out.Index(ColAlgo)
	for i := range out.Rows {
		out.Rows[i][algoIdx] = pt.Records[i].Algo
	}

	derived := []derivedColumn{
		{ColPushedPopped, func(r Record) float64 { return r.PushedPopped }},
		{ColExploredPerBP, func(r Record) float64 { return r.ExploredPerBP }},
		{ColTMapPerBP, func(r Record) float64 { return r.TMapPerBP }},
	}
	if pt.HasCrumbs {
		derived = append(derived, derivedColumn{ColCrumbsPerBP, func(r Record) float64 { return r.CrumbsPerBP }})
	}
	derived = append(derived, derivedColumn{ColErrorRate, func(r Record) float64 { return r.ErrorRate }})

	for _, d := range derived {
		cells := make([]string, len(pt.Records))
		for i, r := range pt.Records {
			cells[i] = table.FormatFloat(d.get(r))
		}
		// Lengths always match the cloned source.
		_ = out.AppendColumn(d.name, cells)
	}
	return out
}
