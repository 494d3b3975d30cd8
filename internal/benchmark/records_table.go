package benchmark

import (
	"slices"

	"alignbench/internal/table"
)

// RecordsTable renders records that no longer have their source table, such
// as runs loaded from a store. Extra columns follow the measured ones in
// name order, then the derived columns.
func RecordsTable(records []Record) *table.Table {
	hasCrumbs := len(records) > 0 && records[0].HasCrumbs

	var extras []string
	seen := make(map[string]bool)
	for _, r := range records {
		for k := range r.Extra {
			if !seen[k] {
				seen[k] = true
				extras = append(extras, k)
			}
		}
	}
	slices.Sort(extras)

	header := []string{ColAlgo, ColReadName, ColLen, ColPushed, ColPopped, ColExploredStates, ColTMap, ColCost}
	if hasCrumbs {
		header = append(header, ColCrumbs)
	}
	header = append(header, extras...)
	header = append(header, ColPushedPopped, ColExploredPerBP, ColTMapPerBP)
	if hasCrumbs {
		header = append(header, ColCrumbsPerBP)
	}
	header = append(header, ColErrorRate)

	f := table.FormatFloat
	out := table.New(header...)
	for _, r := range records {
		row := []string{r.Algo, r.ReadName, f(r.Len), f(r.Pushed), f(r.Popped), f(r.ExploredStates), f(r.TMap), f(r.Cost)}
		if hasCrumbs {
			row = append(row, f(r.Crumbs))
		}
		for _, k := range extras {
			row = append(row, r.Extra[k])
		}
		row = append(row, f(r.PushedPopped), f(r.ExploredPerBP), f(r.TMapPerBP))
		if hasCrumbs {
			row = append(row, f(r.CrumbsPerBP))
		}
		row = append(row, f(r.ErrorRate))
		out.Rows = append(out.Rows, row)
	}
	return out
}
