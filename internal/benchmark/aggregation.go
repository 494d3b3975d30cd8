package benchmark

import (
	"alignbench/internal/table"
	"alignbench/internal/telemetry"
)

// NormalizeAggregation returns a copy of raw with head_Mbp (reference
// length in megabase pairs) appended.
func NormalizeAggregation(raw *table.Table) (*table.Table, error) {
	heads, ok := raw.Column(ColHead)
	if !ok {
		return nil, &ColumnError{Column: ColHead}
	}

	cells := make([]string, len(heads))
	for i, cell := range heads {
		v, err := table.ParseFloat(cell)
		if err != nil {
			return nil, &CellError{Row: i, Column: ColHead, Value: cell, Err: err}
		}
		cells[i] = table.FormatFloat(v / 1e6)
	}

	out := raw.Clone()
	if err := out.AppendColumn(ColHeadMbp, cells); err != nil {
		return nil, err
	}
	telemetry.TrackRowsNormalized("aggregation", len(out.Rows))
	return out, nil
}
