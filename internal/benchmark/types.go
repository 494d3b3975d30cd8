package benchmark

// Column names used by the astarix performance output.
const (
	ColReadName       = "readname"
	ColAlgo           = "algo"
	ColPushed         = "pushed"
	ColPopped         = "popped"
	ColExploredStates = "explored_states"
	ColLen            = "len"
	ColTMap           = "t(map)"
	ColCost           = "cost"
	ColCrumbs         = "crumbs"

	ColPushedPopped  = "pushed+popped"
	ColExploredPerBP = "explored_per_bp"
	ColTMapPerBP     = "t(map)_per_bp"
	ColCrumbsPerBP   = "crumbs_per_bp"
	ColErrorRate     = "error_rate"

	// Aggregation output.
	ColHead    = "head"
	ColHeadMbp = "head_Mbp"
)

// RequiredColumns must be present in a performance table.
var RequiredColumns = []string{
	ColPushed, ColPopped, ColExploredStates, ColLen, ColTMap, ColCost, ColAlgo, ColReadName,
}

// Record is one alignment attempt for one read, with its derived metrics.
type Record struct {
	ReadName string `json:"readname"`
	Algo     string `json:"algo"`
	// AlgoCode is the position of Algo in the category order, or -1.
	AlgoCode int `json:"algo_code"`

	Pushed         float64 `json:"pushed"`
	Popped         float64 `json:"popped"`
	ExploredStates float64 `json:"explored_states"`
	Len            float64 `json:"len"`
	TMap           float64 `json:"t_map"`
	Cost           float64 `json:"cost"`
	Crumbs         float64 `json:"crumbs,omitempty"`
	HasCrumbs      bool    `json:"has_crumbs"`

	PushedPopped  float64 `json:"pushed_popped"`
	ExploredPerBP float64 `json:"explored_per_bp"`
	TMapPerBP     float64 `json:"t_map_per_bp"`
	CrumbsPerBP   float64 `json:"crumbs_per_bp,omitempty"`
	ErrorRate     float64 `json:"error_rate"`

	// Extra holds the remaining input columns verbatim.
	Extra map[string]string `json:"extra,omitempty"`
}

// derive fills the derived metrics from the measured ones. A zero Len is
// left to IEEE-754 semantics.
func (r *Record) derive() {
	r.PushedPopped = r.Pushed + r.Popped
	r.ExploredPerBP = r.ExploredStates / r.Len
	r.TMapPerBP = r.TMap / r.Len
	if r.HasCrumbs {
		r.CrumbsPerBP = r.Crumbs / r.Len
	}
	r.ErrorRate = r.Cost / r.Len
}
