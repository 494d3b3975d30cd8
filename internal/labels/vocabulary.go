package labels

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Vocabulary is the closed set of identifiers the registry knows about.
type Vocabulary struct {
	AlgorithmColors map[string]string `yaml:"algorithm_colors"`
	AlgorithmNames  map[string]string `yaml:"algorithm_names"`
	ColumnNames     map[string]string `yaml:"column_names"`
	ColumnUnits     map[string]string `yaml:"column_units"`
	LineStyles      map[int]string    `yaml:"line_styles"`
	Markers         map[int]string    `yaml:"markers"`
}

// DefaultVocabulary returns a fresh copy of the stock vocabulary used by the
// astarix evaluation figures.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		AlgorithmColors: map[string]string{
			"astarix":                               "red",
			"astarix-prefix":                        "red",
			"astar-prefix":                          "red",
			"astarix-seeds":                         "mediumseagreen",
			"astar-seeds":                           "mediumseagreen",
			"astarix-seeds_wo_skip_near_crumbs_pos": "yellow", // ablation
			"astarix-seeds_wo_match_pos":            "orange", // ablation
			"dijkstra":                              "darkorange",
			"graphaligner":                          "green",
			"pasgal":                                "cornflowerblue",
			"astar-seeds-intervals":                 "red",
			"astarix-seeds-intervals":               "red",
			"vargas":                                "blue",
			"vg":                                    "orange",
		},
		AlgorithmNames: map[string]string{
			"astar":                                 "A*",
			"astarix":                               "AStarix",
			"astarix-seeds":                         "Seeds heuristic",
			"astar-seeds":                           "Seeds heuristic",
			"astarix-seeds-intervals":               "Seeds heuristic (+intervals)",
			"astar-seeds-intervals":                 "Seeds heuristic (+intervals)",
			"astarix-seeds_wo_skip_near_crumbs_pos": "Seeds -near crumbs",
			"astarix-seeds_wo_match_pos":            "Seeds -match positions",
			"astarix-prefix":                        "Prefix heuristic",
			"astar-prefix":                          "Prefix heuristic",
			"dijkstra":                              "Dijkstra",
			"graphaligner":                          "GraphAligner",
			"pasgal":                                "PaSGAL",
			"vargas":                                "Vargas",
			"vg":                                    "VG",
		},
		ColumnNames: map[string]string{
			"head":            "Reference length",
			"head_Mbp":        "Reference length",
			"s":               "Runtime",
			"N":               "Reads",
			"m":               "Read length",
			"max_rss":         "Memory",
			"score":           "Alignment cost",
			"explored_states": "Explored states",
			"t(map)":          "Alignment time per read",
			"t(map)_per_bp":   "Alignment time per bp",
			"align_sec":       "Alignment time",
			"cost":            "Alignment cost",
			"explored_per_bp": "Explored states per bp",
			"error_rate":      "Error rate",
		},
		ColumnUnits: map[string]string{
			"head":     "bp",
			"head_Mbp": "Mbp",
			"s":        "s",
			"N":        "",
			"m":        "bp",
			"max_rss":  "MB",
		},
		LineStyles: map[int]string{
			50:  ".",
			75:  ":",
			100: "-o",
			150: "-o",
		},
		Markers: map[int]string{
			75:  "^",
			100: "o",
			150: "s",
		},
	}
}

// Merge returns v with every entry of override layered on top.
func (v Vocabulary) Merge(override Vocabulary) Vocabulary {
	out := Vocabulary{
		AlgorithmColors: maps.Clone(v.AlgorithmColors),
		AlgorithmNames:  maps.Clone(v.AlgorithmNames),
		ColumnNames:     maps.Clone(v.ColumnNames),
		ColumnUnits:     maps.Clone(v.ColumnUnits),
		LineStyles:      maps.Clone(v.LineStyles),
		Markers:         maps.Clone(v.Markers),
	}
	out.AlgorithmColors = mergeInto(out.AlgorithmColors, override.AlgorithmColors)
	out.AlgorithmNames = mergeInto(out.AlgorithmNames, override.AlgorithmNames)
	out.ColumnNames = mergeInto(out.ColumnNames, override.ColumnNames)
	out.ColumnUnits = mergeInto(out.ColumnUnits, override.ColumnUnits)
	out.LineStyles = mergeInto(out.LineStyles, override.LineStyles)
	out.Markers = mergeInto(out.Markers, override.Markers)
	return out
}

func mergeInto[K comparable](dst, src map[K]string) map[K]string {
	if dst == nil && len(src) > 0 {
		dst = make(map[K]string, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// LoadVocabulary reads a vocabulary file, YAML by default or TOML when the
// extension is .toml. Missing sections are left nil so the result can be
// merged over DefaultVocabulary.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}

	var v Vocabulary
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		v, err = decodeTOML(data)
	} else {
		err = yaml.Unmarshal(data, &v)
	}
	if err != nil {
		return Vocabulary{}, fmt.Errorf("failed to parse vocabulary %s: %w", path, err)
	}
	return v, nil
}

// TOML keys are always strings, so read-length tables are decoded as text
// and converted.
type tomlVocabulary struct {
	AlgorithmColors map[string]string `toml:"algorithm_colors"`
	AlgorithmNames  map[string]string `toml:"algorithm_names"`
	ColumnNames     map[string]string `toml:"column_names"`
	ColumnUnits     map[string]string `toml:"column_units"`
	LineStyles      map[string]string `toml:"line_styles"`
	Markers         map[string]string `toml:"markers"`
}

func decodeTOML(data []byte) (Vocabulary, error) {
	var raw tomlVocabulary
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Vocabulary{}, err
	}
	lineStyles, err := intKeys("line_styles", raw.LineStyles)
	if err != nil {
		return Vocabulary{}, err
	}
	markers, err := intKeys("markers", raw.Markers)
	if err != nil {
		return Vocabulary{}, err
	}
	return Vocabulary{
		AlgorithmColors: raw.AlgorithmColors,
		AlgorithmNames:  raw.AlgorithmNames,
		ColumnNames:     raw.ColumnNames,
		ColumnUnits:     raw.ColumnUnits,
		LineStyles:      lineStyles,
		Markers:         markers,
	}, nil
}

func intKeys(section string, m map[string]string) (map[int]string, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[int]string, len(m))
	for k, v := range m {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%s: read length %q is not an integer", section, k)
		}
		out[n] = v
	}
	return out, nil
}
