package labels

import (
	"fmt"
	"log/slog"

	"alignbench/internal/telemetry"
)

const (
	policyFatal    = "fatal"
	policyFallback = "fallback"
)

// Registry maps benchmark identifiers to presentation attributes.
//
// Algorithm and read-length lookups fail fast: a miss returns an
// *UnknownIdentifierError, since a wrong color or marker silently corrupts
// a figure. Column lookups fall back to the raw identifier.
type Registry struct {
	vocab  Vocabulary
	logger *slog.Logger
	onMiss func(kind Kind, policy string)
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger that receives miss diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithMissHook replaces the default miss counter.
func WithMissHook(fn func(kind Kind, policy string)) Option {
	return func(r *Registry) { r.onMiss = fn }
}

// New returns a registry over v.
func New(v Vocabulary, opts ...Option) *Registry {
	r := &Registry{
		vocab: v,
		onMiss: func(kind Kind, policy string) {
			telemetry.TrackLabelMiss(string(kind), policy)
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Default returns a registry over DefaultVocabulary.
func Default(opts ...Option) *Registry {
	return New(DefaultVocabulary(), opts...)
}

// Vocabulary returns the registry's vocabulary.
func (r *Registry) Vocabulary() Vocabulary {
	return r.vocab
}

// AlgorithmColor returns the plot color of an algorithm.
func (r *Registry) AlgorithmColor(algo string) (string, error) {
	return strict(r, KindAlgorithmColor, r.vocab.AlgorithmColors, algo)
}

// AlgorithmName returns the legend label of an algorithm.
func (r *Registry) AlgorithmName(algo string) (string, error) {
	return strict(r, KindAlgorithmName, r.vocab.AlgorithmNames, algo)
}

// ColumnName returns the axis label of a column, or col itself if unknown.
func (r *Registry) ColumnName(col string) string {
	return r.lenient(KindColumnName, r.vocab.ColumnNames, col)
}

// ColumnUnit returns the unit of a column, or col itself if unknown.
func (r *Registry) ColumnUnit(col string) string {
	return r.lenient(KindColumnUnit, r.vocab.ColumnUnits, col)
}

// LineStyle returns the matplotlib line style for a read length.
func (r *Registry) LineStyle(readLen int) (string, error) {
	return strict(r, KindLineStyle, r.vocab.LineStyles, readLen)
}

// Marker returns the matplotlib marker for a read length.
func (r *Registry) Marker(readLen int) (string, error) {
	return strict(r, KindMarker, r.vocab.Markers, readLen)
}

func strict[K comparable](r *Registry, kind Kind, m map[K]string, key K) (string, error) {
	if v, ok := m[key]; ok {
		return v, nil
	}
	k := fmt.Sprint(key)
	r.miss(kind, k, policyFatal)
	return "", &UnknownIdentifierError{Kind: kind, Key: k}
}

func (r *Registry) lenient(kind Kind, m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	r.miss(kind, key, policyFallback)
	return key
}

func (r *Registry) miss(kind Kind, key, policy string) {
	r.logger.Warn("unknown identifier", "kind", string(kind), "key", key, "policy", policy)
	if r.onMiss != nil {
		r.onMiss(kind, policy)
	}
}
