package labels

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownIdentifier matches every *UnknownIdentifierError.
	ErrUnknownIdentifier = errors.New("unknown identifier")
	// ErrUnsupportedTick matches every *TickError.
	ErrUnsupportedTick = errors.New("unsupported log tick")
)

// Kind names the vocabulary a lookup was made against.
type Kind string

const (
	KindAlgorithmColor Kind = "algorithm_color"
	KindAlgorithmName  Kind = "algorithm_name"
	KindColumnName     Kind = "column_name"
	KindColumnUnit     Kind = "column_unit"
	KindLineStyle      Kind = "line_style"
	KindMarker         Kind = "marker"
)

// UnknownIdentifierError is returned by the fail-fast lookups when the key
// is not in the vocabulary.
type UnknownIdentifierError struct {
	Kind Kind
	Key  string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown identifier for %s: %q", e.Kind, e.Key)
}

func (e *UnknownIdentifierError) Is(target error) bool {
	return target == ErrUnknownIdentifier
}

// TickError is returned by FormatLogTick for values that are not a power of
// ten. Fallback holds the "coefficient times power" label, which callers may
// choose to use.
type TickError struct {
	Value       float64
	Coefficient float64
	Exponent    int
	Fallback    string
}

func (e *TickError) Error() string {
	return fmt.Sprintf("log tick %v is not a power of ten (coefficient %v)", e.Value, e.Coefficient)
}

func (e *TickError) Is(target error) bool {
	return target == ErrUnsupportedTick
}
