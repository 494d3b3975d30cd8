package labels

import (
	"fmt"
	"math"
)

const (
	tickTolerance = 1e-4
	// log10 of an exact power of ten can land one ulp below the integer.
	logSnap = 1e-9
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < tickTolerance
}

// floorLog10 returns floor(log10(x)), snapping values within logSnap of an
// integer so that 1000 gives 3 and not 2.
func floorLog10(x float64) int {
	l := math.Log10(x)
	if r := math.Round(l); math.Abs(l-r) < logSnap {
		return int(r)
	}
	return int(math.Floor(l))
}

// FormatLogTick labels a tick on a logarithmic axis in LaTeX math mode.
// pos is the tick position and is ignored; the signature matches a tick
// formatter callback.
//
// Only zero and powers of ten are supported. Any other value returns a
// *TickError carrying the "c × 10^e" label as Fallback.
func FormatLogTick(value float64, pos int) (string, error) {
	if value == 0 {
		return "$0$", nil
	}
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return "", &TickError{Value: value, Coefficient: math.NaN()}
	}

	exponent := floorLog10(value)
	coeff := value / math.Pow10(exponent)
	if approxEqual(coeff, 1.0) {
		// Compares the exponent rather than the value; kept as the figures
		// were produced with it.
		if approxEqual(float64(exponent), 1.0) {
			return "$10$", nil
		}
		return fmt.Sprintf("$10^{%2d}$", exponent), nil
	}

	return "", &TickError{
		Value:       value,
		Coefficient: coeff,
		Exponent:    exponent,
		Fallback:    fmt.Sprintf(`$%2.0f \times 10^{%2d}$`, coeff, exponent),
	}
}
