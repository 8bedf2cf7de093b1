package irr

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSingularInput marks inputs for which NPV is undefined.
	ErrSingularInput = errors.New("irr: singular input")

	ErrEmptyCashFlow = fmt.Errorf("%w: cash flow is empty", ErrSingularInput)
	ErrSingularRate  = fmt.Errorf("%w: discount rate of -1", ErrSingularInput)
)

// NPV returns the net present value of cashflow at the given per-period discount rate:
//
//	Σ cashflow[i] / (1+rate)^i
//
// Index 0 is undiscounted (the initial outlay).
func NPV(cashflow []float64, rate float64) (float64, error) {
	if len(cashflow) == 0 {
		return 0, ErrEmptyCashFlow
	}
	if 1+rate == 0 {
		return 0, ErrSingularRate
	}
	return npv(cashflow, rate), nil
}

// npv skips validation; callers guarantee a non-empty cashflow and rate != -1.
func npv(cashflow []float64, rate float64) float64 {
	base := 1 + rate
	total := 0.0
	for i, cf := range cashflow {
		total += cf / math.Pow(base, float64(i))
	}
	return total
}
