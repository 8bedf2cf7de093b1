// Package format renders calculator outputs the way the apps display them.
package format

import (
	"math"
	"strconv"

	"blog-apps/internal/irr"

	"github.com/shopspring/decimal"
)

const DivergedMessage = "IRR has diverged. Please try again."

// Percent renders a rate as a percentage with two decimals: 0.1234 -> "12.34%".
// Halves round away from zero. NaN and infinities render as "NaN", "+Inf", "-Inf".
func Percent(rate float64) string {
	if !finite(rate) {
		return nonFinite(rate) + "%"
	}
	return decimal.NewFromFloat(rate).Shift(2).StringFixed(2) + "%"
}

// Fixed renders x with two decimals.
func Fixed(x float64) string {
	if !finite(x) {
		return nonFinite(x)
	}
	return decimal.NewFromFloat(x).StringFixed(2)
}

// Round2 rounds x to two decimals. Non-finite values pass through.
func Round2(x float64) float64 {
	if !finite(x) {
		return x
	}
	f, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return f
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// decimal has no NaN or infinity.
func nonFinite(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// IRRMessage is the user-facing line for a solver result.
func IRRMessage(res irr.Result) string {
	rate, ok := res.Rate()
	if !ok {
		return DivergedMessage
	}
	return "Projected IRR is " + Percent(rate)
}
