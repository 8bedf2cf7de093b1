package format

import (
	"math"
	"testing"

	"blog-apps/internal/irr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	tests := map[float64]string{
		0:        "0.00%",
		0.1:      "10.00%",
		0.123456: "12.35%",
		1.5:      "150.00%",
		-0.05:    "-5.00%",
		0.00004:  "0.00%",
	}
	for in, want := range tests {
		assert.Equal(t, want, Percent(in), "Percent(%v)", in)
	}
}

func TestFixedAndRound2(t *testing.T) {
	assert.Equal(t, "96.40", Fixed(96.4))
	assert.Equal(t, "3.00", Fixed(3))
	assert.Equal(t, 12.35, Round2(12.3456))
	assert.Equal(t, 7.0, Round2(7))
}

func TestNonFinite(t *testing.T) {
	assert.Equal(t, "+Inf", Fixed(math.Inf(1)))
	assert.Equal(t, "-Inf", Fixed(math.Inf(-1)))
	assert.Equal(t, "NaN", Fixed(math.NaN()))
	assert.Equal(t, "+Inf%", Percent(math.Inf(1)))
	assert.True(t, math.IsInf(Round2(math.Inf(-1)), -1))
}

func TestIRRMessage(t *testing.T) {
	res, err := irr.IRR([]float64{-100, 110})
	require.NoError(t, err)
	assert.Equal(t, "Projected IRR is 10.00%", IRRMessage(res))

	res, err = irr.IRR([]float64{100, 100})
	require.NoError(t, err)
	assert.Equal(t, DivergedMessage, IRRMessage(res))
}
