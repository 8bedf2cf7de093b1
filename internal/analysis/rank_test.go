package analysis

import (
	"errors"
	"testing"

	"blog-apps/internal/irr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solve(t *testing.T, name string, cf []float64) Scenario {
	t.Helper()
	res, err := irr.IRR(cf)
	require.NoError(t, err)
	return Scenario{Name: name, CashFlows: cf, Result: res}
}

func TestRankByRate(t *testing.T) {
	in := []Scenario{
		solve(t, "never", []float64{100, 100}),
		solve(t, "five", []float64{-100, 105}),
		{Name: "broken", Err: errors.New("bad input")},
		solve(t, "ten", []float64{-100, 110}),
		solve(t, "outlay", []float64{-100}),
	}

	got := RankByRate(in)
	require.Len(t, got, len(in))

	names := make([]string, len(got))
	ranks := make([]int, len(got))
	for i, r := range got {
		names[i] = r.Name
		ranks[i] = r.Rank
	}
	assert.Equal(t, []string{"ten", "five", "never", "broken", "outlay"}, names)
	assert.Equal(t, []int{1, 2, 0, 0, 0}, ranks)
}

func TestRankByRateEmpty(t *testing.T) {
	assert.Empty(t, RankByRate(nil))
}
