package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"blog-apps/internal/sailor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoadCashFlows(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"bare.json":   "[-100, 60, 60]",
		"object.json": `{"name": "rental", "cash_flows": [-100, 60, 60]}`,
		"flows.yaml":  "name: rental\ncash_flows:\n  - -100\n  - 60\n  - 60\n",
		"flows.yml":   "cash_flows: [-100, 60, 60]\n",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		got, err := LoadCashFlows(path)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{-100, 60, 60}, got, name)
	}
}

func TestLoadCashFlowsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadCashFlows(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("name: nothing\n"), 0o644))
	_, err = LoadCashFlows(empty)
	assert.Error(t, err)

	_, err = ParseCashFlows([]byte("-100,50"), ".csv")
	assert.Error(t, err)
}

func TestParseFlowList(t *testing.T) {
	got, err := ParseFlowList(" -100, 60 ,60.5,")
	require.NoError(t, err)
	assert.Equal(t, []float64{-100, 60, 60.5}, got)

	_, err = ParseFlowList("-100, abc")
	assert.Error(t, err)

	_, err = ParseFlowList(" , ")
	assert.Error(t, err)

	for _, in := range []string{"-100,NaN", "-100,Inf", "-inf,60", "1e400,1"} {
		_, err = ParseFlowList(in)
		assert.Error(t, err, in)
	}
}

func TestParseCashFlowsRejectsNonFinite(t *testing.T) {
	_, err := ParseCashFlows([]byte("cash_flows: [-100, .inf]\n"), ".yaml")
	assert.Error(t, err)
	_, err = ParseCashFlows([]byte("cash_flows: [-100, .nan]\n"), ".yml")
	assert.Error(t, err)
}

func TestResultCache(t *testing.T) {
	c := NewResultCache(time.Minute, time.Hour)
	defer c.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	res := &sailor.Result{Seed: 9}
	id := c.Put(res)
	require.NotEmpty(t, id)

	got, ok := c.Get(id)
	require.True(t, ok)
	assert.Same(t, res, got)

	_, ok = c.Get("nope")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.sweep()
	assert.Equal(t, 0, c.Len())
}

func TestResultCacheNil(t *testing.T) {
	var c *ResultCache
	_, ok := c.Get("x")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}
