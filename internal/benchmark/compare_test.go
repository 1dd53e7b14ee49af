package benchmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	prev := Run{
		Results: []Result{
			{Name: "B1", Iterations: 10, Elapsed: 100 * time.Millisecond},
			{Name: "B2", Iterations: 1, Elapsed: 200 * time.Millisecond},
		},
	}
	curr := Run{
		Results: []Result{
			{Name: "B1", Iterations: 20, Elapsed: 110 * time.Millisecond}, // 10% slower, ns/op almost halved
			{Name: "B3", Iterations: 1, Elapsed: 300 * time.Millisecond},  // New
		},
	}

	comps := Compare(prev, curr)

	assert.Len(t, comps, 1) // Only B1 matches

	c := comps[0]
	assert.Equal(t, "B1", c.Name)
	assert.InDelta(t, 10.0, c.ElapsedDiff, 0.01)
	assert.InDelta(t, -45.0, c.NsPerOpDiff, 0.01)
	assert.Equal(t, "B1: +10.00% elapsed", c.String())
}

func TestCompare_ZeroPrevious(t *testing.T) {
	prev := Run{Results: []Result{{Name: "B1"}}}
	curr := Run{Results: []Result{{Name: "B1", Iterations: 1, Elapsed: time.Second}}}

	comps := Compare(prev, curr)
	assert.Len(t, comps, 1)
	assert.Zero(t, comps[0].ElapsedDiff)
	assert.Zero(t, comps[0].NsPerOpDiff)
}

func TestRegressions(t *testing.T) {
	comps := []Comparison{
		{Name: "fast", ElapsedDiff: -30},
		{Name: "same", ElapsedDiff: 5},
		{Name: "slow", ElapsedDiff: 25},
	}

	got := Regressions(comps, 10)
	assert.Len(t, got, 1)
	assert.Equal(t, "slow", got[0].Name)
	assert.Empty(t, Regressions(comps, 50))
}
