package mcmcDiag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stanstats/timeSeries/mcmcDiag"
)

func TestSplitChainsLayout(t *testing.T) {
	draws := [][]float64{
		{1, 2, 3, 4, 5, 6, 7},
		{10, 20, 30, 40, 50},
	}
	// 公共长度 5, 前半 ceil(5/2) = 3
	want := [][]float64{
		{1, 2, 3}, {4, 5},
		{10, 20, 30}, {40, 50},
	}
	assert.Equal(t, want, mcmcDiag.SplitChains(draws))
}

func TestSplitChainsEvenLength(t *testing.T) {
	got := mcmcDiag.SplitChains([][]float64{{1, 2, 3, 4}})
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, got)
}

func TestSplitChainsDoesNotAlias(t *testing.T) {
	draws := [][]float64{{1, 2, 3, 4}}
	split := mcmcDiag.SplitChains(draws)
	split[0][0] = 99
	split[1][0] = 99
	assert.Equal(t, []float64{1, 2, 3, 4}, draws[0])
}

func TestSplitIdentity(t *testing.T) {
	draws := randomChains(3, 401, 0.6, 31)
	draws[1] = draws[1][:377]

	ess := mustEval(t, mcmcDiag.SplitEffectiveSampleSize, draws)
	assert.Equal(t, mustEval(t, mcmcDiag.EffectiveSampleSize, mcmcDiag.SplitChains(draws)), ess)

	rhat := mustEval(t, mcmcDiag.SplitPotentialScaleReduction, draws)
	assert.Equal(t, mustEval(t, mcmcDiag.PotentialScaleReduction, mcmcDiag.SplitChains(draws)), rhat)
}

func TestSplitDoublesChainCount(t *testing.T) {
	split := mcmcDiag.SplitChains(randomChains(4, 10, 0, 1))
	require.Len(t, split, 8)
	for _, c := range split {
		assert.Len(t, c, 5)
	}
}
