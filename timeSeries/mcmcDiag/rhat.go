package mcmcDiag

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// PotentialScaleReduction 经典 Gelman-Rubin R-hat:
//
//	W = mean(chain 方差),  B = N⋅var(chain 均值)
//	varPlus = (N-1)/N⋅W + B/N
//	R-hat = sqrt(varPlus / W)
//
// 截断与 NaN 规则同 EffectiveSampleSize; W 为 0 时返回 NaN.
func PotentialScaleReduction(draws [][]float64) (float64, error) {
	chains, ok, err := trimmedChains(draws)
	if err != nil || !ok {
		return math.NaN(), err
	}

	numChains := len(chains)
	n := float64(len(chains[0]))

	chainMean := make([]float64, numChains)
	chainVar := make([]float64, numChains)
	for c, draw := range chains {
		chainMean[c], chainVar[c] = stat.MeanVariance(draw, nil)
	}

	varWithin := stat.Mean(chainVar, nil)
	varBetween := 0.0
	if numChains > 1 {
		varBetween = n * stat.Variance(chainMean, nil)
	}

	if !(varWithin > 0) {
		return math.NaN(), nil
	}
	varPlus := (n-1)/n*varWithin + varBetween/n
	return math.Sqrt(varPlus / varWithin), nil
}
