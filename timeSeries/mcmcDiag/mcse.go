package mcmcDiag

import (
	"math"

	"stanstats/pkg/utils/myTools"
	"stanstats/stats/summary"
)

// MonteCarloStandardError = 全部 draws 的标准差 / sqrt(ESS)
func MonteCarloStandardError(draws [][]float64) (float64, error) {
	ess, err := EffectiveSampleSize(draws)
	if err != nil {
		return math.NaN(), err
	}
	return summary.StdDev(myTools.Flatten(draws)) / math.Sqrt(ess), nil
}
