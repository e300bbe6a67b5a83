package mcmcDiag

import "stanstats/pkg/utils/myTools"

// SplitChains 把每条 chain (先截断到公共长度 L) 切成前 ceil(L/2) 和剩余两段,
// 顺序为 [c0 前半, c0 后半, c1 前半, c1 后半, ...]. 返回新分配的切片.
func SplitChains(draws [][]float64) [][]float64 {
	numDraws := myTools.MinLen(draws)
	half := (numDraws + 1) / 2

	split := make([][]float64, 0, 2*len(draws))
	for _, d := range draws {
		split = append(split,
			append([]float64(nil), d[:half]...),
			append([]float64(nil), d[half:numDraws]...),
		)
	}
	return split
}

// SplitEffectiveSampleSize 在 split chain 上计算 ESS
func SplitEffectiveSampleSize(draws [][]float64) (float64, error) {
	return EffectiveSampleSize(SplitChains(draws))
}

// SplitPotentialScaleReduction 在 split chain 上计算 R-hat
func SplitPotentialScaleReduction(draws [][]float64) (float64, error) {
	return PotentialScaleReduction(SplitChains(draws))
}
