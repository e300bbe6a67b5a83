package mcmcDiag

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"stanstats/pkg/utils/myTools"
	"stanstats/timeSeries/acf"
)

// EffectiveSampleSize 计算所有 chain 合并后的有效样本量,
// 结果上限为 numTotalDraws⋅log10(numTotalDraws).
//
// chain 从尾部截断到最短 chain 的长度. 少于 4 个 draw, 存在非有限值,
// 或所有 chain 为同一常数时返回 NaN. 见 Stan reference manual "Effective Sample Size".
func EffectiveSampleSize(draws [][]float64) (float64, error) {
	chains, ok, err := trimmedChains(draws)
	if err != nil || !ok {
		return math.NaN(), err
	}

	numChains := len(chains)
	numDraws := len(chains[0])
	n := float64(numDraws)

	// acov: 每条 chain 的自协方差
	acov := make([][]float64, numChains)
	chainMean := make([]float64, numChains)
	chainVar := make([]float64, numChains)
	for c, draw := range chains {
		acov[c] = acf.AutoCovariance(draw)
		chainMean[c] = myTools.ArrMean(draw)
		chainVar[c] = acov[c][0] * n / (n - 1)
	}

	meanVar := myTools.ArrMean(chainVar)

	varPlus := meanVar * (n - 1) / n
	if numChains > 1 {
		varPlus += myTools.SampleVariance(chainMean)
	}

	// 跨 chain 平均后的 lag 自相关
	acovS := make([]float64, numChains)
	rhoAt := func(lag int) float64 {
		for c := range acov {
			acovS[c] = acov[c][lag]
		}
		return 1 - (meanVar-myTools.ArrMean(acovS))/varPlus
	}

	rhoHatS := make([]float64, numDraws)
	rhoHatEven := 1.0
	rhoHatS[0] = rhoHatEven
	rhoHatOdd := rhoAt(1)
	rhoHatS[1] = rhoHatOdd

	// Geyer initial positive sequence. 只循环到 numDraws-4,
	// 留最后一对自相关作为偏差项, 降低 antithetic chain 的方差
	s := 1
	for s < numDraws-4 && rhoHatEven+rhoHatOdd > 0 {
		rhoHatEven = rhoAt(s + 1)
		rhoHatOdd = rhoAt(s + 2)
		if rhoHatEven+rhoHatOdd >= 0 {
			rhoHatS[s+1] = rhoHatEven
			rhoHatS[s+2] = rhoHatOdd
		}
		s += 2
	}

	maxS := s
	// 下面 tauHat 的改进估计用到
	if rhoHatEven > 0 {
		rhoHatS[maxS+1] = rhoHatEven
	}

	// initial positive -> initial monotone sequence
	for s := 1; s <= maxS-3; s += 2 {
		if rhoHatS[s+1]+rhoHatS[s+2] > rhoHatS[s-1]+rhoHatS[s] {
			rhoHatS[s+1] = (rhoHatS[s-1] + rhoHatS[s]) / 2
			rhoHatS[s+2] = rhoHatS[s+1]
		}
	}

	numTotalDraws := float64(numChains) * n
	// Geyer 截断估计的渐近方差
	tauHat := -1 + 2*floats.Sum(rhoHatS[:maxS]) + rhoHatS[maxS+1]
	return math.Min(numTotalDraws/tauHat, numTotalDraws*math.Log10(numTotalDraws)), nil
}
