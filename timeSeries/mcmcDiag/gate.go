// Package mcmcDiag 计算 MCMC 收敛诊断: 有效样本量(ESS) 与潜在尺度缩减因子(R-hat).
//
// 输入是单个标量参数的多条 chain, 每条 chain 是按迭代顺序排列的 draws.
// 数据质量问题(draws 太少, 含非有限值, 所有 chain 为同一常数)返回 NaN,
// 只有调用方违约(chain 集合为空)才返回 error. 所有函数无状态, 不修改入参.
package mcmcDiag

import (
	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
	"stanstats/pkg/utils/myTools"
)

const (
	// 少于 4 个 draw 无法估计 ESS / R-hat
	minDraws = 4
	// 常数 chain 判定精度
	constPrecision = 1e-12
)

// 校验 + 截断到公共长度. ok 为 false 表示结果应为 NaN
func trimmedChains(draws [][]float64) (chains [][]float64, ok bool, err error) {
	if len(draws) == 0 {
		return nil, false, errorx.New(errCode.EMPTY_VALUE, "draws has no chains")
	}

	numDraws := myTools.MinLen(draws)
	if numDraws < minDraws {
		return nil, false, nil
	}

	chains = make([][]float64, len(draws))
	for i, d := range draws {
		// 尾部截断, 只读不改
		chains[i] = d[:numDraws:numDraws]
		if !myTools.AllFinite(chains[i], numDraws) {
			return nil, false, nil
		}
	}

	if allSameConstant(chains) {
		return nil, false, nil
	}
	return chains, true, nil
}

// 每条 chain 都是常数, 且各 chain 的常数彼此相同.
// 各自为常数但常数不同的 chain 不在这里拦截.
func allSameConstant(chains [][]float64) bool {
	initDraw := make([]float64, len(chains))
	for i, c := range chains {
		if !myTools.IsApproxConst(c, c[0], constPrecision) {
			return false
		}
		initDraw[i] = c[0]
	}
	return myTools.IsApproxConst(initDraw, initDraw[0], constPrecision)
}
