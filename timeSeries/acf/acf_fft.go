// FFT 自相关 (Geyer 1992 有偏估计):
// 1) 补零长度 2M, M = NextGoodSize(N), 避免循环卷积 wrap-around
// 2) FFT(x - μ) 得到 X
// 3) X⋅conj(X) = |X|² 即功率谱
// 4) IFFT 取前 N 个实部, 即各 lag 的 ∑(xt - μ)(xt+τ - μ)
// 5) 除以 lag 0 得自相关, 再乘总体方差得自协方差
package acf

import (
	"stanstats/numpy/npFFT"
	"stanstats/pkg/utils/myTools"
)

// AutoCorrelation 返回长度 N 的自相关序列, y 为常数时结果为 NaN
func AutoCorrelation(y []float64) []float64 {
	n := len(y)
	if n == 0 {
		return []float64{}
	}

	// ---------- Step 1: 去均值 + 补零 ----------
	m := npFFT.NextGoodSize(n)
	seq := make([]complex128, 2*m)
	mean := myTools.ArrMean(y)
	for i := 0; i < n; i++ {
		seq[i] = complex(y[i]-mean, 0)
	}

	// ---------- Step 2: 正变换 ----------
	plan := npFFT.NewPlan(len(seq))
	plan.Forward(seq)

	// ---------- Step 3: 功率谱 ----------
	for i, c := range seq {
		seq[i] = complex(real(c)*real(c)+imag(c)*imag(c), 0)
	}

	// ---------- Step 4: 逆变换 ----------
	plan.Inverse(seq)

	ac := make([]float64, n)
	scale := float64(n) * float64(n) * 2
	for i := 0; i < n; i++ {
		ac[i] = real(seq[i]) / scale
	}

	// ---------- Step 5: 归一化 ----------
	ac0 := ac[0]
	for i := range ac {
		ac[i] /= ac0
	}
	return ac
}

// AutoCovariance 有偏自协方差 = 自相关 × 总体方差
func AutoCovariance(y []float64) []float64 {
	acov := AutoCorrelation(y)
	variance := myTools.PopVariance(y)
	for i := range acov {
		acov[i] *= variance
	}
	return acov
}
