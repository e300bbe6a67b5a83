// 复数离散傅里叶变换, 实部/虚部分两个数组原地变换
//
//	forward: X[k] = ∑ x[n]⋅exp(-2πi⋅nk/N)
//	inverse: x[n] = ∑ X[k]⋅exp(+2πi⋅nk/N)
//
// 两个方向都不做 1/N 归一化, forward 再 inverse 得到 N⋅x
package npFFT

import (
	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Transform 原地正变换
func Transform(re, im []float64) error {
	return transform(re, im, false)
}

// InverseTransform 原地逆变换(未归一化)
func InverseTransform(re, im []float64) error {
	return transform(re, im, true)
}

func transform(re, im []float64, inverse bool) error {
	n := len(re)
	if n != len(im) {
		return errorx.Newf(errCode.INVALID_VALUE, "real/imag length mismatch: %d != %d", n, len(im))
	}
	if n == 0 {
		return nil
	}

	seq := make([]complex128, n)
	for i := range seq {
		seq[i] = complex(re[i], im[i])
	}

	plan := NewPlan(n)
	if inverse {
		plan.Inverse(seq)
	} else {
		plan.Forward(seq)
	}

	for i, c := range seq {
		re[i], im[i] = real(c), imag(c)
	}
	return nil
}

// Plan 固定长度的变换, 正/逆变换共用同一组旋转因子
type Plan struct {
	fft *fourier.CmplxFFT
}

// NewPlan n 必须 > 0
func NewPlan(n int) *Plan {
	return &Plan{fft: fourier.NewCmplxFFT(n)}
}

func (p *Plan) Len() int { return p.fft.Len() }

// Forward 原地正变换, len(seq) 必须等于 Len()
func (p *Plan) Forward(seq []complex128) {
	p.fft.Coefficients(seq, seq)
}

// Inverse 原地逆变换(未归一化), len(seq) 必须等于 Len()
func (p *Plan) Inverse(seq []complex128) {
	p.fft.Sequence(seq, seq)
}

// NextGoodSize 返回 >= n 且只含 2,3,5 质因子的最小整数
func NextGoodSize(n int) int {
	if n <= 1 {
		return 1
	}
	for !isGoodSize(n) {
		n++
	}
	return n
}

func isGoodSize(n int) bool {
	for _, p := range [...]int{2, 3, 5} {
		for n%p == 0 {
			n /= p
		}
	}
	return n == 1
}
