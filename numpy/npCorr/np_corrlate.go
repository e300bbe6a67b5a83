package npCorr

import (
	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
)

// Correlate 对应 np.correlate(a, v, mode), 实数版本
//
//	full[i] = ∑j a[i-(m-1)+j]⋅v[j],  i ∈ [0, n+m-2]
//
// valid 取 full[m-1 : n], same 取 full[(m-1)/2 : (m-1)/2+max(n,m)]
func Correlate(a, v []float64, mode CORRELATE_MODE) ([]float64, error) {
	n, m := len(a), len(v)
	if n == 0 || m == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "input length is not enough")
	}
	if mode != FULL_MODE && mode != VALID_MODE && mode != SAME_MODE {
		return nil, errorx.New(errCode.INVALID_VALUE, "invalid mode, expected 'full', 'same' or 'valid'")
	}
	if mode == VALID_MODE && m > n {
		return []float64{}, errorx.New(errCode.INVALID_VALUE, "np.correlate([1,2],[1,2,3],mode='valid') → []")
	}

	var outLen, start int
	switch mode {
	case FULL_MODE:
		outLen = n + m - 1
	case VALID_MODE:
		outLen = n - m + 1
		start = m - 1
	case SAME_MODE:
		outLen = max(n, m)
		start = (m - 1) / 2
	}

	out := make([]float64, outLen)
	for i := 0; i < outLen; i++ {
		shift := i + start - (m - 1)
		// 只累加落在 a 范围内的项
		jLo := max(0, -shift)
		jHi := min(m, n-shift)
		sum := 0.0
		for j := jLo; j < jHi; j++ {
			sum += a[shift+j] * v[j]
		}
		out[i] = sum
	}

	return out, nil
}

type CORRELATE_MODE uint

const (
	FULL_MODE CORRELATE_MODE = iota
	VALID_MODE
	SAME_MODE
)
