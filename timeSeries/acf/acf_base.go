package acf

import (
	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
	"stanstats/numpy/npCorr"
	"stanstats/pkg/utils/myTools"
)

// 单一序列自相关函数, 每个 lag 按 var⋅(n-k) 归一化(无偏)
func AutoCorrSingeSegment(series []float64, maxLag int) ([]float64, error) {
	n := len(series)
	if n == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "input series empty")
	}
	if maxLag <= 0 {
		return nil, errorx.New(errCode.INVALID_VALUE, "maxLag must be > 0")
	}

	lagSums, err := lagProductSums(series)
	if err != nil {
		return nil, err
	}

	acf := lagSums
	if len(acf) > maxLag {
		acf = acf[:maxLag]
	}

	varValue := lagSums[0] / float64(n)

	// normalize: acf[k] /= var * (n-k)
	for k := 0; k < len(acf); k++ {
		acf[k] /= varValue * float64(n-k)
	}

	return acf, nil
}

// AutoCovarianceDirect 直接求和的有偏自协方差, O(N²)
//
//	acov[k] = ∑t (y_t - ȳ)(y_t+k - ȳ) / N
func AutoCovarianceDirect(series []float64) ([]float64, error) {
	n := len(series)
	if n == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "input series empty")
	}

	acov, err := lagProductSums(series)
	if err != nil {
		return nil, err
	}
	for k := range acov {
		acov[k] /= float64(n)
	}
	return acov, nil
}

// 去均值后 full correlate, 取非负 lag 部分: full[n-1:]
func lagProductSums(series []float64) ([]float64, error) {
	n := len(series)
	mean := myTools.ArrMean(series)

	// subtract mean
	u := make([]float64, n)
	for i := range series {
		u[i] = series[i] - mean
	}

	full, err := npCorr.Correlate(u, u, npCorr.FULL_MODE)
	if err != nil {
		return nil, err
	}
	return full[n-1:], nil
}
