package summary

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
)

// 均值, 空数组返回 NaN
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// 样本标准差, 少于 2 个点返回 NaN
func StdDev(x []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.StdDev(x, nil)
}

// Percentile 取 xSorted[floor(p⋅n)], 不插值. xSorted 必须升序
func Percentile(xSorted []float64, p float64) (float64, error) {
	if len(xSorted) == 0 {
		return math.NaN(), nil
	}
	if !slices.IsSorted(xSorted) {
		return math.NaN(), errorx.New(errCode.INVALID_VALUE, "array is not sorted")
	}
	if p < 0 || math.IsNaN(p) {
		return math.NaN(), errorx.Newf(errCode.INVALID_VALUE, "percentile %v out of range", p)
	}
	i := int(math.Floor(p * float64(len(xSorted))))
	// p >= 1 取最大值
	i = min(i, len(xSorted)-1)
	return xSorted[i], nil
}

// Percentiles 拷贝排序后依次取各分位点
func Percentiles(x []float64, ps ...float64) ([]float64, error) {
	sorted := slices.Clone(x)
	slices.Sort(sorted)

	out := make([]float64, len(ps))
	for i, p := range ps {
		v, err := Percentile(sorted, p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
