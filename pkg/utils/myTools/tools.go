package myTools

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// 均值, 空数组返回 NaN
func ArrMean(arr []float64) float64 {
	if len(arr) == 0 {
		return math.NaN()
	}
	return floats.Sum(arr) / float64(len(arr))
}

// 总体方差 (除以 n)
func PopVariance(arr []float64) float64 {
	mean := ArrMean(arr)
	sum := 0.0
	for _, v := range arr {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(arr))
}

// 样本方差 (除以 n-1)
func SampleVariance(arr []float64) float64 {
	mean := ArrMean(arr)
	sum := 0.0
	for _, v := range arr {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(arr)-1)
}

// 最短序列长度, 空集合返回 0
func MinLen(seqs [][]float64) int {
	if len(seqs) == 0 {
		return 0
	}
	n := len(seqs[0])
	for _, s := range seqs[1:] {
		n = min(n, len(s))
	}
	return n
}

// 前 n 个元素全部有限
func AllFinite(arr []float64, n int) bool {
	for _, v := range arr[:n] {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// 所有元素与 ref 的差都小于 eps
func IsApproxConst(arr []float64, ref, eps float64) bool {
	for _, v := range arr {
		if math.Abs(v-ref) >= eps {
			return false
		}
	}
	return true
}

func ReverseSliceF64(arr []float64) []float64 {
	out := make([]float64, len(arr))
	for i, v := range arr {
		out[len(arr)-1-i] = v
	}
	return out
}

// 拼接所有序列, 返回新数组
func Flatten(seqs [][]float64) []float64 {
	total := 0
	for _, s := range seqs {
		total += len(s)
	}
	out := make([]float64, 0, total)
	for _, s := range seqs {
		out = append(out, s...)
	}
	return out
}
