package hist

import "math"

// HistogramBin 每个分箱 [From, To), 最后一个分箱包含右端点
type HistogramBin struct {
	From  float64
	To    float64
	Count int
}

// Hist 按 bins 个等宽分箱统计 draws, 非有限值跳过
func Hist(data []float64, bins int) []HistogramBin {
	if bins <= 0 {
		return nil
	}

	// 1. 求最小值最大值
	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		if !isFinite(v) {
			continue
		}
		minV = min(minV, v)
		maxV = max(maxV, v)
	}
	if math.IsInf(minV, 1) {
		return nil
	}

	// 避免 max == min 导致除0
	if maxV == minV {
		maxV = minV + 1e-9
	}

	// 2. 分箱宽度
	width := (maxV - minV) / float64(bins)

	// 3. 初始化 bins
	result := make([]HistogramBin, bins)
	for i := range result {
		result[i] = HistogramBin{
			From: minV + float64(i)*width,
			To:   minV + float64(i+1)*width,
		}
	}

	// 4. 遍历数据并统计
	for _, v := range data {
		if !isFinite(v) {
			continue
		}
		idx := int(math.Floor((v - minV) / width))
		if idx >= bins { // v == maxV 的边界
			idx = bins - 1
		}
		result[idx].Count++
	}

	return result
}

// Total 所有分箱计数之和
func Total(bins []HistogramBin) int {
	n := 0
	for _, b := range bins {
		n += b.Count
	}
	return n
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
