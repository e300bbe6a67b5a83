package acf

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
)

func ar1(n int, phi float64, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, 2*seed+1))
	noise := func() float64 { return distuv.UnitNormal.Quantile(rng.Float64()) }
	out := make([]float64, n)
	x := noise()
	for i := range out {
		x = phi*x + noise()
		out[i] = x
	}
	return out
}

func TestAutoCovarianceSmall(t *testing.T) {
	y := []float64{1, 2, 3, 4}
	assert.InDeltaSlice(t, []float64{1.25, 0.3125, -0.375, -0.5625}, AutoCovariance(y), 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0.25, -0.3, -0.45}, AutoCorrelation(y), 1e-12)
}

func TestAutoCovarianceMatchesDirect(t *testing.T) {
	for _, n := range []int{2, 5, 17, 100, 333} {
		y := ar1(n, 0.6, uint64(n))
		direct, err := AutoCovarianceDirect(y)
		require.NoError(t, err)

		fft := AutoCovariance(y)
		require.Len(t, fft, n)
		for k := range fft {
			assert.InDelta(t, direct[k], fft[k], 1e-10, "n=%d lag=%d", n, k)
		}
	}
}

func TestAutoCovarianceDoesNotMutateInput(t *testing.T) {
	y := ar1(50, 0.3, 9)
	orig := append([]float64(nil), y...)
	_ = AutoCovariance(y)
	assert.Equal(t, orig, y)
}

func TestAutoCovarianceConstantIsNaN(t *testing.T) {
	for _, v := range AutoCovariance([]float64{2, 2, 2, 2, 2}) {
		assert.True(t, math.IsNaN(v))
	}
	assert.Empty(t, AutoCovariance(nil))
}

func TestAutoCorrSingeSegment(t *testing.T) {
	acf, err := AutoCorrSingeSegment([]float64{1, 2, 3, 4}, 10)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1.0 / 3.0, -0.6, -1.8}, acf, 1e-12)

	acf, err = AutoCorrSingeSegment([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.Len(t, acf, 2)
}

func TestAutoCorrSingeSegmentErrors(t *testing.T) {
	_, err := AutoCorrSingeSegment(nil, 3)
	assert.Equal(t, errCode.EMPTY_VALUE, errorx.CodeOf(err))

	_, err = AutoCorrSingeSegment([]float64{1, 2}, 0)
	assert.Equal(t, errCode.INVALID_VALUE, errorx.CodeOf(err))

	_, err = AutoCovarianceDirect(nil)
	assert.Equal(t, errCode.EMPTY_VALUE, errorx.CodeOf(err))
}

func BenchmarkAutoCovarianceFFT(b *testing.B) {
	y := ar1(4000, 0.8, 1)
	for i := 0; i < b.N; i++ {
		_ = AutoCovariance(y)
	}
}

func BenchmarkAutoCovarianceDirect(b *testing.B) {
	y := ar1(4000, 0.8, 1)
	for i := 0; i < b.N; i++ {
		_, _ = AutoCovarianceDirect(y)
	}
}
