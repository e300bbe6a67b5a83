package report

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
	"stanstats/infra/logx"
	"stanstats/stats/hist"
	"stanstats/timeSeries/mcmcDiag"
)

func param(t *testing.T, name string, chains ...[]float64) *mcmcDiag.ParamDraws {
	t.Helper()
	cs := make([]mcmcDiag.Chain, len(chains))
	for i, d := range chains {
		cs[i] = mcmcDiag.Chain{Param: name, Draws: d}
	}
	p, err := mcmcDiag.NewParamDraws(name, cs...)
	require.NoError(t, err)
	return p
}

func wave(n int, phase float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(float64(i)*0.7+phase) + 0.1*math.Cos(float64(i*i)*0.3)
	}
	return out
}

func TestBuildKeepsOrderAndValues(t *testing.T) {
	var params []*mcmcDiag.ParamDraws
	for i := 0; i < 12; i++ {
		params = append(params, param(t, fmt.Sprintf("theta.%d", i+1), wave(40, float64(i)), wave(40, float64(i)+1)))
	}
	params = append(params, param(t, "short", []float64{1, 2}, []float64{3, 4}))

	rows, err := Build(context.Background(), params, Options{Workers: 3, ComputeTimeSec: 2, Log: logx.Discard()})
	require.NoError(t, err)
	require.Len(t, rows, len(params))

	for i, p := range params[:12] {
		r := rows[i]
		assert.Equal(t, p.Name, r.Param)

		ess, err := mcmcDiag.EffectiveSampleSize(p.Draws())
		require.NoError(t, err)
		rhat, err := mcmcDiag.SplitPotentialScaleReduction(p.Draws())
		require.NoError(t, err)

		assert.Equal(t, ess, r.ESS)
		assert.Equal(t, rhat, r.Rhat)
		assert.InDelta(t, ess/2, r.ESSPerSec, 1e-12)
		assert.InDelta(t, r.StdDev/math.Sqrt(ess), r.MCSE, 1e-12)
		assert.LessOrEqual(t, r.Q5, r.Q50)
		assert.LessOrEqual(t, r.Q50, r.Q95)
	}

	short := rows[12]
	assert.Equal(t, "short", short.Param)
	assert.InDelta(t, 2.5, short.Mean, 1e-15)
	assert.True(t, math.IsNaN(short.ESS))
	assert.True(t, math.IsNaN(short.Rhat))
	assert.True(t, math.IsNaN(short.MCSE))
}

func TestBuildWithoutComputeTime(t *testing.T) {
	rows, err := Build(context.Background(), []*mcmcDiag.ParamDraws{param(t, "mu", wave(30, 0))}, Options{Log: logx.Discard()})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(rows[0].ESSPerSec))
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, []*mcmcDiag.ParamDraws{param(t, "mu", wave(30, 0))}, Options{Workers: 1, Log: logx.Discard()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderFormats(t *testing.T) {
	rows := []Row{
		{Param: "mu", Mean: 1.23456, MCSE: 0.01, StdDev: 0.5, Q5: 0.4, Q50: 1.2, Q95: 2.1, ESS: 399.2, ESSPerSec: math.NaN(), Rhat: 1.0012},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rows, FormatTable))
	out := buf.String()
	assert.Contains(t, out, "N_Eff/s")
	assert.Contains(t, out, "1.235")
	assert.Contains(t, out, "n/a")

	buf.Reset()
	require.NoError(t, Render(&buf, rows, FormatCSV))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "mu,1.235,0.01,0.5,"))

	buf.Reset()
	require.NoError(t, Render(&buf, rows, FormatMarkdown))
	assert.Contains(t, buf.String(), "| mu |")

	err := Render(&buf, rows, "html")
	assert.Equal(t, errCode.INVALID_VALUE, errorx.CodeOf(err))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "n/a", FormatValue(math.NaN()))
	assert.Equal(t, "399.2", FormatValue(399.18))
	assert.Equal(t, "1.001", FormatValue(1.00071))
	assert.Equal(t, "3.8e-05", FormatValue(0.000038))
	assert.Equal(t, "+Inf", FormatValue(math.Inf(1)))
}

func TestRenderHistAndACF(t *testing.T) {
	var buf bytes.Buffer
	bins := hist.Hist([]float64{0, 1, 2, 3}, 2)
	require.NoError(t, RenderHist(&buf, "mu", bins, FormatCSV))
	assert.Contains(t, buf.String(), "From,To,Count,Fraction")
	assert.Contains(t, buf.String(), ",2,0.5")

	buf.Reset()
	require.NoError(t, RenderACF(&buf, "mu", [][]float64{{1, 0.5, 0.25}, {1, 0.1}}, FormatCSV))
	out := buf.String()
	assert.Contains(t, out, "Lag,chain 1,chain 2")
	assert.Contains(t, out, "2,0.25,n/a")
}

func TestRenderDiag(t *testing.T) {
	p := param(t, "theta", []float64{1, 2, 3, 4}, []float64{2, 1, 4, 3})

	var buf bytes.Buffer
	require.NoError(t, RenderDiag(&buf, p, FormatCSV))
	out := buf.String()
	assert.Contains(t, out, "chains,2")
	assert.Contains(t, out, "rhat,"+FormatValue(math.Sqrt(0.75)))
	assert.Contains(t, out, "split_ess,")

	err := RenderDiag(&buf, p, "xml")
	assert.Equal(t, errCode.INVALID_VALUE, errorx.CodeOf(err))
}
