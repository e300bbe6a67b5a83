// Package report 生成 sampler 输出的参数汇总表: 每个参数一行,
// 列与 Stan 的 stansummary 一致 (Mean, MCSE, StdDev, 5%, 50%, 95%, N_Eff, N_Eff/s, R_hat).
package report

import (
	"context"
	"math"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"stanstats/pkg/utils/myTools"
	"stanstats/stats/summary"
	"stanstats/timeSeries/mcmcDiag"
)

// Row 一个参数的汇总, NaN 表示不可计算
type Row struct {
	Param     string
	Mean      float64
	MCSE      float64
	StdDev    float64
	Q5        float64
	Q50       float64
	Q95       float64
	ESS       float64 // 非 split ESS
	ESSPerSec float64
	Rhat      float64 // split R-hat
}

type Options struct {
	Workers        int     // <= 0 时用 NumCPU
	ComputeTimeSec float64 // <= 0 时 N_Eff/s 为 NaN
	Log            logrus.FieldLogger
}

// Build 并行计算每个参数的汇总行, 行顺序同 params.
// 参数之间没有共享状态, 每个参数一个任务, 并发数受 Workers 限制.
func Build(ctx context.Context, params []*mcmcDiag.ParamDraws, opts Options) ([]Row, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	rows := make([]Row, len(params))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	start := time.Now()
	for i, p := range params {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := summarize(p, opts.ComputeTimeSec)
			if err != nil {
				return err
			}
			rows[i] = row
			log.WithFields(logrus.Fields{
				"param": p.Name,
				"ess":   row.ESS,
				"rhat":  row.Rhat,
			}).Debug("param summarized")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"params":  len(params),
		"workers": workers,
		"elapsed": time.Since(start),
	}).Info("summary built")
	return rows, nil
}

func summarize(p *mcmcDiag.ParamDraws, computeTimeSec float64) (Row, error) {
	draws := p.Draws()

	ess, err := mcmcDiag.EffectiveSampleSize(draws)
	if err != nil {
		return Row{}, err
	}
	rhat, err := mcmcDiag.SplitPotentialScaleReduction(draws)
	if err != nil {
		return Row{}, err
	}

	all := myTools.Flatten(draws)
	qs, err := summary.Percentiles(all, 0.05, 0.5, 0.95)
	if err != nil {
		return Row{}, err
	}
	stdDev := summary.StdDev(all)

	essPerSec := math.NaN()
	if computeTimeSec > 0 {
		essPerSec = ess / computeTimeSec
	}

	return Row{
		Param:     p.Name,
		Mean:      summary.Mean(all),
		MCSE:      stdDev / math.Sqrt(ess),
		StdDev:    stdDev,
		Q5:        qs[0],
		Q50:       qs[1],
		Q95:       qs[2],
		ESS:       ess,
		ESSPerSec: essPerSec,
		Rhat:      rhat,
	}, nil
}
