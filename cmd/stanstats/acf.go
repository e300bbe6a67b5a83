package main

import (
	"github.com/spf13/cobra"

	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
	"stanstats/sampler/report"
	"stanstats/timeSeries/acf"
)

func newACFCmd(a *app) *cobra.Command {
	var (
		param    string
		maxLag   int
		unbiased bool
	)

	cmd := &cobra.Command{
		Use:   "acf --param NAME [chain.csv ...]",
		Short: "Per-chain autocorrelation of one parameter",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-lag") {
				if maxLag <= 0 {
					return errorx.Newf(errCode.INVALID_VALUE, "invalid --max-lag %d", maxLag)
				}
				a.cfg.Report.MaxLag = maxLag
			}

			params, err := a.loadParams(args)
			if err != nil {
				return err
			}
			p, err := findParam(params, param)
			if err != nil {
				return err
			}

			lags := a.cfg.Report.MaxLag + 1
			perChain := make([][]float64, 0, len(p.Chains))
			for _, c := range p.Chains {
				var rho []float64
				if unbiased {
					if rho, err = acf.AutoCorrSingeSegment(c.Draws, lags); err != nil {
						return err
					}
				} else {
					rho = acf.AutoCorrelation(c.Draws)
					if len(rho) > lags {
						rho = rho[:lags]
					}
				}
				perChain = append(perChain, rho)
			}
			return report.RenderACF(cmd.OutOrStdout(), p.Name, perChain, a.cfg.Report.Format)
		},
	}
	cmd.Flags().StringVarP(&param, "param", "p", "", "parameter name")
	cmd.Flags().IntVar(&maxLag, "max-lag", 0, "largest lag reported (overrides config)")
	cmd.Flags().BoolVar(&unbiased, "unbiased", false, "normalize each lag by n-k instead of the FFT biased estimate")
	_ = cmd.MarkFlagRequired("param")
	return cmd
}
