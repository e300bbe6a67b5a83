package main

import (
	"github.com/spf13/cobra"

	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
	"stanstats/pkg/utils/myTools"
	"stanstats/sampler/report"
	"stanstats/stats/hist"
)

func newHistCmd(a *app) *cobra.Command {
	var (
		param string
		bins  int
	)

	cmd := &cobra.Command{
		Use:   "hist --param NAME [chain.csv ...]",
		Short: "Histogram of one parameter's draws across all chains",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("bins") {
				if bins <= 0 {
					return errorx.Newf(errCode.INVALID_VALUE, "invalid --bins %d", bins)
				}
				a.cfg.Report.HistBins = bins
			}

			params, err := a.loadParams(args)
			if err != nil {
				return err
			}
			p, err := findParam(params, param)
			if err != nil {
				return err
			}

			hb := hist.Hist(myTools.Flatten(p.Draws()), a.cfg.Report.HistBins)
			a.log.WithField("param", p.Name).WithField("bins", len(hb)).Debug("histogram built")
			return report.RenderHist(cmd.OutOrStdout(), p.Name, hb, a.cfg.Report.Format)
		},
	}
	cmd.Flags().StringVarP(&param, "param", "p", "", "parameter name")
	cmd.Flags().IntVarP(&bins, "bins", "b", 0, "number of bins (overrides config)")
	_ = cmd.MarkFlagRequired("param")
	return cmd
}
