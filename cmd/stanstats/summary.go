package main

import (
	"github.com/spf13/cobra"

	"stanstats/sampler/report"
)

func newSummaryCmd(a *app) *cobra.Command {
	var computeTime float64

	cmd := &cobra.Command{
		Use:   "summary [chain.csv ...]",
		Short: "Summary table: mean, MCSE, sd, quantiles, N_Eff, R_hat for every parameter",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := a.loadParams(args)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("compute-time") {
				a.cfg.Report.ComputeTimeSec = computeTime
			}
			rows, err := report.Build(cmd.Context(), params, report.Options{
				Workers:        a.cfg.Workers,
				ComputeTimeSec: a.cfg.Report.ComputeTimeSec,
				Log:            a.log,
			})
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), rows, a.cfg.Report.Format)
		},
	}
	cmd.Flags().Float64Var(&computeTime, "compute-time", 0, "sampling time in seconds, enables N_Eff/s")
	return cmd
}
