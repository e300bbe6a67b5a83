package main

import (
	"github.com/spf13/cobra"

	"stanstats/sampler/report"
)

func newDiagCmd(a *app) *cobra.Command {
	var param string

	cmd := &cobra.Command{
		Use:   "diag --param NAME [chain.csv ...]",
		Short: "ESS, split ESS, R-hat, split R-hat and MCSE of one parameter",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := a.loadParams(args)
			if err != nil {
				return err
			}
			p, err := findParam(params, param)
			if err != nil {
				return err
			}
			return report.RenderDiag(cmd.OutOrStdout(), p, a.cfg.Report.Format)
		},
	}
	cmd.Flags().StringVarP(&param, "param", "p", "", "parameter name")
	_ = cmd.MarkFlagRequired("param")
	return cmd
}
