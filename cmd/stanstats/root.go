package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stanstats/config"
	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
	"stanstats/infra/logx"
	"stanstats/sampler/drawsjson"
	"stanstats/sampler/stancsv"
	"stanstats/timeSeries/mcmcDiag"
)

// app 各子命令共享的运行时状态
type app struct {
	configPath string
	jsonPath   string
	logLevel   string
	workers    int
	format     string

	cfg    *config.Config
	log    *logrus.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "stanstats [command]",
		Short: "MCMC convergence diagnostics for Stan sampler output",
		Long: `stanstats reads Stan CSV output (one file per chain) or a JSON draws file
and reports effective sample size, potential scale reduction and summary statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "yaml config file")
	flags.StringVar(&a.jsonPath, "json", "", "read draws from a JSON file instead of Stan CSV files")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")
	flags.IntVarP(&a.workers, "workers", "w", 0, "parameters computed in parallel (overrides config)")
	flags.StringVarP(&a.format, "format", "f", "", "output format: table, csv, markdown (overrides config)")

	root.AddCommand(
		newSummaryCmd(a),
		newDiagCmd(a),
		newHistCmd(a),
		newACFCmd(a),
	)
	return root
}

// 配置文件 -> 命令行覆盖 -> logger
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		if err := config.Init(a.configPath); err != nil {
			return err
		}
		// 拷贝, 命令行覆盖不写回全局配置
		c := *config.Get()
		a.cfg = &c
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if flags.Changed("workers") {
		if a.workers < 0 {
			return errorx.Newf(errCode.INVALID_VALUE, "invalid --workers %d", a.workers)
		}
		a.cfg.Workers = a.workers
	}
	if flags.Changed("format") {
		a.cfg.Report.Format = a.format
	}
	if err := a.cfg.Normalize(); err != nil {
		return errorx.Wrap(err, errCode.INVALID_VALUE, "invalid flags")
	}

	log, closer, err := logx.Setup(a.cfg.Log)
	if err != nil {
		return err
	}
	if a.cfg.Log.File == "" {
		log.SetOutput(cmd.ErrOrStderr())
	}
	a.log, a.closer = log, closer
	return nil
}

// 读取 draws: --json 文件, 或每个位置参数一个 Stan CSV
func (a *app) loadParams(files []string) ([]*mcmcDiag.ParamDraws, error) {
	if a.jsonPath != "" {
		if len(files) > 0 {
			return nil, errorx.New(errCode.INVALID_VALUE, "--json and csv files are mutually exclusive")
		}
		a.log.WithField("file", a.jsonPath).Debug("reading json draws")
		return drawsjson.ReadFile(a.jsonPath)
	}
	if len(files) == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "no chain files given")
	}

	chains := make([]*stancsv.Chain, 0, len(files))
	for _, f := range files {
		c, err := stancsv.ReadFile(f)
		if err != nil {
			return nil, err
		}
		a.log.WithFields(logrus.Fields{"file": f, "draws": c.NumDraws(), "params": len(c.Names)}).Debug("chain loaded")
		chains = append(chains, c)
	}
	return stancsv.Collect(chains)
}

// 按名字找参数
func findParam(params []*mcmcDiag.ParamDraws, name string) (*mcmcDiag.ParamDraws, error) {
	for _, p := range params {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, errorx.Newf(errCode.INVALID_VALUE, "unknown param %q", name)
}
