package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
	"stanstats/stats/hist"
	"stanstats/timeSeries/mcmcDiag"
)

const (
	FormatTable    = "table"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

var summaryHeader = table.Row{"Parameter", "Mean", "MCSE", "StdDev", "5%", "50%", "95%", "N_Eff", "N_Eff/s", "R_hat"}

// FormatValue 4 位有效数字, NaN 显示为 n/a
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// Render 输出汇总表
func Render(w io.Writer, rows []Row, format string) error {
	t := newTable()
	t.AppendHeader(summaryHeader)
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.Param,
			FormatValue(r.Mean),
			FormatValue(r.MCSE),
			FormatValue(r.StdDev),
			FormatValue(r.Q5),
			FormatValue(r.Q50),
			FormatValue(r.Q95),
			FormatValue(r.ESS),
			FormatValue(r.ESSPerSec),
			FormatValue(r.Rhat),
		})
	}
	return write(w, t, format)
}

// RenderHist 输出单个参数的直方图, 每个分箱一行
func RenderHist(w io.Writer, param string, bins []hist.HistogramBin, format string) error {
	t := newTable()
	t.SetTitle(param)
	t.AppendHeader(table.Row{"From", "To", "Count", "Fraction"})

	total := hist.Total(bins)
	for _, b := range bins {
		frac := math.NaN()
		if total > 0 {
			frac = float64(b.Count) / float64(total)
		}
		t.AppendRow(table.Row{FormatValue(b.From), FormatValue(b.To), b.Count, FormatValue(frac)})
	}
	return write(w, t, format)
}

// RenderACF 每个 lag 一行, 每条 chain 一列
func RenderACF(w io.Writer, param string, perChain [][]float64, format string) error {
	t := newTable()
	t.SetTitle(param)

	header := table.Row{"Lag"}
	maxLag := 0
	for c, acf := range perChain {
		header = append(header, fmt.Sprintf("chain %d", c+1))
		maxLag = max(maxLag, len(acf))
	}
	t.AppendHeader(header)

	for k := 0; k < maxLag; k++ {
		row := table.Row{k}
		for _, acf := range perChain {
			v := math.NaN()
			if k < len(acf) {
				v = acf[k]
			}
			row = append(row, FormatValue(v))
		}
		t.AppendRow(row)
	}
	return write(w, t, format)
}

// RenderDiag 单个参数的全部诊断量, 一行一项
func RenderDiag(w io.Writer, p *mcmcDiag.ParamDraws, format string) error {
	t := newTable()
	t.SetTitle(p.Name)
	t.AppendHeader(table.Row{"Diagnostic", "Value"})
	t.AppendRows([]table.Row{
		{"chains", len(p.Chains)},
		{"ess", FormatValue(p.ESS())},
		{"split_ess", FormatValue(p.SplitESS())},
		{"rhat", FormatValue(p.Rhat())},
		{"split_rhat", FormatValue(p.SplitRhat())},
		{"mcse", FormatValue(p.MCSE())},
	})
	return write(w, t, format)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	// 表头保持原样, 不转大写
	t.Style().Format.Header = text.FormatDefault
	return t
}

func write(w io.Writer, t table.Writer, format string) error {
	var out string
	switch format {
	case FormatTable, "":
		out = t.Render()
	case FormatCSV:
		out = t.RenderCSV()
	case FormatMarkdown:
		out = t.RenderMarkdown()
	default:
		return errorx.Newf(errCode.INVALID_VALUE, "unknown format %q", format)
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return errorx.Wrap(err, errCode.IO_FAILED, "write report")
	}
	return nil
}
