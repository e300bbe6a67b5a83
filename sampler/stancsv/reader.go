// Package stancsv 读取 Stan sampler 输出的 CSV, 每个文件一条 chain.
//
// 以 '#' 开头的行(配置, adaptation, timing)和空行跳过,
// 第一个非注释行是参数名表头, 其余每行是一次迭代的 draws.
package stancsv

import (
	"bufio"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
	"stanstats/timeSeries/mcmcDiag"
)

// 单行最长 16MB, 参数很多的模型一行会很长
const maxLineBytes = 16 << 20

// Chain 一个 CSV 文件的内容, 按列存储
type Chain struct {
	Path    string
	Names   []string
	Columns [][]float64 // Columns[j] 是 Names[j] 的 draws
}

func ReadFile(path string) (*Chain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errorx.Wrap(err, errCode.IO_FAILED, "open "+path)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeOf(err), "read "+path)
	}
	c.Path = path
	return c, nil
}

func Read(r io.Reader) (*Chain, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var c *Chain
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")

		// 表头
		if c == nil {
			c = &Chain{Names: make([]string, len(fields)), Columns: make([][]float64, len(fields))}
			for j, name := range fields {
				c.Names[j] = strings.TrimSpace(name)
				if slices.Contains(c.Names[:j], c.Names[j]) {
					return nil, errorx.Newf(errCode.PARAM_MISMATCH, "line %d: column %q appears more than once", lineNo, c.Names[j])
				}
			}
			continue
		}

		if len(fields) != len(c.Names) {
			return nil, errorx.Newf(errCode.PARSE_FAILED, "line %d: %d fields, header has %d", lineNo, len(fields), len(c.Names))
		}
		for j, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errorx.Newf(errCode.PARSE_FAILED, "line %d column %q: %v", lineNo, c.Names[j], err)
			}
			c.Columns[j] = append(c.Columns[j], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errorx.Wrap(err, errCode.IO_FAILED, "scan stan csv")
	}
	if c == nil {
		return nil, errorx.New(errCode.EMPTY_VALUE, "no header line")
	}
	return c, nil
}

// Column 按参数名取 draws
func (c *Chain) Column(name string) ([]float64, bool) {
	for j, n := range c.Names {
		if n == name {
			return c.Columns[j], true
		}
	}
	return nil, false
}

// NumDraws 迭代次数
func (c *Chain) NumDraws() int {
	if len(c.Columns) == 0 {
		return 0
	}
	return len(c.Columns[0])
}

// Collect 把多条 chain 按参数重新分组, 参数顺序同表头.
// 所有 chain 的表头必须一致.
func Collect(chains []*Chain) ([]*mcmcDiag.ParamDraws, error) {
	if len(chains) == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "no chains")
	}

	names := chains[0].Names
	for i, c := range chains[1:] {
		if !slices.Equal(names, c.Names) {
			return nil, errorx.Newf(errCode.PARAM_MISMATCH, "chain %d (%s) header differs from chain 0 (%s)", i+1, c.Path, chains[0].Path)
		}
	}

	params := make([]*mcmcDiag.ParamDraws, len(names))
	for j, name := range names {
		perChain := make([]mcmcDiag.Chain, len(chains))
		for i, c := range chains {
			perChain[i] = mcmcDiag.Chain{Param: c.Names[j], Draws: c.Columns[j]}
		}
		p, err := mcmcDiag.NewParamDraws(name, perChain...)
		if err != nil {
			return nil, err
		}
		params[j] = p
	}
	return params, nil
}
