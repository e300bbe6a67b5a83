// Package drawsjson 读取按参数组织的 JSON draws:
//
//	{"mu": [[chain0 draws...], [chain1 draws...]], "sigma": [[...], [...]]}
//
// 参数顺序保持文档顺序. 非有限值可以用字符串 "inf", "-inf", "nan" 表示.
package drawsjson

import (
	"os"
	"strconv"

	"github.com/tidwall/gjson"

	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
	"stanstats/timeSeries/mcmcDiag"
)

func ReadFile(path string) ([]*mcmcDiag.ParamDraws, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errorx.Wrap(err, errCode.IO_FAILED, "read "+path)
	}
	return Parse(b)
}

func Parse(data []byte) ([]*mcmcDiag.ParamDraws, error) {
	if !gjson.ValidBytes(data) {
		return nil, errorx.New(errCode.PARSE_FAILED, "invalid json")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, errorx.New(errCode.PARSE_FAILED, "top level must be an object of param -> chains")
	}

	var (
		params []*mcmcDiag.ParamDraws
		seen   = make(map[string]struct{})
		err    error
	)
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if _, dup := seen[name]; dup {
			err = errorx.Newf(errCode.PARAM_MISMATCH, "param %q appears more than once", name)
			return false
		}
		seen[name] = struct{}{}

		var p *mcmcDiag.ParamDraws
		p, err = parseParam(name, value)
		if err != nil {
			return false
		}
		params = append(params, p)
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "no params")
	}
	return params, nil
}

func parseParam(name string, value gjson.Result) (*mcmcDiag.ParamDraws, error) {
	if !value.IsArray() {
		return nil, errorx.Newf(errCode.PARSE_FAILED, "param %q: expected array of chains", name)
	}

	var chains []mcmcDiag.Chain
	for i, chain := range value.Array() {
		if !chain.IsArray() {
			return nil, errorx.Newf(errCode.PARSE_FAILED, "param %q chain %d: expected array of draws", name, i)
		}
		raw := chain.Array()
		draws := make([]float64, len(raw))
		for n, d := range raw {
			v, err := drawValue(d)
			if err != nil {
				return nil, errorx.Wrap(err, errCode.PARSE_FAILED, "param "+strconv.Quote(name)+" chain "+strconv.Itoa(i))
			}
			draws[n] = v
		}
		chains = append(chains, mcmcDiag.Chain{Param: name, Draws: draws})
	}
	return mcmcDiag.NewParamDraws(name, chains...)
}

func drawValue(d gjson.Result) (float64, error) {
	switch d.Type {
	case gjson.Number:
		return d.Num, nil
	case gjson.String:
		return strconv.ParseFloat(d.Str, 64)
	default:
		return 0, errorx.Newf(errCode.PARSE_FAILED, "draw %s is not a number", d.Raw)
	}
}
