package mcmcDiag

import (
	"math"

	"stanstats/infra/errorx"
	"stanstats/infra/errorx/errCode"
)

// Chain 一条 chain 上某个参数的 draws
type Chain struct {
	Param string
	Draws []float64
}

// ParamDraws 单个标量参数在所有 chain 上的 draws
type ParamDraws struct {
	Name   string
	Chains []Chain
}

// NewParamDraws 校验所有 chain 属于同一参数. 没有 chain 或参数名不一致时返回 error
func NewParamDraws(name string, chains ...Chain) (*ParamDraws, error) {
	if len(chains) == 0 {
		return nil, errorx.Newf(errCode.EMPTY_VALUE, "param %q has no chains", name)
	}
	for i, c := range chains {
		if c.Param != name {
			return nil, errorx.Newf(errCode.PARAM_MISMATCH, "chain %d holds %q, expected %q", i, c.Param, name)
		}
	}
	return &ParamDraws{Name: name, Chains: chains}, nil
}

// Draws 每条 chain 的 draws, 不拷贝
func (p *ParamDraws) Draws() [][]float64 {
	out := make([][]float64, len(p.Chains))
	for i, c := range p.Chains {
		out[i] = c.Draws
	}
	return out
}

// 构造时已保证 chain 非空, err 只可能为 nil
func (p *ParamDraws) eval(fn func([][]float64) (float64, error)) float64 {
	v, err := fn(p.Draws())
	if err != nil {
		return math.NaN()
	}
	return v
}

func (p *ParamDraws) ESS() float64       { return p.eval(EffectiveSampleSize) }
func (p *ParamDraws) SplitESS() float64  { return p.eval(SplitEffectiveSampleSize) }
func (p *ParamDraws) Rhat() float64      { return p.eval(PotentialScaleReduction) }
func (p *ParamDraws) SplitRhat() float64 { return p.eval(SplitPotentialScaleReduction) }
func (p *ParamDraws) MCSE() float64      { return p.eval(MonteCarloStandardError) }
