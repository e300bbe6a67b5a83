package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Workers int          `yaml:"workers"` // 并行计算的参数数, 0 表示 NumCPU
	Log     LogConfig    `yaml:"log"`
	Report  ReportConfig `yaml:"report"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // text | json
	File       string `yaml:"file"`   // 为空写 stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ReportConfig struct {
	Format         string  `yaml:"format"` // table | csv | markdown
	HistBins       int     `yaml:"hist_bins"`
	MaxLag         int     `yaml:"max_lag"`
	ComputeTimeSec float64 `yaml:"compute_time_sec"` // 采样耗时, 用于 N_Eff/s
}

func Default() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Report: ReportConfig{
			Format:   "table",
			HistBins: 20,
			MaxLag:   20,
		},
	}
}

// 用 atomic.Value 存当前配置, 读取无锁
var cfgValue atomic.Value // stores *Config

// Load 读 yaml, 未出现的字段保持默认值
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if err := c.Normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// Normalize 规范化: 小写, 去空格, 校验取值. 命令行覆盖后需再调用一次
func (c *Config) Normalize() error {
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", c.Workers)
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}

	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	switch c.Report.Format {
	case "table", "csv", "markdown":
	default:
		return fmt.Errorf("invalid report format: %q", c.Report.Format)
	}
	if c.Report.HistBins <= 0 {
		return fmt.Errorf("invalid hist_bins: %d", c.Report.HistBins)
	}
	if c.Report.MaxLag <= 0 {
		return fmt.Errorf("invalid max_lag: %d", c.Report.MaxLag)
	}
	if c.Report.ComputeTimeSec < 0 {
		return fmt.Errorf("invalid compute_time_sec: %v", c.Report.ComputeTimeSec)
	}
	return nil
}

func Init(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	cfgValue.Store(c)
	return nil
}

// Get 返回当前配置, 未 Init 时返回默认配置. 返回值共享, 修改前先拷贝
func Get() *Config {
	cAny := cfgValue.Load()
	if cAny == nil {
		return Default()
	}
	return cAny.(*Config)
}
