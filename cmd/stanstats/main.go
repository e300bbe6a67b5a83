// Command stanstats 计算 Stan sampler 输出的收敛诊断 (ESS, R-hat) 与参数汇总.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
