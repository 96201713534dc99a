// Package main provides the stylec CLI for compiling style declarations
// into atomic CSS.
package main

import (
	"os"

	"github.com/yacobolo/stylec/internal/report"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		report.NewReporter(os.Stderr, false).PrintError(err)
		os.Exit(1)
	}
}
