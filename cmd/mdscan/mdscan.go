package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/mdscan/internal/config"
	"github.com/julien-sobczak/mdscan/internal/lint"
	"github.com/julien-sobczak/mdscan/internal/logger"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var parallel int
var configPath string
var showProgress bool

var rootCmd = &cobra.Command{
	Use:   "mdscan",
	Short: "mdscan parses Markdown documents into blocks and inline nodes",
	Long:  `A lightweight Markdown scanner to inspect, render and lint Markdown files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.SetPath(configPath)
		if err := CheckConfig(); err != nil {
			return err
		}

		// Enable verbose output. The most verbose level wins when multiple flags are passed.
		if verboseInfo {
			logger.CurrentLogger().SetVerboseLevel(logger.VerboseInfo)
		}
		if verboseDebug {
			logger.CurrentLogger().SetVerboseLevel(logger.VerboseDebug)
		}
		if verboseTrace {
			logger.CurrentLogger().SetVerboseLevel(logger.VerboseTrace)
		}

		if parallel > 0 {
			config.CurrentConfig().SetParallel(parallel)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Use PersistentFlags to make flags accessible to sub-commands
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "v", "", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVarP(&verboseDebug, "vv", "", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&verboseTrace, "vvv", "", false, "enable verbose trace output")
	rootCmd.PersistentFlags().IntVarP(&parallel, "parallel", "t", 0, "Number of files to process concurrently (default is the number of CPUs)")
	rootCmd.PersistentFlags().BoolVarP(&showProgress, "progress", "", false, "report progress on stderr when processing several files")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default is $"+config.EnvConfig+" or ./"+config.DefaultConfigName+")")
}

// CheckConfig loads the configuration and validates the lint rules.
func CheckConfig() error {
	return lint.Check(config.CurrentConfig().LintFile)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
