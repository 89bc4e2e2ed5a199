package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/julien-sobczak/mdscan/internal/config"
	"github.com/julien-sobczak/mdscan/internal/lint"
)

var lintRules string

func init() {
	lintCmd.Flags().StringVarP(&lintRules, "rules", "r", "all", "comma-separated list of rule names used to filter")
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint [file|dir]...",
	Short: "Lint",
	Long:  `Check linter rules.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.CurrentConfig()

		rules := strings.Split(lintRules, ",")
		if slices.Contains(rules, "all") {
			// Do not filter
			rules = []string{}
		}
		for _, rule := range rules {
			if _, ok := lint.LintRules[rule]; !ok {
				return fmt.Errorf("unknown lint rule %q (supported: %s)", rule, strings.Join(lint.RuleNames(), ", "))
			}
		}

		results, err := processSources(cmd.Context(), cmd.InOrStdin(), args, func(source Source) (*lint.LintResult, error) {
			file := lint.NewFile(source.Path, source.Doc, cfg.Parser())
			violations, err := lint.Lint(file, cfg.LintFile, rules)
			if err != nil {
				return nil, err
			}
			result := &lint.LintResult{AnalyzedFiles: 1}
			if len(violations) > 0 {
				result.Append(violations...)
				result.AffectedFiles = 1
			}
			return result, nil
		})
		if err != nil {
			return err
		}

		var result lint.LintResult
		for _, fileResult := range results {
			result.Merge(fileResult)
		}
		result.Sort()
		printLintResult(cmd.OutOrStdout(), &result)

		if len(result.Errors) > 0 {
			return errors.New("lint errors found")
		}
		return nil
	},
}

func printLintResult(w io.Writer, result *lint.LintResult) {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	for _, violation := range result.Errors {
		red.Fprint(w, "error")
		fmt.Fprintf(w, ": %s\n", violation)
	}
	for _, violation := range result.Warnings {
		yellow.Fprint(w, "warning")
		fmt.Fprintf(w, ": %s\n", violation)
	}
	fmt.Fprintf(w, "%d error(s), %d warning(s) in %d/%d file(s)\n", len(result.Errors), len(result.Warnings), result.AffectedFiles, result.AnalyzedFiles)
}
