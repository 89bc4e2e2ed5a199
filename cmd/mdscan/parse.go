package main

import (
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/mdscan/internal/config"
	"github.com/julien-sobczak/mdscan/internal/export"
)

var parseFormat string
var parseInline bool

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "yaml", "Output format: yaml, json or dump")
	parseCmd.Flags().BoolVarP(&parseInline, "inline", "i", true, "Include inline nodes")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [file|dir]...",
	Short: "Print the blocks of Markdown files",
	Long:  `Parse Markdown files (or the standard input) and print their blocks with their inline nodes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(parseFormat)
		if err != nil {
			return err
		}
		opts := config.CurrentConfig().ExportOptions(parseInline)

		docs, err := processSources(cmd.Context(), cmd.InOrStdin(), args, func(source Source) (export.Document, error) {
			return export.New(source.Path, source.Doc, opts), nil
		})
		if err != nil {
			return err
		}

		if len(docs) == 1 {
			return export.Encode(cmd.OutOrStdout(), format, docs[0])
		}
		return export.Encode(cmd.OutOrStdout(), format, docs)
	},
}
