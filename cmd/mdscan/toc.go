package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/mdscan/internal/config"
	"github.com/julien-sobczak/mdscan/internal/export"
	"github.com/julien-sobczak/mdscan/internal/toc"
)

var tocFormat string
var tocMaxLevel int

func init() {
	tocCmd.Flags().StringVarP(&tocFormat, "format", "f", "markdown", "Output format: markdown, html, yaml or json")
	tocCmd.Flags().IntVarP(&tocMaxLevel, "max-level", "l", -1, "Deepest heading level to include (default from configuration, 0 for all)")
	rootCmd.AddCommand(tocCmd)
}

var tocCmd = &cobra.Command{
	Use:   "toc [file|dir]...",
	Short: "Print the table of contents",
	Long:  `Print the table of contents of Markdown files based on their headings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.CurrentConfig()
		opts := cfg.TOCOptions()
		if tocMaxLevel >= 0 {
			opts.MaxLevel = tocMaxLevel
		}

		tocs, err := processSources(cmd.Context(), cmd.InOrStdin(), args, func(source Source) ([]toc.Entry, error) {
			return toc.Build(cfg.Parser().ParseBlocks(source.Doc.String()), opts), nil
		})
		if err != nil {
			return err
		}

		for _, entries := range tocs {
			if err := printTOC(cmd.OutOrStdout(), entries); err != nil {
				return err
			}
		}
		return nil
	},
}

func printTOC(w io.Writer, entries []toc.Entry) error {
	switch tocFormat {
	case "markdown":
		_, err := fmt.Fprint(w, toc.Markdown(entries))
		return err
	case "html":
		_, err := fmt.Fprint(w, toc.HTML(entries))
		return err
	}
	format, err := export.ParseFormat(tocFormat)
	if err != nil {
		return err
	}
	return export.Encode(w, format, entries)
}
