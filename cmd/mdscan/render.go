package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/mdscan/internal/config"
	"github.com/julien-sobczak/mdscan/internal/render"
)

var renderFormat string
var renderExcerpt bool

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Output format: html, text, term or reference (default from configuration)")
	renderCmd.Flags().BoolVarP(&renderExcerpt, "excerpt", "e", false, "Print only the beginning of the text")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [file|dir]...",
	Short: "Render Markdown files",
	Long:  `Convert Markdown files (or the standard input) to HTML, plain text or styled terminal output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.CurrentConfig()
		format := renderFormat
		if format == "" {
			format = cfg.ConfigFile.Render.Format
		}
		renderer, err := render.New(format, cfg.RenderOptions(render.IsTerminal(os.Stdout)))
		if err != nil {
			return err
		}

		outputs, err := processSources(cmd.Context(), cmd.InOrStdin(), args, func(source Source) (string, error) {
			if renderExcerpt {
				return render.Excerpt(source.Doc, cfg.ConfigFile.Render.Excerpt) + "\n", nil
			}
			return renderer.Render(source.Doc), nil
		})
		if err != nil {
			return err
		}

		for _, output := range outputs {
			fmt.Fprint(cmd.OutOrStdout(), output)
		}
		return nil
	},
}
