package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/mdscan/internal/toc"
)

var slugUnique bool
var slugASCII bool

func init() {
	slugCmd.Flags().BoolVarP(&slugUnique, "unique", "u", false, "Suffix duplicate slugs with -1, -2, etc.")
	slugCmd.Flags().BoolVarP(&slugASCII, "ascii", "a", false, "Transliterate to ASCII")
	rootCmd.AddCommand(slugCmd)
}

var slugCmd = &cobra.Command{
	Use:   "slug text...",
	Short: "Print the anchor id of headings",
	Long:  `Generate the anchor id of every argument, as used for heading links.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slugger := toc.NewSlugger(toc.Options{Unique: slugUnique, ASCII: slugASCII})
		for _, arg := range args {
			fmt.Fprintln(cmd.OutOrStdout(), slugger.ID(arg))
		}
		return nil
	},
}
