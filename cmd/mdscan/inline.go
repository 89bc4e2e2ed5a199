package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/mdscan/internal/export"
	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

var inlineFormat string

func init() {
	inlineCmd.Flags().StringVarP(&inlineFormat, "format", "f", "text", "Output format: text, yaml, json or dump")
	rootCmd.AddCommand(inlineCmd)
}

var inlineCmd = &cobra.Command{
	Use:   "inline [text]...",
	Short: "Print the inline nodes of a text",
	Long:  `Tokenize the arguments (joined by a space) or the standard input into inline nodes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) > 0 {
			text = strings.Join(args, " ")
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			text = strings.TrimSuffix(string(data), "\n")
		}

		nodes := markdown.ParseInline(text)
		if inlineFormat == "text" {
			for _, node := range nodes {
				fmt.Fprintln(cmd.OutOrStdout(), node)
			}
			return nil
		}
		format, err := export.ParseFormat(inlineFormat)
		if err != nil {
			return err
		}
		return export.Encode(cmd.OutOrStdout(), format, export.FromInline(nodes))
	},
}
