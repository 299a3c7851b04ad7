package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tklog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/textx"
	"github.com/msto63/textkit/pkg/core/config"
)

var (
	splitSep    string
	splitLines  bool
	splitOutput string
)

var splitCmd = &cobra.Command{
	Use:   "split TEXT",
	Short: "Split a text on a separator",
	Long: `Splits TEXT at every occurrence of the separator and prints one
piece per line. Without --sep the [text] separator of the configuration
is used. Adjacent separators produce empty pieces; an empty
separator splits after every character. With --lines the text is split
into lines instead, accepting "\n" and "\r\n".

Examples:
  textkit split --sep ", " "veni, vidi, vici"
  textkit split --lines - --output json < notes.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().StringVarP(&splitSep, "sep", "s", config.DefaultSeparator, "separator")
	splitCmd.Flags().BoolVarP(&splitLines, "lines", "l", false, "split into lines")
	splitCmd.Flags().StringVarP(&splitOutput, "output", "o", outputText, "output format (text, json, yaml)")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	if err := validateOutput(splitOutput); err != nil {
		return err
	}
	text, err := getInputText(cmd, args[0])
	if err != nil {
		return err
	}

	var pieces []textx.View
	if splitLines {
		pieces = textx.Collect(text.Lines())
	} else {
		sep := cfg.Separator()
		if cmd.Flags().Changed("sep") {
			if sep, err = textx.FromLiteral(splitSep); err != nil {
				return err
			}
		}
		pieces = textx.Collect(text.SplitOn(sep))
	}
	logger.Debug("split", tklog.Int("pieces", len(pieces)), tklog.Bool("lines", splitLines))

	w := cmd.OutOrStdout()
	if splitOutput != outputText {
		out := make([]string, len(pieces))
		for i, p := range pieces {
			out[i] = p.String()
		}
		return writeStructured(w, splitOutput, out)
	}
	for _, p := range pieces {
		fmt.Fprintln(w, p)
	}
	return nil
}
