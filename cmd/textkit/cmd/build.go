package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	tklog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/textx"
	"github.com/msto63/textkit/pkg/core/config"
)

var (
	joinSep   string
	trimMode  string
	trimStart bool
	trimEnd   bool
)

var concatCmd = &cobra.Command{
	Use:   "concat [TEXT...]",
	Short: "Concatenate texts without a separator",
	Long: `Copies all TEXT arguments, in order, into one buffer sized to the
sum of their lengths.

Examples:
  textkit concat veni vidi vici    # venividivici`,
	RunE: runConcat,
}

var joinCmd = &cobra.Command{
	Use:   "join [TEXT...]",
	Short: "Join texts with a separator",
	Long: `Joins the TEXT arguments with the separator between neighbours.
Without --sep the [text] separator of the configuration is used.

Examples:
  textkit join veni vidi vici            # veni, vidi, vici
  textkit join --sep " | " a b c         # a | b | c`,
	RunE: runJoin,
}

var trimCmd = &cobra.Command{
	Use:   "trim TEXT",
	Short: "Trim surrounding whitespace",
	Long: `Removes leading and trailing whitespace. Mode "unicode" strips every
Unicode space character, mode "ascii" only space, tab, CR, LF, VT and FF.
The default mode comes from the [text] section of the configuration.

Examples:
  textkit trim "  clean\n"
  textkit trim --mode ascii -`,
	Args: cobra.ExactArgs(1),
	RunE: runTrim,
}

var replaceCmd = &cobra.Command{
	Use:   "replace TEXT FROM TO",
	Short: "Replace all occurrences of a substring",
	Long: `Replaces every non-overlapping occurrence of FROM in TEXT with TO.
Matching is byte-exact.

Examples:
  textkit replace "ಠ_ಠ" "ಠ" "■"    # ■_■`,
	Args: cobra.ExactArgs(3),
	RunE: runReplace,
}

func init() {
	joinCmd.Flags().StringVarP(&joinSep, "sep", "s", config.DefaultSeparator, "separator placed between texts")

	trimCmd.Flags().StringVarP(&trimMode, "mode", "m", "", "whitespace set (unicode, ascii)")
	trimCmd.Flags().BoolVar(&trimStart, "start", false, "trim only the start")
	trimCmd.Flags().BoolVar(&trimEnd, "end", false, "trim only the end")

	rootCmd.AddCommand(concatCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(replaceCmd)
}

func runConcat(cmd *cobra.Command, args []string) error {
	texts, err := getInputTexts(cmd, args)
	if err != nil {
		return err
	}

	buf := textx.Concat(texts)
	logger.Debug("concatenated", tklog.Int("parts", len(texts)), tklog.Int("bytes", buf.Len()))

	fmt.Fprintln(cmd.OutOrStdout(), buf)
	return nil
}

func runJoin(cmd *cobra.Command, args []string) error {
	texts, err := getInputTexts(cmd, args)
	if err != nil {
		return err
	}

	sep := cfg.Separator()
	if cmd.Flags().Changed("sep") {
		if sep, err = textx.FromLiteral(joinSep); err != nil {
			return err
		}
	}

	buf := textx.Join(texts, sep)
	logger.Debug("joined", tklog.Int("parts", len(texts)), tklog.String("separator", sep.String()))

	fmt.Fprintln(cmd.OutOrStdout(), buf)
	return nil
}

func runTrim(cmd *cobra.Command, args []string) error {
	text, err := getInputText(cmd, args[0])
	if err != nil {
		return err
	}

	mode := cfg.Text.Trim
	if trimMode != "" {
		mode = trimMode
	}

	var trimmed textx.View
	switch {
	case mode != config.TrimUnicode && mode != config.TrimASCII:
		return tkerrors.InvalidInput(tkerrors.ModuleCLI, "parse_trim_mode", mode, "unicode|ascii")
	case mode == config.TrimASCII:
		trimmed = trimASCII(text, trimStart, trimEnd)
	case trimStart && !trimEnd:
		trimmed = text.TrimStart()
	case trimEnd && !trimStart:
		trimmed = text.TrimEnd()
	default:
		trimmed = text.Trim()
	}

	logger.Debug("trimmed", tklog.String("mode", mode), tklog.Int("removed", text.Len()-trimmed.Len()))

	fmt.Fprintln(cmd.OutOrStdout(), trimmed)
	return nil
}

// trimASCII trims ASCII whitespace from one or both ends
func trimASCII(v textx.View, start, end bool) textx.View {
	if start == end {
		return v.TrimASCII()
	}
	full := v.TrimASCII()
	if full.IsEmpty() {
		return full
	}
	// The fully trimmed view is a sub-view of v; widen it on the kept side.
	offset := v.Index(full)
	if start {
		rest, _ := v.SliceFrom(offset)
		return rest
	}
	head, _ := v.SliceTo(offset + full.Len())
	return head
}

func runReplace(cmd *cobra.Command, args []string) error {
	views, err := getInputTexts(cmd, args)
	if err != nil {
		return err
	}
	text, from, to := views[0], views[1], views[2]

	buf := text.Replace(from, to)
	logger.Debug("replaced", tklog.Int("matches", text.Count(from)), tklog.Int("bytes", buf.Len()))

	fmt.Fprintln(cmd.OutOrStdout(), buf)
	return nil
}
