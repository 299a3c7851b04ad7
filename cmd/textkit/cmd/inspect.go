package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/internal/analysis"
)

var (
	inspectRunes  bool
	inspectOutput string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect TEXT",
	Short: "Show bytes, characters, graphemes and width of a text",
	Long: `Measures a text: byte length, character (scalar value) count,
grapheme clusters, monospace display width, words and lines, and whether
the text is already in each Unicode normalization form.

Examples:
  textkit inspect "ಠ_ಠ"
  textkit inspect --runes "24°05′23″N"
  echo "noodles" | textkit inspect - --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVarP(&inspectRunes, "runes", "r", false, "list every character with its offset and code point")
	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", outputText, "output format (text, json, yaml)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if err := validateOutput(inspectOutput); err != nil {
		return err
	}
	text, err := getInputText(cmd, args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc := analysis.NewService(analysis.Config{Logger: logger, IncludeRunes: inspectRunes})
	result, err := svc.Analyze(ctx, text)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if inspectOutput != outputText {
		return writeStructured(w, inspectOutput, result)
	}

	st := newStyles(w)
	fmt.Fprintln(w, st.Title.Render(fmt.Sprintf("%q", text.String())))
	st.field(w, "bytes", result.Bytes)
	st.field(w, "chars", result.Chars)
	st.field(w, "graphemes", result.Graphemes)
	st.field(w, "width", result.Width)
	st.field(w, "words", result.Words)
	st.field(w, "lines", result.Lines)
	st.field(w, "ascii", result.ASCII)

	n := result.Normalization
	st.field(w, "normalized", fmt.Sprintf("NFC=%t NFD=%t NFKC=%t NFKD=%t", n.NFC, n.NFD, n.NFKC, n.NFKD))

	if len(result.Runes) > 0 {
		fmt.Fprintln(w)
		for _, r := range result.Runes {
			fmt.Fprintf(w, "  %4d  %-8s %-6s %d byte(s)\n", r.Offset, r.CodePoint, r.Char, r.Size)
		}
	}
	return nil
}
