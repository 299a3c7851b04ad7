package cmd

import (
	"github.com/spf13/cobra"

	tklog "github.com/msto63/textkit/foundation/core/log"
)

var containsCmd = &cobra.Command{
	Use:   "contains TEXT NEEDLE",
	Short: "Search a text for a substring",
	Long: `Reports whether NEEDLE occurs in TEXT, starts or ends it, the byte
offset of the first occurrence (-1 if absent) and the number of
non-overlapping occurrences. Matching is byte-exact, so differently
normalized spellings of the same text do not match.

Examples:
  textkit contains "veni, vidi, vici" vi`,
	Args: cobra.ExactArgs(2),
	RunE: runContains,
}

func init() {
	rootCmd.AddCommand(containsCmd)
}

func runContains(cmd *cobra.Command, args []string) error {
	views, err := getInputTexts(cmd, args)
	if err != nil {
		return err
	}
	text, needle := views[0], views[1]

	w := cmd.OutOrStdout()
	st := newStyles(w)
	st.field(w, "contains", text.Contains(needle))
	st.field(w, "starts", text.StartsWith(needle))
	st.field(w, "ends", text.EndsWith(needle))
	st.field(w, "index", text.Index(needle))
	st.field(w, "count", text.Count(needle))

	if !text.Contains(needle) {
		logger.Info("needle not found", tklog.String("needle", needle.String()))
	}
	return nil
}
