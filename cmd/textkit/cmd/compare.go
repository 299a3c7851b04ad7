package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tklog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/textx"
)

var compareNorm string

var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Compare two texts byte-exactly and after normalization",
	Long: `Compares A and B. "equal" and "order" look at the raw bytes only;
"normalized" compares both texts after bringing them into the given
Unicode normalization form (default from the configuration).

Examples:
  textkit compare "$(printf 'caf\xc3\xa9')" "$(printf 'cafe\xcc\x81')"
  textkit compare --norm NFKC "ﬁ" fi`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareNorm, "norm", "n", "", "normalization form (NFC, NFD, NFKC, NFKD)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	views, err := getInputTexts(cmd, args)
	if err != nil {
		return err
	}
	a, b := views[0], views[1]

	form := cfg.NormForm()
	if compareNorm != "" {
		if form, err = textx.ParseNormForm(compareNorm); err != nil {
			return err
		}
	}

	equal := textx.Equal(a, b)
	normalized := textx.EqualNormalized(a, b, form)
	if !equal && normalized {
		logger.Info("texts differ only in normalization", tklog.String("form", form.String()))
	}

	w := cmd.OutOrStdout()
	st := newStyles(w)
	st.field(w, "equal", equal)
	st.field(w, "order", textx.Compare(a, b))
	st.field(w, "normalized", fmt.Sprintf("%t (%s)", normalized, form))
	return nil
}

