package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/textx"
)

var sliceCmd = &cobra.Command{
	Use:   "slice TEXT START [END]",
	Short: "Cut a text at byte offsets",
	Long: `Prints the bytes [START, END) of TEXT. END defaults to the length
of the text. Both offsets must fall on character boundaries; an offset
inside a multi-byte character fails with INVALID_BOUNDARY.

Examples:
  textkit slice noodles 1         # oodles
  textkit slice "ಠ_ಠ" 3 4         # _
  textkit slice "ಠ_ಠ" 1 7         # error: not a character boundary`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runSlice,
}

func init() {
	rootCmd.AddCommand(sliceCmd)
}

func runSlice(cmd *cobra.Command, args []string) error {
	text, err := getInputText(cmd, args[0])
	if err != nil {
		return err
	}

	start, err := parseOffset("start", args[1], text.Len())
	if err != nil {
		return err
	}
	end := text.Len()
	if len(args) == 3 {
		if end, err = parseOffset("end", args[2], text.Len()); err != nil {
			return err
		}
	}

	timer := logger.StartTimer("slice").WithField("start", start).WithField("end", end)
	view, err := textx.Slice(text, start, end)
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()

	fmt.Fprintln(cmd.OutOrStdout(), view)
	return nil
}
