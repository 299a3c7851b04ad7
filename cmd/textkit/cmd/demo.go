package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	tklog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/internal/walkthrough"
)

var demoOutput string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the string-literal walkthrough",
	Long: `Replays the walkthrough of string literals, raw and byte strings,
owned buffers and borrowed views. Every statement is recomputed with
textx and checked against the documented result.

Examples:
  textkit demo
  textkit demo --output yaml`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&demoOutput, "output", "o", outputText, "output format (text, json, yaml)")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := validateOutput(demoOutput); err != nil {
		return err
	}

	timer := logger.StartTimer("demo")
	sections, err := walkthrough.Sections()
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	failures := walkthrough.Failures(sections)
	total := 0
	for _, s := range sections {
		total += len(s.Checks)
	}
	timer.WithField("sections", len(sections)).WithField("failures", failures).Stop()

	w := cmd.OutOrStdout()
	if demoOutput != outputText {
		if err := writeStructured(w, demoOutput, sections); err != nil {
			return err
		}
	} else {
		st := newStyles(w)
		for i, s := range sections {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, st.Title.Render(s.Title))
			for _, note := range s.Notes {
				fmt.Fprintf(w, "  %s\n", st.Note.Render(note))
			}
			for _, c := range s.Checks {
				if c.OK {
					fmt.Fprintf(w, "  %s %s = %s\n", st.OK.Render("ok"), c.Expr, c.Got)
				} else {
					fmt.Fprintf(w, "  %s %s = %s, want %s\n", st.Fail.Render("FAIL"), c.Expr, c.Got, c.Want)
				}
			}
		}
		fmt.Fprintf(w, "\n%d/%d checks passed\n", total-failures, total)
	}

	if failures > 0 {
		logger.Warn("walkthrough has failing checks", tklog.Int("failures", failures))
		return tkerrors.ValidationFailed(tkerrors.ModuleCLI, "walkthrough", failures,
			fmt.Sprintf("%d of %d checks failed", failures, total))
	}
	return nil
}
