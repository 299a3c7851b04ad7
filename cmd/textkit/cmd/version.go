package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/pkg/core/version"
)

var versionOutput string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	// Needs neither configuration nor logger
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runVersion,
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", outputText, "output format (text, json, yaml)")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	if err := validateOutput(versionOutput); err != nil {
		return err
	}

	info := version.Get()
	w := cmd.OutOrStdout()
	if versionOutput != outputText {
		return writeStructured(w, versionOutput, info)
	}

	fmt.Fprintf(w, "textkit v%s\n", info.CLI)
	fmt.Fprintf(w, "  textx:      v%s\n", info.Library)
	fmt.Fprintf(w, "  Git Commit: %s\n", info.Commit)
	fmt.Fprintf(w, "  Build Date: %s\n", info.BuildDate)
	fmt.Fprintf(w, "  Go Version: %s\n", info.GoVersion)
	fmt.Fprintf(w, "  OS/Arch:    %s\n", info.Platform)
	return nil
}
