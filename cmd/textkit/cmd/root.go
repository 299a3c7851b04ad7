package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	tklog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/pkg/core/config"
	"github.com/msto63/textkit/pkg/core/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	verbose   bool

	// Set up by the root command before any subcommand runs
	cfg    *config.Config
	logger *tklog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "textkit",
	Short: "textkit - UTF-8 text buffers and views",
	Long: `textkit exercises the textx library from the command line.

Every TEXT argument must be valid UTF-8; pass "-" to read it from stdin.
Offsets are byte offsets and must fall on character boundaries.

Commands:
  demo      replay the string-literal walkthrough
  inspect   bytes, characters, graphemes and width of a text
  slice     boundary-checked byte slice
  concat    concatenate texts
  join      join texts with a separator
  trim      trim surrounding whitespace
  replace   replace all occurrences of a substring
  split     split a text on a separator
  contains  substring, prefix and suffix checks
  compare   byte-exact and normalized comparison`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports a failure on stderr and
// through the logger.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd, err)
		if logger != nil {
			logger.LogError(err)
		}
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $TEXTKIT_CONFIG, ./textkit.toml, ...)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, console, json, logfmt)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (log level debug)")
}

// setup loads the configuration, applies the logging flags and builds the
// logger shared by all subcommands.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if verbose {
		cfg.Log.Level = tklog.LevelDebug.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lc := logging.FromConfig("textkit", cfg)
	lc.Output = cmd.ErrOrStderr()
	logger = logging.NewLogger(lc)

	logger.Debug("configuration loaded", tklog.Fields{
		"source":  cfg.Source(),
		"command": cmd.Name(),
	})
	return nil
}

func printError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "Error: %v\n", err)
	if tkerrors.IsModuleOperation(err, tkerrors.ModuleTextx, "slice") {
		fmt.Fprintln(w, "Hint: offsets count bytes; \"textkit inspect --runes TEXT\" lists the character boundaries")
	}
}
