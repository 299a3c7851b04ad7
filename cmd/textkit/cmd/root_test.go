package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/pkg/core/config"
)

// execute runs the root command with args and stdin in an environment
// without any TEXTKIT_* variables or config files.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	for _, k := range []string{config.EnvConfigPath, config.EnvLogLevel, config.EnvLogFormat, config.EnvSeparator} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	resetFlags(rootCmd)
	cfg, logger = nil, nil

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))

	err := Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag of c and its subcommands to its default
// so runs do not leak into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func assertMatch(t *testing.T, out, pattern string) {
	t.Helper()
	if !regexp.MustCompile(pattern).MatchString(out) {
		t.Errorf("output %q does not match %s", out, pattern)
	}
}

func TestRootCommandsRegistered(t *testing.T) {
	want := []string{"compare", "concat", "contains", "demo", "inspect", "join", "replace", "slice", "split", "trim", "version"}
	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		if err != nil || c.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	_, stderr, err := execute(t, "", "frobnicate")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if tkerror.GetCode(err).ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", tkerror.GetCode(err).ExitCode())
	}
	if !strings.HasPrefix(stderr, "Error: ") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textkit.yaml")
	if err := os.WriteFile(path, []byte("text:\n  separator: \" + \"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "--config", path, "join", "a", "b")
	if err != nil {
		t.Fatalf("join error = %v", err)
	}
	if out != "a + b\n" {
		t.Errorf("join = %q, want %q", out, "a + b\n")
	}
}

func TestConfigErrors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[log\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		wantCode tkerror.Code
		wantExit int
	}{
		{"missing file", []string{"--config", filepath.Join(t.TempDir(), "none.toml"), "concat"}, tkerror.CodeNotFound, 1},
		{"unparsable file", []string{"--config", bad, "concat"}, tkerror.CodeConfigError, 3},
		{"bad log level", []string{"--log-level", "loud", "concat"}, tkerror.CodeInvalidConfig, 3},
		{"bad log format", []string{"--log-format", "xml", "concat"}, tkerror.CodeInvalidConfig, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			if !tkerror.HasCode(err, tt.wantCode) {
				t.Fatalf("error = %v, want code %v", err, tt.wantCode)
			}
			if got := tkerror.GetCode(err).ExitCode(); got != tt.wantExit {
				t.Errorf("exit code = %d, want %d", got, tt.wantExit)
			}
		})
	}
}

func TestSplitSeparatorFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textkit.toml")
	if err := os.WriteFile(path, []byte("[text]\nseparator = \";\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"config separator", []string{"split", "a;b, c"}, "a\nb, c\n"},
		{"flag wins", []string{"split", "--sep", ", ", "a;b, c"}, "a;b\nc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", append([]string{"--config", path}, tt.args...)...)
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.want {
				t.Errorf("split = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestEmptySeparatorFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textkit.toml")
	if err := os.WriteFile(path, []byte("[text]\nseparator = \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "--config", path, "join", "veni", "vidi", "vici")
	if err != nil {
		t.Fatal(err)
	}
	if out != "venividivici\n" {
		t.Errorf("join with empty separator = %q", out)
	}
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := execute(t, "", "-v", "concat", "a", "b")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[DBG]", "configuration loaded", "concatenated", "parts=2"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr %q missing %q", stderr, want)
		}
	}
}

func TestLogFormatFlag(t *testing.T) {
	_, stderr, err := execute(t, "", "--log-level", "debug", "--log-format", "logfmt", "concat", "a")
	if err != nil {
		t.Fatal(err)
	}
	assertMatch(t, stderr, `level=debug message="configuration loaded" logger=textkit correlation_id=[0-9a-f-]{36}`)
}

func TestQuietByDefault(t *testing.T) {
	_, stderr, err := execute(t, "", "concat", "a")
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want nothing at the default level", stderr)
	}
}

func TestInvalidEncodingArgument(t *testing.T) {
	_, stderr, err := execute(t, "", "inspect", "ab\xffcd")
	if !tkerror.HasCode(err, tkerror.CodeInvalidEncoding) {
		t.Fatalf("error = %v, want INVALID_ENCODING", err)
	}
	if tkerror.GetCode(err).ExitCode() != 2 {
		t.Errorf("exit code = %d, want 2", tkerror.GetCode(err).ExitCode())
	}
	if !strings.Contains(stderr, "Error:") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestStdinUsedOnce(t *testing.T) {
	_, _, err := execute(t, "x", "concat", "-", "-")
	if !tkerror.HasCode(err, tkerror.CodeInvalidInput) {
		t.Fatalf("error = %v, want INVALID_INPUT", err)
	}
	if got := tkerror.GetCode(err).ExitCode(); got != 2 {
		t.Errorf("exit code = %d, want 2", got)
	}
}
