package cmd

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/textx"
)

// stdinArg makes a TEXT argument read the whole of stdin
const stdinArg = "-"

// getInputText turns a command line argument into a view. Arguments come
// from the operating system unchecked, so they are validated like any
// other foreign bytes.
func getInputText(cmd *cobra.Command, arg string) (textx.View, error) {
	if arg == stdinArg {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return textx.View{}, tkerrors.OperationFailed(tkerrors.ModuleCLI, "read_stdin", err)
		}
		buf, err := textx.FromBytes(data)
		if err != nil {
			return textx.View{}, err
		}
		return buf.View(), nil
	}
	return textx.FromLiteral(arg)
}

// getInputTexts validates every argument; at most one may be "-".
func getInputTexts(cmd *cobra.Command, args []string) ([]textx.View, error) {
	views := make([]textx.View, 0, len(args))
	stdinUsed := false
	for _, arg := range args {
		if arg == stdinArg {
			if stdinUsed {
				return nil, tkerrors.InvalidInput(tkerrors.ModuleCLI, "read_stdin", arg, "stdin used at most once")
			}
			stdinUsed = true
		}
		v, err := getInputText(cmd, arg)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// parseOffset reads a byte offset into a text of length max. Offsets past
// max are left to textx so they fail as INVALID_BOUNDARY.
func parseOffset(name, arg string, max int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, tkerrors.InvalidInput(tkerrors.ModuleCLI, "parse_"+name, arg, "integer byte offset")
	}
	if n < 0 {
		return 0, tkerrors.OutOfRange(tkerrors.ModuleCLI, "parse_"+name, n, 0, max)
	}
	return n, nil
}
