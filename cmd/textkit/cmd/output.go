package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

// Output formats of the structured commands
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return tkerrors.InvalidInput(tkerrors.ModuleCLI, "parse_output", format, "text|json|yaml")
	}
}

// writeStructured encodes v as JSON or YAML
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
}

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles are bound to one writer so that plain output (pipes, tests)
// carries no escape sequences.
type styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Note  lipgloss.Style
	OK    lipgloss.Style
	Fail  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Title: r.NewStyle().Bold(true).Foreground(colorPrimary),
		Label: r.NewStyle().Foreground(colorMuted).Width(12),
		Note:  r.NewStyle().Foreground(colorMuted).Italic(true),
		OK:    r.NewStyle().Foreground(colorSuccess),
		Fail:  r.NewStyle().Foreground(colorError).Bold(true),
	}
}

// field prints one "label value" line
func (s styles) field(w io.Writer, label string, value interface{}) {
	fmt.Fprintf(w, "%s %v\n", s.Label.Render(label+":"), value)
}
