package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// colorMode is the value of the --color flag.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

var colorModes = []string{string(colorAuto), string(colorAlways), string(colorNever)}

var _ pflag.Value = (*colorMode)(nil)

func (m *colorMode) String() string { return string(*m) }

func (m *colorMode) Set(s string) error {
	switch colorMode(strings.ToLower(s)) {
	case colorAuto, colorAlways, colorNever:
		*m = colorMode(strings.ToLower(s))
		return nil
	}
	return fmt.Errorf("must be one of %s", strings.Join(colorModes, ", "))
}

func (m *colorMode) Type() string { return "mode" }

// applyColorMode enables or disables colored output globally.
// In auto mode colors are used only when w is a terminal and NO_COLOR is unset.
func applyColorMode(m colorMode, w io.Writer) {
	switch m {
	case colorAlways:
		color.NoColor = false
	case colorNever:
		color.NoColor = true
	default:
		color.NoColor = os.Getenv("NO_COLOR") != "" || !isTerminal(w)
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
