package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var colorRed = lipgloss.Color("167") // Soft red - errors

const iconError = "✗"

// printError writes an error line to w. On a color terminal the line is
// prefixed with a red icon; redirected output gets the bare message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r := lipgloss.NewRenderer(w)
	if r.ColorProfile() != termenv.Ascii {
		msg = r.NewStyle().Foreground(colorRed).Render(iconError) + " " + msg
	}
	fmt.Fprintln(w, msg)
}
