package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/lovelace/foundation/core/error"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	errorKindStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	positionStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	codeStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// render applies style unless color output is disabled
func render(style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s)
}

// printError renders err with its kind, code and source position
func printError(w io.Writer, err error) {
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		fmt.Fprintf(w, "%s: %v\n", render(errorKindStyle, "error"), err)
		return
	}

	fmt.Fprintf(w, "%s: %s\n", render(errorKindStyle, mdwErr.Kind().String()), mdwErr.Error())

	line, hasLine := mdwErr.Detail("line")
	column, hasColumn := mdwErr.Detail("column")
	if hasLine && hasColumn {
		fmt.Fprintf(w, "  %s %s\n", render(mutedStyle, "-->"), render(positionStyle, fmt.Sprintf("%v:%v", line, column)))
	}
	fmt.Fprintf(w, "  %s\n", render(codeStyle, "["+mdwErr.Code().String()+"]"))
}
