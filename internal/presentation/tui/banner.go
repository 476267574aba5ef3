package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the editor banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()
	// Same indigo to rose gradient as the rest of the CLI
	lines := []struct {
		text  string
		color string
	}{
		{" _____           _", "#818cf8"},
		{"|_   _|   _ _ __(_)_ __   __ _", "#a78bfa"},
		{"  | || | | | '__| | '_ \\ / _` |", "#c084fc"},
		{"  | || |_| | |  | | | | | (_| |", "#e879f9"},
		{"  |_| \\__,_|_|  |_|_| |_|\\__, |", "#f472b6"},
		{"                         |___/", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, "  v%s\n\n", version)
}

// Error renders msg in red when the writer supports color.
func Error(w io.Writer, msg string) string {
	out := termenv.NewOutput(w)
	return out.String(msg).Foreground(out.ColorProfile().Color("#f87171")).String()
}
