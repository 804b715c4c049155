package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/scaledex/chord"
	"github.com/jsphweid/scaledex/pitch"
	"github.com/jsphweid/scaledex/scale"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	tonicStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func styled(style lipgloss.Style, s string) string {
	if plain {
		return s
	}
	return style.Render(s)
}

func formatPitch(p pitch.Pitch) string {
	if unicode {
		return p.Symbol()
	}
	return p.String()
}

func printScale(w io.Writer, s scale.Scale) {
	names := make([]string, len(s.Pitches))
	for i, p := range s.Pitches {
		names[i] = formatPitch(p)
	}
	names[0] = styled(tonicStyle, names[0])
	fmt.Fprintf(w, "%s %s: %s\n", styled(headingStyle, formatPitch(s.Root)), s.Name, strings.Join(names, " "))
}

func printChord(w io.Writer, c chord.Chord) {
	names := make([]string, len(c.Pitches))
	for i, p := range c.Pitches {
		names[i] = formatPitch(p)
	}
	fmt.Fprintf(w, "%s: %s\n", styled(headingStyle, c.Name()), strings.Join(names, " "))
}

func printError(w io.Writer, label string, err error) {
	fmt.Fprintf(w, "%s: %s\n", label, styled(errorStyle, err.Error()))
}
