package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color scheme for text output.
type Theme struct {
	Title lipgloss.Color
	Label lipgloss.Color
	Save  lipgloss.Color
	Hint  lipgloss.Color
}

var defaultTheme = Theme{
	Title: lipgloss.Color("#5FAFD7"), // light blue
	Label: lipgloss.Color("#AFAFAF"), // gray
	Save:  lipgloss.Color("#00D787"), // green
	Hint:  lipgloss.Color("#6C6C6C"), // dim gray
}

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Title).Bold(true)
}

func (t Theme) labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Label)
}

func (t Theme) saveStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Save).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

// printField writes one "label value" row with the label column padded.
func printField(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s %v\n", defaultTheme.labelStyle().Width(28).Render(label), value)
}
