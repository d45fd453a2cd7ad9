package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcloud/pkg/palette"
)

// swatchWidth is the number of samples drawn per gradient.
const swatchWidth = 32

// palettesCommand creates the palettes command, which lists every gradient
// with a color swatch.
func (c *CLI) palettesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List the available color gradients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printPalettes(cmd.OutOrStdout())
			return nil
		},
	}
}

func printPalettes(w io.Writer) {
	nameStyle := lipgloss.NewStyle().Foreground(colorGray).Width(20)
	for _, g := range palette.Gradients {
		name := g.Name
		if name == palette.DefaultName {
			name += " *"
		}
		fmt.Fprintln(w, nameStyle.Render(name)+swatch(g, swatchWidth))
	}
}

// swatch samples g at n evenly spaced points.
func swatch(g palette.Gradient, n int) string {
	var b strings.Builder
	for i := range n {
		t := float64(i) / float64(n-1)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(g.Interp(t)))).Render("█"))
	}
	return b.String()
}
