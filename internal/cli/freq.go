package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcloud/pkg/pipeline"
	"github.com/matzehuels/wordcloud/pkg/textfreq"
)

// barWidth is the width of the longest frequency bar.
const barWidth = 24

// freqCommand creates the freq command, which prints the ranked word table
// the cloud would be built from.
func (c *CLI) freqCommand() *cobra.Command {
	var flags pipeline.Options

	cmd := &cobra.Command{
		Use:   "freq [file|-]",
		Short: "Print the ranked word frequencies of a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd.Flags(), &flags)
			if err != nil {
				return err
			}
			return c.runFreq(cmd.Context(), args[0], opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addOptionFlags(cmd.Flags(), &flags, "count", "stopword")
	return cmd
}

func (c *CLI) runFreq(ctx context.Context, input string, opts pipeline.Options, stdin io.Reader, w io.Writer) error {
	text, err := readInput(input, stdin)
	if err != nil {
		return err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	freqs, err := c.newRunner().Analyze(ctx, text, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, freqTable(freqs))
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("  %d distinct words", len(freqs))))
	return nil
}

// freqTable renders freqs as a rounded table with a proportional bar per word.
func freqTable(freqs []textfreq.WordFrequency) string {
	_, hi := textfreq.Extent(freqs)

	rows := make([][]string, len(freqs))
	for i, f := range freqs {
		n := 1
		if hi > 0 {
			n = max(1, f.Count*barWidth/hi)
		}
		rows[i] = []string{strconv.Itoa(i + 1), f.Text, strconv.Itoa(f.Count), strings.Repeat("█", n)}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Word", "Count", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleDim
			case col == 2:
				return StyleNumber
			case col == 3:
				return StyleTitle.UnsetBold()
			}
			return StyleValue
		}).
		Render()
}
