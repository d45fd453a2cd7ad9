package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcloud/pkg/animate"
	"github.com/matzehuels/wordcloud/pkg/pipeline"
)

// previewCommand creates the preview command, a live terminal rendition of
// the animation: every tick re-colors the ranked words with their layer fills.
func (c *CLI) previewCommand() *cobra.Command {
	var flags pipeline.Options

	cmd := &cobra.Command{
		Use:   "preview [file|-]",
		Short: "Preview the color animation in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd.Flags(), &flags)
			if err != nil {
				return err
			}
			return c.runPreview(cmd.Context(), args[0], opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addOptionFlags(cmd.Flags(), &flags,
		"count", "stopword", "width", "height", "seed", "symbols", "palette", "interval", "right")
	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, opts pipeline.Options, stdin io.Reader, w io.Writer) error {
	text, err := readInput(input, stdin)
	if err != nil {
		return err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	cl, _, err := c.newRunner().Build(ctx, text, opts)
	if err != nil {
		return err
	}
	defer cl.Dispose()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(w)}
	if input == stdinArg {
		// stdin carried the text, so keys come from the terminal.
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	m := newPreviewModel(animate.NewState(cl.Scene), cl.Dispose)
	p := tea.NewProgram(m, progOpts...)
	cl.Start(ctx, func(f animate.Frame) {
		p.Send(frameMsg(f))
	})

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return ctx.Err()
}

// =============================================================================
// previewModel - live animation view
// =============================================================================

// frameMsg delivers one animation tick to the model.
type frameMsg animate.Frame

// previewRow is one word and the fills of its layers, outermost first.
type previewRow struct {
	Text  string
	Fills []string
}

// previewModel is the bubbletea model for the preview command.
type previewModel struct {
	Rows     []previewRow
	Frame    int
	Gradient string
	Height   int
	Quitting bool

	dispose func()
}

func newPreviewModel(s animate.State, dispose func()) previewModel {
	return previewModel{
		Rows:     previewRows(s),
		Frame:    s.Frame,
		Gradient: s.Gradient,
		Height:   20,
		dispose:  dispose,
	}
}

// previewRows lists every word of s in stack order. Tiled words show the
// fills of their first cell.
func previewRows(s animate.State) []previewRow {
	var rows []previewRow
	for _, st := range s.Stacks {
		row := previewRow{Text: st.Word.Text}
		for _, l := range st.Layers {
			row.Fills = append(row.Fills, l.Fill)
		}
		rows = append(rows, row)
	}

	seen := make(map[string]bool)
	for _, ts := range s.TileStacks {
		if seen[ts.Word.Text] {
			continue
		}
		seen[ts.Word.Text] = true
		row := previewRow{Text: ts.Word.Text}
		for _, t := range ts.Tiles {
			row.Fills = append(row.Fills, t.Fill)
		}
		rows = append(rows, row)
	}
	return rows
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.dispose != nil {
				m.dispose()
			}
			m.Quitting = true
			return m, tea.Quit
		}
	case frameMsg:
		m.Rows = previewRows(msg.State)
		m.Frame = msg.State.Frame
		m.Gradient = msg.State.Gradient
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-5, 5)
	}
	return m, nil
}

func (m previewModel) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Word Cloud Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("frame %d · %s · q quit", m.Frame, m.Gradient)))
	b.WriteString("\n\n")

	width := 0
	for _, r := range m.Rows {
		width = max(width, lipgloss.Width(r.Text))
	}

	for i, r := range m.Rows {
		if i >= m.Height {
			b.WriteString(StyleDim.Render(fmt.Sprintf("  … %d more", len(m.Rows)-i)))
			b.WriteString("\n")
			break
		}
		b.WriteString("  ")
		b.WriteString(wordStyle(r).Width(width + 2).Render(r.Text))
		for _, fill := range r.Fills {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(fill)).Render("█"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// wordStyle colors a word with its innermost fill, the one drawn on top.
func wordStyle(r previewRow) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if n := len(r.Fills); n > 0 {
		s = s.Foreground(lipgloss.Color(r.Fills[n-1]))
	}
	return s
}
