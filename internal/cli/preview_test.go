package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/wordcloud/pkg/animate"
	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/scene"
)

func previewState(frame int, gradient string, fills ...string) animate.State {
	st := scene.Stack{Word: cloud.PlacedWord{Text: "cloud", Count: 5}}
	for i, f := range fills {
		st.Layers = append(st.Layers, scene.Layer{Text: "cloud", Z: i, Index: i, Fill: f})
	}
	tile := func(fill string) scene.SymbolTile { return scene.SymbolTile{Fill: fill} }
	return animate.State{
		Frame:    frame,
		Gradient: gradient,
		Stacks:   []scene.Stack{st},
		TileStacks: []scene.TileStack{
			{Word: cloud.PlacedWord{Text: "grid"}, Tiles: []scene.SymbolTile{tile("#ff0000"), tile("#00ff00")}},
			{Word: cloud.PlacedWord{Text: "grid"}, Tiles: []scene.SymbolTile{tile("#0000ff")}},
		},
	}
}

func TestPreviewRows(t *testing.T) {
	got := previewRows(previewState(0, "Viridis", "#440154", "#21918c"))
	want := []previewRow{
		{Text: "cloud", Fills: []string{"#440154", "#21918c"}},
		{Text: "grid", Fills: []string{"#ff0000", "#00ff00"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("previewRows mismatch (-want +got):\n%s", diff)
	}
}

func TestPreviewModelFrame(t *testing.T) {
	m := newPreviewModel(previewState(0, "Viridis", "#440154"), nil)

	next, cmd := m.Update(frameMsg(animate.Frame{State: previewState(4, "Turbo", "#30123b")}))
	if cmd != nil {
		t.Error("a frame should not issue a command")
	}
	pm := next.(previewModel)
	if pm.Frame != 4 || pm.Gradient != "Turbo" {
		t.Errorf("frame/gradient = %d/%q, want 4/Turbo", pm.Frame, pm.Gradient)
	}
	if got := pm.Rows[0].Fills; !cmp.Equal(got, []string{"#30123b"}) {
		t.Errorf("fills = %v, want recolored layer", got)
	}
	if view := pm.View(); !strings.Contains(view, "frame 4") || !strings.Contains(view, "cloud") {
		t.Errorf("view should show the frame and words:\n%s", view)
	}
}

func TestPreviewModelQuit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		t.Run(key.String(), func(t *testing.T) {
			disposed := 0
			m := newPreviewModel(previewState(0, "Viridis"), func() { disposed++ })

			next, cmd := m.Update(key)
			if disposed != 1 {
				t.Errorf("dispose called %d times, want 1", disposed)
			}
			if cmd == nil {
				t.Fatal("quit key should return a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit key should return tea.Quit")
			}
			if view := next.View(); view != "" {
				t.Errorf("view after quit = %q, want empty", view)
			}
		})
	}
}

func TestPreviewModelHeight(t *testing.T) {
	m := newPreviewModel(previewState(0, "Viridis", "#440154"), nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 3})
	pm := next.(previewModel)
	if pm.Height != 5 {
		t.Errorf("Height = %d, want floor of 5", pm.Height)
	}

	pm.Height = 1
	if view := pm.View(); !strings.Contains(view, "1 more") {
		t.Errorf("view should truncate rows:\n%s", view)
	}
}
