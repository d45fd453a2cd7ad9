package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/wordcloud/pkg/animate"
	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/scene"
	"github.com/matzehuels/wordcloud/pkg/symbols"
)

func textScene() scene.Scene {
	w := cloud.PlacedWord{Text: "fox", Count: 3, Size: 40, X: -10, Y: 5, Rotate: 30}
	return scene.Scene{
		Width:    200,
		Height:   100,
		Variant:  scene.VariantText,
		Gradient: "Viridis",
		Stacks: []scene.Stack{{
			Word: w,
			Layers: []scene.Layer{
				{Text: "fox", Size: 40, Z: 0, Index: 0, Fill: "#440154", X: -10, Y: 5, Rotate: 30},
				{Text: "fox", Size: 30, Z: 1, Index: 1, Fill: "#21918c", X: -10, Y: 5, Rotate: 30},
				{Text: "fox", Size: 20, Z: 2, Index: 2, Fill: "#fde725", X: -10, Y: 5, Rotate: 30},
			},
		}},
	}
}

func symbolScene() scene.Scene {
	w := cloud.PlacedWord{Text: "a&b", Size: 40}
	return scene.Scene{
		Width:   100,
		Height:  100,
		Variant: scene.VariantSymbols,
		Backdrops: []scene.Backdrop{
			{Text: "a&b", Size: 40, Fill: "#000", Opacity: 0.05},
		},
		TileStacks: []scene.TileStack{{
			Word:  w,
			Shape: symbols.KindSquare,
			Tiles: []scene.SymbolTile{
				{X: -10, Y: -30, Size: 20, Fill: "#440154", Shape: symbols.KindSquare, Index: 0},
				{X: -5, Y: -25, Size: 10, Fill: "#fde725", Shape: symbols.KindSquare, Z: 1, Index: 1},
			},
		}},
	}
}

// wellFormed decodes every token of data and fails on malformed XML.
func wellFormed(t *testing.T, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return
			}
			t.Fatalf("malformed SVG: %v\n%s", err, data)
		}
	}
}

func TestRenderSVGText(t *testing.T) {
	svg := RenderSVG(textScene(), WithID("test"), WithTitle("Fox & friends"))
	wellFormed(t, svg)
	s := string(svg)

	for _, want := range []string{
		`viewBox="0 0 200 100"`,
		`<g transform="translate(100,50)">`,
		`translate(-10,5) rotate(30)`,
		`text-anchor="middle"`,
		`stroke="#000" stroke-width="0.1"`,
		`fill="#440154"`,
		`<title>Fox &amp; friends</title>`,
		`id="` + docID("test") + `-layer-0-2"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Count(s, "<text") != 3 {
		t.Errorf("got %d text elements, want 3", strings.Count(s, "<text"))
	}
	if strings.Contains(s, "<animate") {
		t.Error("static SVG should not contain animation")
	}
}

func TestRenderSVGDepthOrder(t *testing.T) {
	sc := textScene()
	other := sc.Stacks[0]
	other.Word.Text = "dog"
	for i := range other.Layers {
		other.Layers[i].Text = "dog"
	}
	sc.Stacks = append(sc.Stacks, other)

	s := string(RenderSVG(sc, WithID("order")))
	// Both outer copies precede both inner copies.
	firstInnerFox := strings.Index(s, docID("order")+"-layer-0-1")
	outerDog := strings.Index(s, docID("order")+"-layer-1-0")
	if outerDog < 0 || firstInnerFox < 0 || outerDog > firstInnerFox {
		t.Errorf("layers not ordered by depth: outer dog at %d, inner fox at %d", outerDog, firstInnerFox)
	}
}

func TestRenderSVGSymbols(t *testing.T) {
	svg := RenderSVG(symbolScene(), WithBackground("#fff"))
	wellFormed(t, svg)
	s := string(svg)
	if !strings.Contains(s, `fill-opacity="0.05"`) {
		t.Error("backdrop should be faint")
	}
	if !strings.Contains(s, "a&amp;b") {
		t.Error("backdrop text should be escaped")
	}
	if strings.Count(s, "<path") != 2 {
		t.Errorf("got %d paths, want 2", strings.Count(s, "<path"))
	}
	if !strings.Contains(s, `<rect width="100%" height="100%" fill="#fff"/>`) {
		t.Error("missing background")
	}
}

func TestDocIDDeterministic(t *testing.T) {
	a := RenderSVG(textScene())
	b := RenderSVG(textScene())
	if !bytes.Equal(a, b) {
		t.Error("rendering the same scene twice should give identical output")
	}
	if docID("x") == docID("y") {
		t.Error("different names should give different IDs")
	}
}

func TestEmbeddedFont(t *testing.T) {
	s := string(RenderSVG(textScene(), WithEmbeddedFont(), WithFont("Impact")))
	if !strings.Contains(s, "@font-face") || !strings.Contains(s, "base64,") {
		t.Error("embedded font missing")
	}
	if !strings.Contains(s, `font-family="&#39;Go Bold&#39;, Impact"`) {
		t.Error("text should prefer the embedded font")
	}
}

func TestFontFamilyEscaped(t *testing.T) {
	for _, sc := range []scene.Scene{textScene(), symbolScene()} {
		t.Run(string(sc.Variant), func(t *testing.T) {
			svg := RenderSVG(sc, WithFont(`"Fancy" <Sans> & co`))
			wellFormed(t, svg)
			if !strings.Contains(string(svg), `font-family="&#34;Fancy&#34; &lt;Sans&gt; &amp; co"`) {
				t.Errorf("font family not escaped:\n%s", svg)
			}
		})
	}
}

func TestRenderAnimatedSVG(t *testing.T) {
	for _, sc := range []scene.Scene{textScene(), symbolScene()} {
		t.Run(string(sc.Variant), func(t *testing.T) {
			tl := animate.Bake(animate.NewState(sc), animate.NewEnv(4), 3, 0)
			svg := RenderAnimatedSVG(sc, tl, WithID("anim"))
			wellFormed(t, svg)
			s := string(svg)

			if !strings.Contains(s, `<animateTransform attributeName="transform" type="translate"`) {
				t.Error("missing transform track")
			}
			if !strings.Contains(s, `<animate attributeName="fill"`) {
				t.Error("missing fill track")
			}
			if !strings.Contains(s, `dur="6s" repeatCount="indefinite"`) {
				t.Error("tracks should loop over 3 ticks of 2s")
			}
		})
	}
}

func TestRenderAnimatedSVGEmptyTimeline(t *testing.T) {
	sc := textScene()
	got := RenderAnimatedSVG(sc, animate.Timeline{})
	if !bytes.Equal(got, RenderSVG(sc)) {
		t.Error("an empty timeline should render the static frame")
	}
}

func TestKeyTimesWellFormed(t *testing.T) {
	sc := symbolScene()
	tl := animate.Bake(animate.NewState(sc), animate.NewEnv(8), 5, 0)
	tracks := bakeTracks(tl)
	if len(tracks) == 0 {
		t.Fatal("no tracks")
	}
	for target, e := range tracks {
		for name, k := range map[string]*keyframes{"transform": &e.transform, "fill": &e.fill, "path": &e.path} {
			if len(k.times) == 0 {
				continue
			}
			if k.times[0] != 0 {
				t.Errorf("%s %s: first keyframe at %v", target.ID(), name, k.times[0])
			}
			for i := 1; i < len(k.times); i++ {
				if k.times[i] <= k.times[i-1] {
					t.Errorf("%s %s: keyframes not increasing at %d", target.ID(), name, i)
				}
			}
			if k.times[len(k.times)-1] > tl.Period() {
				t.Errorf("%s %s: keyframe beyond the loop", target.ID(), name)
			}
			if len(k.times) != len(k.values) {
				t.Errorf("%s %s: %d times, %d values", target.ID(), name, len(k.times), len(k.values))
			}
		}
		if n := len(e.path.values); n > 0 {
			want := strings.Count(e.path.values[0], "L")
			for _, v := range e.path.values {
				if strings.Count(v, "L") != want {
					t.Errorf("%s: path values differ in structure", target.ID())
					break
				}
			}
		}
	}
}

func TestPathMorphEndpointsOnly(t *testing.T) {
	sc := symbolScene()
	interp, err := symbols.InterpolateN(symbols.Square(-10, -30, 20, 20), symbols.Circle(-10, -30, 20, 20), symbols.DefaultSamples)
	if err != nil {
		t.Fatal(err)
	}
	square, circle := interp(0), interp(1)
	target := animate.Target{Group: animate.GroupTile, Stack: 0, Index: 0}
	morph := func(from, to string) animate.Transition {
		return animate.Transition{
			Target: target, Kind: animate.KindPath,
			From: from, To: to,
			Duration: time.Second, Ease: animate.EaseCubicInOut,
		}
	}
	tl := animate.Timeline{
		Initial:  animate.NewState(sc),
		Interval: 2 * time.Second,
		Frames: []animate.Frame{
			{Transitions: []animate.Transition{morph(square, circle)}},
			{Transitions: []animate.Transition{morph(circle, square)}},
		},
	}

	svg := RenderAnimatedSVG(sc, tl, WithID("morph"))
	wellFormed(t, svg)
	m := regexp.MustCompile(`<animate attributeName="d" values="([^"]*)" keyTimes="([^"]*)" calcMode="spline" keySplines="([^"]*)"`).FindSubmatch(svg)
	if m == nil {
		t.Fatalf("no eased path track in:\n%s", svg)
	}
	values := strings.Split(string(m[1]), ";")
	keyTimes := strings.Split(string(m[2]), ";")
	splines := strings.Split(string(m[3]), ";")

	// Per morph: hold, relabel and end; plus the initial and closing frames.
	if len(values) != 7 {
		t.Errorf("got %d path values, want 7", len(values))
	}
	if len(keyTimes) != len(values) {
		t.Errorf("got %d keyTimes for %d values", len(keyTimes), len(values))
	}
	if len(splines) != len(values)-1 {
		t.Errorf("got %d keySplines for %d values", len(splines), len(values))
	}
	eased := 0
	for _, sp := range splines {
		if sp == easeSplines[animate.EaseCubicInOut] {
			eased++
		}
	}
	if eased != 2 {
		t.Errorf("got %d eased intervals, want 2", eased)
	}
	for _, v := range values {
		if v != square && v != circle {
			t.Errorf("path value %.30q... is not a morph endpoint", v)
			break
		}
	}
}

func ExampleRenderSVG() {
	sc := scene.Scene{
		Width:  100,
		Height: 50,
		Stacks: []scene.Stack{{
			Layers: []scene.Layer{{Text: "go", Size: 20, Fill: "#00add8"}},
		}},
	}
	svg := RenderSVG(sc, WithID("example"), WithFont("Impact"))
	fmt.Print(string(svg))
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" id="wc-5c9ef7cb" viewBox="0 0 100 50" width="100" height="50">
	//   <g transform="translate(50,25)">
	//     <g id="wc-5c9ef7cb-layer-0-0" transform="translate(0,0)"><g transform="translate(0,0)"><text font-family="Impact" font-weight="bold" font-size="20" text-anchor="middle" fill="#00add8" stroke="#000" stroke-width="0.1">go</text></g></g>
	//   </g>
	// </svg>
}
