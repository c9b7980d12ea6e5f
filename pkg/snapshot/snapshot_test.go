package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/multistate/pkg/view"
)

func newGroup(t *testing.T, names ...string) (*view.Group, []*view.Box) {
	t.Helper()
	g := view.NewGroup("root")
	boxes := make([]*view.Box, len(names))
	for i, name := range names {
		boxes[i] = view.NewBox(name)
		if err := g.AddView(boxes[i]); err != nil {
			t.Fatal(err)
		}
	}
	return g, boxes
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func TestRender_NothingVisible(t *testing.T) {
	g, boxes := newGroup(t, "content", "loading")
	for _, b := range boxes {
		b.SetVisibility(view.Gone)
	}
	img := Render(g, Options{Width: 40, Height: 30})
	if img.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(20, 20); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("pixel = %v, want white background", got)
	}
}

func TestRender_OpaquePanel(t *testing.T) {
	g, boxes := newGroup(t, "content", "loading")
	boxes[0].SetVisibility(view.Gone)
	img := Render(g, Options{Width: 64, Height: 64})

	want := PanelColor("loading")
	if got := img.RGBAAt(40, 50); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestRender_TranslucentPanel(t *testing.T) {
	g, boxes := newGroup(t, "loading")
	boxes[0].SetAlpha(0.5)
	img := Render(g, Options{Width: 64, Height: 64, Background: color.Black, NoLabels: true})

	want := PanelColor("loading")
	got := img.RGBAAt(32, 32)
	if !near(got.R, want.R/2) || !near(got.G, want.G/2) || !near(got.B, want.B/2) {
		t.Errorf("pixel = %v, want about half of %v", got, want)
	}
}

func TestRender_TransparentSkipped(t *testing.T) {
	g, boxes := newGroup(t, "loading")
	boxes[0].SetAlpha(0)
	img := Render(g, Options{Width: 16, Height: 16})
	if got := img.RGBAAt(8, 8); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("pixel = %v, want background", got)
	}
}

func TestRender_Label(t *testing.T) {
	g, _ := newGroup(t, "x")
	labelled := Render(g, Options{Width: 32, Height: 32})
	plain := Render(g, Options{Width: 32, Height: 32, NoLabels: true})
	if bytes.Equal(labelled.Pix, plain.Pix) {
		t.Error("expected the label to change some pixels")
	}
}

func TestRender_Defaults(t *testing.T) {
	g, _ := newGroup(t)
	img := Render(g, Options{})
	if img.Bounds().Dx() != defaultWidth || img.Bounds().Dy() != defaultHeight {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestPanelColor_Stable(t *testing.T) {
	if PanelColor("error") != PanelColor("error") {
		t.Error("PanelColor should be deterministic")
	}
	if PanelColor("error").A != 0xff {
		t.Error("PanelColor should be opaque")
	}
}

func TestFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	got := Fit(src, 50, 50)
	if got.Bounds() != image.Rect(0, 0, 50, 25) {
		t.Errorf("bounds = %v, want 50x25", got.Bounds())
	}
	if small := Fit(src, 400, 400); small != image.Image(src) {
		t.Error("image that fits should be returned unchanged")
	}
}

func TestWriteFile(t *testing.T) {
	g, _ := newGroup(t, "content")
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WriteFile(path, Render(g, Options{Width: 10, Height: 10})); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, Render(g, Options{Width: 10, Height: 10})); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 10 {
		t.Errorf("decoded width = %d", decoded.Bounds().Dx())
	}

	if err := WriteFile(filepath.Join(t.TempDir(), "missing", "frame.png"), image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestText(t *testing.T) {
	g, boxes := newGroup(t, "content", "loading")
	boxes[0].SetVisibility(view.Gone)
	boxes[1].SetAlpha(0.4)
	got := Text(g)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	want0 := "content    gone      1.00  " + boxes[0].ID().String()
	if lines[0] != want0 {
		t.Errorf("line 0 = %q, want %q", lines[0], want0)
	}
	if !strings.Contains(lines[1], "visible   0.40") || !strings.HasSuffix(lines[1], boxes[1].ID().String()) {
		t.Errorf("line 1 = %q", lines[1])
	}
}
