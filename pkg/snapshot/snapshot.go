// Package snapshot rasterizes a container's children so state transitions can
// be inspected frame by frame.
//
// Each child that is Visible is drawn as a full-size panel blended at the
// child's alpha, labelled with its name. Children are painted in order, so a
// later child covers an earlier one where both are shown.
package snapshot

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/multistate/pkg/view"
)

// Parent is anything with ordered children, such as *view.Group or
// *multistate.MultiStateView.
type Parent interface {
	Children() []view.View
}

// Options controls the rendered image.
type Options struct {
	Width, Height int
	// Background fills the image before panels are drawn. Nil means white.
	Background color.Color
	// NoLabels skips drawing view names.
	NoLabels bool
}

const (
	defaultWidth  = 160
	defaultHeight = 120
	labelX        = 6
	labelY        = 18
)

var palette = []color.RGBA{
	{0x42, 0x85, 0xf4, 0xff},
	{0xdb, 0x44, 0x37, 0xff},
	{0xf4, 0xb4, 0x00, 0xff},
	{0x0f, 0x9d, 0x58, 0xff},
	{0xab, 0x47, 0xbc, 0xff},
	{0x00, 0xac, 0xc1, 0xff},
}

// PanelColor returns the opaque color used for a view with the given name.
// The same name always maps to the same color.
func PanelColor(name string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return palette[h.Sum32()%uint32(len(palette))]
}

// Render draws the visible children of root.
func Render(root Parent, opts Options) *image.RGBA {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)

	for _, child := range root.Children() {
		if child.Visibility() != view.Visible {
			continue
		}
		a := alpha8(child.Alpha())
		if a == 0 {
			continue
		}
		mask := image.NewUniform(color.Alpha{A: a})
		xdraw.DrawMask(img, img.Bounds(), image.NewUniform(PanelColor(child.Name())), image.Point{},
			mask, image.Point{}, xdraw.Over)

		if !opts.NoLabels {
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.NRGBA{A: a}),
				Face: basicfont.Face7x13,
				Dot:  fixed.P(labelX, labelY),
			}
			d.DrawString(child.Name())
		}
	}
	return img
}

// Fit scales img down to fit within maxW x maxH, keeping its aspect ratio.
// Images that already fit are returned unchanged.
func Fit(img image.Image, maxW, maxH int) image.Image {
	sr := img.Bounds()
	if sr.Dx() <= maxW && sr.Dy() <= maxH {
		return img
	}
	scale := max(float64(sr.Dx())/float64(maxW), float64(sr.Dy())/float64(maxH))
	dr := image.Rect(0, 0, max(1, int(float64(sr.Dx())/scale)), max(1, int(float64(sr.Dy())/scale)))
	dst := image.NewRGBA(dr)
	xdraw.BiLinear.Scale(dst, dr, img, sr, xdraw.Src, nil)
	return dst
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}

// WriteFile writes img as a PNG file at path.
func WriteFile(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("snapshot: %w", cerr)
		}
	}()
	return WritePNG(f, img)
}

// Text describes root's children one per line, for terminals and logs. The
// last column is the view ID, so lines match debug traces.
//
//	content    gone      1.00  9a0c3f1e-...
//	loading    visible   0.40  51be07d2-...
func Text(root Parent) string {
	var sb strings.Builder
	for _, child := range root.Children() {
		fmt.Fprintf(&sb, "%-10s %-9s %.2f  %s\n", child.Name(), child.Visibility(), child.Alpha(), child.ID())
	}
	return sb.String()
}

func alpha8(a float64) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 0xff
	}
	return uint8(a*0xff + 0.5)
}
