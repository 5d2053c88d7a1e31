package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/wheeltab/wheel"
)

var highlight = color.RGBA{R: 0x3d, G: 0x7c, B: 0xf4, A: 255}

func near(a, b color.Color, tol int) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	d := func(x, y uint32) int {
		v := int(x>>8) - int(y>>8)
		if v < 0 {
			v = -v
		}
		return v
	}
	return d(ar, br) <= tol && d(ag, bg) <= tol && d(ab, bb) <= tol && d(aa, ba) <= tol
}

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// splitIcon is red on its left half and blue on its right.
func splitIcon(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x < size/2 {
				img.Set(x, y, red)
			} else {
				img.Set(x, y, blue)
			}
		}
	}
	return img
}

func writeIcon(t *testing.T, dir, name string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, c)
		}
	}
	writePNG(t, dir, name, img)
}

func writePNG(t *testing.T, dir, name string, img image.Image) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func newWheel(t *testing.T) *wheel.Controller {
	t.Helper()
	items := []wheel.Item{
		{ID: "home", Icon: "home.png"},
		{ID: "search", Icon: "search.png"},
		{ID: "favorites", Icon: "favorites.png"},
		{ID: "settings", Icon: "settings.png"},
	}
	c, err := wheel.New(items, 100)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRenderDrawsWedgesAndArc(t *testing.T) {
	c := newWheel(t)
	dc, err := New(nil).Render(c, Options{Selected: highlight})
	if err != nil {
		t.Fatal(err)
	}
	img := dc.Image()

	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("size = %v, want 200x200", b)
	}
	// Inside wedge 1 (right), away from its icon and borders.
	bg := color.RGBA{R: 250, G: 250, B: 250, A: 255}
	if got := img.At(180, 105); !near(got, bg, 3) {
		t.Errorf("wedge background = %v, want %v", got, bg)
	}
	// The selection arc runs along the top rim of wedge 0.
	if got := img.At(100, 2); !near(got, highlight, 8) {
		t.Errorf("selection arc = %v, want %v", got, highlight)
	}
	// Outside the circle stays transparent.
	if _, _, _, a := img.At(2, 2).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestRenderFollowsSelection(t *testing.T) {
	c := newWheel(t)
	if err := c.SetSelectedIndex(1, false); err != nil {
		t.Fatal(err)
	}
	dc, err := New(nil).Render(c, Options{Selected: highlight})
	if err != nil {
		t.Fatal(err)
	}
	// Wedge 1 is rotated to the top; its arc is there now.
	if got := dc.Image().At(100, 2); !near(got, highlight, 8) {
		t.Errorf("selection arc = %v, want %v", got, highlight)
	}
}

func TestRenderLoadsIcons(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, dir, "search.png", red)

	c := newWheel(t)
	dc, err := New(nil).Render(c, Options{Selected: highlight, IconDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	p := wheel.Apply(c.Pose().Transform(c.Layout().Center()), c.Layout().Wedge(1).IconPoint())
	if got := dc.Image().At(int(p.X), int(p.Y)); !near(got, red, 8) {
		t.Errorf("icon pixel = %v, want %v", got, red)
	}
}

func TestRenderRotatesIcons(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "search.png", splitIcon(16))

	c := newWheel(t)
	dc, err := New(nil).Render(c, Options{Selected: highlight, IconDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	// Wedge 1 sits on the right, a quarter turn clockwise, so the icon's
	// left half now faces up.
	p := wheel.Apply(c.Pose().Transform(c.Layout().Center()), c.Layout().Wedge(1).IconPoint())
	img := dc.Image()
	if got := img.At(int(p.X), int(p.Y)-7); !near(got, red, 16) {
		t.Errorf("above icon center = %v, want %v", got, red)
	}
	if got := img.At(int(p.X), int(p.Y)+7); !near(got, blue, 16) {
		t.Errorf("below icon center = %v, want %v", got, blue)
	}
}

func TestRotateIcon(t *testing.T) {
	src := splitIcon(16)

	if got := RotateIcon(src, 0).At(3, 8); !near(got, red, 8) {
		t.Errorf("unrotated left = %v, want %v", got, red)
	}
	quarter := RotateIcon(src, math.Pi/2)
	if b := quarter.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("bounds = %v", b)
	}
	if got := quarter.At(8, 3); !near(got, red, 8) {
		t.Errorf("top after quarter turn = %v, want %v", got, red)
	}
	if got := quarter.At(8, 12); !near(got, blue, 8) {
		t.Errorf("bottom after quarter turn = %v, want %v", got, blue)
	}
	half := RotateIcon(src, math.Pi)
	if got := half.At(3, 8); !near(got, blue, 8) {
		t.Errorf("left after half turn = %v, want %v", got, blue)
	}
}

func TestRenderTranslucentBackground(t *testing.T) {
	c := newWheel(t)
	c.SetBackground(color.RGBA{R: 250, G: 250, B: 250, A: 128})
	dc, err := New(nil).Render(c, Options{Selected: highlight})
	if err != nil {
		t.Fatal(err)
	}
	want := color.NRGBA{R: 250, G: 250, B: 250, A: 128}
	if got := dc.Image().At(180, 105); !near(got, want, 3) {
		t.Errorf("wedge background = %v, want %v", got, want)
	}
}

func TestRenderScale(t *testing.T) {
	c := newWheel(t)
	dc, err := New(nil).Render(c, Options{Scale: 2, Selected: highlight})
	if err != nil {
		t.Fatal(err)
	}
	if b := dc.Image().Bounds(); b.Dx() != 400 {
		t.Errorf("width = %d, want 400", b.Dx())
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := New(nil).WritePNG(&buf, newWheel(t), Options{Selected: highlight}); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if img.Bounds().Dx() != 200 {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}

func TestRenderEmptyWheel(t *testing.T) {
	c, err := wheel.New(nil, 100)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(nil).Render(c, Options{}); err == nil {
		t.Error("expected error for empty wheel")
	}
}

func TestScaleIcon(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 32))
	dst := ScaleIcon(src, 24)
	if dst.Bounds().Dx() != 24 || dst.Bounds().Dy() != 24 {
		t.Errorf("bounds = %v", dst.Bounds())
	}
}
