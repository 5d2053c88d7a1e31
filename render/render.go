// Package render draws a wheel offscreen with gogpu/gg, for snapshots and
// headless runs.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/pthm-cable/wheeltab/wheel"
)

// IconFraction is the icon edge length as a fraction of the radius.
const IconFraction = 0.28

// Options control a snapshot.
type Options struct {
	Scale    float64     // Pixels per point; 0 means 1
	Selected color.RGBA  // Highlight arc color, not premultiplied
	IconDir  string      // Base directory for relative icon references
	Pose     *wheel.Pose // Overrides the controller's pose, e.g. a mid-animation frame
}

// Renderer draws wheels into gg contexts and caches scaled icons.
type Renderer struct {
	logger *slog.Logger
	icons  map[iconKey]*gg.ImageBuf
}

type iconKey struct {
	path string
	size int
}

// New creates a renderer. nil logger uses slog.Default.
func New(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger, icons: make(map[iconKey]*gg.ImageBuf)}
}

// Render draws c into a new context sized to the wheel's bounding box.
func (r *Renderer) Render(c *wheel.Controller, opts Options) (*gg.Context, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	layout := c.Layout()
	if layout.Len() == 0 {
		return nil, wheel.ErrNoItems
	}
	size := int(math.Ceil(2 * layout.Radius() * scale))
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(gg.RGBA{})

	pose := c.Pose()
	if opts.Pose != nil {
		pose = *opts.Pose
	}
	a := c.Appearance()
	center := layout.Center()
	cx, cy := center.X*scale, center.Y*scale
	radius := layout.Radius() * pose.Scale * scale
	xf := pose.Transform(center)

	for _, w := range layout.Wedges() {
		start := w.Start + pose.Rotation
		end := w.End + pose.Rotation

		sector(dc, cx, cy, radius, start, end)
		dc.SetColor(color.NRGBA(a.Background))
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("filling wedge %d: %w", w.Index, err)
		}

		dc.MoveTo(cx, cy)
		dc.LineTo(cx+radius*math.Cos(start), cy+radius*math.Sin(start))
		dc.SetColor(color.NRGBA(a.Border))
		dc.SetLineWidth(1)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("stroking wedge %d: %w", w.Index, err)
		}

		if w.Index == c.Highlighted() && a.ArcWidth > 0 {
			aw := a.ArcWidth * pose.Scale * scale
			as, ae := w.ArcSpan()
			arc(dc, cx, cy, radius-aw/2, as+pose.Rotation, ae+pose.Rotation)
			dc.SetColor(color.NRGBA(opts.Selected))
			dc.SetLineWidth(aw)
			if err := dc.Stroke(); err != nil {
				return nil, fmt.Errorf("stroking selection arc: %w", err)
			}
		}

		p := wheel.Apply(xf, w.IconPoint())
		iconSize := int(math.Round(layout.Radius() * IconFraction * pose.Scale * scale))
		r.drawIcon(dc, w.Item.Icon, opts.IconDir, p.X*scale, p.Y*scale, w.IconRotation()+pose.Rotation, iconSize, color.NRGBA(a.Border))
	}

	if a.CenterButtonRadius > 0 {
		cr := a.CenterButtonRadius * scale
		dc.DrawCircle(cx, cy, cr)
		dc.SetColor(color.NRGBA(a.Background))
		if err := dc.FillPreserve(); err != nil {
			return nil, fmt.Errorf("filling center button: %w", err)
		}
		dc.SetColor(color.NRGBA(opts.Selected))
		dc.SetLineWidth(2)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("stroking center button: %w", err)
		}
		if a.CenterIcon != "" {
			r.drawIcon(dc, a.CenterIcon, opts.IconDir, cx, cy, 0, int(cr), color.NRGBA(opts.Selected))
		}
	}

	r.logger.Debug("wheel rendered", "size", size, "items", layout.Len(), "rotation", pose.Rotation, "scale", pose.Scale)
	return dc, nil
}

// WritePNG renders c and encodes it as PNG.
func (r *Renderer) WritePNG(w io.Writer, c *wheel.Controller, opts Options) error {
	dc, err := r.Render(c, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG renders c to a PNG file.
func (r *Renderer) SavePNG(path string, c *wheel.Controller, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := r.WritePNG(f, c, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// drawIcon draws the icon centered on (x, y) and turned by angle, or a
// placeholder dot when the icon cannot be loaded.
func (r *Renderer) drawIcon(dc *gg.Context, ref, dir string, x, y, angle float64, size int, fallback color.Color) {
	if size <= 0 {
		return
	}
	img, err := r.icon(ref, dir, size)
	if err != nil {
		r.logger.Debug("icon unavailable", "icon", ref, "error", err)
		dc.DrawCircle(x, y, float64(size)/6)
		dc.SetColor(fallback)
		if err := dc.Fill(); err != nil {
			r.logger.Debug("icon placeholder not drawn", "icon", ref, "error", err)
		}
		return
	}
	if angle != 0 {
		img = gg.ImageBufFromImage(RotateIcon(img.ToStdImage(), angle))
	}
	dc.DrawImage(img, x-float64(size)/2, y-float64(size)/2)
}

// icon loads ref and scales it to a size x size square.
func (r *Renderer) icon(ref, dir string, size int) (*gg.ImageBuf, error) {
	path := ref
	if dir != "" && !filepath.IsAbs(ref) {
		path = filepath.Join(dir, ref)
	}
	key := iconKey{path: path, size: size}
	if img, ok := r.icons[key]; ok {
		return img, nil
	}

	src, err := gg.LoadImage(path)
	if err != nil {
		return nil, err
	}
	dst := ScaleIcon(src.ToStdImage(), size)
	img := gg.ImageBufFromImage(dst)
	r.icons[key] = img
	return img, nil
}

// RotateIcon turns src clockwise by angle radians about its center. The result
// keeps src's bounds, so corners that rotate out are clipped.
func RotateIcon(src image.Image, angle float64) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	cx, cy := float64(b.Min.X)+float64(b.Dx())/2, float64(b.Min.Y)+float64(b.Dy())/2
	ox, oy := float64(b.Dx())/2, float64(b.Dy())/2
	sin, cos := math.Sincos(angle)
	s2d := f64.Aff3{
		cos, -sin, ox - cos*cx + sin*cy,
		sin, cos, oy - sin*cx - cos*cy,
	}
	draw.CatmullRom.Transform(dst, s2d, src, b, draw.Over, nil)
	return dst
}

// ScaleIcon resamples src into a size x size RGBA image.
func ScaleIcon(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// sector builds a closed pie slice path.
func sector(dc *gg.Context, cx, cy, r, start, end float64) {
	dc.MoveTo(cx, cy)
	dc.LineTo(cx+r*math.Cos(start), cy+r*math.Sin(start))
	dc.DrawArc(cx, cy, r, start, end)
	dc.ClosePath()
}

// arc builds an open arc path starting a new subpath at the arc start.
func arc(dc *gg.Context, cx, cy, r, start, end float64) {
	dc.MoveTo(cx+r*math.Cos(start), cy+r*math.Sin(start))
	dc.DrawArc(cx, cy, r, start, end)
}
