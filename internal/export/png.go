/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	xvector "golang.org/x/image/vector"

	"ledsail/internal/vector"
)

// PNGOptions controls PNG export behavior.
//   - Scale multiplies the drawing size; zero means 1.
//   - Caption adds a strip with the layout info under the image, one
//     captionHeight row per wrapped line.
type PNGOptions struct {
	Scale   float64
	Caption bool
}

const captionHeight = 20

func toRGBA(c vector.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RenderImage rasterises d. Shapes are anti-aliased with x/image/vector;
// outlines are drawn as one pixel wide quads per segment.
func RenderImage(d Drawing, opt PNGOptions) *image.RGBA {
	scale := opt.Scale
	if scale <= 0 {
		scale = 1
	}
	w := max(int(math.Ceil(d.Width*scale)), 1)
	h := max(int(math.Ceil(d.Height*scale)), 1)
	ih := h
	var lines []string
	if opt.Caption {
		lines = wrapCaption(captionFace, d.Caption, w-8)
		ih += captionHeight * len(lines)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, ih))
	draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(d.Background)), image.Point{}, draw.Src)

	r := &raster{img: img, z: xvector.NewRasterizer(w, h), scale: scale}
	for _, p := range d.Polygons {
		r.fill(p.Points, p.Fill)
	}
	for _, e := range d.Ellipses {
		if e.Shape.Degenerate() {
			continue
		}
		pts := ellipsePoints(e.Shape)
		if !e.Fill.IsZero() {
			r.fill(pts, e.Fill)
		}
		if !e.Stroke.IsZero() {
			r.stroke(append(pts, pts[0]), e.Stroke)
		}
	}
	for _, l := range d.Polylines {
		r.stroke(l.Points, l.Stroke)
	}
	for _, dot := range d.Dots {
		r.circle(dot.Center, dot.Radius, dot.Fill)
	}

	for i, line := range lines {
		fd := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.Black),
			Face: captionFace,
			Dot:  fixed.P(4, h+(i+1)*captionHeight-6),
		}
		fd.DrawString(line)
	}
	return img
}

// WritePNG encodes the rendering of d to w.
func WritePNG(w io.Writer, d Drawing, opt PNGOptions) error {
	if err := png.Encode(w, RenderImage(d, opt)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// ExportPNG writes the rendering of d to path.
func ExportPNG(path string, d Drawing, opt PNGOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := WritePNG(f, d, opt); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return nil
}

type raster struct {
	img   *image.RGBA
	z     *xvector.Rasterizer
	scale float64
}

func (r *raster) pt(p vector.Point) (float32, float32) {
	return float32(p.X * r.scale), float32(p.Y * r.scale)
}

// paint composites the accumulated path in c and resets the rasterizer.
func (r *raster) paint(c vector.Color) {
	b := r.z.Bounds()
	r.z.Draw(r.img, b, image.NewUniform(toRGBA(c)), image.Point{})
	r.z.Reset(b.Dx(), b.Dy())
}

func (r *raster) fill(pts []vector.Point, c vector.Color) {
	if len(pts) < 3 {
		return
	}
	r.z.MoveTo(r.pt(pts[0]))
	for _, p := range pts[1:] {
		r.z.LineTo(r.pt(p))
	}
	r.z.ClosePath()
	r.paint(c)
}

func (r *raster) stroke(pts []vector.Point, c vector.Color) {
	const half = 0.5
	for i := 1; i < len(pts); i++ {
		ax, ay := r.pt(pts[i-1])
		bx, by := r.pt(pts[i])
		dx, dy := bx-ax, by-ay
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		r.z.MoveTo(ax+nx, ay+ny)
		r.z.LineTo(bx+nx, by+ny)
		r.z.LineTo(bx-nx, by-ny)
		r.z.LineTo(ax-nx, ay-ny)
		r.z.ClosePath()
	}
	r.paint(c)
}

func (r *raster) circle(center vector.Point, radius float64, c vector.Color) {
	if radius <= 0 {
		return
	}
	const n = 24
	cx, cy := center.X, center.Y
	pts := make([]vector.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = vector.Pt(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
	}
	r.fill(pts, c)
}
