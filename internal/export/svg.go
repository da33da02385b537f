/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"ledsail/internal/vector"
)

// svgUnits is the number of SVG user units per pixel. svgo takes integer
// coordinates, so drawing at a finer grid keeps sub-pixel LED positions.
const svgUnits = 10

func su(v float64) int { return int(math.Round(v * svgUnits)) }

func svgFill(c vector.Color) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%.3g", c.Hex(), float64(c.A)/255)
}

func svgStroke(c vector.Color) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", c.Hex(), svgUnits)
}

func svgCoords(pts []vector.Point) (xs, ys []int) {
	xs, ys = make([]int, len(pts)), make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = su(p.X), su(p.Y)
	}
	return xs, ys
}

// WriteSVG renders d as an SVG document sized in pixels.
func WriteSVG(w io.Writer, d Drawing) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	pw, ph := int(math.Ceil(d.Width)), int(math.Ceil(d.Height))
	canvas.Startview(pw, ph, 0, 0, pw*svgUnits, ph*svgUnits)
	if d.Title != "" {
		canvas.Title(d.Title)
	}
	canvas.Rect(0, 0, pw*svgUnits, ph*svgUnits, svgFill(d.Background))

	for _, p := range d.Polygons {
		xs, ys := svgCoords(p.Points)
		canvas.Polygon(xs, ys, svgFill(p.Fill))
	}
	for _, e := range d.Ellipses {
		sh := e.Shape
		if sh.Degenerate() {
			continue
		}
		cx, cy := su(sh.Center.X), su(sh.Center.Y)
		deg := sh.Rotation * 180 / math.Pi
		canvas.Gtransform(fmt.Sprintf("rotate(%.4f %d %d)", deg, cx, cy))
		style := "fill:none"
		if !e.Fill.IsZero() {
			style = svgFill(e.Fill)
		}
		if !e.Stroke.IsZero() {
			style += fmt.Sprintf(";stroke:%s;stroke-width:%d", e.Stroke.Hex(), svgUnits)
		}
		canvas.Ellipse(cx, cy, su(sh.RX), su(sh.RY), style)
		canvas.Gend()
	}
	for _, l := range d.Polylines {
		xs, ys := svgCoords(l.Points)
		canvas.Polyline(xs, ys, svgStroke(l.Stroke))
	}
	for _, dot := range d.Dots {
		canvas.Circle(su(dot.Center.X), su(dot.Center.Y), su(dot.Radius), svgFill(dot.Fill))
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

// ExportSVG writes d to path, creating parent directories.
func ExportSVG(path string, d Drawing) error {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, d); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
