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
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"ledsail/internal/layout"
	"ledsail/internal/session"
	"ledsail/internal/vector"
)

// PDFOptions controls PDF export behavior.
// Units are points; one drawing pixel maps to one point plus Margin.
// Built-in Helvetica keeps the info block vector without font embedding.
//
//nolint:revive // keep options grouped and explicit for clarity
type PDFOptions struct {
	Margin    float64
	InfoBlock bool
	Author    string
}

const infoBlockHeight = 72

// ExportPDF writes a single page sheet with the drawing and, optionally, an
// info block listing the layout measurements.
func ExportPDF(path string, d Drawing, info layout.Info, opt PDFOptions) error {
	m := opt.Margin
	if m < 0 {
		m = 0
	}
	pageW := d.Width + 2*m
	pageH := d.Height + 2*m
	if opt.InfoBlock {
		pageH += infoBlockHeight
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetTitle(d.Title, false)
	author := opt.Author
	if author == "" {
		author = "ledsail"
	}
	pdf.SetAuthor(author, false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: pageW, Ht: pageH})

	// content is clipped to the drawing area; scenes may reach past it
	pdf.ClipRect(m, m, d.Width, d.Height, false)
	setFillColor(pdf, d.Background)
	pdf.Rect(m, m, d.Width, d.Height, "F")
	for _, p := range d.Polygons {
		setFillColor(pdf, p.Fill)
		pdf.Polygon(pdfPoints(p.Points, m), "F")
	}
	pdf.SetLineWidth(1)
	for _, e := range d.Ellipses {
		if e.Shape.Degenerate() {
			continue
		}
		style := ""
		if !e.Fill.IsZero() {
			setFillColor(pdf, e.Fill)
			style += "F"
		}
		if !e.Stroke.IsZero() {
			setDrawColor(pdf, e.Stroke)
			style += "D"
		}
		if style == "" {
			continue
		}
		pdf.Polygon(pdfPoints(ellipsePoints(e.Shape), m), style)
	}
	for _, l := range d.Polylines {
		setDrawColor(pdf, l.Stroke)
		pts := pdfPoints(l.Points, m)
		for i := 1; i < len(pts); i++ {
			pdf.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
		}
	}
	for _, dot := range d.Dots {
		setFillColor(pdf, dot.Fill)
		pdf.Circle(dot.Center.X+m, dot.Center.Y+m, dot.Radius, "F")
	}
	pdf.ClipEnd()

	if opt.InfoBlock {
		sum := session.Summarize(info)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		y := m + d.Height + 18
		for _, line := range []string{
			fmt.Sprintf("Strands: %s", sum.Strands),
			fmt.Sprintf("Total LEDs: %s", sum.TotalLEDs),
			fmt.Sprintf("Space between LEDs: %s   LEDs per strand: %s", sum.Spacing, sum.LEDsPerStrand),
		} {
			pdf.Text(m+4, y, line)
			y += 14
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func pdfPoints(pts []vector.Point, off float64) []gofpdf.PointType {
	out := make([]gofpdf.PointType, len(pts))
	for i, p := range pts {
		out[i] = gofpdf.PointType{X: p.X + off, Y: p.Y + off}
	}
	return out
}

func setDrawColor(pdf *gofpdf.Fpdf, c vector.Color) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func setFillColor(pdf *gofpdf.Fpdf, c vector.Color) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}
