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
	"math"

	"ledsail/internal/animate"
	"ledsail/internal/domain"
	"ledsail/internal/layout"
	"ledsail/internal/session"
	"ledsail/internal/vector"
)

// Style controls colours and the math/pretty rendering switch.
type Style struct {
	MathMode   bool
	Background vector.Color
	SailColor  vector.Color
	// LEDColor of zero picks black in math mode and white otherwise.
	LEDColor  vector.Color
	LEDRadius float64
}

const (
	defaultLEDRadius = 2
	vertexRadius     = 4
	// arcSegments is the polyline resolution for ellipse outlines.
	arcSegments = 96
)

// DefaultStyle is the palette used when no config overrides it.
func DefaultStyle(mathMode bool) Style {
	return Style{
		MathMode:   mathMode,
		Background: vector.White,
		SailColor:  vector.SailBlue,
		LEDRadius:  defaultLEDRadius,
	}
}

// LED returns the colour LEDs are drawn with.
func (s Style) LED() vector.Color { return s.ledColor() }

func (s Style) ledColor() vector.Color {
	if !s.LEDColor.IsZero() {
		return s.LEDColor
	}
	if s.MathMode {
		return vector.Black
	}
	return vector.White
}

// Polygon is a closed filled shape.
type Polygon struct {
	Points []vector.Point
	Fill   vector.Color
}

// Ellipse is a full ellipse, filled and/or outlined.
type Ellipse struct {
	Shape  vector.Ellipse
	Fill   vector.Color
	Stroke vector.Color
}

// Polyline is an open outline.
type Polyline struct {
	Points []vector.Point
	Stroke vector.Color
}

// Dot is a filled circle.
type Dot struct {
	Center vector.Point
	Radius float64
	Fill   vector.Color
}

// Drawing is a backend independent display list. Layers paint in field
// order: polygons, ellipses, polylines, dots.
type Drawing struct {
	Title      string
	Width      float64
	Height     float64
	Background vector.Color
	Polygons   []Polygon
	Ellipses   []Ellipse
	Polylines  []Polyline
	Dots       []Dot
	Caption    string
}

// Plan lays out res for drawing. In math mode sails are shown as
// construction geometry; otherwise as filled sails with the exclusion
// areas blanked out.
func Plan(res layout.Result, st Style) Drawing {
	d := planScene(res, st)
	r := st.LEDRadius
	if r <= 0 {
		r = defaultLEDRadius
	}
	col := st.ledColor()
	for _, strand := range res.Strands {
		for _, p := range strand {
			d.Dots = append(d.Dots, Dot{Center: p, Radius: r, Fill: col})
		}
	}
	return d
}

// PlanFrame is Plan with the LED layer taken from one animation frame.
func PlanFrame(res layout.Result, st Style, leds []animate.LED) Drawing {
	d := planScene(res, st)
	for _, l := range leds {
		d.Dots = append(d.Dots, Dot{Center: l.Pos, Radius: l.Radius, Fill: l.Color})
	}
	return d
}

func planScene(res layout.Result, st Style) Drawing {
	d := Drawing{
		Title:      "ledsail " + string(res.Scene.Name),
		Width:      res.Scene.Width,
		Height:     res.Scene.Height,
		Background: st.Background,
		Caption:    caption(res.Info),
	}
	for _, sl := range res.Sails {
		p1, p2, p3 := sl.Sail.Vertices()
		if !st.MathMode {
			d.Polygons = append(d.Polygons, Polygon{Points: []vector.Point{p1, p2, p3}, Fill: st.SailColor})
			for _, e := range sl.Sail.Boundaries() {
				d.Ellipses = append(d.Ellipses, Ellipse{Shape: e, Fill: st.Background, Stroke: st.Background})
			}
			continue
		}
		for _, e := range sl.Sail.Boundaries() {
			d.Ellipses = append(d.Ellipses, Ellipse{Shape: e, Stroke: vector.Black})
		}
		if res.Params.Style != domain.StyleGrid {
			for _, e := range sl.Sail.Ellipses() {
				d.Polylines = append(d.Polylines, Polyline{Points: arcPoints(e), Stroke: vector.Black})
			}
		}
		d.Dots = append(d.Dots,
			Dot{Center: p1, Radius: vertexRadius, Fill: vector.Red},
			Dot{Center: p2, Radius: vertexRadius, Fill: vector.Orange},
			Dot{Center: p3, Radius: vertexRadius, Fill: vector.Yellow},
		)
	}
	return d
}

// arcPoints samples the active arc of e, end inclusive.
func arcPoints(e vector.Ellipse) []vector.Point {
	n := int(math.Ceil(arcSegments * e.Arc.Span() / (2 * math.Pi)))
	n = max(n, 2)
	step := e.Arc.Span() / float64(n)
	pts := make([]vector.Point, n+1)
	for i := range pts {
		pts[i] = e.Sample(e.Arc.Start + float64(i)*step)
	}
	return pts
}

// ellipsePoints approximates the full outline of e as a closed polygon.
func ellipsePoints(e vector.Ellipse) []vector.Point {
	step := 2 * math.Pi / arcSegments
	pts := make([]vector.Point, arcSegments)
	for i := range pts {
		pts[i] = e.Sample(float64(i) * step)
	}
	return pts
}

// caption is the one-line info text printed under a rendering.
func caption(info layout.Info) string {
	sum := session.Summarize(info)
	return fmt.Sprintf("strands %s  leds %s  spacing %s  per strand %s",
		sum.Strands, sum.TotalLEDs, sum.Spacing, sum.LEDsPerStrand)
}
