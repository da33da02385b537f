/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package sail

import (
	"fmt"
	"math"

	"ledsail/internal/vector"
)

// Ordering selects the direction points run along a curved strand. It only
// affects the order an animation sweeps through a strand.
type Ordering int

const (
	// OrderArc keeps points in sampling order along each arc.
	OrderArc Ordering = iota
	// OrderReverseRight reverses strands sampled on the right hemisphere so
	// both halves of the family run the same way across the sail.
	OrderReverseRight
)

func (o Ordering) String() string {
	switch o {
	case OrderArc:
		return "arc"
	case OrderReverseRight:
		return "reverse-right"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Style selects curved (ellipse arc) or grid candidate generation.
type Style int

const (
	StyleCurved Style = iota
	StyleGrid
)

func (st Style) String() string {
	if st == StyleGrid {
		return "grid"
	}
	return "curved"
}

// rowEpsilon keeps float error from adding a grid row at the far edge.
const rowEpsilon = 1e-9

// MaxDensity caps samples per arc and grid columns per row.
const MaxDensity = 2000

func checkDensity(density int) error {
	if density < 1 || density > MaxDensity {
		return fmt.Errorf("%w: density must be in [1,%d], got %d", ErrInvalidConfig, MaxDensity, density)
	}
	return nil
}

// Strands dispatches to CurvedStrandsOrdered or GridStrands. Ordering only
// applies to curved strands; grid rows always run left to right.
func (s Sail) Strands(style Style, density int, order Ordering) ([]Strand, error) {
	if style == StyleGrid {
		return s.GridStrands(density)
	}
	return s.CurvedStrandsOrdered(density, order)
}

// CurvedStrands samples density equal angular steps across each interior
// ellipse's arc, keeps the accepted points and drops empty strands.
func (s Sail) CurvedStrands(density int) ([]Strand, error) {
	return s.CurvedStrandsOrdered(density, OrderArc)
}

// CurvedStrandsOrdered is CurvedStrands with an explicit point ordering.
func (s Sail) CurvedStrandsOrdered(density int, order Ordering) ([]Strand, error) {
	if err := checkDensity(density); err != nil {
		return nil, err
	}
	var out []Strand
	for _, e := range s.interior {
		leds := s.filter(SampleArc(e, density))
		if len(leds) == 0 {
			continue
		}
		if order == OrderReverseRight && e.Arc == vector.RightHemisphere {
			reverse(leds)
		}
		out = append(out, leds)
	}
	return out, nil
}

// SampleArc returns n points at equal angular steps over e.Arc, end exclusive.
func SampleArc(e vector.Ellipse, n int) []vector.Point {
	if n < 1 {
		return nil
	}
	step := e.Arc.Span() / float64(n)
	pts := make([]vector.Point, n)
	for k := range pts {
		pts[k] = e.Sample(e.Arc.Start + float64(k)*step)
	}
	return pts
}

// GridStep is the spacing of the grid for a density: the triangle's
// horizontal extent divided by density.
func (s Sail) GridStep(density int) float64 {
	return vector.Bounds(s.p1, s.p2, s.p3).Width() / float64(density)
}

// GridStrands lays a square grid over the triangle's bounding box. Each row
// becomes one strand; empty rows are dropped.
func (s Sail) GridStrands(density int) ([]Strand, error) {
	if err := checkDensity(density); err != nil {
		return nil, err
	}
	box := vector.Bounds(s.p1, s.p2, s.p3)
	step := box.Width() / float64(density)
	if step <= 0 || box.Height() <= 0 {
		// only reachable for a triangle New already rejects
		return nil, fmt.Errorf("%w: triangle has no extent", ErrInvalidConfig)
	}
	rows := int(math.Ceil(box.Height()/step - rowEpsilon))
	var out []Strand
	row := make([]vector.Point, density)
	for r := 0; r < rows; r++ {
		y := box.Min.Y + float64(r)*step
		for c := range row {
			row[c] = vector.Point{X: box.Min.X + float64(c)*step, Y: y}
		}
		if leds := s.filter(row); len(leds) > 0 {
			out = append(out, leds)
		}
	}
	return out, nil
}

// Count returns the total number of points across strands.
func Count(strands []Strand) int {
	n := 0
	for _, st := range strands {
		n += len(st)
	}
	return n
}

func reverse(pts Strand) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
