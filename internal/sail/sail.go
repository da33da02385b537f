/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package sail

import (
	"errors"
	"fmt"
	"math"

	"ledsail/internal/vector"
)

// ErrInvalidConfig is returned for configurations that cannot produce
// meaningful geometry.
var ErrInvalidConfig = errors.New("invalid sail configuration")

// MinStrands is the smallest strand count the interior family supports.
const MinStrands = 2

// minArea is the triangle area below which vertices count as collinear.
const minArea = 1e-9

// Strand is one ordered run of LED positions.
type Strand []vector.Point

// Sail is an immutable triangle with its derived ellipse family.
type Sail struct {
	p1, p2, p3 vector.Point
	rx         float64
	numStrands int
	padding    float64

	boundaries [3]vector.Ellipse
	interior   []vector.Ellipse
}

// New derives a Sail from its vertices, base radius and strand count.
func New(p1, p2, p3 vector.Point, rx float64, numStrands int) (Sail, error) {
	return build(p1, p2, p3, rx, numStrands, 0)
}

func build(p1, p2, p3 vector.Point, rx float64, numStrands int, padding float64) (Sail, error) {
	for i, p := range []vector.Point{p1, p2, p3} {
		if !p.IsFinite() {
			return Sail{}, fmt.Errorf("%w: vertex p%d is not finite (%v, %v)", ErrInvalidConfig, i+1, p.X, p.Y)
		}
	}
	if math.IsNaN(rx) || math.IsInf(rx, 0) || rx < 0 {
		return Sail{}, fmt.Errorf("%w: radius must be a finite non-negative number, got %v", ErrInvalidConfig, rx)
	}
	if numStrands < MinStrands {
		return Sail{}, fmt.Errorf("%w: need at least %d strands, got %d", ErrInvalidConfig, MinStrands, numStrands)
	}
	if math.IsNaN(padding) || padding < 0 {
		return Sail{}, fmt.Errorf("%w: padding must be non-negative, got %v", ErrInvalidConfig, padding)
	}
	if vector.TriangleArea(p1, p2, p3) <= minArea {
		return Sail{}, fmt.Errorf("%w: vertices are collinear", ErrInvalidConfig)
	}

	s := Sail{p1: p1, p2: p2, p3: p3, rx: rx, numStrands: numStrands, padding: padding}
	s.boundaries = [3]vector.Ellipse{
		vector.NewEllipse(p1, p2, rx).Shrunk(padding),
		vector.NewEllipse(p2, p3, rx).Shrunk(padding),
		vector.NewEllipse(p3, p1, rx).Shrunk(padding),
	}
	s.interior = interiorEllipses(p1, p2, p3, rx, numStrands)
	return s, nil
}

// interiorEllipses sweeps the anchor from p3 to p1 while the radius shrinks
// linearly from rx to -rx. A negative radius flips the ellipse to the left
// hemisphere so the family passes through a zero-width line at the middle.
func interiorEllipses(p1, p2, p3 vector.Point, rx float64, n int) []vector.Ellipse {
	last := float64(n - 1)
	out := make([]vector.Ellipse, n)
	for i := range out {
		t := float64(i) / last
		anchor := vector.PointOnLine(p3, p1, t)
		r := rx - 2*rx*t
		arc := vector.RightHemisphere
		if r < 0 {
			arc = vector.LeftHemisphere
		}
		out[i] = vector.NewEllipseArc(anchor, p2, math.Abs(r), arc)
	}
	return out
}

// WithStrandCount returns a copy of s rebuilt with n interior ellipses.
func (s Sail) WithStrandCount(n int) (Sail, error) {
	return build(s.p1, s.p2, s.p3, s.rx, n, s.padding)
}

// WithExclusionPadding returns a copy of s whose exclusion ellipses are
// shrunk inwards by pad, so LEDs right at the mask edge are kept. All three
// masks shrink, e3 included; the hand-tuned dance layout this comes from
// left e3 at full size.
func (s Sail) WithExclusionPadding(pad float64) (Sail, error) {
	return build(s.p1, s.p2, s.p3, s.rx, s.numStrands, pad)
}

// Vertices returns p1, p2, p3.
func (s Sail) Vertices() (vector.Point, vector.Point, vector.Point) { return s.p1, s.p2, s.p3 }

func (s Sail) Radius() float64  { return s.rx }
func (s Sail) NumStrands() int  { return s.numStrands }
func (s Sail) Padding() float64 { return s.padding }

// Boundaries returns the three exclusion ellipses e1(p1,p2), e2(p2,p3), e3(p3,p1).
func (s Sail) Boundaries() [3]vector.Ellipse { return s.boundaries }

// Ellipses returns a copy of the interior ellipse family.
func (s Sail) Ellipses() []vector.Ellipse {
	return append([]vector.Ellipse(nil), s.interior...)
}

// Accepts reports whether p is a valid LED position: finite, inside the
// triangle and outside every exclusion ellipse.
func (s Sail) Accepts(p vector.Point) bool {
	if !p.IsFinite() || !vector.PointInTriangle(p, s.p1, s.p2, s.p3) {
		return false
	}
	for _, e := range s.boundaries {
		if e.Contains(p) {
			return false
		}
	}
	return true
}

func (s Sail) filter(cands []vector.Point) Strand {
	var out Strand
	for _, p := range cands {
		if s.Accepts(p) {
			out = append(out, p)
		}
	}
	return out
}
