/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "math"

// Arc is a half-open angular range [Start, End) in the AngleBetween frame.
type Arc struct{ Start, End float64 }

var (
	// FullArc covers the whole ellipse.
	FullArc = Arc{Start: Radians(0), End: Radians(360)}
	// RightHemisphere and LeftHemisphere split the ellipse along its major axis.
	RightHemisphere = Arc{Start: Radians(0), End: Radians(180)}
	LeftHemisphere  = Arc{Start: Radians(180), End: Radians(360)}
)

// Span returns End-Start.
func (a Arc) Span() float64 { return a.End - a.Start }

// Ellipse is a rotated ellipse derived from two defining points. RY is half
// the distance between them and lies along P1→P2; RX is perpendicular to it.
// Ellipse values are never mutated; derive new ones with NewEllipse or Shrunk.
type Ellipse struct {
	P1, P2   Point
	Center   Point
	RX, RY   float64
	Rotation float64
	Arc      Arc
}

// NewEllipse builds the ellipse spanning p1→p2 with the given perpendicular
// radius over the full arc.
func NewEllipse(p1, p2 Point, rx float64) Ellipse {
	return NewEllipseArc(p1, p2, rx, FullArc)
}

// NewEllipseArc is NewEllipse restricted to an angular range.
func NewEllipseArc(p1, p2 Point, rx float64, arc Arc) Ellipse {
	return Ellipse{
		P1:       p1,
		P2:       p2,
		Center:   Midpoint(p1, p2),
		RX:       rx,
		RY:       Distance(p1, p2) / 2,
		Rotation: AngleBetween(p1, p2),
		Arc:      arc,
	}
}

// Sample returns the point on the ellipse at angle.
func (e Ellipse) Sample(angle float64) Point { return PointOnEllipse(e, angle) }

// Contains reports whether p lies inside or on the ellipse.
func (e Ellipse) Contains(p Point) bool { return PointInEllipse(e, p) }

// Shrunk returns the same ellipse with RX reduced by amount, floored at zero.
func (e Ellipse) Shrunk(amount float64) Ellipse {
	return NewEllipseArc(e.P1, e.P2, math.Max(0, e.RX-amount), e.Arc)
}

// Degenerate reports whether the ellipse has no interior.
func (e Ellipse) Degenerate() bool { return e.RX == 0 || e.RY == 0 }

// PointOnEllipse evaluates the rotated parametric form at angle.
func PointOnEllipse(e Ellipse, angle float64) Point {
	ca, sa := math.Cos(angle), math.Sin(angle)
	cr, sr := math.Cos(e.Rotation), math.Sin(e.Rotation)
	return Point{
		X: e.Center.X + e.RX*ca*cr - e.RY*sa*sr,
		Y: e.Center.Y + e.RX*ca*sr + e.RY*sa*cr,
	}
}

// PointInEllipse applies the normalized quadratic form test; the boundary
// counts as inside. Degenerate ellipses contain nothing.
func PointInEllipse(e Ellipse, p Point) bool {
	if e.Degenerate() {
		return false
	}
	dx := p.X - e.Center.X
	dy := p.Y - e.Center.Y
	cr, sr := math.Cos(e.Rotation), math.Sin(e.Rotation)
	u := (cr*dx + sr*dy) / e.RX
	v := (sr*dx - cr*dy) / e.RY
	return u*u+v*v <= 1
}
