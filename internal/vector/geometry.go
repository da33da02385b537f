/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

// Basic 2D geometry used by the sail layout engine.
// Angles follow a frame rotated by 90° from the usual atan2 frame so that an
// angle of 0 points "up" along the segment an ellipse is built from.

import "math"

// offset is the quarter turn baked into AngleBetween, Radians and Degrees.
const offset = math.Pi / 2

// Point is a 2D point. It is a plain value; all operations return new points.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// PointOnLine interpolates along p1→p2. t=0 yields p1, t=1 yields p2;
// values outside [0,1] extrapolate.
func PointOnLine(p1, p2 Point, t float64) Point {
	return Point{
		X: p1.X + (p2.X-p1.X)*t,
		Y: p1.Y + (p2.Y-p1.Y)*t,
	}
}

// Midpoint returns the point halfway between p1 and p2.
func Midpoint(p1, p2 Point) Point { return PointOnLine(p1, p2, 0.5) }

// AngleBetween returns the direction of p1→p2 measured from the vertical axis.
func AngleBetween(p1, p2 Point) float64 {
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X) - offset
}

// Radians converts degrees to radians in the AngleBetween frame.
func Radians(deg float64) float64 { return deg*math.Pi/180 - offset }

// Degrees is the inverse of Radians.
func Degrees(rad float64) float64 { return 180 * (rad + offset) / math.Pi }

// sign is the z component of (p1-p3)×(p2-p3).
func sign(p1, p2, p3 Point) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}

// PointInTriangle reports whether pt lies inside or on an edge of the
// triangle v1,v2,v3. Vertex order does not matter.
func PointInTriangle(pt, v1, v2, v3 Point) bool {
	d1 := sign(pt, v1, v2)
	d2 := sign(pt, v2, v3)
	d3 := sign(pt, v3, v1)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// TriangleArea returns the unsigned area of the triangle v1,v2,v3.
func TriangleArea(v1, v2, v3 Point) float64 {
	return math.Abs(sign(v1, v2, v3)) / 2
}

// Centroid returns the arithmetic mean of the three vertices.
func Centroid(v1, v2, v3 Point) Point {
	return Point{X: (v1.X + v2.X + v3.X) / 3, Y: (v1.Y + v2.Y + v3.Y) / 3}
}

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct{ Min, Max Point }

// Bounds returns the smallest Rect containing all pts. The zero Rect is
// returned for no points.
func Bounds(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
