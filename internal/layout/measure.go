/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package layout turns generated strands into physical measurements and
// runs whole scenes through the sail model.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"ledsail/internal/sail"
	"ledsail/internal/vector"
)

// ErrInsufficientData means spacing could not be derived. Counts in the
// returned Info are still valid.
var ErrInsufficientData = errors.New("insufficient data for LED spacing")

// ErrInvalidHeight is returned for a non-positive or non-finite physical height.
var ErrInvalidHeight = errors.New("physical height must be a positive number")

// Info summarises one strand set.
type Info struct {
	NumStrands       int     `json:"numStrands"`
	TotalLEDs        int     `json:"totalLEDs"`
	SpaceBetweenLEDs float64 `json:"spaceBetweenLEDs"`
	HasSpacing       bool    `json:"hasSpacing"`
	PixelsPerInch    float64 `json:"pixelsPerInch"`
	// LEDsPerStrand omits the first and last strand.
	LEDsPerStrand []int `json:"ledsPerStrand"`
}

// MinPerStrand returns the smallest reported per-strand count.
func (i Info) MinPerStrand() (int, bool) {
	if len(i.LEDsPerStrand) == 0 {
		return 0, false
	}
	m := i.LEDsPerStrand[0]
	for _, n := range i.LEDsPerStrand[1:] {
		m = min(m, n)
	}
	return m, true
}

// MaxPerStrand returns the largest reported per-strand count.
func (i Info) MaxPerStrand() (int, bool) {
	if len(i.LEDsPerStrand) == 0 {
		return 0, false
	}
	m := i.LEDsPerStrand[0]
	for _, n := range i.LEDsPerStrand[1:] {
		m = max(m, n)
	}
	return m, true
}

// Bounds is the bounding box of every point in strands. ok is false when
// there are no points.
func Bounds(strands []sail.Strand) (r geom.Rect, ok bool) {
	for _, st := range strands {
		for _, p := range st {
			c := geom.Coord{X: p.X, Y: p.Y}
			if !ok {
				r = geom.Rect{Min: c, Max: c}
				ok = true
				continue
			}
			r.ExpandToContainCoord(c)
		}
	}
	return r, ok
}

// Measure derives counts and LED spacing in inches. The vertical extent of
// all points is taken to span heightInches. When spacing cannot be derived
// the counts are filled and the error wraps ErrInsufficientData.
func Measure(strands []sail.Strand, heightInches float64) (Info, error) {
	if math.IsNaN(heightInches) || math.IsInf(heightInches, 0) || heightInches <= 0 {
		return Info{}, fmt.Errorf("%w: got %v", ErrInvalidHeight, heightInches)
	}
	info := Info{NumStrands: len(strands), LEDsPerStrand: []int{}}
	for i, st := range strands {
		info.TotalLEDs += len(st)
		if i > 0 && i < len(strands)-1 {
			info.LEDsPerStrand = append(info.LEDsPerStrand, len(st))
		}
	}
	if len(strands) == 0 {
		return info, fmt.Errorf("%w: no strands", ErrInsufficientData)
	}
	box, ok := Bounds(strands)
	if !ok || box.Height() <= 0 {
		return info, fmt.Errorf("%w: strands have no vertical extent", ErrInsufficientData)
	}
	info.PixelsPerInch = box.Height() / heightInches

	mid := strands[len(strands)/2]
	if len(mid) < 2 {
		return info, fmt.Errorf("%w: middle strand has %d points", ErrInsufficientData, len(mid))
	}
	spacing := vector.Distance(mid[0], mid[1]) / info.PixelsPerInch
	if math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		return info, fmt.Errorf("%w: spacing is not finite", ErrInsufficientData)
	}
	info.SpaceBetweenLEDs = spacing
	info.HasSpacing = true
	return info, nil
}
