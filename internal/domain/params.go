/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

// This file defines the presentation parameters that drive a layout run.
// Every field is enumerated here and checked by Validate before any of it
// reaches the sail geometry.

import (
	"errors"
	"fmt"
	"math"

	"ledsail/internal/sail"
)

// ErrInvalidParams is returned by Validate for any out-of-range field.
var ErrInvalidParams = errors.New("invalid parameters")

// StrandStyle selects how candidate LED positions are generated.
type StrandStyle string

const (
	StyleEllipse StrandStyle = "ellipse"
	StyleGrid    StrandStyle = "grid"
)

// Ordering selects the point order within curved strands.
type Ordering string

const (
	OrderArc          Ordering = "arc"
	OrderReverseRight Ordering = "reverse-right"
)

// SceneName picks one of the built-in sail arrangements.
type SceneName string

const (
	SceneNameMain  SceneName = "main"
	SceneNameDance SceneName = "dance"
)

const (
	DefaultDensity = 30
	DensityStep    = 5
	MinDensity     = 1
	// MaxDensity bounds samples per arc and grid columns so a typo cannot
	// exhaust memory.
	MaxDensity     = sail.MaxDensity
	DefaultStrands = 15
	MinStrands     = 8
	MaxStrands     = 50
	// StrandLimit is the hard ceiling enforced by Validate; MaxStrands only
	// bounds the controls.
	StrandLimit         = 1000
	DefaultCanvasWidth  = 1000.0
	DefaultHeightInches = 314.0
	// RadiusX is the base horizontal radius of every sail ellipse, in pixels.
	RadiusX = 100.0
	// AspectRatio is sail height over canvas width.
	AspectRatio = 0.85
)

// Params is the full set of user-adjustable inputs for one layout.
type Params struct {
	Scene        SceneName   `json:"scene" yaml:"scene"`
	LEDDensity   int         `json:"ledDensity" yaml:"led_density"`
	NumStrands   int         `json:"numStrands" yaml:"num_strands"`
	Style        StrandStyle `json:"strandStyle" yaml:"strand_style"`
	CanvasWidth  float64     `json:"canvasWidth" yaml:"canvas_width"`
	HeightInches float64     `json:"heightInches" yaml:"height_inches"`
	Ordering     Ordering    `json:"ordering" yaml:"ordering"`
	Padding      float64     `json:"exclusionPadding" yaml:"exclusion_padding"`
	MathMode     bool        `json:"mathMode" yaml:"math_mode"`
}

// DefaultParams returns the parameters of the main scene as first shown.
func DefaultParams() Params {
	return Params{
		Scene:        SceneNameMain,
		LEDDensity:   DefaultDensity,
		NumStrands:   DefaultStrands,
		Style:        StyleEllipse,
		CanvasWidth:  DefaultCanvasWidth,
		HeightInches: DefaultHeightInches,
		Ordering:     OrderArc,
	}
}

// DanceParams returns the fixed parameters of the four-sail scene.
func DanceParams() Params {
	p := DefaultParams()
	p.Scene = SceneNameDance
	p.LEDDensity = 165
	p.NumStrands = 9
	p.CanvasWidth = DanceWidth
	p.Ordering = OrderReverseRight
	p.Padding = 1
	return p
}

// Validate reports the first invalid field wrapped in ErrInvalidParams.
// Strand counts are only bounded by the geometric minimum of 2 here;
// the 8..50 range is a control clamp applied by ClampStrands.
func (p Params) Validate() error {
	switch p.Scene {
	case SceneNameMain, SceneNameDance:
	default:
		return fmt.Errorf("%w: unknown scene %q", ErrInvalidParams, p.Scene)
	}
	if p.LEDDensity < MinDensity || p.LEDDensity > MaxDensity {
		return fmt.Errorf("%w: led density must be in [%d,%d], got %d", ErrInvalidParams, MinDensity, MaxDensity, p.LEDDensity)
	}
	if p.NumStrands < 2 || p.NumStrands > StrandLimit {
		return fmt.Errorf("%w: strand count must be in [2,%d], got %d", ErrInvalidParams, StrandLimit, p.NumStrands)
	}
	switch p.Style {
	case StyleEllipse, StyleGrid:
	default:
		return fmt.Errorf("%w: unknown strand style %q", ErrInvalidParams, p.Style)
	}
	switch p.Ordering {
	case OrderArc, OrderReverseRight:
	default:
		return fmt.Errorf("%w: unknown ordering %q", ErrInvalidParams, p.Ordering)
	}
	if !positive(p.CanvasWidth) {
		return fmt.Errorf("%w: canvas width must be positive, got %v", ErrInvalidParams, p.CanvasWidth)
	}
	if !positive(p.HeightInches) {
		return fmt.Errorf("%w: height in inches must be positive, got %v", ErrInvalidParams, p.HeightInches)
	}
	if math.IsNaN(p.Padding) || math.IsInf(p.Padding, 0) || p.Padding < 0 {
		return fmt.Errorf("%w: exclusion padding must be >= 0, got %v", ErrInvalidParams, p.Padding)
	}
	return nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// ParseStyle maps user input to a StrandStyle.
func ParseStyle(s string) (StrandStyle, error) {
	switch StrandStyle(s) {
	case StyleEllipse, StyleGrid:
		return StrandStyle(s), nil
	}
	return "", fmt.Errorf("%w: unknown strand style %q", ErrInvalidParams, s)
}

// ParseOrdering maps user input to an Ordering.
func ParseOrdering(s string) (Ordering, error) {
	switch Ordering(s) {
	case OrderArc, OrderReverseRight:
		return Ordering(s), nil
	}
	return "", fmt.Errorf("%w: unknown ordering %q", ErrInvalidParams, s)
}

// ParseScene maps user input to a SceneName.
func ParseScene(s string) (SceneName, error) {
	switch SceneName(s) {
	case SceneNameMain, SceneNameDance:
		return SceneName(s), nil
	}
	return "", fmt.Errorf("%w: unknown scene %q", ErrInvalidParams, s)
}

// Toggle returns the other strand style.
func (s StrandStyle) Toggle() StrandStyle {
	if s == StyleGrid {
		return StyleEllipse
	}
	return StyleGrid
}

func ClampStrands(n int) int {
	return min(max(n, MinStrands), MaxStrands)
}

func ClampDensity(n int) int {
	return min(max(n, MinDensity), MaxDensity)
}
