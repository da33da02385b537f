/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package animate computes per-frame LED state for the fan and ripple
// effects. Frames are pure functions of the frame index; scheduling is
// left to the caller.
package animate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"ledsail/internal/sail"
	"ledsail/internal/vector"
)

// LED is one drawn dot.
type LED struct {
	Pos    vector.Point
	Radius float64
	Color  vector.Color
}

// Animation yields a repeating sequence of frames.
type Animation interface {
	// Period is the number of distinct frames before the sequence repeats.
	Period() int
	Frame(n int) []LED
}

const BaseRadius = 1.0

// Kind names an effect.
type Kind string

const (
	KindNone   Kind = "none"
	KindFan    Kind = "fan"
	KindRipple Kind = "ripple"
)

var ErrUnknownKind = errors.New("unknown animation")

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindNone, KindFan, KindRipple:
		return k, nil
	case "":
		return KindNone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New builds the effect for kind over strands on a canvasW x canvasH canvas.
// KindNone returns a nil Animation.
func New(kind Kind, strands []sail.Strand, canvasW, canvasH float64, led vector.Color) (Animation, error) {
	switch kind {
	case KindNone:
		return nil, nil
	case KindFan:
		return NewFan(strands, led), nil
	case KindRipple:
		return NewRipple(strands, canvasW, canvasH, led), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Fan walks a highlight along every strand at once, index k on frame k.
type Fan struct {
	strands   []sail.Strand
	maxLen    int
	Color     vector.Color
	Highlight float64
}

func NewFan(strands []sail.Strand, color vector.Color) Fan {
	f := Fan{strands: strands, Color: color, Highlight: 3}
	for _, st := range strands {
		f.maxLen = max(f.maxLen, len(st))
	}
	return f
}

// Period includes one frame past the longest strand where nothing is lit.
func (f Fan) Period() int { return f.maxLen + 1 }

func (f Fan) Frame(n int) []LED {
	k := wrap(n, f.Period())
	out := make([]LED, 0, sail.Count(f.strands))
	for _, st := range f.strands {
		for i, p := range st {
			r := BaseRadius
			if i == k {
				r = f.Highlight
			}
			out = append(out, LED{Pos: p, Radius: r, Color: f.Color})
		}
	}
	return out
}

// Ripple expands a ring from Center. LEDs inside the ring grow towards
// mid-ring and blend towards RingColor; all others are drawn plain.
type Ripple struct {
	leds      []vector.Point
	Center    vector.Point
	Width     float64
	Step      float64
	Reset     float64
	LEDColor  vector.Color
	RingColor vector.Color
}

// NewRipple centres the ripple on the canvas and resets it once its radius
// reaches three quarters of the canvas width.
func NewRipple(strands []sail.Strand, canvasW, canvasH float64, led vector.Color) Ripple {
	r := Ripple{
		Center:    vector.Pt(canvasW/2, canvasH/2),
		Width:     50,
		Step:      5,
		Reset:     canvasW * 0.75,
		LEDColor:  led,
		RingColor: vector.Gold,
	}
	for _, st := range strands {
		r.leds = append(r.leds, st...)
	}
	return r
}

// Period counts radii 0, Step, ... up to the first one at or past Reset.
func (r Ripple) Period() int {
	if r.Step <= 0 || r.Reset <= 0 {
		return 1
	}
	return int(math.Ceil(r.Reset/r.Step)) + 1
}

// RadiusAt is the ring's outer radius on frame n.
func (r Ripple) RadiusAt(n int) float64 {
	return float64(wrap(n, r.Period())) * r.Step
}

func (r Ripple) Frame(n int) []LED {
	radius := r.RadiusAt(n)
	out := make([]LED, len(r.leds))
	for i, p := range r.leds {
		out[i] = r.led(p, radius)
	}
	return out
}

func (r Ripple) led(p vector.Point, radius float64) LED {
	d := vector.Distance(p, r.Center)
	if !(d < radius && d > radius-r.Width) {
		return LED{Pos: p, Radius: BaseRadius, Color: r.LEDColor}
	}
	// prominence runs 0..Width from the outer edge inwards
	prom := radius - d
	t := prom / r.Width
	if prom < r.Width/2 {
		return LED{Pos: p, Radius: lerp(1, 5, t), Color: r.LEDColor.Lerp(r.RingColor, t)}
	}
	return LED{Pos: p, Radius: lerp(5, 1, t), Color: r.RingColor.Lerp(r.LEDColor, t)}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func wrap(n, period int) int {
	if period <= 0 {
		return 0
	}
	n %= period
	if n < 0 {
		n += period
	}
	return n
}
