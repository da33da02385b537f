/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package animate

import (
	"errors"
	"math"
	"testing"

	"ledsail/internal/sail"
	"ledsail/internal/vector"
)

func line(n int, y float64) sail.Strand {
	var s sail.Strand
	for i := 0; i < n; i++ {
		s = append(s, vector.Pt(float64(i*10), y))
	}
	return s
}

func TestFanHighlightsOneIndex(t *testing.T) {
	strands := []sail.Strand{line(3, 0), line(5, 10)}
	f := NewFan(strands, vector.White)
	if f.Period() != 6 {
		t.Fatalf("period = %d, want 6", f.Period())
	}
	frame := f.Frame(4)
	if len(frame) != 8 {
		t.Fatalf("got %d LEDs", len(frame))
	}
	lit := 0
	for _, led := range frame {
		if led.Radius == 3 {
			lit++
			if led.Pos != vector.Pt(40, 10) {
				t.Fatalf("unexpected lit LED %+v", led.Pos)
			}
		} else if led.Radius != BaseRadius {
			t.Fatalf("unexpected radius %v", led.Radius)
		}
	}
	if lit != 1 {
		t.Fatalf("frame 4 lit %d LEDs, want 1 (only the long strand reaches index 4)", lit)
	}
	for _, led := range f.Frame(5) {
		if led.Radius != BaseRadius {
			t.Fatal("frame past the longest strand should light nothing")
		}
	}
	// cycling
	a, b := f.Frame(1), f.Frame(1+f.Period())
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("frames should repeat after Period")
		}
	}
}

func TestRippleRadiusCycle(t *testing.T) {
	r := NewRipple(nil, 100, 100, vector.White)
	// reset at 75: radii 0,5,...,75 then back to 0
	if r.Period() != 16 {
		t.Fatalf("period = %d, want 16", r.Period())
	}
	if r.RadiusAt(15) != 75 || r.RadiusAt(16) != 0 || r.RadiusAt(3) != 15 {
		t.Fatalf("radius sequence wrong: %v %v %v", r.RadiusAt(15), r.RadiusAt(16), r.RadiusAt(3))
	}
}

func TestRippleRing(t *testing.T) {
	strands := []sail.Strand{{
		vector.Pt(50, 50),  // centre, never inside the ring once radius > width
		vector.Pt(50, 110), // d=60
		vector.Pt(50, 125), // d=75, mid-ring on radius 100
		vector.Pt(50, 140), // d=90
		vector.Pt(50, 160), // d=110, outside
	}}
	r := NewRipple(strands, 100, 100, vector.White)
	r.Reset = 1000
	frame := r.Frame(20) // radius 100
	if r.RadiusAt(20) != 100 {
		t.Fatalf("radius = %v", r.RadiusAt(20))
	}
	if frame[0].Radius != BaseRadius || frame[4].Radius != BaseRadius {
		t.Fatalf("LEDs outside the ring must be plain: %+v %+v", frame[0], frame[4])
	}
	if frame[0].Color != vector.White {
		t.Fatalf("plain LEDs keep the LED colour, got %+v", frame[0].Color)
	}
	mid := frame[2]
	if math.Abs(mid.Radius-3) > 1e-9 {
		t.Fatalf("mid-ring radius = %v, want 3", mid.Radius)
	}
	if mid.Color == vector.White || mid.Color == vector.Gold {
		t.Fatalf("mid-ring colour should be blended, got %+v", mid.Color)
	}
	// prominence 10 on the rising half, 40 on the falling half
	if math.Abs(frame[3].Radius-1.8) > 1e-9 || math.Abs(frame[1].Radius-1.8) > 1e-9 {
		t.Fatalf("ring radii = %v / %v, want 1.8", frame[3].Radius, frame[1].Radius)
	}
}

func TestNewByKind(t *testing.T) {
	strands := []sail.Strand{line(4, 0)}
	for _, tc := range []struct {
		in   string
		want Kind
	}{{"", KindNone}, {"Fan", KindFan}, {" ripple ", KindRipple}, {"none", KindNone}} {
		k, err := ParseKind(tc.in)
		if err != nil || k != tc.want {
			t.Fatalf("ParseKind(%q) = %q, %v", tc.in, k, err)
		}
	}
	if _, err := ParseKind("sparkle"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}

	a, err := New(KindNone, strands, 100, 100, vector.White)
	if err != nil || a != nil {
		t.Fatalf("KindNone = %v, %v", a, err)
	}
	a, err = New(KindFan, strands, 100, 100, vector.White)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := a.(Fan); !ok || a.Period() != 5 {
		t.Fatalf("fan = %T period %d", a, a.Period())
	}
	a, err = New(KindRipple, strands, 100, 100, vector.White)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := a.(Ripple); !ok {
		t.Fatalf("ripple = %T", a)
	}
	if _, err := New(Kind("x"), strands, 1, 1, vector.White); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
