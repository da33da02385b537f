/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"testing"

	"ledsail/internal/animate"
	"ledsail/internal/domain"
	"ledsail/internal/export"
	"ledsail/internal/sail"
	"ledsail/internal/session"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New(domain.DefaultParams())
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return s
}

func TestPanelFor(t *testing.T) {
	s := newSession(t)
	pn := PanelFor(s)
	if pn.Density != "30" || pn.StrandCount != "15" || pn.Style != "ellipse" {
		t.Fatalf("unexpected panel: %+v", pn)
	}
	if !pn.StrandsEnabled || pn.CanUndo || pn.CanRedo {
		t.Fatalf("fresh session flags: %+v", pn)
	}
	if pn.TotalLEDs == session.Placeholder || pn.TotalLEDs == "0" {
		t.Fatalf("total LEDs not shown: %+v", pn.Summary)
	}

	if _, err := s.ToggleStyle(); err != nil {
		t.Fatalf("ToggleStyle: %v", err)
	}
	pn = PanelFor(s)
	if pn.StrandsEnabled || pn.StrandCount != session.Placeholder || pn.Style != "grid" {
		t.Fatalf("grid panel: %+v", pn)
	}
	if !pn.CanUndo {
		t.Fatal("undo should be available after a change")
	}
	s.Undo()
	if pn = PanelFor(s); !pn.CanRedo || pn.Style != "ellipse" {
		t.Fatalf("after undo: %+v", pn)
	}
}

func TestPlayerStatic(t *testing.T) {
	s := newSession(t)
	p, err := NewPlayer(animate.KindNone, s.Result(), export.DefaultStyle(false))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if p.Animated() {
		t.Fatal("KindNone should not animate")
	}
	p.Advance()
	if p.Frame() != 0 {
		t.Fatalf("frame = %d", p.Frame())
	}
	d := p.Drawing()
	if got, want := len(d.Dots), sail.Count(s.Result().Strands); got != want {
		t.Fatalf("dots = %d, want %d", got, want)
	}
}

func TestPlayerFanCyclesAndFollowsMathMode(t *testing.T) {
	s := newSession(t)
	p, err := NewPlayer(animate.KindFan, s.Result(), export.DefaultStyle(false))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	fan := animate.NewFan(s.Result().Strands, export.DefaultStyle(false).LED())
	for i := 0; i < fan.Period(); i++ {
		p.Advance()
	}
	if p.Frame() != 0 {
		t.Fatalf("frame after one period = %d, want 0", p.Frame())
	}

	if _, err := s.ToggleMathMode(); err != nil {
		t.Fatalf("ToggleMathMode: %v", err)
	}
	p.Advance()
	if err := p.SetResult(s.Result()); err != nil {
		t.Fatalf("SetResult: %v", err)
	}
	if p.Frame() != 1 {
		t.Fatalf("frame should carry over, got %d", p.Frame())
	}
	d := p.Drawing()
	if len(d.Polygons) != 0 {
		t.Fatal("math mode draws no filled sail")
	}

	if err := p.SetKind(animate.KindRipple); err != nil {
		t.Fatalf("SetKind: %v", err)
	}
	if p.Frame() != 0 || p.Kind() != animate.KindRipple {
		t.Fatalf("SetKind should restart: frame %d kind %s", p.Frame(), p.Kind())
	}
	if err := p.SetKind("bogus"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if p.Kind() != animate.KindRipple {
		t.Fatalf("failed SetKind must keep the old kind, got %s", p.Kind())
	}
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.Params != domain.DefaultParams() || o.FPS != defaultFPS || o.Animation != animate.KindNone {
		t.Fatalf("defaults = %+v", o)
	}
	if o.Style.SailColor != export.DefaultStyle(false).SailColor {
		t.Fatalf("style default = %+v", o.Style)
	}
}
