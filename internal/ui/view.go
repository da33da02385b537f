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
	"fmt"

	"ledsail/internal/animate"
	"ledsail/internal/domain"
	"ledsail/internal/export"
	"ledsail/internal/layout"
	"ledsail/internal/session"
)

// Options configures Run.
type Options struct {
	Params    domain.Params
	Style     export.Style
	Animation animate.Kind
	FPS       int
	// CrashDir receives crash reports; the temp dir when empty.
	CrashDir string
}

const defaultFPS = 20

func (o Options) withDefaults() Options {
	if o.Params == (domain.Params{}) {
		o.Params = domain.DefaultParams()
	}
	if o.Style == (export.Style{}) {
		o.Style = export.DefaultStyle(o.Params.MathMode)
	}
	if o.Animation == "" {
		o.Animation = animate.KindNone
	}
	if o.FPS <= 0 {
		o.FPS = defaultFPS
	}
	return o
}

// Panel is what the control panel shows for one session state.
type Panel struct {
	session.Summary
	Density        string
	StrandCount    string
	Style          string
	StrandsEnabled bool
	MathMode       bool
	CanUndo        bool
	CanRedo        bool
}

func PanelFor(s *session.Session) Panel {
	p := s.Params()
	undo, redo := s.History()
	pn := Panel{
		Summary:        s.Summary(),
		Density:        fmt.Sprintf("%d", p.LEDDensity),
		StrandCount:    fmt.Sprintf("%d", p.NumStrands),
		Style:          string(p.Style),
		StrandsEnabled: s.StrandControlsEnabled(),
		MathMode:       p.MathMode,
		CanUndo:        undo > 0,
		CanRedo:        redo > 0,
	}
	if !pn.StrandsEnabled {
		pn.StrandCount = session.Placeholder
	}
	return pn
}

// Player turns a layout into the drawing for the current animation frame.
// It is not safe for concurrent use; the UI drives it from one goroutine.
type Player struct {
	kind  animate.Kind
	anim  animate.Animation
	res   layout.Result
	style export.Style
	frame int
}

func NewPlayer(kind animate.Kind, res layout.Result, st export.Style) (*Player, error) {
	p := &Player{kind: kind, style: st}
	if err := p.SetResult(res); err != nil {
		return nil, err
	}
	return p, nil
}

// SetResult swaps in a new layout. The frame counter carries over so a
// running effect does not restart on every control change.
func (p *Player) SetResult(res layout.Result) error {
	st := p.style
	st.MathMode = res.Params.MathMode
	anim, err := animate.New(p.kind, res.Strands, res.Scene.Width, res.Scene.Height, st.LED())
	if err != nil {
		return err
	}
	p.res, p.style, p.anim = res, st, anim
	return nil
}

// SetKind switches the effect and restarts it.
func (p *Player) SetKind(kind animate.Kind) error {
	old := p.kind
	p.kind = kind
	if err := p.SetResult(p.res); err != nil {
		p.kind = old
		return err
	}
	p.frame = 0
	return nil
}

func (p *Player) Kind() animate.Kind { return p.kind }

// Animated reports whether Advance changes the drawing.
func (p *Player) Animated() bool { return p.anim != nil }

func (p *Player) Advance() {
	if p.anim == nil {
		return
	}
	p.frame = (p.frame + 1) % p.anim.Period()
}

func (p *Player) Frame() int { return p.frame }

func (p *Player) Drawing() export.Drawing {
	if p.anim == nil {
		return export.Plan(p.res, p.style)
	}
	return export.PlanFrame(p.res, p.style, p.anim.Frame(p.frame))
}
