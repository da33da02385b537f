/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package session holds the presentation state of a layout: the current
// parameters, the layout computed from them, and the history of changes.
// Every change recomputes the layout from scratch.
package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ledsail/internal/domain"
	"ledsail/internal/layout"
	applog "ledsail/internal/log"
)

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now for history timestamps.
func WithClock(now func() time.Time) Option { return func(s *Session) { s.now = now } }

// WithHistory sets the undo history configuration.
func WithHistory(cfg HistoryConfig) Option { return func(s *Session) { s.hist = NewHistory(cfg) } }

// Session is safe for concurrent use. Listeners run after the state lock
// is released.
type Session struct {
	mu        sync.Mutex
	defaults  domain.Params
	params    domain.Params
	result    layout.Result
	hist      *History
	now       func() time.Time
	listeners []func(layout.Result)
	log       *slog.Logger
}

// New validates p, computes its layout and uses p as the reset target.
func New(p domain.Params, opts ...Option) (*Session, error) {
	s := &Session{defaults: p, now: time.Now, log: applog.WithComponent("session")}
	for _, o := range opts {
		o(s)
	}
	if s.hist == nil {
		s.hist = NewHistory(HistoryConfig{})
	}
	res, err := layout.Build(p)
	if err != nil {
		return nil, fmt.Errorf("initial layout: %w", err)
	}
	s.params, s.result = p, res
	return s, nil
}

func (s *Session) Params() domain.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

func (s *Session) Result() layout.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// OnChange registers fn to receive every new layout.
func (s *Session) OnChange(fn func(layout.Result)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Update applies change to a copy of the parameters. It reports whether
// anything changed. On error the previous state is kept.
func (s *Session) Update(op string, change func(*domain.Params)) (bool, error) {
	l := applog.WithOperation(s.log, op)
	s.mu.Lock()
	next := s.params
	change(&next)
	if next == s.params {
		s.mu.Unlock()
		return false, nil
	}
	res, err := layout.Build(next)
	if err != nil {
		s.mu.Unlock()
		l.Warn("change rejected", slog.Any("err", err))
		return false, err
	}
	s.hist.Push(Snapshot{Params: s.params, TS: s.now()})
	s.params, s.result = next, res
	listeners := append([]func(layout.Result){}, s.listeners...)
	s.mu.Unlock()

	l.Debug("layout updated",
		slog.Int("density", next.LEDDensity),
		slog.Int("strands", next.NumStrands),
		slog.Int("leds", res.Info.TotalLEDs),
	)
	for _, fn := range listeners {
		fn(res)
	}
	return true, nil
}

// SetParams replaces every parameter at once.
func (s *Session) SetParams(p domain.Params) (bool, error) {
	return s.Update("set", func(cur *domain.Params) { *cur = p })
}

func (s *Session) MoreLEDs() (bool, error) {
	return s.Update("more-leds", func(p *domain.Params) {
		p.LEDDensity = domain.ClampDensity(p.LEDDensity + domain.DensityStep)
	})
}

func (s *Session) LessLEDs() (bool, error) {
	return s.Update("less-leds", func(p *domain.Params) {
		p.LEDDensity = domain.ClampDensity(p.LEDDensity - domain.DensityStep)
	})
}

func (s *Session) ResetLEDs() (bool, error) {
	return s.Update("reset-leds", func(p *domain.Params) { p.LEDDensity = s.defaults.LEDDensity })
}

// StrandControlsEnabled is false in grid mode, where the strand count has
// no effect on the layout.
func (s *Session) StrandControlsEnabled() bool {
	return s.Params().Style != domain.StyleGrid
}

func (s *Session) MoreStrands() (bool, error) {
	return s.strands("more-strands", func(n int) int { return n + 1 })
}

func (s *Session) LessStrands() (bool, error) {
	return s.strands("less-strands", func(n int) int { return n - 1 })
}

func (s *Session) ResetStrands() (bool, error) {
	return s.strands("reset-strands", func(int) int { return s.defaults.NumStrands })
}

func (s *Session) strands(op string, f func(int) int) (bool, error) {
	if !s.StrandControlsEnabled() {
		return false, nil
	}
	return s.Update(op, func(p *domain.Params) { p.NumStrands = domain.ClampStrands(f(p.NumStrands)) })
}

func (s *Session) ToggleStyle() (bool, error) {
	return s.Update("toggle-style", func(p *domain.Params) { p.Style = p.Style.Toggle() })
}

func (s *Session) ToggleMathMode() (bool, error) {
	return s.Update("toggle-math", func(p *domain.Params) { p.MathMode = !p.MathMode })
}

// Resize follows the canvas width. Only the main scene depends on it.
func (s *Session) Resize(width float64) (bool, error) {
	return s.Update("resize", func(p *domain.Params) { p.CanvasWidth = width })
}

// ResetAll returns to the starting parameters and forgets the undo history.
func (s *Session) ResetAll() error {
	s.mu.Lock()
	res, err := layout.Build(s.defaults)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.params, s.result = s.defaults, res
	s.hist.Clear()
	listeners := append([]func(layout.Result){}, s.listeners...)
	s.mu.Unlock()

	applog.WithOperation(s.log, "reset-all").Debug("session reset")
	for _, fn := range listeners {
		fn(res)
	}
	return nil
}

// History reports how many undo and redo steps are available.
func (s *Session) History() (undo, redo int) { return s.hist.Stats() }

func (s *Session) Undo() bool { return s.travel("undo", s.hist.Undo) }
func (s *Session) Redo() bool { return s.travel("redo", s.hist.Redo) }

func (s *Session) travel(op string, step func(Snapshot) (Snapshot, bool)) bool {
	s.mu.Lock()
	prev, ok := step(Snapshot{Params: s.params, TS: s.now()})
	if !ok {
		s.mu.Unlock()
		return false
	}
	res, err := layout.Build(prev.Params)
	if err != nil {
		// history only holds states that built before
		s.mu.Unlock()
		applog.WithOperation(s.log, op).Error("history state rejected", slog.Any("err", err))
		return false
	}
	s.params, s.result = prev.Params, res
	listeners := append([]func(layout.Result){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(res)
	}
	return true
}

// Summary is the layout info formatted for display.
type Summary struct {
	Strands       string
	TotalLEDs     string
	Spacing       string
	LEDsPerStrand string
}

// Placeholder stands in for values that cannot be derived.
const Placeholder = "--"

// Summarize formats info for labels. Spacing uses one decimal place.
func Summarize(info layout.Info) Summary {
	sum := Summary{
		Strands:       fmt.Sprintf("%d", info.NumStrands),
		TotalLEDs:     fmt.Sprintf("%d", info.TotalLEDs),
		Spacing:       Placeholder,
		LEDsPerStrand: Placeholder,
	}
	if info.HasSpacing {
		sum.Spacing = fmt.Sprintf("%.1f in", info.SpaceBetweenLEDs)
	}
	lo, ok1 := info.MinPerStrand()
	hi, ok2 := info.MaxPerStrand()
	if ok1 && ok2 {
		if lo == hi {
			sum.LEDsPerStrand = fmt.Sprintf("%d", lo)
		} else {
			sum.LEDsPerStrand = fmt.Sprintf("%d-%d", lo, hi)
		}
	}
	return sum
}

// Summary formats the current layout.
func (s *Session) Summary() Summary { return Summarize(s.Result().Info) }
