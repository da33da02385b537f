/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ledsail/internal/domain"
	applog "ledsail/internal/log"
	"ledsail/internal/sail"
)

// SailLayout is one sail of a scene with its generated strands.
type SailLayout struct {
	Shape   domain.SailShape
	Sail    sail.Sail
	Strands []sail.Strand
}

// Result is everything a renderer needs for one parameter set.
type Result struct {
	Params domain.Params
	Scene  domain.Scene
	Sails  []SailLayout
	// Strands concatenates every sail's strands in scene order.
	Strands []sail.Strand
	Info    Info
}

// SailFor builds the sail model for one scene entry.
func SailFor(shape domain.SailShape, p domain.Params) (sail.Sail, error) {
	s, err := sail.New(shape.P1, shape.P2, shape.P3, shape.RX, p.NumStrands)
	if err != nil {
		return sail.Sail{}, fmt.Errorf("sail %s: %w", shape.Name, err)
	}
	if p.Padding > 0 {
		if s, err = s.WithExclusionPadding(p.Padding); err != nil {
			return sail.Sail{}, fmt.Errorf("sail %s: %w", shape.Name, err)
		}
	}
	return s, nil
}

// StyleOf maps the presentation style onto the generator style.
func StyleOf(s domain.StrandStyle) sail.Style {
	if s == domain.StyleGrid {
		return sail.StyleGrid
	}
	return sail.StyleCurved
}

// OrderOf maps the presentation ordering onto the generator ordering.
func OrderOf(o domain.Ordering) sail.Ordering {
	if o == domain.OrderReverseRight {
		return sail.OrderReverseRight
	}
	return sail.OrderArc
}

// Build validates p and lays out every sail of its scene. Missing spacing
// is not an error here; check Info.HasSpacing.
func Build(p domain.Params) (Result, error) {
	l := applog.WithOperation(applog.WithComponent("layout"), "build").With(
		slog.String("scene", string(p.Scene)),
		slog.String("style", string(p.Style)),
	)
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	scene, err := p.SceneFor()
	if err != nil {
		return Result{}, err
	}
	start := time.Now()
	res := Result{Params: p, Scene: scene}
	for _, shape := range scene.Sails {
		s, err := SailFor(shape, p)
		if err != nil {
			l.Error("sail rejected", slog.String("sail", shape.Name), slog.Any("err", err))
			return Result{}, err
		}
		strands, err := s.Strands(StyleOf(p.Style), p.LEDDensity, OrderOf(p.Ordering))
		if err != nil {
			return Result{}, fmt.Errorf("sail %s: %w", shape.Name, err)
		}
		res.Sails = append(res.Sails, SailLayout{Shape: shape, Sail: s, Strands: strands})
		res.Strands = append(res.Strands, strands...)
	}
	info, err := Measure(res.Strands, p.HeightInches)
	switch {
	case errors.Is(err, ErrInsufficientData):
		l.Debug("spacing unavailable", slog.Any("err", err))
	case err != nil:
		return Result{}, err
	}
	res.Info = info
	l.Debug("layout built",
		slog.Int("strands", info.NumStrands),
		slog.Int("leds", info.TotalLEDs),
		slog.Duration("took", time.Since(start)),
	)
	return res, nil
}
