/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import (
	"fmt"

	"ledsail/internal/vector"
)

const (
	DanceWidth  = 1100.0
	DanceHeight = 900.0
)

// SailShape is the triangle and base radius of one sail in a scene.
type SailShape struct {
	Name string       `json:"name"`
	P1   vector.Point `json:"p1"`
	P2   vector.Point `json:"p2"`
	P3   vector.Point `json:"p3"`
	RX   float64      `json:"rx"`
}

// Scene is a canvas and the sails laid out on it.
type Scene struct {
	Name   SceneName   `json:"name"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Sails  []SailShape `json:"sails"`
}

// SceneMain is a single sail spanning the canvas, apex at the bottom.
func SceneMain(width float64) Scene {
	h := width * AspectRatio
	return Scene{
		Name:   SceneNameMain,
		Width:  width,
		Height: h,
		Sails: []SailShape{{
			Name: "main",
			P1:   vector.Pt(width*0.9, 0),
			P2:   vector.Pt(width*0.5, h),
			P3:   vector.Pt(width*0.1, 0),
			RX:   RadiusX,
		}},
	}
}

// SceneDance is four sails reaching in from the canvas edges. The right
// pair mirrors the left pair about the vertical centre line.
func SceneDance() Scene {
	w := DanceWidth
	return Scene{
		Name:   SceneNameDance,
		Width:  w,
		Height: DanceHeight,
		Sails: []SailShape{
			{Name: "upper-left", P1: vector.Pt(300, -100), P2: vector.Pt(750, 750), P3: vector.Pt(-100, 300), RX: RadiusX},
			{Name: "upper-right", P1: vector.Pt(w+100, 300), P2: vector.Pt(w-750, 750), P3: vector.Pt(w-300, -100), RX: RadiusX},
			{Name: "lower-left", P1: vector.Pt(-60, 300), P2: vector.Pt(880, 550), P3: vector.Pt(-60, 800), RX: RadiusX},
			{Name: "lower-right", P1: vector.Pt(w+60, 800), P2: vector.Pt(w-880, 550), P3: vector.Pt(w+60, 300), RX: RadiusX},
		},
	}
}

// SceneFor resolves the arrangement named by p.Scene.
func (p Params) SceneFor() (Scene, error) {
	switch p.Scene {
	case SceneNameMain:
		if !positive(p.CanvasWidth) {
			return Scene{}, fmt.Errorf("%w: canvas width must be positive, got %v", ErrInvalidParams, p.CanvasWidth)
		}
		return SceneMain(p.CanvasWidth), nil
	case SceneNameDance:
		return SceneDance(), nil
	}
	return Scene{}, fmt.Errorf("%w: unknown scene %q", ErrInvalidParams, p.Scene)
}
