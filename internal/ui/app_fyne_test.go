//go:build fyne

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// These tests validate the Fyne-based UI components. They are gated behind the
// "fyne" build tag so CI (which is headless) does not need Fyne or a display.
// To run locally:
//
//	go test -tags fyne ./internal/ui
package ui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
)

func almostEqual(a, b, eps float32) bool {
	if a > b {
		return a-b <= eps
	}
	return b-a <= eps
}

func TestSailCanvas_Defaults(t *testing.T) {
	sc := NewSailCanvas()
	if sc.zoom != 1 {
		t.Fatalf("expected default zoom 1, got %v", sc.zoom)
	}
	sz := sc.PreferredSize()
	if sz.Width != 800 || sz.Height != 680 {
		t.Fatalf("unexpected PreferredSize: %v", sz)
	}
}

func TestSailCanvas_LayoutCentersAndPans(t *testing.T) {
	sc := NewSailCanvas()
	sc.SetImage(image.NewRGBA(image.Rect(0, 0, 400, 340)), 400, 340)
	r, ok := sc.CreateRenderer().(*sailCanvasRenderer)
	if !ok {
		t.Fatalf("expected sailCanvasRenderer, got %T", sc.CreateRenderer())
	}
	r.Layout(fyne.NewSize(1000, 800))
	pos := sc.img.Position()
	if !almostEqual(pos.X, 300, 0.1) || !almostEqual(pos.Y, 230, 0.1) {
		t.Fatalf("image not centred: %v", pos)
	}
	if !almostEqual(sc.img.Size().Width, 400, 0.1) {
		t.Fatalf("image size %v", sc.img.Size())
	}

	sc.zoom = 0.5
	sc.offsetX, sc.offsetY = 100, 50
	r.Layout(fyne.NewSize(1000, 800))
	pos = sc.img.Position()
	if !almostEqual(pos.X, 500, 0.1) || !almostEqual(pos.Y, 365, 0.1) {
		t.Fatalf("image should move with zoom and offsets: %v", pos)
	}

	sc.ResetView()
	if sc.zoom != 1 || sc.offsetX != 0 || sc.offsetY != 0 {
		t.Fatalf("ResetView left zoom=%v offset=(%v,%v)", sc.zoom, sc.offsetX, sc.offsetY)
	}
}
