/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDefaultParamsValid(t *testing.T) {
	for name, p := range map[string]Params{"default": DefaultParams(), "dance": DanceParams()} {
		if err := p.Validate(); err != nil {
			t.Fatalf("%s params invalid: %v", name, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Params)
	}{
		{"zero density", func(p *Params) { p.LEDDensity = 0 }},
		{"huge density", func(p *Params) { p.LEDDensity = 2000000000 }},
		{"one strand", func(p *Params) { p.NumStrands = 1 }},
		{"huge strand count", func(p *Params) { p.NumStrands = StrandLimit + 1 }},
		{"bad style", func(p *Params) { p.Style = "spiral" }},
		{"bad ordering", func(p *Params) { p.Ordering = "random" }},
		{"bad scene", func(p *Params) { p.Scene = "" }},
		{"zero width", func(p *Params) { p.CanvasWidth = 0 }},
		{"nan width", func(p *Params) { p.CanvasWidth = math.NaN() }},
		{"negative height", func(p *Params) { p.HeightInches = -3 }},
		{"infinite height", func(p *Params) { p.HeightInches = math.Inf(1) }},
		{"negative padding", func(p *Params) { p.Padding = -0.5 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mod(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestValidateAllowsStrandsBelowControlRange(t *testing.T) {
	p := DefaultParams()
	p.NumStrands = 2
	if err := p.Validate(); err != nil {
		t.Fatalf("2 strands should be geometrically valid: %v", err)
	}
}

func TestValidateAcceptsDensityLimit(t *testing.T) {
	p := DefaultParams()
	p.LEDDensity = MaxDensity
	if err := p.Validate(); err != nil {
		t.Fatalf("MaxDensity should be valid: %v", err)
	}
}

func TestClamps(t *testing.T) {
	cases := []struct{ in, want int }{{-4, 8}, {7, 8}, {8, 8}, {30, 30}, {50, 50}, {51, 50}}
	for _, c := range cases {
		if got := ClampStrands(c.in); got != c.want {
			t.Errorf("ClampStrands(%d) = %d, want %d", c.in, got, c.want)
		}
	}
	if ClampDensity(-10) != 1 || ClampDensity(40) != 40 || ClampDensity(MaxDensity+5) != MaxDensity {
		t.Fatal("ClampDensity wrong")
	}
}

func TestParseHelpers(t *testing.T) {
	if s, err := ParseStyle("grid"); err != nil || s != StyleGrid {
		t.Fatalf("ParseStyle(grid) = %q, %v", s, err)
	}
	if _, err := ParseStyle("Grid"); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("ParseStyle is case sensitive, got %v", err)
	}
	if o, err := ParseOrdering("reverse-right"); err != nil || o != OrderReverseRight {
		t.Fatalf("ParseOrdering = %q, %v", o, err)
	}
	if s, err := ParseScene("dance"); err != nil || s != SceneNameDance {
		t.Fatalf("ParseScene = %q, %v", s, err)
	}
	if StyleEllipse.Toggle() != StyleGrid || StyleGrid.Toggle() != StyleEllipse {
		t.Fatal("Toggle should flip the style")
	}
}

func TestParamsJSONFieldNames(t *testing.T) {
	b, err := json.Marshal(DefaultParams())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"ledDensity":30`, `"numStrands":15`, `"strandStyle":"ellipse"`, `"heightInches":314`} {
		if !strings.Contains(string(b), key) {
			t.Errorf("missing %s in %s", key, b)
		}
	}
}
