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
	"testing"

	"ledsail/internal/domain"
	"ledsail/internal/sail"
)

func TestBuildDefault(t *testing.T) {
	res, err := Build(domain.DefaultParams())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(res.Sails) != 1 || res.Scene.Name != domain.SceneNameMain {
		t.Fatalf("unexpected scene %+v", res.Scene)
	}
	if res.Info.TotalLEDs == 0 || res.Info.TotalLEDs != sail.Count(res.Strands) {
		t.Fatalf("total = %d, count = %d", res.Info.TotalLEDs, sail.Count(res.Strands))
	}
	if len(res.Strands) > domain.DefaultStrands {
		t.Fatalf("%d strands from %d ellipses", len(res.Strands), domain.DefaultStrands)
	}
	if !res.Info.HasSpacing || res.Info.SpaceBetweenLEDs <= 0 {
		t.Fatalf("default layout should report spacing: %+v", res.Info)
	}
}

func TestBuildGridIgnoresStrandCount(t *testing.T) {
	p := domain.DefaultParams()
	p.Style = domain.StyleGrid
	a, err := Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	p.NumStrands = 40
	b, err := Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	diff := sail.Count(a.Strands) - sail.Count(b.Strands)
	if diff != 0 || len(a.Strands) != len(b.Strands) {
		t.Fatalf("grid layout depends on strand count: %d vs %d", sail.Count(a.Strands), sail.Count(b.Strands))
	}
}

func TestBuildDance(t *testing.T) {
	res, err := Build(domain.DanceParams())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(res.Sails) != 4 {
		t.Fatalf("got %d sails", len(res.Sails))
	}
	n := 0
	for _, sl := range res.Sails {
		if sl.Sail.Padding() != 1 {
			t.Fatalf("sail %s padding = %v", sl.Shape.Name, sl.Sail.Padding())
		}
		n += len(sl.Strands)
	}
	if n != len(res.Strands) {
		t.Fatalf("concatenated %d strands, sails hold %d", len(res.Strands), n)
	}
}

func TestBuildInvalid(t *testing.T) {
	p := domain.DefaultParams()
	p.LEDDensity = 0
	if _, err := Build(p); !errors.Is(err, domain.ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
}

func TestBuildSparseKeepsCounts(t *testing.T) {
	p := domain.DefaultParams()
	p.LEDDensity = 1
	p.NumStrands = 2
	res, err := Build(p)
	if err != nil {
		t.Fatalf("sparse layouts are not an error: %v", err)
	}
	if res.Info.HasSpacing {
		t.Fatalf("one sample per strand cannot give spacing: %+v", res.Info)
	}
}

func TestMappings(t *testing.T) {
	if StyleOf(domain.StyleGrid) != sail.StyleGrid || StyleOf(domain.StyleEllipse) != sail.StyleCurved {
		t.Fatal("StyleOf mapping wrong")
	}
	if OrderOf(domain.OrderReverseRight) != sail.OrderReverseRight || OrderOf(domain.OrderArc) != sail.OrderArc {
		t.Fatal("OrderOf mapping wrong")
	}
}
