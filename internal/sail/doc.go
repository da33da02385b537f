/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package sail lays out LED strands across a triangular sail.
//
// A Sail is built from three vertices, a base radius and a strand count. It
// derives three exclusion ellipses (one per edge, masking the rounded
// corners) and a family of interior ellipses sweeping from p3 towards p1,
// each paired with p2. LED candidates are sampled along the interior
// ellipses (curved mode) or on a regular grid (grid mode) and kept only when
// they lie inside the triangle and outside every exclusion ellipse.
//
// Everything in this package is a pure function of its inputs: a Sail is an
// immutable value and every transform returns a new one.
package sail
