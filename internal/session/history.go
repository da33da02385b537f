/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package session

import (
	"sync"
	"time"

	"ledsail/internal/domain"
)

// Snapshot is a parameter set as it was before a change.
type Snapshot struct {
	Params domain.Params
	TS     time.Time
}

// HistoryConfig controls depth and coalescing.
type HistoryConfig struct {
	// MaxDepth limits the undo stack; the oldest entries are dropped first.
	MaxDepth int
	// MinInterval coalesces changes captured within the interval so a burst
	// of clicks undoes in one step.
	MinInterval time.Duration
}

// History is an undo/redo stack of parameter snapshots.
// It is safe for concurrent use.
type History struct {
	cfg  HistoryConfig
	mu   sync.Mutex
	undo []Snapshot
	redo []Snapshot
}

func NewHistory(cfg HistoryConfig) *History {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 100
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = 250 * time.Millisecond
	}
	return &History{cfg: cfg}
}

// Push records the state preceding a change and clears redo. Within
// MinInterval of the previous push the older state is kept and only its
// timestamp moves forward.
func (h *History) Push(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.redo = nil
	if n := len(h.undo); n > 0 && s.TS.Sub(h.undo[n-1].TS) < h.cfg.MinInterval {
		h.undo[n-1].TS = s.TS
		return
	}
	h.undo = append(h.undo, s)
	if extra := len(h.undo) - h.cfg.MaxDepth; extra > 0 {
		h.undo = append([]Snapshot{}, h.undo[extra:]...)
	}
}

// Undo returns the previous state and parks current on the redo stack.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	s := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return s, true
}

// Redo reverses the last Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	// redo bypasses coalescing so the step can be undone again
	h.undo = append(h.undo, current)
	return s, true
}

func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undo, h.redo = nil, nil
}

// Stats returns the stack depths for diagnostics.
func (h *History) Stats() (undo, redo int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo), len(h.redo)
}
