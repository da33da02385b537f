/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package crash

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ledsail/internal/domain"
)

func TestWriteReportCreatesFileInTemp(t *testing.T) {
	path, err := writeReport("", "20250101-000000", "boom", []byte("stacktrace"), nil)
	if err != nil {
		t.Fatalf("writeReport error: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(path) })
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "LED Sail Crash Report") {
		t.Fatalf("report header missing")
	}
	if !strings.Contains(s, "Panic: boom") {
		t.Fatalf("panic content missing: %s", s)
	}
	if strings.Contains(s, "Scene:") {
		t.Fatalf("no params given, scene line unexpected: %s", s)
	}
}

func TestWriteReportIncludesParams(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	p := domain.DanceParams()
	path, err := writeReport(dir, "stamp", "kaboom", []byte("stack"), &p)
	if err != nil {
		t.Fatalf("writeReport error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("expected crash report under %s, got %s", dir, path)
	}
	b, _ := os.ReadFile(path)
	if !strings.Contains(string(b), "Scene: dance") {
		t.Fatalf("scene missing: %s", b)
	}
}

func TestSnapshotParamsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := domain.DefaultParams()
	want.LEDDensity = 45
	path, err := snapshotParams(dir, "stamp", want)
	if err != nil {
		t.Fatalf("snapshotParams: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	var got domain.Params
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if got != want {
		t.Fatalf("snapshot = %+v, want %+v", got, want)
	}
}
