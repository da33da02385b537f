/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ledsail/internal/config"
	"ledsail/internal/domain"
	"ledsail/internal/export"
)

// execute runs the root command with args against an empty user config.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.yaml"))
	if err := LayoutCmd.Flags().Set("json", "false"); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs(args)
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("ledsail %s: %v", strings.Join(args, " "), err)
	}
	return buf.String()
}

func TestLayoutSummary(t *testing.T) {
	out := execute(t, "layout")
	for _, want := range []string{"scene:            main (1 sails)", "style:            ellipse", "strands:          15"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestLayoutJSONValidates(t *testing.T) {
	out := execute(t, "layout", "--json", "--style", "grid", "--density", "12")
	if err := export.ValidateDocument([]byte(out)); err != nil {
		t.Fatalf("document invalid: %v", err)
	}
	doc, err := export.ReadJSON(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if doc.Params.LEDDensity != 12 || doc.Params.Style != "grid" {
		t.Fatalf("flags not applied: %+v", doc.Params)
	}
}

func TestLayoutDanceScene(t *testing.T) {
	out := execute(t, "layout", "--scene", "dance", "--style", "ellipse")
	if !strings.Contains(out, "dance (4 sails)") {
		t.Fatalf("dance scene not selected:\n%s", out)
	}
}

func TestExportWritesFiles(t *testing.T) {
	dir := t.TempDir()
	out := execute(t, "export", "--formats", "svg,json", "-o", dir, "--name", "sail", "--zip")
	for _, p := range []string{
		filepath.Join(dir, "web", "svg", "sail.svg"),
		filepath.Join(dir, "web", "json", "sail.json"),
		filepath.Join(dir, "web", "sail.zip"),
	} {
		if !strings.Contains(out, p) {
			t.Fatalf("output does not list %s:\n%s", p, out)
		}
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("missing %s: %v", p, err)
		}
	}
}

func TestAnimateWritesFrames(t *testing.T) {
	dir := t.TempDir()
	out := execute(t, "animate", "ripple", "--frames", "3", "-o", dir, "--scale", "0.25")
	if !strings.Contains(out, "wrote 3 frames") {
		t.Fatalf("unexpected output: %q", out)
	}
	for _, name := range []string{"ripple-0000.png", "ripple-0001.png", "ripple-0002.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing frame %s: %v", name, err)
		}
	}
}

func TestInvalidFlagsRejected(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.yaml"))
	RootCmd.SetOut(&bytes.Buffer{})
	RootCmd.SetErr(&bytes.Buffer{})
	RootCmd.SetArgs([]string{"layout", "--style", "spiral"})
	if err := RootCmd.Execute(); err == nil {
		t.Fatal("expected error for unknown style")
	}
	if err := RootCmd.PersistentFlags().Set("style", "ellipse"); err != nil {
		t.Fatal(err)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" PNG, ,svg,")
	if len(got) != 2 || got[0] != "png" || got[1] != "svg" {
		t.Fatalf("splitList = %q", got)
	}
}

func TestBadEnvValueRejected(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv(config.EnvNumStrands, "1")
	RootCmd.SetOut(&bytes.Buffer{})
	RootCmd.SetErr(&bytes.Buffer{})
	RootCmd.SetArgs([]string{"layout"})
	if err := RootCmd.Execute(); !errors.Is(err, domain.ErrInvalidParams) {
		t.Fatalf("err = %v, want ErrInvalidParams", err)
	}
}

func TestFlagOverridesBadEnvValue(t *testing.T) {
	t.Setenv(config.EnvNumStrands, "1")
	out := execute(t, "layout", "--json", "--strands", "10")
	doc, err := export.ReadJSON(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if doc.Params.NumStrands != 10 {
		t.Fatalf("strands = %d, want 10", doc.Params.NumStrands)
	}
}

func TestConfigSaveStoresFlags(t *testing.T) {
	out := execute(t, "config", "save", "--density", "45", "--style", "grid")
	path := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(out), "saved "))
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved config: %v (output %q)", err, out)
	}
	for _, want := range []string{"led_density: 45", "strand_style: grid"} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("saved config missing %q:\n%s", want, b)
		}
	}
}

func TestConfigShowMarksEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvNumStrands, "12")
	out := execute(t, "config", "show")
	var line string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "layout.num_strands") {
			line = l
		}
	}
	if !strings.Contains(line, "12") || !strings.Contains(line, "from "+config.EnvNumStrands) {
		t.Fatalf("num_strands line = %q\n%s", line, out)
	}
}
