/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package log

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ledsail/internal/config"
)

// capture initialises the logger into a buffer and drops it again after the
// test so the next caller of L starts from the config.
func capture(t *testing.T, opts Options) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	opts.Output = &buf
	Init(opts)
	t.Cleanup(func() {
		mu.Lock()
		current = nil
		mu.Unlock()
	})
	return &buf
}

func TestFromConfigUsesEnvMergedByConfig(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvLogFormat, "JSON")
	t.Setenv(config.EnvLogSource, "yes")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := FromConfig(cfg.Logging)
	if got.Level != "warn" || got.Format != "json" || !got.AddSource || got.File != "" {
		t.Fatalf("FromConfig = %+v", got)
	}
}

func TestLazyInitFollowsConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: error\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvConfigPath, path)
	mu.Lock()
	current = nil
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		current = nil
		mu.Unlock()
	})

	l := L()
	if l.Enabled(context.Background(), slog.LevelWarn) {
		t.Fatal("warn enabled although config level is error")
	}
	if !l.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("error should be enabled")
	}
	if L() != l {
		t.Fatal("L should return the initialised logger")
	}
}

func TestConsoleLineTagsComponentAndOp(t *testing.T) {
	buf := capture(t, Options{Level: "debug"})

	WithOperation(WithComponent("layout"), "build").Debug("layout built",
		slog.Int("leds", 212), slog.Float64("spacing", 10), slog.Float64("ratio", 6.25))

	line := buf.String()
	for _, want := range []string{" DBG layout/build: layout built", "app=ledsail", "leds=212", "spacing=10", "ratio=6.25"} {
		if !strings.Contains(line, want) {
			t.Fatalf("line %q missing %q", line, want)
		}
	}
	if strings.Contains(line, "component=") || strings.Contains(line, "op=") {
		t.Fatalf("component/op should only appear in the tag: %q", line)
	}
}

func TestConsoleGroupsAndQuoting(t *testing.T) {
	buf := capture(t, Options{})

	WithComponent("export").WithGroup("sail").Info("skipped",
		slog.String("name", "port sail"), slog.String("empty", ""))

	line := buf.String()
	if !strings.Contains(line, " INF export: skipped") {
		t.Fatalf("tag missing: %q", line)
	}
	if !strings.Contains(line, `sail.name="port sail"`) || !strings.Contains(line, `sail.empty=""`) {
		t.Fatalf("grouped or quoted attrs wrong: %q", line)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, Options{Level: "warn"})
	l := WithComponent("session")
	l.Info("ignored")
	l.Warn("change rejected")
	out := buf.String()
	if strings.Contains(out, "ignored") || !strings.Contains(out, "WRN session: change rejected") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestContextAttrsReachJSONRecords(t *testing.T) {
	buf := capture(t, Options{Level: "debug", Format: "json"})

	ctx := WithAttrs(context.Background(), slog.String("effect", "ripple"))
	ctx = WithAttrs(ctx, slog.Int("frame", 7))
	if n := len(AttrsFrom(ctx)); n != 2 {
		t.Fatalf("AttrsFrom len = %d, want 2", n)
	}
	WithOperation(WithComponent("cli"), "animate").InfoContext(ctx, "frame written")

	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("unmarshal: %v (%q)", err, buf.String())
	}
	if m["effect"] != "ripple" || m["frame"] != float64(7) {
		t.Fatalf("context attrs missing: %v", m)
	}
	if m["component"] != "cli" || m["op"] != "animate" {
		t.Fatalf("component/op missing: %v", m)
	}
	if AttrsFrom(context.Background()) != nil {
		t.Fatal("context without attrs should carry none")
	}
}

func TestRotatingFileGetsJSON(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "ledsail.log")
	buf := capture(t, Options{Level: "info", File: fpath})

	ctx := WithAttrs(context.Background(), slog.String("preset", "web"))
	WithOperation(WithComponent("export"), "batch").InfoContext(ctx, "batch exported", slog.Int("files", 2))

	if !strings.Contains(buf.String(), "export/batch: batch exported") {
		t.Fatalf("console line missing: %q", buf.String())
	}
	b, err := os.ReadFile(fpath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var last string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			last = s
		}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("unmarshal %q: %v", last, err)
	}
	if m["app"] != "ledsail" || m["component"] != "export" || m["op"] != "batch" || m["preset"] != "web" {
		t.Fatalf("file record = %v", m)
	}
	if _, ok := m["ver"].(string); !ok {
		t.Fatalf("ver missing: %v", m)
	}
}
