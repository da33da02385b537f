/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns panics into a report file plus a snapshot of the
// layout parameters that were active, so the run can be reproduced.
package crash

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"ledsail/internal/domain"
	applog "ledsail/internal/log"
	"ledsail/internal/version"
)

// exitFn is used to allow testing of Recover without terminating the test process.
var exitFn = os.Exit

// ParamsSource reports the parameters in effect. *session.Session implements it.
type ParamsSource interface {
	Params() domain.Params
}

// Recover captures a panic, logs an error with stacktrace, writes an error
// report file into dir (temp dir when empty) and, when src is non-nil, a
// JSON snapshot of the active parameters next to it.
//
// Usage: defer crash.Recover(dir, sess)
func Recover(dir string, src ParamsSource) {
	if r := recover(); r != nil {
		l := applog.WithComponent("crash")
		stack := debug.Stack()
		l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

		var p *domain.Params
		if src != nil {
			v := src.Params()
			p = &v
		}
		stamp := time.Now().Format("20060102-150405")
		reportPath, err := writeReport(dir, stamp, r, stack, p)
		if err != nil {
			l.Error("crash report write failed", slog.Any("err", err), slog.String("path", reportPath))
		}
		if p != nil {
			if path, err := snapshotParams(dir, stamp, *p); err != nil {
				l.Error("params snapshot failed", slog.Any("err", err))
			} else {
				l.Info("params snapshot written", slog.String("path", path))
			}
		}

		if _, err := fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath); err != nil {
			l.Error("failed to write crash message to stderr", slog.Any("err", err))
		}
		if _, err := fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH); err != nil {
			l.Error("failed to write version info to stderr", slog.Any("err", err))
		}
		// Exit with a non-zero code to indicate failure in CLI context.
		exitFn(2)
	}
}

func reportDir(dir string) string {
	if dir == "" {
		return os.TempDir()
	}
	_ = os.MkdirAll(dir, 0o755)
	return dir
}

func writeReport(dir, stamp string, panicVal any, stack []byte, p *domain.Params) (string, error) {
	path := filepath.Join(reportDir(dir), fmt.Sprintf("crash-%s.log", stamp))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return path, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			applog.WithComponent("crash").Error("failed to close crash report file", slog.Any("err", err), slog.String("path", path))
		}
	}()

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "LED Sail Crash Report\n")
	_, _ = fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(&buf, "Version: %s\n", version.String())
	_, _ = fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if p != nil {
		_, _ = fmt.Fprintf(&buf, "Scene: %s\n", p.Scene)
		_, _ = fmt.Fprintf(&buf, "Style: %s density=%d strands=%d\n", p.Style, p.LEDDensity, p.NumStrands)
	}
	_, _ = fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	_, _ = fmt.Fprintf(&buf, "Stack:\n%s\n", string(stack))

	if _, err := f.Write(buf.Bytes()); err != nil {
		return path, err
	}
	_ = f.Sync()
	return path, nil
}

func snapshotParams(dir, stamp string, p domain.Params) (string, error) {
	path := filepath.Join(reportDir(dir), fmt.Sprintf("crash-%s.params.json", stamp))
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal params: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write params snapshot: %w", err)
	}
	return path, nil
}
