/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ledsail/internal/layout"
	applog "ledsail/internal/log"
	"ledsail/internal/version"
)

// ManifestName is the text file added at the root of every bundle.
const ManifestName = "ledsail.manifest.txt"

// Bundle zips the files at paths into destZip, storing each under its path
// relative to root, and adds a manifest describing res. It returns the
// number of files added, manifest excluded.
func Bundle(res layout.Result, root string, paths []string, destZip string) (int, error) {
	l := applog.WithOperation(applog.WithComponent("export"), "bundle").With(slog.String("zip", destZip))
	if strings.TrimSpace(destZip) == "" {
		return 0, errors.New("destZip is required")
	}
	if err := os.MkdirAll(filepath.Dir(destZip), 0o755); err != nil {
		return 0, fmt.Errorf("ensure zip dir: %w", err)
	}
	// On Windows, remove destination if present before create
	_ = os.Remove(destZip)

	zf, err := os.Create(destZip)
	if err != nil {
		return 0, fmt.Errorf("create zip: %w", err)
	}
	zw := zip.NewWriter(zf)

	added, err := writeBundle(zw, res, root, paths)
	if cerr := zw.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("finish zip: %w", cerr)
	}
	if cerr := zf.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close zip: %w", cerr)
	}
	if err != nil {
		l.Error("zip build failed", slog.Any("err", err))
		return added, err
	}
	l.Info("bundle written", slog.Int("files", added))
	return added, nil
}

func writeBundle(zw *zip.Writer, res layout.Result, root string, paths []string) (int, error) {
	w, err := zw.Create(ManifestName)
	if err != nil {
		return 0, fmt.Errorf("add manifest: %w", err)
	}
	if _, err := io.WriteString(w, manifest(res)); err != nil {
		return 0, fmt.Errorf("write manifest: %w", err)
	}
	added := 0
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			rel = filepath.Base(path)
		}
		// forward slashes inside the archive
		fw, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return added, fmt.Errorf("add %s: %w", rel, err)
		}
		if err := copyFile(fw, path); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

func copyFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("copy %s: %w", path, err)
	}
	return nil
}

func manifest(res layout.Result) string {
	p := res.Params
	return fmt.Sprintf("LED Sail Export Bundle\nCreated: %s\nVersion: %s\nScene: %s (%d sails)\nStyle: %s density=%d strands=%d\n%s\n",
		time.Now().Format(time.RFC3339), version.String(),
		res.Scene.Name, len(res.Sails),
		p.Style, p.LEDDensity, p.NumStrands,
		caption(res.Info))
}
