/*
 * Copyright (c) 2025
 */
package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBatchExport_WebPreset(t *testing.T) {
	root := t.TempDir()
	written, err := BatchExport(sampleResult(t, false), BatchOptions{Preset: PresetWeb, OutDir: root})
	if err != nil {
		t.Fatalf("batch export web: %v", err)
	}
	checks := []string{
		filepath.Join(root, "web", "png", "layout.png"),
		filepath.Join(root, "web", "svg", "layout.svg"),
		filepath.Join(root, "web", "json", "layout.json"),
	}
	if len(written) != len(checks) {
		t.Fatalf("written = %v", written)
	}
	for _, p := range checks {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatalf("missing %s: %v", p, err)
		}
		if st.Size() <= 0 {
			t.Fatalf("empty file: %s", p)
		}
	}
}

func TestBatchExport_PrintPreset(t *testing.T) {
	root := t.TempDir()
	if _, err := BatchExport(sampleResult(t, true), BatchOptions{Preset: PresetPrint, OutDir: root, Name: "sail"}); err != nil {
		t.Fatalf("batch export print: %v", err)
	}
	checks := []string{
		filepath.Join(root, "print", "pdf", "sail.pdf"),
		filepath.Join(root, "print", "png", "sail.png"),
	}
	for _, p := range checks {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatalf("missing %s: %v", p, err)
		}
		if st.Size() <= 0 {
			t.Fatalf("empty file: %s", p)
		}
	}
}

func TestBatchExport_UnknownFormat(t *testing.T) {
	if _, err := BatchExport(sampleResult(t, false), BatchOptions{Formats: []string{"tiff"}, OutDir: t.TempDir()}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
