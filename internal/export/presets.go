/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0
 */

package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"ledsail/internal/layout"
	applog "ledsail/internal/log"
)

// PresetName represents a named export preset.
type PresetName string

const (
	PresetWeb   PresetName = "web"
	PresetPrint PresetName = "print"
)

// BatchOptions controls batch export of one layout across formats.
//
// Path semantics:
//   - Files are written to <OutDir>/<preset>/<format>/<Name>.<ext>.
//   - An empty OutDir means the current directory; an empty Name means "layout".
//   - Zip additionally bundles the written files into <OutDir>/<preset>/<Name>.zip.
//
//nolint:revive // keep fields explicit for clarity
type BatchOptions struct {
	Preset  PresetName
	Formats []string // allowed: pdf, png, svg, json; empty means preset defaults
	Scale   float64  // when > 0 overrides the preset's PNG scale
	Style   *Style   // when set, overrides the math mode derived style
	OutDir  string
	Name    string
	Zip     bool
}

// BatchExport renders res in every requested format and returns the
// written paths in format order.
func BatchExport(res layout.Result, opt BatchOptions) ([]string, error) {
	l := applog.WithOperation(applog.WithComponent("export"), "batch").With(slog.String("preset", string(opt.Preset)))
	formats := opt.Formats
	if len(formats) == 0 {
		formats = presetDefaultFormats(opt.Preset)
	}
	name := opt.Name
	if name == "" {
		name = "layout"
	}
	preset := string(opt.Preset)
	if preset == "" {
		preset = "default"
	}
	base := filepath.Join(opt.OutDir, preset)

	st := DefaultStyle(res.Params.MathMode)
	if opt.Style != nil {
		st = *opt.Style
	}
	d := Plan(res, st)
	scale := presetScale(opt.Preset)
	if opt.Scale > 0 {
		scale = opt.Scale
	}

	var written []string
	for _, raw := range formats {
		f := strings.ToLower(strings.TrimSpace(raw))
		out := filepath.Join(base, f, name+"."+f)
		var err error
		switch f {
		case "pdf":
			err = ExportPDF(out, d, res.Info, PDFOptions{Margin: 36, InfoBlock: true})
		case "png":
			err = ExportPNG(out, d, PNGOptions{Scale: scale, Caption: presetCaption(opt.Preset)})
		case "svg":
			err = ExportSVG(out, d)
		case "json":
			err = ExportJSON(out, res)
		default:
			return written, fmt.Errorf("unknown format: %s", raw)
		}
		if err != nil {
			l.Error("export failed", slog.String("format", f), slog.Any("err", err))
			return written, fmt.Errorf("%s: %w", f, err)
		}
		written = append(written, out)
	}
	l.Info("batch exported", slog.Int("files", len(written)), slog.String("dir", base))
	if opt.Zip {
		zipPath := filepath.Join(base, name+".zip")
		if _, err := Bundle(res, base, written, zipPath); err != nil {
			return written, fmt.Errorf("zip: %w", err)
		}
		written = append(written, zipPath)
	}
	return written, nil
}

func presetDefaultFormats(p PresetName) []string {
	switch p {
	case PresetWeb:
		return []string{"png", "svg", "json"}
	case PresetPrint:
		return []string{"pdf", "png"}
	default:
		return []string{"json"}
	}
}

func presetScale(p PresetName) float64 {
	if p == PresetPrint {
		return 3
	}
	return 1
}

func presetCaption(p PresetName) bool {
	return p == PresetPrint
}
