/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"ledsail/internal/domain"
	"ledsail/internal/vector"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal.

type LayoutConfig struct {
	LEDDensity       int     `yaml:"led_density"`
	NumStrands       int     `yaml:"num_strands"`
	StrandStyle      string  `yaml:"strand_style"` // "ellipse" | "grid"
	Scene            string  `yaml:"scene"`        // "main" | "dance"
	CanvasWidth      float64 `yaml:"canvas_width"`
	HeightInches     float64 `yaml:"height_inches"`
	Ordering         string  `yaml:"ordering"` // "arc" | "reverse-right"
	ExclusionPadding float64 `yaml:"exclusion_padding"`
}

type RenderConfig struct {
	MathMode   bool   `yaml:"math_mode"`
	SailColor  string `yaml:"sail_color"`
	Background string `yaml:"background"`
	LEDColor   string `yaml:"led_color"` // empty picks black in math mode, white otherwise
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Layout        LayoutConfig  `yaml:"layout"`
	Render        RenderConfig  `yaml:"render"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	p := domain.DefaultParams()
	return AppConfig{
		ConfigVersion: 1,
		Layout: LayoutConfig{
			LEDDensity:   p.LEDDensity,
			NumStrands:   p.NumStrands,
			StrandStyle:  string(p.Style),
			Scene:        string(p.Scene),
			CanvasWidth:  p.CanvasWidth,
			HeightInches: p.HeightInches,
			Ordering:     string(p.Ordering),
		},
		Render:  RenderConfig{SailColor: vector.SailBlue.Hex(), Background: vector.White.Hex()},
		Logging: LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath   = "LEDSAIL_CONFIG"
	EnvLEDDensity   = "LEDSAIL_LED_DENSITY"
	EnvNumStrands   = "LEDSAIL_NUM_STRANDS"
	EnvStrandStyle  = "LEDSAIL_STRAND_STYLE"
	EnvCanvasWidth  = "LEDSAIL_CANVAS_WIDTH"
	EnvHeightInches = "LEDSAIL_HEIGHT_INCHES"
	EnvMathMode     = "LEDSAIL_MATH_MODE"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "LEDSAIL_LOG_LEVEL"
	EnvLogFormat = "LEDSAIL_LOG_FORMAT"
	EnvLogSource = "LEDSAIL_LOG_SOURCE"
	EnvLogFile   = "LEDSAIL_LOG_FILE"
)

// ConfigPath returns the per-user config file path. LEDSAIL_CONFIG wins
// when set.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "LedSail")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "LedSail")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "ledsail")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides. A malformed file is reported, defaults are still returned.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	var fileErr error
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			fileErr = fmt.Errorf("parse %s: %w", path, err)
		} else {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, fileErr
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	l := &src.Layout
	if l.LEDDensity != 0 {
		dst.Layout.LEDDensity = l.LEDDensity
	}
	if l.NumStrands != 0 {
		dst.Layout.NumStrands = l.NumStrands
	}
	if s := strings.ToLower(strings.TrimSpace(l.StrandStyle)); s != "" {
		dst.Layout.StrandStyle = s
	}
	if s := strings.ToLower(strings.TrimSpace(l.Scene)); s != "" {
		dst.Layout.Scene = s
	}
	if l.CanvasWidth != 0 {
		dst.Layout.CanvasWidth = l.CanvasWidth
	}
	if l.HeightInches != 0 {
		dst.Layout.HeightInches = l.HeightInches
	}
	if s := strings.ToLower(strings.TrimSpace(l.Ordering)); s != "" {
		dst.Layout.Ordering = s
	}
	dst.Layout.ExclusionPadding = l.ExclusionPadding
	// render: booleans copy directly so user preferences persist
	dst.Render.MathMode = src.Render.MathMode
	if s := strings.TrimSpace(src.Render.SailColor); s != "" {
		dst.Render.SailColor = s
	}
	if s := strings.TrimSpace(src.Render.Background); s != "" {
		dst.Render.Background = s
	}
	if s := strings.TrimSpace(src.Render.LEDColor); s != "" {
		dst.Render.LEDColor = s
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func truthy(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvLEDDensity)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Layout.LEDDensity = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvNumStrands)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Layout.NumStrands = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvStrandStyle)); v != "" {
		cfg.Layout.StrandStyle = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvCanvasWidth)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Layout.CanvasWidth = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvHeightInches)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Layout.HeightInches = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvMathMode)); v != "" {
		cfg.Render.MathMode = truthy(v)
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	env := map[string]string{
		"layout.led_density":   EnvLEDDensity,
		"layout.num_strands":   EnvNumStrands,
		"layout.strand_style":  EnvStrandStyle,
		"layout.canvas_width":  EnvCanvasWidth,
		"layout.height_inches": EnvHeightInches,
		"render.math_mode":     EnvMathMode,
		"logging.level":        EnvLogLevel,
		"logging.format":       EnvLogFormat,
		"logging.source":       EnvLogSource,
		"logging.file":         EnvLogFile,
	}[key]
	if env != "" && os.Getenv(env) != "" {
		return env, true
	}
	return "", false
}

// LayoutParams converts the layout and render sections without validating
// them, so later sources such as command line flags can still correct them.
func (c AppConfig) LayoutParams() domain.Params {
	l := c.Layout
	return domain.Params{
		Scene:        domain.SceneName(l.Scene),
		LEDDensity:   l.LEDDensity,
		NumStrands:   l.NumStrands,
		Style:        domain.StrandStyle(l.StrandStyle),
		CanvasWidth:  l.CanvasWidth,
		HeightInches: l.HeightInches,
		Ordering:     domain.Ordering(l.Ordering),
		Padding:      l.ExclusionPadding,
		MathMode:     c.Render.MathMode,
	}
}

// SetLayoutParams stores p in the layout and render sections.
func (c *AppConfig) SetLayoutParams(p domain.Params) {
	c.Layout = LayoutConfig{
		LEDDensity:       p.LEDDensity,
		NumStrands:       p.NumStrands,
		StrandStyle:      string(p.Style),
		Scene:            string(p.Scene),
		CanvasWidth:      p.CanvasWidth,
		HeightInches:     p.HeightInches,
		Ordering:         string(p.Ordering),
		ExclusionPadding: p.Padding,
	}
	c.Render.MathMode = p.MathMode
}

// SaveParams makes p the parameters future sessions start from. The rest of
// the effective configuration is written along with it.
func SaveParams(p domain.Params) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	cfg, err := Load()
	if err != nil {
		return "", err
	}
	cfg.SetLayoutParams(p)
	if err := Save(cfg); err != nil {
		return "", err
	}
	return ConfigPath()
}

// Entry is one effective setting. Env names the variable that overrode it.
type Entry struct {
	Key, Value, Env string
}

// Entries lists the effective settings in file order.
func (c AppConfig) Entries() []Entry {
	l, r, g := c.Layout, c.Render, c.Logging
	out := []Entry{
		{Key: "layout.led_density", Value: strconv.Itoa(l.LEDDensity)},
		{Key: "layout.num_strands", Value: strconv.Itoa(l.NumStrands)},
		{Key: "layout.strand_style", Value: l.StrandStyle},
		{Key: "layout.scene", Value: l.Scene},
		{Key: "layout.canvas_width", Value: strconv.FormatFloat(l.CanvasWidth, 'g', -1, 64)},
		{Key: "layout.height_inches", Value: strconv.FormatFloat(l.HeightInches, 'g', -1, 64)},
		{Key: "layout.ordering", Value: l.Ordering},
		{Key: "layout.exclusion_padding", Value: strconv.FormatFloat(l.ExclusionPadding, 'g', -1, 64)},
		{Key: "render.math_mode", Value: strconv.FormatBool(r.MathMode)},
		{Key: "render.sail_color", Value: r.SailColor},
		{Key: "render.background", Value: r.Background},
		{Key: "render.led_color", Value: r.LEDColor},
		{Key: "logging.level", Value: g.Level},
		{Key: "logging.format", Value: g.Format},
		{Key: "logging.source", Value: strconv.FormatBool(g.Source)},
		{Key: "logging.file", Value: g.File},
	}
	for i := range out {
		out[i].Env, _ = EnvOverrideFor(out[i].Key)
	}
	return out
}

// Params is LayoutParams followed by validation.
func (c AppConfig) Params() (domain.Params, error) {
	p := c.LayoutParams()
	if err := p.Validate(); err != nil {
		return domain.Params{}, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

// Palette holds the parsed render colours. LED is zero when unset.
type Palette struct {
	Sail, Background, LED vector.Color
}

// Palette parses the render colours.
func (r RenderConfig) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Sail, err = vector.ParseHex(r.SailColor); err != nil {
		return Palette{}, fmt.Errorf("render.sail_color: %w", err)
	}
	if p.Background, err = vector.ParseHex(r.Background); err != nil {
		return Palette{}, fmt.Errorf("render.background: %w", err)
	}
	if strings.TrimSpace(r.LEDColor) != "" {
		if p.LED, err = vector.ParseHex(r.LEDColor); err != nil {
			return Palette{}, fmt.Errorf("render.led_color: %w", err)
		}
	}
	return p, nil
}
