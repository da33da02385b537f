/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ledsail/internal/config"
	"ledsail/internal/crash"
	"ledsail/internal/domain"
	"ledsail/internal/export"
	applog "ledsail/internal/log"
)

var (
	RootCmd = &cobra.Command{
		Use:   "ledsail",
		Short: "lay out LED strands on triangular sails",
		Long: `ledsail computes LED positions for triangular sails and renders them.

Parameters come from the user config file, LEDSAIL_* environment variables
and finally the flags below, later sources winning.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	// resolved by setup
	cfg    config.AppConfig
	params domain.Params
	style  export.Style

	densityFlag  int
	strandsFlag  int
	styleFlag    string
	sceneFlag    string
	widthFlag    float64
	heightFlag   float64
	orderingFlag string
	paddingFlag  float64
	mathFlag     bool
	logLevelFlag string
)

// EnvCrashDir selects where crash reports go; the temp dir when unset.
const EnvCrashDir = "LEDSAIL_CRASH_DIR"

func init() {
	f := RootCmd.PersistentFlags()
	f.IntVar(&densityFlag, "density", domain.DefaultDensity, "LEDs per strand (curved) or grid columns")
	f.IntVar(&strandsFlag, "strands", domain.DefaultStrands, "number of strands per sail (curved style)")
	f.StringVar(&styleFlag, "style", string(domain.StyleEllipse), "strand style: ellipse|grid")
	f.StringVar(&sceneFlag, "scene", string(domain.SceneNameMain), "scene: main|dance")
	f.Float64Var(&widthFlag, "width", domain.DefaultCanvasWidth, "canvas width in pixels (main scene)")
	f.Float64Var(&heightFlag, "height-inches", domain.DefaultHeightInches, "physical sail height in inches")
	f.StringVar(&orderingFlag, "ordering", string(domain.OrderArc), "strand ordering: arc|reverse-right")
	f.Float64Var(&paddingFlag, "padding", 0, "shrink exclusion ellipses by this many pixels")
	f.BoolVar(&mathFlag, "math", false, "render construction geometry instead of the pretty view")
	f.StringVar(&logLevelFlag, "log-level", "", "debug|info|warn|error (overrides config)")
}

// setup loads config, initialises logging and resolves the layout
// parameters for every subcommand.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		// a broken config file is reported but defaults still apply
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	lo := applog.FromConfig(cfg.Logging)
	if logLevelFlag != "" {
		lo.Level = logLevelFlag
	}
	applog.Init(lo)

	// validated once, after flags had their say
	params, err = applyFlags(cmd, cfg.LayoutParams())
	if err != nil {
		return err
	}
	pal, err := cfg.Render.Palette()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	style = export.DefaultStyle(params.MathMode)
	style.SailColor, style.Background, style.LEDColor = pal.Sail, pal.Background, pal.LED

	applog.WithComponent("cli").Debug("resolved params",
		slog.String("cmd", cmd.Name()),
		slog.String("scene", string(params.Scene)),
		slog.String("style", string(params.Style)),
		slog.Int("density", params.LEDDensity),
		slog.Int("strands", params.NumStrands),
	)
	return nil
}

// applyFlags overlays explicitly set flags on p. Choosing the dance scene
// starts from its own preset so its density and ordering apply.
func applyFlags(cmd *cobra.Command, p domain.Params) (domain.Params, error) {
	f := cmd.Flags()
	if f.Changed("scene") {
		sc, err := domain.ParseScene(sceneFlag)
		if err != nil {
			return p, err
		}
		if sc == domain.SceneNameDance {
			mm := p.MathMode
			p = domain.DanceParams()
			p.MathMode = mm
		}
		p.Scene = sc
	}
	if f.Changed("density") {
		p.LEDDensity = densityFlag
	}
	if f.Changed("strands") {
		p.NumStrands = strandsFlag
	}
	if f.Changed("style") {
		s, err := domain.ParseStyle(styleFlag)
		if err != nil {
			return p, err
		}
		p.Style = s
	}
	if f.Changed("width") {
		p.CanvasWidth = widthFlag
	}
	if f.Changed("height-inches") {
		p.HeightInches = heightFlag
	}
	if f.Changed("ordering") {
		o, err := domain.ParseOrdering(orderingFlag)
		if err != nil {
			return p, err
		}
		p.Ordering = o
	}
	if f.Changed("padding") {
		p.Padding = paddingFlag
	}
	if f.Changed("math") {
		p.MathMode = mathFlag
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("parameters: %w", err)
	}
	return p, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// resolvedParams hands the crash reporter whatever setup resolved.
type resolvedParams struct{}

func (resolvedParams) Params() domain.Params { return params }

func main() {
	defer crash.Recover(os.Getenv(EnvCrashDir), resolvedParams{})
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
