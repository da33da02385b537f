/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"ledsail/internal/animate"
	"ledsail/internal/export"
	"ledsail/internal/layout"
	applog "ledsail/internal/log"
)

var (
	AnimateCmd = &cobra.Command{
		Use:   "animate [fan|ripple]",
		Short: "write the frames of an LED effect as numbered PNG files",
		Args:  cobra.ExactArgs(1),
		RunE:  animateCmd,
	}

	framesFlag     int
	framesOutFlag  string
	frameScaleFlag float64
)

func init() {
	f := AnimateCmd.Flags()
	f.IntVar(&framesFlag, "frames", 0, "number of frames (default: one full period)")
	f.StringVarP(&framesOutFlag, "out", "o", "frames", "output directory")
	f.Float64Var(&frameScaleFlag, "scale", 1, "PNG scale factor")
	RootCmd.AddCommand(AnimateCmd)
}

func animateCmd(cmd *cobra.Command, args []string) error {
	kind, err := animate.ParseKind(args[0])
	if err != nil {
		return err
	}
	if kind == animate.KindNone {
		return fmt.Errorf("%w: pick fan or ripple", animate.ErrUnknownKind)
	}
	res, err := layout.Build(params)
	if err != nil {
		return err
	}
	anim, err := animate.New(kind, res.Strands, res.Scene.Width, res.Scene.Height, style.LED())
	if err != nil {
		return err
	}
	n := framesFlag
	if n <= 0 {
		n = anim.Period()
	}

	ctx := applog.WithAttrs(context.Background(), slog.String("effect", string(kind)))
	l := applog.WithOperation(applog.WithComponent("cli"), "animate")
	for i := 0; i < n; i++ {
		path := filepath.Join(framesOutFlag, fmt.Sprintf("%s-%04d.png", kind, i))
		d := export.PlanFrame(res, style, anim.Frame(i))
		if err := export.ExportPNG(path, d, export.PNGOptions{Scale: frameScaleFlag}); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		l.DebugContext(ctx, "frame written", slog.Int("frame", i), slog.String("path", path))
	}
	l.InfoContext(ctx, "animation written", slog.Int("frames", n), slog.String("dir", framesOutFlag))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", n, framesOutFlag)
	return nil
}
