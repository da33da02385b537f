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

	"github.com/spf13/cobra"

	"ledsail/internal/export"
	"ledsail/internal/layout"
)

var (
	ExportCmd = &cobra.Command{
		Use:   "export",
		Short: "render the layout to files using an export preset",
		Long: `Renders the current layout. Files are written to
<out>/<preset>/<format>/<name>.<ext>; --zip adds <out>/<preset>/<name>.zip.

presets:
    web:    png, svg, json
    print:  pdf, png (3x, with caption)`,
		Args: cobra.NoArgs,
		RunE: exportCmd,
	}

	presetFlag  string
	formatsFlag string
	outFlag     string
	nameFlag    string
	scaleFlag   float64
	zipFlag     bool
)

func init() {
	f := ExportCmd.Flags()
	f.StringVar(&presetFlag, "preset", string(export.PresetWeb), "web|print")
	f.StringVar(&formatsFlag, "formats", "", "comma separated subset of pdf,png,svg,json (default: preset formats)")
	f.StringVarP(&outFlag, "out", "o", "out", "output directory")
	f.StringVar(&nameFlag, "name", "", "base file name (default: layout)")
	f.Float64Var(&scaleFlag, "scale", 0, "PNG scale factor (default: preset scale)")
	f.BoolVar(&zipFlag, "zip", false, "also bundle the written files into <out>/<preset>/<name>.zip")
	RootCmd.AddCommand(ExportCmd)
}

func exportCmd(cmd *cobra.Command, _ []string) error {
	res, err := layout.Build(params)
	if err != nil {
		return err
	}
	st := style
	paths, err := export.BatchExport(res, export.BatchOptions{
		Preset:  export.PresetName(presetFlag),
		Formats: splitList(formatsFlag),
		Scale:   scaleFlag,
		Style:   &st,
		OutDir:  outFlag,
		Name:    nameFlag,
		Zip:     zipFlag,
	})
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return err
}
