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
	"io"

	"github.com/spf13/cobra"

	"ledsail/internal/export"
	"ledsail/internal/layout"
	"ledsail/internal/session"
)

var (
	LayoutCmd = &cobra.Command{
		Use:   "layout",
		Short: "compute the LED layout and print a summary or the JSON document",
		Args:  cobra.NoArgs,
		RunE:  layoutCmd,
	}

	jsonFlag bool
)

func init() {
	LayoutCmd.Flags().BoolVar(&jsonFlag, "json", false, "print the schema-validated layout document")
	RootCmd.AddCommand(LayoutCmd)
}

func layoutCmd(cmd *cobra.Command, _ []string) error {
	res, err := layout.Build(params)
	if err != nil {
		return err
	}
	if jsonFlag {
		return export.WriteJSON(cmd.OutOrStdout(), res)
	}
	return printSummary(cmd.OutOrStdout(), res)
}

func printSummary(w io.Writer, res layout.Result) error {
	sum := session.Summarize(res.Info)
	_, err := fmt.Fprintf(w, `scene:            %s (%d sails)
style:            %s
density:          %d
strands:          %s
total LEDs:       %s
spacing:          %s
LEDs per strand:  %s
`, res.Scene.Name, len(res.Sails), res.Params.Style, res.Params.LEDDensity,
		sum.Strands, sum.TotalLEDs, sum.Spacing, sum.LEDsPerStrand)
	return err
}
