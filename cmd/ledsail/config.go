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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ledsail/internal/config"
)

var (
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "show or save the user configuration",
	}

	ConfigShowCmd = &cobra.Command{
		Use:   "show",
		Short: "print the effective settings and which LEDSAIL_* variables override them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.ConfigPath()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", path)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, e := range cfg.Entries() {
				src := ""
				if e.Env != "" {
					src = "from " + e.Env
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key, e.Value, src)
			}
			return tw.Flush()
		},
	}

	ConfigSaveCmd = &cobra.Command{
		Use:   "save",
		Short: "store the resolved layout parameters, flags included, as the new defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.SaveParams(params)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
			return nil
		},
	}
)

func init() {
	ConfigCmd.AddCommand(ConfigShowCmd, ConfigSaveCmd)
	RootCmd.AddCommand(ConfigCmd)
}
