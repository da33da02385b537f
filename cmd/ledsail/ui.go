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
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"ledsail/internal/animate"
	"ledsail/internal/ui"
	"ledsail/internal/version"
)

var (
	UICmd = &cobra.Command{
		Use:   "ui",
		Short: "launch the desktop UI (build with -tags fyne)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			kind, err := animate.ParseKind(uiAnimFlag)
			if err != nil {
				return err
			}
			return ui.Run(ui.Options{
				Params:    params,
				Style:     style,
				Animation: kind,
				FPS:       uiFPSFlag,
				CrashDir:  os.Getenv(EnvCrashDir),
			})
		},
	}

	VersionCmd = &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ledsail %s %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH)
		},
	}

	uiAnimFlag string
	uiFPSFlag  int
)

func init() {
	UICmd.Flags().StringVar(&uiAnimFlag, "animation", string(animate.KindNone), "none|fan|ripple")
	UICmd.Flags().IntVar(&uiFPSFlag, "fps", 20, "animation frame rate")
	RootCmd.AddCommand(UICmd, VersionCmd)
}
