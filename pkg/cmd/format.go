// Copyright Veridise Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/Veridise/llzk-go/pkg/felt/bn254"
	"github.com/Veridise/llzk-go/pkg/ir/text"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// formatCmd parses a module file and reprints it in canonical form, with
// parameters named %arg0, %arg1, etc and results numbered densely from %0.
var formatCmd = &cobra.Command{
	Use:   "format [flags] file",
	Short: "Reprint a given module file in canonical form.",
	Long: `Parse the given module file and write it back out in canonical textual
form on standard output.  Formatting is deterministic, hence a formatted
file is a fixed point of this command.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		module, _ := readModuleFile[bn254.Element](args[0])
		//
		if _, err := text.WriteTo(module, os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
