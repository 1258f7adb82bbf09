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
	"github.com/Veridise/llzk-go/pkg/ir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// verifyCmd parses one or more module files and checks every dialect rule,
// reporting all violations rather than stopping at the first.
var verifyCmd = &cobra.Command{
	Use:   "verify [flags] file...",
	Short: "Verify that given module file(s) satisfy all dialect rules.",
	Long: `Parse the given module file(s) and check every struct against the dialect
rules: designated function signatures, field and type agreement, value
definition order and terminator placement.  All violations are reported.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		failed := false
		//
		for _, filename := range args {
			module, _ := readModuleFile[bn254.Element](filename)
			//
			diagnostics := ir.Verify(module)
			//
			for _, d := range diagnostics {
				fmt.Printf("%s: %s\n", filename, d.String())
			}
			//
			if len(diagnostics) != 0 {
				failed = true
			} else {
				log.Debug(fmt.Sprintf("%s verified", filename))
			}
		}
		//
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
