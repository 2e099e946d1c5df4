/*
 * Copyright (c) 2024 Yunshan Networks
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ctl

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func Execute(version string) {
	root := &cobra.Command{
		Use:              "luxscan-ctl",
		Short:            "sensor envelope coverage tool",
		TraverseChildren: true,
	}

	var outputVersion bool
	root.PersistentFlags().BoolVarP(&outputVersion, "version", "v", false, "luxscan-ctl version")
	root.ParseFlags(os.Args[1:])

	if outputVersion {
		fmt.Printf(version)
		return
	}

	root.AddCommand(RegisterCheckCommand())

	root.SetArgs(os.Args[1:])
	root.Execute()
}
