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

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/luxscan/luxscan/config"
	"github.com/luxscan/luxscan/libs/coverage"
)

func RegisterCheckCommand() *cobra.Command {
	var scenarioFile string
	check := &cobra.Command{
		Use:     "check",
		Short:   "decide whether the envelopes cover the target region",
		Example: "luxscan-ctl check -f scenario.yaml",
		Run: func(cmd *cobra.Command, args []string) {
			runCheck(scenarioFile)
		},
	}
	check.Flags().StringVarP(&scenarioFile, "scenario-file", "f", "scenario.yaml", "scenario yaml file")
	return check
}

func runCheck(scenarioFile string) {
	scenario := config.Load(scenarioFile)
	if level, err := logging.LogLevel(scenario.LogLevel); err == nil {
		logging.SetLevel(level, "")
	}

	rectangles := make([]coverage.Rectangle, 0, len(scenario.Envelopes))
	for _, e := range scenario.Envelopes {
		rectangles = append(rectangles, coverage.Rectangle{
			DistanceMin: e.DistanceMin,
			DistanceMax: e.DistanceMax,
			LightMin:    e.LightMin,
			LightMax:    e.LightMax,
		})
	}

	target := scenario.Target
	report, err := coverage.CheckReport(
		target.DistanceMin, target.DistanceMax, target.LightMin, target.LightMax, rectangles)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid scenario:", err)
		os.Exit(1)
	}
	if report.Covered {
		fmt.Println("covered")
		return
	}
	fmt.Printf("not covered: distance (%v, %v) has light length %v of %v\n",
		report.GapDistanceMin, report.GapDistanceMax, report.CoveredLight, report.RequiredLight)
	os.Exit(1)
}
