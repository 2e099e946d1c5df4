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

package config

import (
	"errors"
	"os"
	"strings"

	logging "github.com/op/go-logging"
	yaml "gopkg.in/yaml.v2"
)

var log = logging.MustGetLogger("config")

// Scenario is one coverage query read from a YAML file: the target region
// plus the sensor envelopes to test against it.
type Scenario struct {
	Target    Region     `yaml:"target"`
	Envelopes []Envelope `yaml:"envelopes,flow"`
	LogLevel  string     `yaml:"log-level"`
}

type Region struct {
	DistanceMin float64 `yaml:"distance-min"`
	DistanceMax float64 `yaml:"distance-max"`
	LightMin    float64 `yaml:"light-min"`
	LightMax    float64 `yaml:"light-max"`
}

type Envelope struct {
	DistanceMin float64 `yaml:"distance-min"`
	DistanceMax float64 `yaml:"distance-max"`
	LightMin    float64 `yaml:"light-min"`
	LightMax    float64 `yaml:"light-max"`
}

func (s *Scenario) Validate() error {
	if s.Target.DistanceMin > s.Target.DistanceMax {
		return errors.New("target distance-min exceeds distance-max")
	}
	if s.Target.LightMin > s.Target.LightMax {
		return errors.New("target light-min exceeds light-max")
	}
	for i := range s.Envelopes {
		e := &s.Envelopes[i]
		if e.DistanceMin > e.DistanceMax || e.LightMin > e.LightMax {
			return errors.New("envelope min exceeds max")
		}
	}
	level := strings.ToLower(s.LogLevel)
	s.LogLevel = "info"
	for _, l := range []string{"error", "warn", "info", "debug"} {
		if level == l {
			s.LogLevel = l
		}
	}
	return nil
}

func Load(path string) Scenario {
	scenarioBytes, err := os.ReadFile(path)
	if err != nil {
		log.Error("Read scenario file error:", err)
		os.Exit(1)
	}
	scenario := Scenario{}
	if err = yaml.Unmarshal(scenarioBytes, &scenario); err != nil {
		log.Error("Unmarshal yaml error:", err)
		os.Exit(1)
	}

	if err = scenario.Validate(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
	return scenario
}
