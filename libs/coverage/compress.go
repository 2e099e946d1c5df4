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

package coverage

import (
	"sort"
)

// compressCoords appends the target light bounds and every clipped
// rectangle's light bounds to dst, sorted and duplicate-free. Values are
// compared by exact float64 equality, so inputs must be exact (integers
// or exactly representable rationals); there is no epsilon policy.
//
// Every light endpoint later used by an event is guaranteed to be in the
// result, so lookups during the sweep cannot miss.
func compressCoords(dst []float64, target *Rectangle, clipped []Rectangle) []float64 {
	dst = append(dst, target.LightMin, target.LightMax)
	for i := range clipped {
		dst = append(dst, clipped[i].LightMin, clipped[i].LightMax)
	}
	sort.Float64s(dst)
	compacted := dst[:1]
	for _, v := range dst[1:] {
		if v != compacted[len(compacted)-1] {
			compacted = append(compacted, v)
		}
	}
	return compacted
}

// coordIndex returns the position of value in coords. value must be one
// of the compressed endpoints.
func coordIndex(coords []float64, value float64) int {
	return sort.SearchFloat64s(coords, value)
}
