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

type eventKind int32

// Iota order is the tie-break at equal distance: envelopes close before
// boundaries are looked at, new envelopes open last. The decision itself
// never depends on this order because the sweep only inspects gaps of
// positive width, but a fixed secondary key keeps the walk deterministic.
const (
	EVENT_REMOVE eventKind = iota
	EVENT_BOUNDARY
	EVENT_ADD
)

type event struct {
	distance float64
	kind     eventKind
	lightLo  float64 // unused for EVENT_BOUNDARY
	lightHi  float64
}

// buildEvents appends the two target boundary events plus one add and one
// remove event per clipped rectangle, then sorts by distance with the
// kind tie-break.
func buildEvents(dst []event, target *Rectangle, clipped []Rectangle) []event {
	dst = append(dst,
		event{distance: target.DistanceMin, kind: EVENT_BOUNDARY},
		event{distance: target.DistanceMax, kind: EVENT_BOUNDARY})
	for i := range clipped {
		r := &clipped[i]
		dst = append(dst,
			event{r.DistanceMin, EVENT_ADD, r.LightMin, r.LightMax},
			event{r.DistanceMax, EVENT_REMOVE, r.LightMin, r.LightMax})
	}
	sort.Slice(dst, func(i, j int) bool {
		if dst[i].distance != dst[j].distance {
			return dst[i].distance < dst[j].distance
		}
		return dst[i].kind < dst[j].kind
	})
	return dst
}
