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

// Package coverage decides whether a set of axis-aligned sensor envelopes
// fully covers a target distance-light rectangle. The decision sweeps the
// distance axis over envelope boundary events while a segment tree over
// the compressed light axis tracks how much of the target light range the
// open envelopes cover.
package coverage

import (
	"math"

	logging "github.com/op/go-logging"

	"github.com/luxscan/luxscan/libs/pool"
	"github.com/luxscan/luxscan/libs/segmenttree"
)

var log = logging.MustGetLogger("coverage")

// Report is the outcome of one coverage query. When Covered is false the
// gap fields name the first distance sub-interval that failed and how much
// of the required light length was actually covered there.
type Report struct {
	Covered        bool
	GapDistanceMin float64
	GapDistanceMax float64
	CoveredLight   float64
	RequiredLight  float64
}

// queryScratch holds the per-query buffers. Queries share nothing, each
// Check call owns one scratch for its whole duration.
type queryScratch struct {
	clipped []Rectangle
	events  []event
	coords  []float64
}

var scratchPool = pool.NewLockFreePool(func() interface{} {
	return new(queryScratch)
}, pool.OptionPoolSizePerCPU(64), pool.OptionInitFullPoolSize(16))

func acquireScratch(rectangleCount int) *queryScratch {
	s := scratchPool.Get().(*queryScratch)
	if cap(s.clipped) < rectangleCount {
		s.clipped = make([]Rectangle, 0, rectangleCount)
		s.events = make([]event, 0, 2*rectangleCount+2)
		s.coords = make([]float64, 0, 2*rectangleCount+2)
	}
	return s
}

func releaseScratch(s *queryScratch) {
	s.clipped = s.clipped[:0]
	s.events = s.events[:0]
	s.coords = s.coords[:0]
	scratchPool.Put(s)
}

// Check reports whether the union of rectangles covers the whole target
// region [distanceMin, distanceMax] x [lightMin, lightMax]. It is a pure
// function; concurrent calls are safe.
func Check(distanceMin, distanceMax, lightMin, lightMax float64, rectangles []Rectangle) (bool, error) {
	report, err := CheckReport(distanceMin, distanceMax, lightMin, lightMax, rectangles)
	return report.Covered, err
}

// CheckReport is Check with a gap witness on failure.
func CheckReport(distanceMin, distanceMax, lightMin, lightMax float64, rectangles []Rectangle) (Report, error) {
	target := Rectangle{distanceMin, distanceMax, lightMin, lightMax}
	if !target.wellFormed() {
		log.Debugf("rejected target (%v,%v,%v,%v)", distanceMin, distanceMax, lightMin, lightMax)
		return Report{}, InvalidRange
	}
	for i := range rectangles {
		if !rectangles[i].wellFormed() {
			log.Debugf("rejected rectangle %d: %+v", i, rectangles[i])
			return Report{}, InvalidRectangle
		}
	}

	// zero-area target, nothing to cover
	if distanceMin == distanceMax && lightMin == lightMax {
		return Report{Covered: true}, nil
	}

	scratch := acquireScratch(len(rectangles))
	defer releaseScratch(scratch)
	scratch.clipped = clipRectangles(scratch.clipped, &target, rectangles)

	var report Report
	switch {
	case lightMin == lightMax:
		report = checkDistanceLine(&target, scratch)
	case distanceMin == distanceMax:
		report = checkLightSlice(&target, scratch)
	default:
		report = checkSweep(&target, scratch)
	}
	return report, nil
}

// checkSweep is the general case: both target axes have positive extent.
// It walks distance-sorted events and, on every distance gap of positive
// width, asks the segment tree whether the open envelopes cover the whole
// target light range. The open set is constant throughout a gap because
// events only occur at its endpoints.
func checkSweep(target *Rectangle, scratch *queryScratch) Report {
	scratch.events = buildEvents(scratch.events, target, scratch.clipped)
	scratch.coords = compressCoords(scratch.coords, target, scratch.clipped)

	tree := segmenttree.AcquireCoverageTree(scratch.coords)
	defer segmenttree.ReleaseCoverageTree(tree)

	requiredLight := target.LightMax - target.LightMin
	prevDistance := scratch.events[0].distance
	for i := range scratch.events {
		e := &scratch.events[i]
		left := math.Max(prevDistance, target.DistanceMin)
		right := math.Min(e.distance, target.DistanceMax)
		if right > left {
			if covered := tree.CoveredLength(); covered < requiredLight {
				return Report{false, left, right, covered, requiredLight}
			}
		}
		if e.kind != EVENT_BOUNDARY {
			delta := int32(1)
			if e.kind == EVENT_REMOVE {
				delta = -1
			}
			tree.Update(coordIndex(scratch.coords, e.lightLo), coordIndex(scratch.coords, e.lightHi), delta)
		}
		prevDistance = e.distance
	}
	return Report{Covered: true, RequiredLight: requiredLight}
}

// checkDistanceLine handles a target whose light range is a single value:
// coverage degenerates to covering the distance interval with the clipped
// envelopes' distance intervals, so the sweep only counts open envelopes.
func checkDistanceLine(target *Rectangle, scratch *queryScratch) Report {
	scratch.events = buildEvents(scratch.events, target, scratch.clipped)

	active := 0
	prevDistance := scratch.events[0].distance
	for i := range scratch.events {
		e := &scratch.events[i]
		left := math.Max(prevDistance, target.DistanceMin)
		right := math.Min(e.distance, target.DistanceMax)
		if right > left && active == 0 {
			return Report{false, left, right, 0, 0}
		}
		switch e.kind {
		case EVENT_ADD:
			active++
		case EVENT_REMOVE:
			active--
		}
		prevDistance = e.distance
	}
	return Report{Covered: true}
}

// checkLightSlice handles a target whose distance range is a single value:
// every clipped envelope is open at that distance, so one batch of tree
// updates answers whether they cover the light range.
func checkLightSlice(target *Rectangle, scratch *queryScratch) Report {
	scratch.coords = compressCoords(scratch.coords, target, scratch.clipped)

	tree := segmenttree.AcquireCoverageTree(scratch.coords)
	defer segmenttree.ReleaseCoverageTree(tree)

	for i := range scratch.clipped {
		r := &scratch.clipped[i]
		tree.Update(coordIndex(scratch.coords, r.LightMin), coordIndex(scratch.coords, r.LightMax), 1)
	}
	requiredLight := target.LightMax - target.LightMin
	if covered := tree.CoveredLength(); covered < requiredLight {
		return Report{false, target.DistanceMin, target.DistanceMax, covered, requiredLight}
	}
	return Report{Covered: true, RequiredLight: requiredLight}
}
