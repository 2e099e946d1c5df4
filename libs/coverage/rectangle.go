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
	"errors"
	"math"
)

var (
	InvalidRectangle = errors.New("rectangle has min > max or non-finite bound")
	InvalidRange     = errors.New("target range has min > max or non-finite bound")
)

// Rectangle is an axis-aligned sensor envelope: a distance interval
// crossed with a light interval. Immutable once constructed.
type Rectangle struct {
	DistanceMin float64
	DistanceMax float64
	LightMin    float64
	LightMax    float64
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (r *Rectangle) wellFormed() bool {
	return finite(r.DistanceMin) && finite(r.DistanceMax) &&
		finite(r.LightMin) && finite(r.LightMax) &&
		r.DistanceMin <= r.DistanceMax && r.LightMin <= r.LightMax
}

// Overlaps reports whether r and target share at least a point on both
// axes. Touching edges count as overlap.
func (r *Rectangle) Overlaps(target *Rectangle) bool {
	return r.DistanceMax >= target.DistanceMin && r.DistanceMin <= target.DistanceMax &&
		r.LightMax >= target.LightMin && r.LightMin <= target.LightMax
}

// ClipTo clamps r to the target bounds on both axes. Only meaningful when
// r overlaps target.
func (r *Rectangle) ClipTo(target *Rectangle) Rectangle {
	return Rectangle{
		DistanceMin: math.Max(r.DistanceMin, target.DistanceMin),
		DistanceMax: math.Min(r.DistanceMax, target.DistanceMax),
		LightMin:    math.Max(r.LightMin, target.LightMin),
		LightMax:    math.Min(r.LightMax, target.LightMax),
	}
}

// clipRectangles appends to dst every rectangle overlapping the target,
// clamped to the target bounds. Rectangles with no overlap cannot
// contribute coverage and are dropped.
func clipRectangles(dst []Rectangle, target *Rectangle, rectangles []Rectangle) []Rectangle {
	for i := range rectangles {
		if rectangles[i].Overlaps(target) {
			dst = append(dst, rectangles[i].ClipTo(target))
		}
	}
	return dst
}
