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
	"testing"
)

func TestOverlaps(t *testing.T) {
	target := Rectangle{0, 20, 0, 10}
	inside := Rectangle{5, 15, 2, 8}
	if !inside.Overlaps(&target) {
		t.Errorf("Expected overlap found none")
	}
	touching := Rectangle{20, 30, 10, 20}
	if !touching.Overlaps(&target) {
		t.Errorf("Expected edge touch to overlap found none")
	}
	outside := Rectangle{21, 30, 0, 10}
	if outside.Overlaps(&target) {
		t.Errorf("Expected no overlap found overlap")
	}
}

func TestClipTo(t *testing.T) {
	target := Rectangle{0, 20, 0, 10}
	r := Rectangle{-5, 25, 3, 40}
	clipped := r.ClipTo(&target)
	expected := Rectangle{0, 20, 3, 10}
	if clipped != expected {
		t.Errorf("Expected %+v found %+v", expected, clipped)
	}
}

func TestClipRectangles(t *testing.T) {
	target := Rectangle{0, 20, 0, 10}
	clipped := clipRectangles(nil, &target, []Rectangle{
		{-5, 5, -5, 5},
		{30, 40, 0, 10},
		{18, 25, 8, 12},
	})
	if len(clipped) != 2 {
		t.Fatalf("Expected 2 found %d", len(clipped))
	}
	if expected := (Rectangle{0, 5, 0, 5}); clipped[0] != expected {
		t.Errorf("Expected %+v found %+v", expected, clipped[0])
	}
	if expected := (Rectangle{18, 20, 8, 10}); clipped[1] != expected {
		t.Errorf("Expected %+v found %+v", expected, clipped[1])
	}
}
