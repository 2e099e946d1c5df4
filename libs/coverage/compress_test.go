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
	"reflect"
	"testing"
)

func TestCompressCoords(t *testing.T) {
	target := Rectangle{0, 20, 0, 10}
	clipped := []Rectangle{
		{0, 10, 0, 5},
		{0, 10, 5, 10},
		{10, 20, 0, 10},
	}
	coords := compressCoords(nil, &target, clipped)
	expected := []float64{0, 5, 10}
	if !reflect.DeepEqual(coords, expected) {
		t.Errorf("Expected %v found %v", expected, coords)
	}
}

func TestCompressCoordsNoClipped(t *testing.T) {
	target := Rectangle{0, 20, 3, 7}
	coords := compressCoords(nil, &target, nil)
	expected := []float64{3, 7}
	if !reflect.DeepEqual(coords, expected) {
		t.Errorf("Expected %v found %v", expected, coords)
	}
}

func TestCoordIndex(t *testing.T) {
	coords := []float64{0, 2, 5, 9}
	for i, v := range coords {
		if actual := coordIndex(coords, v); actual != i {
			t.Errorf("Expected %d found %d", i, actual)
		}
	}
}

func TestEventOrdering(t *testing.T) {
	target := Rectangle{0, 10, 0, 10}
	clipped := []Rectangle{
		{0, 5, 0, 10},
		{5, 10, 0, 10},
	}
	events := buildEvents(nil, &target, clipped)
	if len(events) != 6 {
		t.Fatalf("Expected 6 found %d", len(events))
	}
	// at distance 5 the remove comes before the add
	if events[2].distance != 5 || events[2].kind != EVENT_REMOVE {
		t.Errorf("Expected remove at 5 found kind %d at %v", events[2].kind, events[2].distance)
	}
	if events[3].distance != 5 || events[3].kind != EVENT_ADD {
		t.Errorf("Expected add at 5 found kind %d at %v", events[3].kind, events[3].distance)
	}
	for i := 1; i < len(events); i++ {
		if events[i].distance < events[i-1].distance {
			t.Errorf("Expected sorted distances found %v before %v", events[i-1].distance, events[i].distance)
		}
	}
}
