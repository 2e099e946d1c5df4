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

package segmenttree

import (
	"github.com/luxscan/luxscan/libs/pool"
)

// CoverageTree is a segment tree over the elementary intervals between
// consecutive compressed coordinates. Each node keeps the net number of
// active envelopes fully containing its span (coverCount) and the measure
// of its span covered by at least one envelope (coveredLength). Nodes live
// in flat arenas indexed by heap id, node 1 is the root.
//
// The count trick requires Update calls to come in matched +1/-1 pairs
// over identical index ranges; the sweep guarantees that.
type CoverageTree struct {
	coords        []float64 // sorted endpoints, len(coords)-1 elementary intervals
	coverCount    []int32
	coveredLength []float64
}

var treePool = pool.NewLockFreePool(func() interface{} {
	return new(CoverageTree)
}, pool.OptionPoolSizePerCPU(64), pool.OptionInitFullPoolSize(16))

// AcquireCoverageTree returns a zeroed tree over the given sorted,
// duplicate-free coordinates. The tree borrows coords, it does not copy.
func AcquireCoverageTree(coords []float64) *CoverageTree {
	t := treePool.Get().(*CoverageTree)
	t.init(coords)
	return t
}

func ReleaseCoverageTree(t *CoverageTree) {
	t.coords = nil
	treePool.Put(t)
}

func (t *CoverageTree) init(coords []float64) {
	t.coords = coords
	size := 4 * t.IntervalCount() // safe bound for the heap layout
	if cap(t.coverCount) < size {
		t.coverCount = make([]int32, size)
		t.coveredLength = make([]float64, size)
		return
	}
	t.coverCount = t.coverCount[:size]
	t.coveredLength = t.coveredLength[:size]
	for i := 0; i < size; i++ {
		t.coverCount[i] = 0
		t.coveredLength[i] = 0
	}
}

func (t *CoverageTree) IntervalCount() int {
	if len(t.coords) < 2 {
		return 0
	}
	return len(t.coords) - 1
}

// Update adds delta to the cover count of every elementary interval with
// index in [lo, hi). delta is +1 when an envelope opens, -1 when it closes.
func (t *CoverageTree) Update(lo, hi int, delta int32) {
	n := t.IntervalCount()
	if n == 0 || lo >= hi {
		return
	}
	t.update(1, 0, n, lo, hi, delta)
}

func (t *CoverageTree) update(node, nodeLo, nodeHi, lo, hi int, delta int32) {
	if lo <= nodeLo && nodeHi <= hi {
		t.coverCount[node] += delta
	} else {
		middle := (nodeLo + nodeHi) / 2
		if lo < middle {
			t.update(node<<1, nodeLo, middle, lo, hi, delta)
		}
		if hi > middle {
			t.update(node<<1|1, middle, nodeHi, lo, hi, delta)
		}
	}
	t.refresh(node, nodeLo, nodeHi)
}

// refresh recomputes coveredLength after coverCount of node or one of its
// children changed. A positive count covers the whole span regardless of
// the children.
func (t *CoverageTree) refresh(node, nodeLo, nodeHi int) {
	if t.coverCount[node] > 0 {
		t.coveredLength[node] = t.coords[nodeHi] - t.coords[nodeLo]
	} else if nodeHi-nodeLo == 1 {
		t.coveredLength[node] = 0
	} else {
		t.coveredLength[node] = t.coveredLength[node<<1] + t.coveredLength[node<<1|1]
	}
}

// CoveredLength returns the total length covered by at least one active
// envelope, confined to [coords[0], coords[n]].
func (t *CoverageTree) CoveredLength() float64 {
	if t.IntervalCount() == 0 {
		return 0
	}
	return t.coveredLength[1]
}
