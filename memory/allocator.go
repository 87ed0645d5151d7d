// Copyright (C) 2020 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package memory

import (
	"github.com/google/gapid/core/math/interval"
	"github.com/pkg/errors"
)

// allocator hands out byte ranges from a fixed-size region. Allocation finds
// the leftmost free block large enough to fit the required size with the
// requested alignment. Not thread-safe.
type allocator struct {
	freeList    interval.U64RangeList
	allocations map[uint64]uint64
}

func newAllocator(size uint64) *allocator {
	return &allocator{
		freeList:    interval.U64RangeList{{First: 0, Count: size}},
		allocations: map[uint64]uint64{},
	}
}

func (a *allocator) alloc(count, align uint64) (uint64, error) {
	if align == 0 {
		align = 1
	}
	for _, chunk := range a.freeList {
		pad := align - chunk.First%align
		if pad == align {
			pad = 0
		}
		base := chunk.First + pad
		if base+count <= chunk.First+chunk.Count {
			interval.Remove(&a.freeList, interval.U64Span{Start: base, End: base + count})
			a.allocations[base] = count
			return base, nil
		}
	}
	return 0, errors.Errorf("not enough contiguous free space to allocate %d bytes", count)
}

func (a *allocator) free(base uint64) error {
	size, ok := a.allocations[base]
	if !ok {
		return errors.Errorf("attempted to free an unknown offset %v", base)
	}
	delete(a.allocations, base)
	interval.Merge(&a.freeList, interval.U64Span{Start: base, End: base + size}, true)
	return nil
}
