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

package query

import (
	"fmt"

	"github.com/xdevs23/xgl/memory"
	"github.com/xdevs23/xgl/pal"
)

// Accessors for the command-recording layer, which begins and ends queries
// on the GPU command stream. Calling a variant's accessor on the wrong
// variant is a programming error and panics.

// PalPool returns the backend query pool of the given replica. Hardware
// variant only.
func (p *Pool) PalPool(deviceIdx int) pal.QueryPool {
	if p.variant != variantHardware {
		panic(fmt.Errorf("PalPool called on a %v pool", p.queryType))
	}
	return p.hw.pools[deviceIdx]
}

// TimestampMemory returns the counter memory the GPU writes timestamps
// into. Timestamp variant only.
func (p *Pool) TimestampMemory() *memory.InternalMemory {
	if p.variant != variantTimestamp {
		panic(fmt.Errorf("TimestampMemory called on a %v pool", p.queryType))
	}
	return p.ts.internalMem
}

// TimestampSlotOffset returns the byte offset of a slot inside the counter
// memory. Timestamp variant only.
func (p *Pool) TimestampSlotOffset(query uint32) uint64 {
	if p.variant != variantTimestamp {
		panic(fmt.Errorf("TimestampSlotOffset called on a %v pool", p.queryType))
	}
	return p.ts.slotOffset(query)
}

// StorageViewDescriptor returns the replica's buffer view descriptor record
// over the counter memory, for binding in bulk copy shaders. Timestamp
// variant only.
func (p *Pool) StorageViewDescriptor(deviceIdx int) []byte {
	if p.variant != variantTimestamp {
		panic(fmt.Errorf("StorageViewDescriptor called on a %v pool", p.queryType))
	}
	off := uint64(deviceIdx) * uint64(p.ts.viewSize)
	return p.ts.views[off : off+uint64(p.ts.viewSize)]
}
