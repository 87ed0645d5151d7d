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

package soft

import (
	"bytes"
	"context"
	"encoding/binary"

	"github.com/google/gapid/core/data/endian"
	"github.com/google/gapid/core/event/task"
	"github.com/google/gapid/core/os/device"
	"github.com/xdevs23/xgl/pal"
)

// QueryPool is a software hardware-query pool. Each slot occupies
// (counters+1) 64-bit words of bound GPU memory: the counter values followed
// by an availability word. Stream-output slots hold {needed, written} in
// that order, matching the hardware report order.
type QueryPool struct {
	dev       *Device
	poolType  pal.QueryPoolType
	numSlots  uint32
	counters  uint32
	storage   []byte
	mem       pal.GpuMemoryView
	destroyed bool
}

// slotWords is the number of 64-bit words one slot occupies.
func (q *QueryPool) slotWords() uint32 { return q.counters + 1 }

// encodeState writes the pool's host state over its construction storage.
func (q *QueryPool) encodeState() {
	buf := bytes.NewBuffer(q.storage[:0:len(q.storage)])
	w := endian.Writer(buf, device.LittleEndian)
	w.Uint32(uint32(q.poolType))
	w.Uint32(q.numSlots)
	w.Uint32(q.counters)
	w.Uint32(0)
}

// GpuMemoryRequirements implements pal.GpuMemoryBindable. The invisible
// heap leads the preference order; CPU-reading callers must strip it.
func (q *QueryPool) GpuMemoryRequirements() pal.GpuMemoryRequirements {
	return pal.GpuMemoryRequirements{
		Size:      uint64(q.numSlots) * uint64(q.slotWords()) * 8,
		Alignment: 8,
		Heaps: []pal.GpuHeap{
			pal.GpuHeapInvisible,
			pal.GpuHeapLocal,
			pal.GpuHeapGartUswc,
			pal.GpuHeapGartCacheable,
		},
	}
}

// BindGpuMemory implements pal.GpuMemoryBindable.
func (q *QueryPool) BindGpuMemory(view pal.GpuMemoryView) error {
	if view.Size() < q.GpuMemoryRequirements().Size {
		return pal.ErrInvalidValue
	}
	q.mem = view
	return nil
}

// GetResults implements pal.QueryPool.
func (q *QueryPool) GetResults(ctx context.Context, flags pal.QueryResultFlags, queryType pal.QueryType, startQuery, queryCount uint32, dest []byte, stride uint64) error {
	if queryCount == 0 {
		return nil
	}
	if q.mem == nil || startQuery+queryCount > q.numSlots {
		return pal.ErrInvalidValue
	}
	data, err := q.mem.Map()
	if err != nil {
		return err
	}
	defer q.mem.Unmap()

	valueSize := uint64(4)
	if flags&pal.QueryResult64Bit != 0 {
		valueSize = 8
	}
	natural := valueSize * uint64(q.counters)
	if flags&pal.QueryResultAvailability != 0 {
		natural += valueSize
	}
	if stride == 0 {
		stride = natural
	}

	max := natural
	if stride > max {
		max = stride
	}
	if n := uint64(len(dest)) / max; uint64(queryCount) > n {
		queryCount = uint32(n)
	}

	allReady := true
	for i := uint32(0); i < queryCount; i++ {
		base := uint64(startQuery+i) * uint64(q.slotWords()) * 8
		availOff := base + uint64(q.counters)*8

		ready := pal.LoadSlotWord(data[availOff:]) != 0
		for !ready && flags&pal.QueryResultWait != 0 {
			if task.Stopped(ctx) {
				return task.StopReason(ctx)
			}
			ready = pal.LoadSlotWord(data[availOff:]) != 0
		}

		out := dest[uint64(i)*stride:]
		if ready || flags&pal.QueryResultPartial != 0 {
			for c := uint64(0); c < uint64(q.counters); c++ {
				value := binary.LittleEndian.Uint64(data[base+c*8:])
				if valueSize == 8 {
					binary.LittleEndian.PutUint64(out[c*8:], value)
				} else {
					// 32-bit results are allowed to wrap.
					binary.LittleEndian.PutUint32(out[c*4:], uint32(value))
				}
			}
		}
		if flags&pal.QueryResultAvailability != 0 {
			avail := uint64(0)
			if ready {
				avail = 1
			}
			off := uint64(q.counters) * valueSize
			if valueSize == 8 {
				binary.LittleEndian.PutUint64(out[off:], avail)
			} else {
				binary.LittleEndian.PutUint32(out[off:], uint32(avail))
			}
		}
		allReady = allReady && ready
	}
	if !allReady {
		return pal.ErrNotReady
	}
	return nil
}

// Reset implements pal.QueryPool. Slots return to the unavailable state
// with zeroed counters.
func (q *QueryPool) Reset(startQuery, queryCount uint32) {
	if q.mem == nil || startQuery >= q.numSlots {
		return
	}
	if startQuery+queryCount > q.numSlots {
		queryCount = q.numSlots - startQuery
	}
	data, err := q.mem.Map()
	if err != nil {
		return
	}
	defer q.mem.Unmap()
	sw := uint64(q.slotWords()) * 8
	for i := uint64(startQuery) * sw; i < uint64(startQuery+queryCount)*sw; i++ {
		data[i] = 0
	}
}

// Destroy implements pal.QueryPool.
func (q *QueryPool) Destroy() {
	if !q.destroyed {
		q.destroyed = true
		q.dev.livePools--
	}
	q.mem = nil
}

// WriteCounters completes a slot with the given counter values, marking it
// available last. It stands in for the GPU command stream, which is outside
// this layer.
func (q *QueryPool) WriteCounters(slot uint32, counters ...uint64) error {
	if q.mem == nil || slot >= q.numSlots || uint32(len(counters)) > q.counters {
		return pal.ErrInvalidValue
	}
	data, err := q.mem.Map()
	if err != nil {
		return err
	}
	defer q.mem.Unmap()
	base := uint64(slot) * uint64(q.slotWords()) * 8
	for c, v := range counters {
		binary.LittleEndian.PutUint64(data[base+uint64(c)*8:], v)
	}
	// The availability store publishes the counter writes above; readers
	// only touch the counters after observing it.
	pal.StoreSlotWord(data[base+uint64(q.counters)*8:], 1)
	return nil
}

// NumSlots returns the pool's slot count.
func (q *QueryPool) NumSlots() uint32 { return q.numSlots }

// CountersPerSlot returns the number of counter values each slot reports.
func (q *QueryPool) CountersPerSlot() uint32 { return q.counters }
