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
	"context"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/google/gapid/core/event/task"
	"github.com/google/gapid/core/log"
	"github.com/xdevs23/xgl/device"
	"github.com/xdevs23/xgl/memory"
	"github.com/xdevs23/xgl/pal"
	"github.com/xdevs23/xgl/vk"
)

// TimestampNotReady marks a pending or reset timestamp slot. The GPU writes
// elapsed tick counts, which never reach this value, so any other word
// means the slot completed.
const TimestampNotReady = ^uint64(0)

// timestampPool is the self-managed variant: one CPU-mappable coherent
// memory word per slot, plus a shader-visible buffer descriptor per replica
// for bulk copy use.
type timestampPool struct {
	dev         *device.Device
	entryCount  uint32
	slotSize    uint32
	internalMem *memory.InternalMemory
	// views is the single host block holding one buffer view descriptor
	// record per replica.
	views    []byte
	viewSize uint32
}

// createTimestampPool builds the timestamp variant. Single-device pools
// prefer fast heaps; multi-device pools alias one shareable cacheable
// allocation across every replica instead of replicating it.
func createTimestampPool(ctx context.Context, dev *device.Device, info CreateInfo) (*timestampPool, error) {
	slotSize := dev.Properties().TimestampQueryPoolSlotSize
	viewSize := dev.Properties().BufferViewDescSize

	p := &timestampPool{
		dev:        dev,
		entryCount: info.QueryCount,
		slotSize:   slotSize,
		views:      make([]byte, uint64(viewSize)*uint64(dev.NumPalDevices())),
		viewSize:   viewSize,
	}

	if info.QueryCount > 0 {
		memInfo := memory.InternalMemCreateInfo{
			Size:             uint64(info.QueryCount) * uint64(slotSize),
			Alignment:        uint64(slotSize),
			PersistentMapped: true,
		}

		allocMask := dev.PalDeviceMask()
		if dev.NumPalDevices() == 1 {
			memInfo.Heaps = []pal.GpuHeap{
				pal.GpuHeapLocal,
				pal.GpuHeapGartCacheable,
				pal.GpuHeapGartUswc,
			}
		} else {
			memInfo.Heaps = []pal.GpuHeap{pal.GpuHeapGartCacheable}
			memInfo.Shareable = true
			allocMask = 1 << uint(memory.DefaultMemoryInstanceIdx)
		}

		mem, err := dev.MemMgr().AllocGpuMem(ctx, memInfo, allocMask)
		if err != nil {
			return nil, log.Err(ctx, err, "Allocating timestamp counter memory")
		}
		p.internalMem = mem

		// One buffer view per replica over the counter memory, consumed
		// by the compute shaders that implement bulk result copies.
		viewInfo := pal.BufferViewInfo{
			Range: mem.Size(),
			Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc,
		}
		for i := 0; i < dev.NumPalDevices(); i++ {
			viewInfo.GpuAddr = mem.GpuVirtAddr(i)
			dst := p.views[uint64(i)*uint64(viewSize):]
			if dev.UseStridedCopyQueryResults() {
				viewInfo.Format = gputypes.TextureFormatUndefined
				viewInfo.Stride = 0
				dev.PalDevice(i).CreateUntypedBufferViewSRDs(1, viewInfo, dst)
			} else {
				if slotSize != 8 {
					panic(fmt.Errorf("typed query copy views need 8 byte slots, got %d", slotSize))
				}
				viewInfo.Format = gputypes.TextureFormatRG32Uint
				viewInfo.Stride = uint64(slotSize)
				dev.PalDevice(i).CreateTypedBufferViewSRDs(1, viewInfo, dst)
			}
		}
	}
	// With no slots the descriptor storage stays zero-filled.

	// Slots start in the reset state.
	p.reset(ctx, 0, info.QueryCount)
	return p, nil
}

func (p *timestampPool) destroy(ctx context.Context) {
	p.dev.MemMgr().FreeGpuMem(ctx, p.internalMem)
	p.views = nil
}

// slotOffset returns the byte offset of a slot inside the counter memory.
// The internal layout is independent of any read-back output stride.
func (p *timestampPool) slotOffset(query uint32) uint64 {
	return uint64(query) * uint64(p.slotSize)
}

// getResults reads slot words from the default replica's mapped memory. A
// slot is ready iff its word is not TimestampNotReady; pending slots are
// never written to dest. The wait flag busy-polls the word, yielding to
// context cancellation between reads.
func (p *timestampPool) getResults(ctx context.Context, startQuery, queryCount uint32, dest []byte, stride uint64, flags vk.QueryResultFlags) error {
	if queryCount == 0 || p.internalMem == nil {
		return nil
	}

	data, err := p.internalMem.Map(device.DefaultDeviceIndex)
	if err != nil {
		return log.Err(ctx, err, "Mapping timestamp counter memory")
	}
	defer p.internalMem.Unmap(device.DefaultDeviceIndex)

	valueSize := uint64(4)
	if flags&vk.QueryResult64Bit != 0 {
		valueSize = 8
	}
	slotOut := valueSize
	if flags&vk.QueryResultWithAvailability != 0 {
		slotOut *= 2
	}
	if stride == 0 {
		stride = slotOut
	}

	// Clamp the number of slots written so the supplied capacity can
	// never be passed, whatever stride was requested.
	max := slotOut
	if stride > max {
		max = stride
	}
	if n := uint64(len(dest)) / max; uint64(queryCount) > n {
		queryCount = uint32(n)
	}

	allReady := true
	for i := uint32(0); i < queryCount; i++ {
		srcOff := p.slotOffset(startQuery + i)

		value := pal.LoadSlotWord(data[srcOff:])
		ready := value != TimestampNotReady

		for !ready && flags&vk.QueryResultWait != 0 {
			if task.Stopped(ctx) {
				return task.StopReason(ctx)
			}
			value = pal.LoadSlotWord(data[srcOff:])
			ready = value != TimestampNotReady
		}

		out := dest[uint64(i)*stride:]
		if flags&vk.QueryResult64Bit != 0 {
			if ready {
				binary.LittleEndian.PutUint64(out[0:], value)
			}
			if flags&vk.QueryResultWithAvailability != 0 {
				avail := uint64(0)
				if ready {
					avail = 1
				}
				binary.LittleEndian.PutUint64(out[8:], avail)
			}
		} else {
			if ready {
				// 32-bit results are allowed to wrap.
				binary.LittleEndian.PutUint32(out[0:], uint32(value))
			}
			if flags&vk.QueryResultWithAvailability != 0 {
				avail := uint32(0)
				if ready {
					avail = 1
				}
				binary.LittleEndian.PutUint32(out[4:], avail)
			}
		}

		allReady = allReady && ready
	}

	if !allReady {
		return vk.NotReady
	}
	return nil
}

// reset overwrites the slot range with the not-ready sentinel on every
// replica. This is a direct CPU write, not a hardware reset: the backing
// store is plain coherent memory with no hardware-tracked slot state.
// Replicas whose memory cannot be mapped are skipped; reset is advisory.
func (p *timestampPool) reset(ctx context.Context, startQuery, queryCount uint32) {
	if startQuery >= p.entryCount {
		return
	}
	if startQuery+queryCount > p.entryCount {
		queryCount = p.entryCount - startQuery
	}

	words := uint64(p.slotSize) * uint64(queryCount) / 8
	for i := 0; i < p.dev.NumPalDevices(); i++ {
		data, err := p.internalMem.Map(i)
		if err != nil {
			log.W(ctx, "Skipping timestamp reset on device %d: %v", i, err)
			continue
		}
		base := p.slotOffset(startQuery)
		for w := uint64(0); w < words; w++ {
			pal.StoreSlotWord(data[base+w*8:], TimestampNotReady)
		}
		p.internalMem.Unmap(i)
	}
}
