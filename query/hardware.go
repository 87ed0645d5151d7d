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
	"bytes"
	"context"
	"encoding/binary"

	"github.com/google/gapid/core/data/endian"
	"github.com/google/gapid/core/log"
	coredevice "github.com/google/gapid/core/os/device"
	"github.com/xdevs23/xgl/device"
	"github.com/xdevs23/xgl/memory"
	"github.com/xdevs23/xgl/pal"
	"github.com/xdevs23/xgl/vk"
)

// hardwarePool delegates slot state to one backend query pool object per
// device replica, all bound to a single shared GPU allocation.
type hardwarePool struct {
	dev          *device.Device
	queryType    vk.QueryType
	palQueryType pal.QueryType
	pools        [pal.MaxDevices]pal.QueryPool
	internalMem  *memory.InternalMemory
	// arena is the single host block holding every replica's backend
	// object state contiguously.
	arena []byte
}

// createHardwarePool builds the delegating variant. Any failure unwinds the
// replicas and memory acquired so far; no partial pool escapes.
func createHardwarePool(ctx context.Context, dev *device.Device, info CreateInfo) (*hardwarePool, error) {
	createInfo := pal.QueryPoolCreateInfo{
		QueryPoolType:   toPalQueryPoolType(info.QueryType),
		NumSlots:        info.QueryCount,
		EnabledStats:    toPalQueryPipelineStatsFlags(info.PipelineStatistics),
		EnableCpuAccess: true,
	}

	palSize, err := dev.PalDevice(device.DefaultDeviceIndex).QueryPoolSize(createInfo)
	if err != nil {
		return nil, log.Err(ctx, toVkResult(err), "Sizing backend query pool")
	}

	// One host block for all replica objects: single allocation, single
	// free, contiguous.
	p := &hardwarePool{
		dev:          dev,
		queryType:    info.QueryType,
		palQueryType: toPalQueryType(info.QueryType),
		arena:        make([]byte, palSize*uint64(dev.NumPalDevices())),
	}

	for i := 0; i < dev.NumPalDevices(); i++ {
		storage := p.arena[uint64(i)*palSize : uint64(i+1)*palSize]
		qp, err := dev.PalDevice(i).ConstructQueryPool(ctx, createInfo, storage)
		if err != nil {
			p.destroyReplicas()
			return nil, toVkResult(err)
		}
		p.pools[i] = qp
	}

	bindables := make([]pal.GpuMemoryBindable, dev.NumPalDevices())
	for i := range bindables {
		bindables[i] = p.pools[i]
	}

	// The pool must stay CPU readable, so device-local-only heaps are
	// excluded. The mapping is persistent for the pool's lifetime.
	mem, err := dev.MemMgr().AllocAndBindGpuMem(ctx, bindables, true, true)
	if err != nil {
		p.destroyReplicas()
		return nil, err
	}
	p.internalMem = mem
	return p, nil
}

func (p *hardwarePool) destroyReplicas() {
	for i, qp := range p.pools {
		if qp != nil {
			qp.Destroy()
			p.pools[i] = nil
		}
	}
}

func (p *hardwarePool) destroy(ctx context.Context) {
	p.destroyReplicas()
	p.dev.MemMgr().FreeGpuMem(ctx, p.internalMem)
	p.arena = nil
}

// reset forwards to every replica's backend. Fire and forget; completion is
// only observable through a later read-back.
func (p *hardwarePool) reset(startQuery, queryCount uint32) {
	for _, qp := range p.pools {
		if qp != nil {
			qp.Reset(startQuery, queryCount)
		}
	}
}

// getResults forwards to the default replica's backend. Stream-output
// queries take a staging detour: the backend reports {needed, written}
// pairs in 64-bit only, which are swapped to the public {written, needed}
// order and narrowed to the caller's width here.
func (p *hardwarePool) getResults(ctx context.Context, startQuery, queryCount uint32, dest []byte, stride uint64, flags vk.QueryResultFlags) error {
	if queryCount == 0 {
		return nil
	}

	backend := p.pools[device.DefaultDeviceIndex]
	palFlags := toPalQueryResultFlags(flags)

	if p.queryType != vk.QueryTypeTransformFeedbackStream {
		return toVkResult(backend.GetResults(ctx, palFlags, p.palQueryType, startQuery, queryCount, dest, stride))
	}

	availability := flags&vk.QueryResultWithAvailability != 0

	// Two 64-bit counters per slot, plus the availability word when asked
	// for.
	numElems := uint64(2)
	if availability {
		numElems = 3
	}

	valueSize := uint64(4)
	if flags&vk.QueryResult64Bit != 0 {
		valueSize = 8
	}

	// The backend stride while staging; also the default output stride.
	stagingStride := numElems * 8
	if stride == 0 {
		stride = stagingStride
	}

	// The write below must never pass len(dest), whatever the caller
	// asked for.
	recordSize := numElems * valueSize
	if stride > recordSize {
		recordSize = stride
	}
	if n := uint64(len(dest)) / recordSize; uint64(queryCount) > n {
		queryCount = uint32(n)
	}
	if queryCount == 0 {
		return nil
	}

	scratch := make([]byte, uint64(queryCount)*stagingStride)
	result := toVkResult(backend.GetResults(ctx, palFlags|pal.QueryResult64Bit,
		p.palQueryType, startQuery, queryCount, scratch, stagingStride))
	if result != nil && result != vk.NotReady {
		return result
	}

	r := endian.Reader(bytes.NewReader(scratch), coredevice.LittleEndian)
	for i := uint64(0); i < uint64(queryCount); i++ {
		needed := r.Uint64()
		written := r.Uint64()
		avail := uint64(0)
		if availability {
			avail = r.Uint64()
		}

		out := dest[i*stride:]
		if result == nil || flags&vk.QueryResultPartial != 0 {
			if valueSize == 8 {
				binary.LittleEndian.PutUint64(out[0:], written)
				binary.LittleEndian.PutUint64(out[8:], needed)
			} else {
				// 32-bit results are allowed to wrap.
				binary.LittleEndian.PutUint32(out[0:], uint32(written))
				binary.LittleEndian.PutUint32(out[4:], uint32(needed))
			}
		}
		if availability {
			if valueSize == 8 {
				binary.LittleEndian.PutUint64(out[16:], avail)
			} else {
				binary.LittleEndian.PutUint32(out[8:], uint32(avail))
			}
		}
	}
	return result
}
