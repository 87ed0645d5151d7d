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

// Package soft is a software implementation of the pal hardware
// abstraction. Counters live in plain bound memory and are produced by an
// explicit completion call standing in for the GPU command stream, which
// makes the package double as the reference backend for tests and tools.
package soft

import (
	"bytes"
	"context"
	"math/bits"

	"github.com/google/gapid/core/data/endian"
	"github.com/google/gapid/core/os/device"
	"github.com/xdevs23/xgl/pal"
)

const (
	// timestampSlotSize matches the 8 byte timestamp counters the hardware
	// writes.
	timestampSlotSize = 8
	// bufferViewDescSize is the encoded size of one buffer view SRD.
	bufferViewDescSize = 32
	// defaultHeapSize bounds each heap unless configured otherwise.
	defaultHeapSize = 64 << 20
	// queryPoolStateSize is the host-side state one query pool encodes
	// into its construction storage.
	queryPoolStateSize = 32
	// gpuVABase is the first GPU virtual address handed out.
	gpuVABase = 0x1_0000_0000
)

// DeviceConfig adjusts a software device.
type DeviceConfig struct {
	// HeapSizes overrides the byte budget of individual heaps.
	HeapSizes map[pal.GpuHeap]uint64
}

// Device is one software GPU.
type Device struct {
	cfg       DeviceConfig
	heapUsed  map[pal.GpuHeap]uint64
	nextVA    uint64
	failNext  bool
	allocFail bool
	livePools int
}

// NewDevice creates a software device.
func NewDevice(cfg DeviceConfig) *Device {
	return &Device{
		cfg:      cfg,
		heapUsed: map[pal.GpuHeap]uint64{},
		nextVA:   gpuVABase,
	}
}

// FailNextQueryPoolConstruct makes the next ConstructQueryPool call fail
// with ErrOutOfGpuMemory. Used to exercise creation rollback.
func (d *Device) FailNextQueryPoolConstruct() { d.failNext = true }

// FailGpuAllocs makes every CreateGpuMemory call fail while set.
func (d *Device) FailGpuAllocs(fail bool) { d.allocFail = fail }

// LiveQueryPools returns the number of constructed, not yet destroyed
// query pools on the device.
func (d *Device) LiveQueryPools() int { return d.livePools }

// HeapUsed returns the bytes currently allocated from the given heap.
func (d *Device) HeapUsed(heap pal.GpuHeap) uint64 { return d.heapUsed[heap] }

// Properties implements pal.Device.
func (d *Device) Properties() pal.DeviceProperties {
	return pal.DeviceProperties{
		TimestampSlotSize:  timestampSlotSize,
		BufferViewDescSize: bufferViewDescSize,
	}
}

func (d *Device) heapBudget(heap pal.GpuHeap) uint64 {
	if s, ok := d.cfg.HeapSizes[heap]; ok {
		return s
	}
	return defaultHeapSize
}

// CreateGpuMemory implements pal.Device.
func (d *Device) CreateGpuMemory(info pal.GpuMemoryCreateInfo) (pal.GpuMemory, error) {
	if d.allocFail || d.heapUsed[info.Heap]+info.Size > d.heapBudget(info.Heap) {
		return nil, pal.ErrOutOfGpuMemory
	}
	d.heapUsed[info.Heap] += info.Size
	mem := &gpuMemory{
		dev:     d,
		heap:    info.Heap,
		va:      d.nextVA,
		backing: make([]byte, info.Size),
	}
	d.nextVA += info.Size
	return mem, nil
}

// QueryPoolSize implements pal.Device.
func (d *Device) QueryPoolSize(info pal.QueryPoolCreateInfo) (uint64, error) {
	if info.QueryPoolType == pal.QueryPoolPipelineStats && info.EnabledStats == 0 {
		return 0, pal.ErrInvalidValue
	}
	return queryPoolStateSize, nil
}

// ConstructQueryPool implements pal.Device. The pool's host state is
// encoded into storage, which the caller owns for the pool's lifetime.
func (d *Device) ConstructQueryPool(ctx context.Context, info pal.QueryPoolCreateInfo, storage []byte) (pal.QueryPool, error) {
	if d.failNext {
		d.failNext = false
		return nil, pal.ErrOutOfGpuMemory
	}
	if uint64(len(storage)) < queryPoolStateSize {
		return nil, pal.ErrInvalidValue
	}

	counters := uint32(1)
	switch info.QueryPoolType {
	case pal.QueryPoolStreamoutStats:
		counters = 2
	case pal.QueryPoolPipelineStats:
		counters = uint32(bits.OnesCount32(info.EnabledStats))
		if counters == 0 {
			return nil, pal.ErrInvalidValue
		}
	}

	q := &QueryPool{
		dev:      d,
		poolType: info.QueryPoolType,
		numSlots: info.NumSlots,
		counters: counters,
		storage:  storage[:queryPoolStateSize],
	}
	q.encodeState()
	d.livePools++
	return q, nil
}

// CreateTypedBufferViewSRDs implements pal.Device.
func (d *Device) CreateTypedBufferViewSRDs(count int, info pal.BufferViewInfo, dst []byte) {
	d.encodeBufferViewSRDs(count, info, dst)
}

// CreateUntypedBufferViewSRDs implements pal.Device.
func (d *Device) CreateUntypedBufferViewSRDs(count int, info pal.BufferViewInfo, dst []byte) {
	d.encodeBufferViewSRDs(count, info, dst)
}

// encodeBufferViewSRDs writes count descriptor records into dst. The record
// layout is fixed: address, range, stride, format, usage, padding.
func (d *Device) encodeBufferViewSRDs(count int, info pal.BufferViewInfo, dst []byte) {
	for i := 0; i < count; i++ {
		buf := bytes.NewBuffer(dst[i*bufferViewDescSize : i*bufferViewDescSize : (i+1)*bufferViewDescSize])
		w := endian.Writer(buf, device.LittleEndian)
		w.Uint64(info.GpuAddr)
		w.Uint64(info.Range)
		w.Uint32(uint32(info.Stride))
		w.Uint32(uint32(info.Format))
		w.Uint32(uint32(info.Usage))
		w.Uint32(0)
	}
}

type gpuMemory struct {
	dev       *Device
	heap      pal.GpuHeap
	va        uint64
	backing   []byte
	destroyed bool
}

func (m *gpuMemory) Size() uint64        { return uint64(len(m.backing)) }
func (m *gpuMemory) GpuVirtAddr() uint64 { return m.va }
func (m *gpuMemory) Heap() pal.GpuHeap   { return m.heap }

func (m *gpuMemory) Map() ([]byte, error) {
	if m.heap == pal.GpuHeapInvisible {
		return nil, pal.ErrInvalidValue
	}
	return m.backing, nil
}

func (m *gpuMemory) Unmap() {}

func (m *gpuMemory) Destroy() {
	if !m.destroyed {
		m.destroyed = true
		m.dev.heapUsed[m.heap] -= uint64(len(m.backing))
	}
}
