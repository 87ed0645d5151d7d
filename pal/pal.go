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

// Package pal declares the hardware abstraction consumed by the resource
// layer: per-GPU devices, hardware-managed query pools, GPU memory objects
// and buffer-view descriptor building.
package pal

import (
	"context"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/google/gapid/core/fault"
)

// MaxDevices is the maximum number of physical device replicas a logical
// device may span.
const MaxDevices = 4

// QueryType identifies the counter kind for a single get-results request.
type QueryType int

const (
	QueryTypeOcclusion QueryType = iota
	QueryTypeBinaryOcclusion
	QueryTypePipelineStats
	QueryTypeStreamoutStats
)

// QueryPoolType identifies the kind of hardware pool backing the slots.
type QueryPoolType int

const (
	QueryPoolOcclusion QueryPoolType = iota
	QueryPoolPipelineStats
	QueryPoolStreamoutStats
)

// QueryResultFlags control a backend get-results request.
type QueryResultFlags uint32

const (
	QueryResult64Bit QueryResultFlags = 1 << iota
	QueryResultWait
	QueryResultAvailability
	QueryResultPartial
)

// GpuHeap identifies one of the device memory heaps.
type GpuHeap int

const (
	// GpuHeapLocal is device-local, CPU-visible memory.
	GpuHeapLocal GpuHeap = iota
	// GpuHeapInvisible is device-local memory with no CPU access.
	GpuHeapInvisible
	// GpuHeapGartCacheable is cacheable system memory visible to the GPU.
	GpuHeapGartCacheable
	// GpuHeapGartUswc is write-combined uncached system memory visible to
	// the GPU.
	GpuHeapGartUswc
)

func (h GpuHeap) String() string {
	switch h {
	case GpuHeapLocal:
		return "Local"
	case GpuHeapInvisible:
		return "Invisible"
	case GpuHeapGartCacheable:
		return "GartCacheable"
	case GpuHeapGartUswc:
		return "GartUswc"
	default:
		return "Unknown"
	}
}

const (
	// ErrNotReady reports that one or more requested slots have no value
	// yet. Non-fatal; compared by identity.
	ErrNotReady = fault.Const("pal: query results not ready")
	// ErrOutOfGpuMemory reports GPU memory exhaustion.
	ErrOutOfGpuMemory = fault.Const("pal: out of GPU memory")
	// ErrOutOfMemory reports host memory exhaustion inside the backend.
	ErrOutOfMemory = fault.Const("pal: out of memory")
	// ErrInvalidValue reports a malformed request.
	ErrInvalidValue = fault.Const("pal: invalid value")
)

// QueryPoolCreateInfo describes a hardware query pool.
type QueryPoolCreateInfo struct {
	QueryPoolType QueryPoolType
	NumSlots      uint32
	// EnabledStats selects the pipeline statistic counters tracked per
	// slot, one counter per set bit. Ignored for non-statistics pools.
	EnabledStats uint32
	// EnableCpuAccess requires the pool's GPU memory to be CPU readable.
	EnableCpuAccess bool
}

// GpuMemoryRequirements describes what a bindable object needs from its GPU
// allocation. Heaps is in preference order.
type GpuMemoryRequirements struct {
	Size      uint64
	Alignment uint64
	Heaps     []GpuHeap
}

// GpuMemoryView is one device replica's window onto a GPU allocation.
type GpuMemoryView interface {
	// Map returns the CPU-visible bytes of the view.
	Map() ([]byte, error)
	// Unmap releases a mapping obtained from Map.
	Unmap()
	// GpuVirtAddr returns the GPU virtual address of the view's start.
	GpuVirtAddr() uint64
	// Size returns the view size in bytes.
	Size() uint64
}

// GpuMemoryBindable is an object that needs GPU memory bound to it before
// use.
type GpuMemoryBindable interface {
	GpuMemoryRequirements() GpuMemoryRequirements
	BindGpuMemory(view GpuMemoryView) error
}

// QueryPool is a hardware-managed pool of counter slots. Implementations
// own the slot state; callers observe it only through GetResults.
type QueryPool interface {
	GpuMemoryBindable

	// GetResults writes the values of queryCount slots starting at
	// startQuery into dest, stride bytes apart. A zero stride packs the
	// records tightly. Returns ErrNotReady if any requested slot is
	// incomplete and neither wait nor partial behaviour hides that.
	GetResults(ctx context.Context, flags QueryResultFlags, queryType QueryType, startQuery, queryCount uint32, dest []byte, stride uint64) error

	// Reset returns the slot range to the unwritten state. Fire and
	// forget; completion is observed through a later GetResults.
	Reset(startQuery, queryCount uint32)

	// Destroy releases the pool. The storage it was constructed over
	// remains owned by the caller.
	Destroy()
}

// BufferViewInfo describes a buffer view descriptor over GPU memory.
type BufferViewInfo struct {
	GpuAddr uint64
	Range   uint64
	// Stride is the structure stride for untyped views; for typed views it
	// must equal the element size of Format.
	Stride uint64
	// Format is the typed element format, or TextureFormatUndefined for
	// untyped views.
	Format gputypes.TextureFormat
	// Usage carries the intended shader usage of the view.
	Usage gputypes.BufferUsage
}

// GpuMemoryCreateInfo describes one raw heap allocation.
type GpuMemoryCreateInfo struct {
	Size uint64
	Heap GpuHeap
}

// GpuMemory is a raw allocation made directly on one device heap. The
// memory manager suballocates views out of these.
type GpuMemory interface {
	Size() uint64
	GpuVirtAddr() uint64
	Heap() GpuHeap
	// Map returns the full CPU mapping, or an error for heaps with no CPU
	// access.
	Map() ([]byte, error)
	Unmap()
	Destroy()
}

// DeviceProperties are the fixed properties of one physical device.
type DeviceProperties struct {
	// TimestampSlotSize is the byte width of one timestamp query slot.
	TimestampSlotSize uint32
	// BufferViewDescSize is the byte size of one buffer view descriptor
	// record.
	BufferViewDescSize uint32
}

// Device is one physical GPU as seen by the resource layer.
type Device interface {
	Properties() DeviceProperties

	// QueryPoolSize returns the per-device byte size of the host-side
	// object state a query pool of the given description needs.
	QueryPoolSize(info QueryPoolCreateInfo) (uint64, error)

	// ConstructQueryPool builds a query pool whose host state lives in
	// storage, which must be at least QueryPoolSize bytes and stays owned
	// by the caller for the pool's lifetime.
	ConstructQueryPool(ctx context.Context, info QueryPoolCreateInfo, storage []byte) (QueryPool, error)

	// CreateGpuMemory makes one raw heap allocation.
	CreateGpuMemory(info GpuMemoryCreateInfo) (GpuMemory, error)

	// CreateTypedBufferViewSRDs encodes count typed buffer view descriptor
	// records described by info into dst.
	CreateTypedBufferViewSRDs(count int, info BufferViewInfo, dst []byte)

	// CreateUntypedBufferViewSRDs encodes count untyped (raw) buffer view
	// descriptor records described by info into dst.
	CreateUntypedBufferViewSRDs(count int, info BufferViewInfo, dst []byte)
}

// LoadSlotWord reads one 64-bit completion word from mapped counter memory.
// Completion words are produced and consumed concurrently, so all access
// goes through atomic loads and stores. b must start 8-byte aligned.
func LoadSlotWord(b []byte) uint64 {
	return atomic.LoadUint64((*uint64)(unsafe.Pointer(&b[0])))
}

// StoreSlotWord writes one 64-bit completion word into mapped counter
// memory. A store publishes everything written to the slot before it, the
// ordering the hardware write-back contract gives.
func StoreSlotWord(b []byte, v uint64) {
	atomic.StoreUint64((*uint64)(unsafe.Pointer(&b[0])), v)
}
