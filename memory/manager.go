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

// Package memory implements the device memory manager: it suballocates
// GPU-visible memory out of per-device, per-heap base allocations and binds
// it to backend objects across all device replicas.
package memory

import (
	"context"

	"github.com/google/gapid/core/log"
	"github.com/xdevs23/xgl/pal"
	"github.com/xdevs23/xgl/vk"
)

// DefaultMemoryInstanceIdx is the device index that owns the physical pages
// of a shareable allocation.
const DefaultMemoryInstanceIdx = 0

// basePoolSize is the minimum size of a raw heap allocation that
// suballocations are carved from.
const basePoolSize = 2 * 1024 * 1024

// InternalMemCreateInfo describes an internal GPU allocation request.
type InternalMemCreateInfo struct {
	Size      uint64
	Alignment uint64
	// Heaps lists the candidate heaps in preference order.
	Heaps []pal.GpuHeap
	// PersistentMapped keeps a CPU mapping alive for the allocation's
	// whole lifetime.
	PersistentMapped bool
	// Shareable allocates the physical pages once, on
	// DefaultMemoryInstanceIdx, and aliases them across every replica in
	// the allocation mask.
	Shareable bool
}

type chunk struct {
	mem   pal.GpuMemory
	alloc *allocator
}

type heapPools map[pal.GpuHeap][]*chunk

// Manager is the device memory manager for one logical device's replicas.
type Manager struct {
	devices []pal.Device
	pools   []heapPools // indexed by device replica
}

// NewManager creates a memory manager over the given device replicas.
func NewManager(devices []pal.Device) *Manager {
	pools := make([]heapPools, len(devices))
	for i := range pools {
		pools[i] = heapPools{}
	}
	return &Manager{devices: devices, pools: pools}
}

type suballoc struct {
	chunk  *chunk
	offset uint64
}

// InternalMemory is one logical GPU allocation, physically present on one or
// more device replicas. It is freed exactly once, through FreeGpuMem.
type InternalMemory struct {
	size       uint64
	perDevice  [pal.MaxDevices]*suballoc
	allocMask  uint32
	shareable  bool
	persistent bool
	freed      bool
}

// Size returns the allocation size in bytes.
func (m *InternalMemory) Size() uint64 { return m.size }

// GpuVirtAddr returns the allocation's GPU virtual address on the given
// device replica.
func (m *InternalMemory) GpuVirtAddr(deviceIdx int) uint64 {
	s := m.perDevice[deviceIdx]
	return s.chunk.mem.GpuVirtAddr() + s.offset
}

// Map returns the CPU-visible bytes of the allocation on the given replica.
func (m *InternalMemory) Map(deviceIdx int) ([]byte, error) {
	s := m.perDevice[deviceIdx]
	if s == nil {
		return nil, vk.ErrOutOfDeviceMemory
	}
	data, err := s.chunk.mem.Map()
	if err != nil {
		return nil, err
	}
	return data[s.offset : s.offset+m.size], nil
}

// Unmap releases a mapping obtained from Map. Persistently mapped
// allocations keep their base mapping alive.
func (m *InternalMemory) Unmap(deviceIdx int) {
	if m.persistent {
		return
	}
	if s := m.perDevice[deviceIdx]; s != nil {
		s.chunk.mem.Unmap()
	}
}

// View returns the replica's window onto the allocation as a bindable
// memory view.
func (m *InternalMemory) View(deviceIdx int) pal.GpuMemoryView {
	return &view{mem: m, deviceIdx: deviceIdx}
}

type view struct {
	mem       *InternalMemory
	deviceIdx int
}

func (v *view) Map() ([]byte, error) { return v.mem.Map(v.deviceIdx) }
func (v *view) Unmap()               { v.mem.Unmap(v.deviceIdx) }
func (v *view) GpuVirtAddr() uint64  { return v.mem.GpuVirtAddr(v.deviceIdx) }
func (v *view) Size() uint64         { return v.mem.Size() }

// AllocGpuMem allocates GPU memory on every replica selected by allocMask,
// trying the requested heaps in order. Shareable requests allocate once and
// alias the pages across the mask.
func (m *Manager) AllocGpuMem(ctx context.Context, info InternalMemCreateInfo, allocMask uint32) (*InternalMemory, error) {
	mem := &InternalMemory{
		size:       info.Size,
		allocMask:  allocMask,
		shareable:  info.Shareable,
		persistent: info.PersistentMapped,
	}

	if info.Shareable {
		s, err := m.allocOnDevice(ctx, DefaultMemoryInstanceIdx, info)
		if err != nil {
			return nil, err
		}
		for i := range m.devices {
			mem.perDevice[i] = s
		}
		return mem, nil
	}

	for i := range m.devices {
		if allocMask&(1<<uint(i)) == 0 {
			continue
		}
		s, err := m.allocOnDevice(ctx, i, info)
		if err != nil {
			m.FreeGpuMem(ctx, mem)
			return nil, err
		}
		mem.perDevice[i] = s
	}
	return mem, nil
}

// allocOnDevice suballocates from the first heap in the preference order
// with room, growing that heap's pool list on demand.
func (m *Manager) allocOnDevice(ctx context.Context, deviceIdx int, info InternalMemCreateInfo) (*suballoc, error) {
	for _, heap := range info.Heaps {
		for _, c := range m.pools[deviceIdx][heap] {
			if offset, err := c.alloc.alloc(info.Size, info.Alignment); err == nil {
				return &suballoc{chunk: c, offset: offset}, nil
			}
		}

		size := uint64(basePoolSize)
		if info.Size > size {
			size = info.Size
		}
		base, err := m.devices[deviceIdx].CreateGpuMemory(pal.GpuMemoryCreateInfo{Size: size, Heap: heap})
		if err != nil {
			log.D(ctx, "Heap %v exhausted on device %d: %v", heap, deviceIdx, err)
			continue
		}
		c := &chunk{mem: base, alloc: newAllocator(size)}
		m.pools[deviceIdx][heap] = append(m.pools[deviceIdx][heap], c)
		offset, err := c.alloc.alloc(info.Size, info.Alignment)
		if err != nil {
			continue
		}
		return &suballoc{chunk: c, offset: offset}, nil
	}
	return nil, vk.ErrOutOfDeviceMemory
}

// AllocAndBindGpuMem allocates one GPU allocation sized by the bindables'
// requirements and binds it to every bindable, one per device replica.
// removeInvisibleHeap drops CPU-invisible heaps from the candidates so the
// memory stays CPU readable.
func (m *Manager) AllocAndBindGpuMem(ctx context.Context, bindables []pal.GpuMemoryBindable, removeInvisibleHeap, persistentMapped bool) (*InternalMemory, error) {
	reqs := bindables[0].GpuMemoryRequirements()

	heaps := reqs.Heaps
	if removeInvisibleHeap {
		heaps = make([]pal.GpuHeap, 0, len(reqs.Heaps))
		for _, h := range reqs.Heaps {
			if h != pal.GpuHeapInvisible {
				heaps = append(heaps, h)
			}
		}
	}

	info := InternalMemCreateInfo{
		Size:             reqs.Size,
		Alignment:        reqs.Alignment,
		Heaps:            heaps,
		PersistentMapped: persistentMapped,
	}

	allocMask := uint32(0)
	for i := range bindables {
		allocMask |= 1 << uint(i)
	}

	mem, err := m.AllocGpuMem(ctx, info, allocMask)
	if err != nil {
		return nil, err
	}

	for i, b := range bindables {
		if err := b.BindGpuMemory(mem.View(i)); err != nil {
			m.FreeGpuMem(ctx, mem)
			return nil, vk.ErrOutOfDeviceMemory
		}
	}
	return mem, nil
}

// FreeGpuMem returns the allocation's ranges to their heaps. Freeing nil or
// an already freed allocation is a no-op.
func (m *Manager) FreeGpuMem(ctx context.Context, mem *InternalMemory) {
	if mem == nil || mem.freed {
		return
	}
	mem.freed = true
	freed := map[*suballoc]bool{}
	for i, s := range mem.perDevice {
		if s == nil {
			continue
		}
		mem.perDevice[i] = nil
		if freed[s] {
			// Shareable allocations alias one suballocation across
			// replicas; it is returned once.
			continue
		}
		freed[s] = true
		if err := s.chunk.alloc.free(s.offset); err != nil {
			log.W(ctx, "Freeing GPU memory at offset %d: %v", s.offset, err)
		}
	}
}
