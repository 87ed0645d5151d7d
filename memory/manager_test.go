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
	"context"
	"testing"

	"github.com/google/gapid/core/assert"
	"github.com/google/gapid/core/log"
	"github.com/xdevs23/xgl/pal"
	"github.com/xdevs23/xgl/pal/soft"
	"github.com/xdevs23/xgl/vk"
)

func testManager(replicas int, cfg soft.DeviceConfig) (*Manager, []*soft.Device) {
	softs := make([]*soft.Device, replicas)
	pals := make([]pal.Device, replicas)
	for i := range pals {
		softs[i] = soft.NewDevice(cfg)
		pals[i] = softs[i]
	}
	return NewManager(pals), softs
}

func alloc(ctx context.Context, mgr *Manager, size uint64, mask uint32) (*InternalMemory, error) {
	return mgr.AllocGpuMem(ctx, InternalMemCreateInfo{
		Size:      size,
		Alignment: 8,
		Heaps:     []pal.GpuHeap{pal.GpuHeapGartCacheable},
	}, mask)
}

func TestAllocReusesBaseChunk(t *testing.T) {
	ctx := log.Testing(t)
	mgr, softs := testManager(1, soft.DeviceConfig{})

	a, err := alloc(ctx, mgr, 256, 1)
	assert.For(ctx, "first alloc").ThatError(err).Succeeded()
	b, err := alloc(ctx, mgr, 256, 1)
	assert.For(ctx, "second alloc").ThatError(err).Succeeded()

	// Both suballocations come out of the same base chunk, so the heap
	// sees exactly one raw allocation.
	assert.For(ctx, "heap used").That(softs[0].HeapUsed(pal.GpuHeapGartCacheable)).Equals(uint64(basePoolSize))
	assert.For(ctx, "addresses disjoint").That(a.GpuVirtAddr(0) != b.GpuVirtAddr(0)).Equals(true)

	mgr.FreeGpuMem(ctx, a)
	mgr.FreeGpuMem(ctx, b)
}

func TestFreeReturnsRangeForReuse(t *testing.T) {
	ctx := log.Testing(t)
	mgr, _ := testManager(1, soft.DeviceConfig{})

	a, err := alloc(ctx, mgr, 1024, 1)
	assert.For(ctx, "alloc").ThatError(err).Succeeded()
	addr := a.GpuVirtAddr(0)
	mgr.FreeGpuMem(ctx, a)

	// The freed range merges back and is handed out again.
	b, err := alloc(ctx, mgr, 1024, 1)
	assert.For(ctx, "realloc").ThatError(err).Succeeded()
	assert.For(ctx, "range reused").That(b.GpuVirtAddr(0)).Equals(addr)
	mgr.FreeGpuMem(ctx, b)
}

func TestDoubleFreeIsNoop(t *testing.T) {
	ctx := log.Testing(t)
	mgr, _ := testManager(1, soft.DeviceConfig{})

	a, err := alloc(ctx, mgr, 512, 1)
	assert.For(ctx, "alloc").ThatError(err).Succeeded()
	b, err := alloc(ctx, mgr, 512, 1)
	assert.For(ctx, "alloc").ThatError(err).Succeeded()

	mgr.FreeGpuMem(ctx, a)
	mgr.FreeGpuMem(ctx, a) // second free must not disturb live allocations
	mgr.FreeGpuMem(ctx, nil)

	data, err := b.Map(0)
	assert.For(ctx, "live alloc still mapped").ThatError(err).Succeeded()
	assert.For(ctx, "size").That(len(data)).Equals(512)
	b.Unmap(0)
	mgr.FreeGpuMem(ctx, b)
}

func TestHeapFallbackOnExhaustion(t *testing.T) {
	ctx := log.Testing(t)
	// The local heap cannot fit even one base chunk, so the allocation
	// falls through to the next candidate heap.
	mgr, softs := testManager(1, soft.DeviceConfig{
		HeapSizes: map[pal.GpuHeap]uint64{pal.GpuHeapLocal: basePoolSize / 2},
	})

	a, err := mgr.AllocGpuMem(ctx, InternalMemCreateInfo{
		Size:      256,
		Alignment: 8,
		Heaps:     []pal.GpuHeap{pal.GpuHeapLocal, pal.GpuHeapGartUswc},
	}, 1)
	assert.For(ctx, "alloc").ThatError(err).Succeeded()
	assert.For(ctx, "local untouched").That(softs[0].HeapUsed(pal.GpuHeapLocal)).Equals(uint64(0))
	assert.For(ctx, "fallback used").That(softs[0].HeapUsed(pal.GpuHeapGartUswc)).Equals(uint64(basePoolSize))
	mgr.FreeGpuMem(ctx, a)
}

func TestAllocFailsWhenAllHeapsExhausted(t *testing.T) {
	ctx := log.Testing(t)
	mgr, softs := testManager(1, soft.DeviceConfig{})
	softs[0].FailGpuAllocs(true)

	_, err := alloc(ctx, mgr, 256, 1)
	assert.For(ctx, "err").ThatError(err).Equals(vk.ErrOutOfDeviceMemory)
}

func TestShareableAliasesOneAllocation(t *testing.T) {
	ctx := log.Testing(t)
	mgr, softs := testManager(3, soft.DeviceConfig{})

	mem, err := mgr.AllocGpuMem(ctx, InternalMemCreateInfo{
		Size:      128,
		Alignment: 8,
		Heaps:     []pal.GpuHeap{pal.GpuHeapGartCacheable},
		Shareable: true,
	}, 1<<DefaultMemoryInstanceIdx)
	assert.For(ctx, "alloc").ThatError(err).Succeeded()

	// The pages live on the default instance only.
	assert.For(ctx, "owner heap").That(softs[0].HeapUsed(pal.GpuHeapGartCacheable)).Equals(uint64(basePoolSize))
	for i := 1; i < 3; i++ {
		assert.For(ctx, "replica %d heap", i).That(softs[i].HeapUsed(pal.GpuHeapGartCacheable)).Equals(uint64(0))
	}

	// A write through one replica's mapping is visible through another's.
	data, err := mem.Map(1)
	assert.For(ctx, "map replica").ThatError(err).Succeeded()
	data[0] = 0x5a
	mem.Unmap(1)
	data, err = mem.Map(DefaultMemoryInstanceIdx)
	assert.For(ctx, "map owner").ThatError(err).Succeeded()
	assert.For(ctx, "aliased byte").That(data[0]).Equals(byte(0x5a))
	mem.Unmap(DefaultMemoryInstanceIdx)

	addr := mem.GpuVirtAddr(DefaultMemoryInstanceIdx)
	mgr.FreeGpuMem(ctx, mem)

	// The aliased suballocation is returned exactly once and its range
	// becomes reusable.
	b, err := alloc(ctx, mgr, 128, 1)
	assert.For(ctx, "realloc").ThatError(err).Succeeded()
	assert.For(ctx, "range reused").That(b.GpuVirtAddr(0)).Equals(addr)
	mgr.FreeGpuMem(ctx, b)
}

func TestAllocAndBindFiltersInvisibleHeap(t *testing.T) {
	ctx := log.Testing(t)
	mgr, softs := testManager(2, soft.DeviceConfig{})

	pools := make([]pal.GpuMemoryBindable, 2)
	storage := make([][]byte, 2)
	for i, s := range softs {
		size, err := s.QueryPoolSize(pal.QueryPoolCreateInfo{
			QueryPoolType: pal.QueryPoolOcclusion,
			NumSlots:      4,
		})
		assert.For(ctx, "size").ThatError(err).Succeeded()
		storage[i] = make([]byte, size)
		p, err := s.ConstructQueryPool(ctx, pal.QueryPoolCreateInfo{
			QueryPoolType: pal.QueryPoolOcclusion,
			NumSlots:      4,
		}, storage[i])
		assert.For(ctx, "construct").ThatError(err).Succeeded()
		pools[i] = p
	}

	// The pools prefer the CPU-invisible heap, but binding with
	// removeInvisibleHeap keeps the memory readable from the CPU.
	mem, err := mgr.AllocAndBindGpuMem(ctx, pools, true, true)
	assert.For(ctx, "bind").ThatError(err).Succeeded()
	for i := range softs {
		assert.For(ctx, "invisible unused %d", i).That(softs[i].HeapUsed(pal.GpuHeapInvisible)).Equals(uint64(0))
		data, err := mem.Map(i)
		assert.For(ctx, "mappable %d", i).ThatError(err).Succeeded()
		assert.For(ctx, "sized %d", i).That(uint64(len(data))).Equals(mem.Size())
		mem.Unmap(i)
	}

	for _, p := range pools {
		p.(pal.QueryPool).Destroy()
	}
	mgr.FreeGpuMem(ctx, mem)
}
