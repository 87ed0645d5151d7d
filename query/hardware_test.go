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
	"encoding/binary"
	"testing"
	"time"

	"github.com/google/gapid/core/assert"
	"github.com/google/gapid/core/log"
	"github.com/xdevs23/xgl/device"
	"github.com/xdevs23/xgl/pal"
	"github.com/xdevs23/xgl/pal/soft"
	"github.com/xdevs23/xgl/vk"
)

func TestFactoryDispatchesOnQueryKind(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})

	for _, test := range []struct {
		kind  vk.QueryType
		stats vk.QueryPipelineStatisticFlags
	}{
		{vk.QueryTypeOcclusion, 0},
		{vk.QueryTypePipelineStatistics, vk.PipelineStatisticIAVertices},
		{vk.QueryTypeTransformFeedbackStream, 0},
	} {
		pool, err := Create(ctx, dev, CreateInfo{
			QueryType:          test.kind,
			QueryCount:         4,
			PipelineStatistics: test.stats,
		})
		assert.For(ctx, "%v: create", test.kind).ThatError(err).Succeeded()
		assert.For(ctx, "%v: variant", test.kind).That(pool.variant).Equals(variantHardware)
		assert.For(ctx, "%v: backend", test.kind).That(pool.PalPool(0)).IsNotNil()
		pool.Destroy(ctx)
	}

	pool, err := Create(ctx, dev, CreateInfo{QueryType: vk.QueryTypeTimestamp, QueryCount: 4})
	assert.For(ctx, "timestamp: create").ThatError(err).Succeeded()
	assert.For(ctx, "timestamp: variant").That(pool.variant).Equals(variantTimestamp)
	pool.Destroy(ctx)
}

func TestOcclusionReadback(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool, err := Create(ctx, dev, CreateInfo{QueryType: vk.QueryTypeOcclusion, QueryCount: 4})
	assert.For(ctx, "create").ThatError(err).Succeeded()
	defer pool.Destroy(ctx)

	dest := make([]byte, 4*8)
	err = pool.GetResults(ctx, 0, 4, dest, 8, vk.QueryResult64Bit)
	assert.For(ctx, "before completion").ThatError(err).Equals(vk.NotReady)

	backend := pool.PalPool(0).(*soft.QueryPool)
	for s := uint32(0); s < 4; s++ {
		assert.For(ctx, "complete %d", s).ThatError(backend.WriteCounters(s, uint64(s)*10)).Succeeded()
	}

	err = pool.GetResults(ctx, 0, 4, dest, 8, vk.QueryResult64Bit)
	assert.For(ctx, "after completion").ThatError(err).Succeeded()
	for s := 0; s < 4; s++ {
		got := binary.LittleEndian.Uint64(dest[s*8:])
		assert.For(ctx, "slot %d", s).That(got).Equals(uint64(s) * 10)
	}

	// Reset is observed through the next read-back.
	pool.Reset(ctx, 0, 4)
	err = pool.GetResults(ctx, 0, 4, dest, 8, vk.QueryResult64Bit)
	assert.For(ctx, "after reset").ThatError(err).Equals(vk.NotReady)
}

func TestStreamoutReadbackSwapsFieldOrder(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool, err := Create(ctx, dev, CreateInfo{
		QueryType:  vk.QueryTypeTransformFeedbackStream,
		QueryCount: 2,
	})
	assert.For(ctx, "create").ThatError(err).Succeeded()
	defer pool.Destroy(ctx)

	// The backend stores {needed, written}; the public contract is
	// {written, needed}.
	backend := pool.PalPool(0).(*soft.QueryPool)
	const needed, written = uint64(500), uint64(300)
	assert.For(ctx, "complete").ThatError(backend.WriteCounters(0, needed, written)).Succeeded()
	assert.For(ctx, "complete").ThatError(backend.WriteCounters(1, 2, 1)).Succeeded()

	dest := make([]byte, 2*24)
	err = pool.GetResults(ctx, 0, 2, dest, 24, vk.QueryResult64Bit|vk.QueryResultWithAvailability)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "written").That(binary.LittleEndian.Uint64(dest[0:])).Equals(written)
	assert.For(ctx, "needed").That(binary.LittleEndian.Uint64(dest[8:])).Equals(needed)
	assert.For(ctx, "avail").That(binary.LittleEndian.Uint64(dest[16:])).Equals(uint64(1))
}

func TestStreamoutDefaultStrideAndNarrowing(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool, err := Create(ctx, dev, CreateInfo{
		QueryType:  vk.QueryTypeTransformFeedbackStream,
		QueryCount: 2,
	})
	assert.For(ctx, "create").ThatError(err).Succeeded()
	defer pool.Destroy(ctx)

	backend := pool.PalPool(0).(*soft.QueryPool)
	// Values above 2^32 exercise the documented wraparound.
	assert.For(ctx, "complete").ThatError(backend.WriteCounters(0, 1<<33|7, 1<<32|5)).Succeeded()
	assert.For(ctx, "complete").ThatError(backend.WriteCounters(1, 40, 30)).Succeeded()

	// Zero stride defaults to the staging record size (two 64-bit words
	// per slot here), independent of the output width.
	dest := make([]byte, 2*16)
	err = pool.GetResults(ctx, 0, 2, dest, 0, 0)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "written0").That(binary.LittleEndian.Uint32(dest[0:])).Equals(uint32(5))
	assert.For(ctx, "needed0").That(binary.LittleEndian.Uint32(dest[4:])).Equals(uint32(7))
	assert.For(ctx, "written1").That(binary.LittleEndian.Uint32(dest[16:])).Equals(uint32(30))
	assert.For(ctx, "needed1").That(binary.LittleEndian.Uint32(dest[20:])).Equals(uint32(40))
}

func TestStreamoutPartialAndNotReady(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool, err := Create(ctx, dev, CreateInfo{
		QueryType:  vk.QueryTypeTransformFeedbackStream,
		QueryCount: 2,
	})
	assert.For(ctx, "create").ThatError(err).Succeeded()
	defer pool.Destroy(ctx)

	backend := pool.PalPool(0).(*soft.QueryPool)
	assert.For(ctx, "complete").ThatError(backend.WriteCounters(0, 9, 8)).Succeeded()

	// Slot 1 is incomplete: without the partial flag no counters are
	// written at all, but the availability words still are.
	dest := make([]byte, 2*24)
	err = pool.GetResults(ctx, 0, 2, dest, 24, vk.QueryResult64Bit|vk.QueryResultWithAvailability)
	assert.For(ctx, "err").ThatError(err).Equals(vk.NotReady)
	assert.For(ctx, "counters skipped").That(binary.LittleEndian.Uint64(dest[0:])).Equals(uint64(0))
	assert.For(ctx, "avail0").That(binary.LittleEndian.Uint64(dest[16:])).Equals(uint64(1))
	assert.For(ctx, "avail1").That(binary.LittleEndian.Uint64(dest[24+16:])).Equals(uint64(0))

	// With the partial flag the completed slot's counters are written
	// even though the overall status stays not-ready.
	err = pool.GetResults(ctx, 0, 2, dest, 24,
		vk.QueryResult64Bit|vk.QueryResultWithAvailability|vk.QueryResultPartial)
	assert.For(ctx, "partial err").ThatError(err).Equals(vk.NotReady)
	assert.For(ctx, "partial written").That(binary.LittleEndian.Uint64(dest[0:])).Equals(uint64(8))
	assert.For(ctx, "partial needed").That(binary.LittleEndian.Uint64(dest[8:])).Equals(uint64(9))
}

func TestPipelineStatisticsCountersFollowMask(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool, err := Create(ctx, dev, CreateInfo{
		QueryType:  vk.QueryTypePipelineStatistics,
		QueryCount: 1,
		PipelineStatistics: vk.PipelineStatisticIAVertices |
			vk.PipelineStatisticIAPrimitives |
			vk.PipelineStatisticCSInvocations,
	})
	assert.For(ctx, "create").ThatError(err).Succeeded()
	defer pool.Destroy(ctx)

	backend := pool.PalPool(0).(*soft.QueryPool)
	assert.For(ctx, "counters").That(backend.CountersPerSlot()).Equals(uint32(3))
	assert.For(ctx, "complete").ThatError(backend.WriteCounters(0, 11, 22, 33)).Succeeded()

	dest := make([]byte, 3*8)
	err = pool.GetResults(ctx, 0, 1, dest, 0, vk.QueryResult64Bit)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	for i, want := range []uint64{11, 22, 33} {
		assert.For(ctx, "stat %d", i).That(binary.LittleEndian.Uint64(dest[i*8:])).Equals(want)
	}
}

func TestCreateRollsBackOnReplicaFailure(t *testing.T) {
	ctx := log.Testing(t)
	dev, softs := testDevice(ctx, t, 3, device.Config{})

	// Replica 1 fails construction: replicas [0, 1) must be destroyed
	// and nothing may leak.
	softs[1].FailNextQueryPoolConstruct()
	_, err := Create(ctx, dev, CreateInfo{QueryType: vk.QueryTypeOcclusion, QueryCount: 8})
	assert.For(ctx, "err").ThatError(err).Equals(vk.ErrOutOfDeviceMemory)
	for i, s := range softs {
		assert.For(ctx, "live pools %d", i).That(s.LiveQueryPools()).Equals(0)
	}
}

func TestCreateRollsBackOnGpuAllocFailure(t *testing.T) {
	ctx := log.Testing(t)
	dev, softs := testDevice(ctx, t, 2, device.Config{})

	for _, s := range softs {
		s.FailGpuAllocs(true)
	}
	_, err := Create(ctx, dev, CreateInfo{QueryType: vk.QueryTypeOcclusion, QueryCount: 8})
	assert.For(ctx, "err").ThatError(err).Equals(vk.ErrOutOfDeviceMemory)
	for i, s := range softs {
		assert.For(ctx, "live pools %d", i).That(s.LiveQueryPools()).Equals(0)
	}
}

func TestOcclusionWaitBlocksUntilWritten(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool, err := Create(ctx, dev, CreateInfo{QueryType: vk.QueryTypeOcclusion, QueryCount: 1})
	assert.For(ctx, "create").ThatError(err).Succeeded()
	defer pool.Destroy(ctx)

	backend := pool.PalPool(0).(*soft.QueryPool)
	go func() {
		time.Sleep(10 * time.Millisecond)
		backend.WriteCounters(0, 77)
	}()

	dest := make([]byte, 8)
	err = pool.GetResults(ctx, 0, 1, dest, 8, vk.QueryResult64Bit|vk.QueryResultWait)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "value").That(binary.LittleEndian.Uint64(dest)).Equals(uint64(77))
}

func TestHardwareZeroCountIsNoop(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool, err := Create(ctx, dev, CreateInfo{QueryType: vk.QueryTypeOcclusion, QueryCount: 2})
	assert.For(ctx, "create").ThatError(err).Succeeded()
	defer pool.Destroy(ctx)

	err = pool.GetResults(ctx, 0, 0, nil, 0, vk.QueryResultWait)
	assert.For(ctx, "err").ThatError(err).Succeeded()
}

func TestMultiReplicaResetFansOut(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 2, device.Config{})
	pool, err := Create(ctx, dev, CreateInfo{QueryType: vk.QueryTypeOcclusion, QueryCount: 2})
	assert.For(ctx, "create").ThatError(err).Succeeded()
	defer pool.Destroy(ctx)

	for i := 0; i < dev.NumPalDevices(); i++ {
		backend := pool.PalPool(i).(*soft.QueryPool)
		assert.For(ctx, "complete %d", i).ThatError(backend.WriteCounters(0, 1)).Succeeded()
		assert.For(ctx, "complete %d", i).ThatError(backend.WriteCounters(1, 2)).Succeeded()
	}
	pool.Reset(ctx, 0, 2)

	// Every replica's backend observes the reset, not just the default.
	dest := make([]byte, 2*8)
	for i := 0; i < dev.NumPalDevices(); i++ {
		err := pool.PalPool(i).GetResults(ctx, pal.QueryResult64Bit, pal.QueryTypeOcclusion, 0, 2, dest, 8)
		assert.For(ctx, "replica %d", i).ThatError(err).Equals(pal.ErrNotReady)
	}
}
