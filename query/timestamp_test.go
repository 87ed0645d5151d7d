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
	"testing"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/google/gapid/core/assert"
	"github.com/google/gapid/core/data/endian"
	"github.com/google/gapid/core/log"
	coredevice "github.com/google/gapid/core/os/device"
	"github.com/xdevs23/xgl/device"
	"github.com/xdevs23/xgl/pal"
	"github.com/xdevs23/xgl/pal/soft"
	"github.com/xdevs23/xgl/vk"
)

func testDevice(ctx context.Context, t *testing.T, replicas int, cfg device.Config) (*device.Device, []*soft.Device) {
	softs := make([]*soft.Device, replicas)
	pals := make([]pal.Device, replicas)
	for i := range pals {
		softs[i] = soft.NewDevice(soft.DeviceConfig{})
		pals[i] = softs[i]
	}
	dev, err := device.New(ctx, pals, cfg)
	assert.For(ctx, "device").ThatError(err).Succeeded()
	return dev, softs
}

func timestampPoolOf(ctx context.Context, t *testing.T, dev *device.Device, slots uint32) *Pool {
	pool, err := Create(ctx, dev, CreateInfo{QueryType: vk.QueryTypeTimestamp, QueryCount: slots})
	assert.For(ctx, "create").ThatError(err).Succeeded()
	return pool
}

// writeTimestamp completes a slot the way the GPU command stream would.
func writeTimestamp(ctx context.Context, pool *Pool, slot uint32, value uint64) {
	data, err := pool.TimestampMemory().Map(device.DefaultDeviceIndex)
	assert.For(ctx, "map").ThatError(err).Succeeded()
	pal.StoreSlotWord(data[pool.TimestampSlotOffset(slot):], value)
	pool.TimestampMemory().Unmap(device.DefaultDeviceIndex)
}

func TestTimestampFreshSlotsAreNotReady(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool := timestampPoolOf(ctx, t, dev, 4)
	defer pool.Destroy(ctx)

	dest := bytes.Repeat([]byte{0xaa}, 4*16)
	err := pool.GetResults(ctx, 0, 4, dest, 16, vk.QueryResult64Bit|vk.QueryResultWithAvailability)
	assert.For(ctx, "err").ThatError(err).Equals(vk.NotReady)

	for i := 0; i < 4; i++ {
		// Pending slots keep the destination value region untouched; only
		// the availability word is written, as zero.
		value := dest[i*16 : i*16+8]
		assert.For(ctx, "value %d", i).ThatSlice(value).Equals(bytes.Repeat([]byte{0xaa}, 8))
		avail := binary.LittleEndian.Uint64(dest[i*16+8:])
		assert.For(ctx, "avail %d", i).That(avail).Equals(uint64(0))
	}
}

func TestTimestampReadsExternallyWrittenValue(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool := timestampPoolOf(ctx, t, dev, 4)
	defer pool.Destroy(ctx)

	const value = uint64(0x0123456789abcdef)
	writeTimestamp(ctx, pool, 1, value)

	dest := make([]byte, 8)
	err := pool.GetResults(ctx, 1, 1, dest, 8, vk.QueryResult64Bit)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "value").That(binary.LittleEndian.Uint64(dest)).Equals(value)

	// Without the 64-bit flag the value wraps modulo 2^32.
	dest32 := make([]byte, 4)
	err = pool.GetResults(ctx, 1, 1, dest32, 4, 0)
	assert.For(ctx, "err32").ThatError(err).Succeeded()
	assert.For(ctx, "value32").That(binary.LittleEndian.Uint32(dest32)).Equals(uint32(0x89abcdef))
}

func TestTimestampNeverWritesPastCapacity(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool := timestampPoolOf(ctx, t, dev, 8)
	defer pool.Destroy(ctx)

	for i := uint32(0); i < 8; i++ {
		writeTimestamp(ctx, pool, i, uint64(i)+1)
	}

	for _, test := range []struct {
		name     string
		capacity int
		stride   uint64
		flags    vk.QueryResultFlags
	}{
		{"tight", 3 * 8, 8, vk.QueryResult64Bit},
		{"wide stride", 20, 16, vk.QueryResult64Bit},
		{"zero stride", 12, 0, vk.QueryResult64Bit},
		{"zero stride 32", 2, 0, 0},
		{"availability", 3 * 16, 16, vk.QueryResult64Bit | vk.QueryResultWithAvailability},
	} {
		buf := bytes.Repeat([]byte{0x5c}, test.capacity+64)
		dest := buf[:test.capacity]
		err := pool.GetResults(ctx, 0, 8, dest, test.stride, test.flags)
		assert.For(ctx, "%s: err", test.name).ThatError(err).Succeeded()
		canary := buf[test.capacity:]
		assert.For(ctx, "%s: canary", test.name).ThatSlice(canary).Equals(bytes.Repeat([]byte{0x5c}, 64))
	}
}

func TestTimestampWaitBlocksUntilWritten(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool := timestampPoolOf(ctx, t, dev, 1)
	defer pool.Destroy(ctx)

	go func() {
		time.Sleep(10 * time.Millisecond)
		writeTimestamp(ctx, pool, 0, 42)
	}()

	dest := make([]byte, 8)
	err := pool.GetResults(ctx, 0, 1, dest, 8, vk.QueryResult64Bit|vk.QueryResultWait)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "value").That(binary.LittleEndian.Uint64(dest)).Equals(uint64(42))
}

func TestTimestampWaitObservesWholeWords(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool := timestampPoolOf(ctx, t, dev, 1)
	defer pool.Destroy(ctx)

	// The completion word flips from the all-ones sentinel to the value
	// while the poll loop reads it. A poll overlapping the write must see
	// either word in full, never a mix of the two.
	const value = uint64(42)
	for i := 0; i < 200; i++ {
		pool.Reset(ctx, 0, 1)
		done := make(chan struct{})
		go func() {
			writeTimestamp(ctx, pool, 0, value)
			close(done)
		}()
		dest := make([]byte, 8)
		err := pool.GetResults(ctx, 0, 1, dest, 8, vk.QueryResult64Bit|vk.QueryResultWait)
		assert.For(ctx, "round %d: err", i).ThatError(err).Succeeded()
		assert.For(ctx, "round %d: value", i).That(binary.LittleEndian.Uint64(dest)).Equals(value)
		<-done
	}
}

func TestTimestampWaitHonoursCancellation(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool := timestampPoolOf(ctx, t, dev, 1)
	defer pool.Destroy(ctx)

	cctx, cancel := context.WithCancel(ctx)
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	dest := make([]byte, 8)
	err := pool.GetResults(cctx, 0, 1, dest, 8, vk.QueryResult64Bit|vk.QueryResultWait)
	assert.For(ctx, "err").ThatError(err).Equals(context.Canceled)
}

func TestTimestampResetRange(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool := timestampPoolOf(ctx, t, dev, 6)
	defer pool.Destroy(ctx)

	for i := uint32(0); i < 6; i++ {
		writeTimestamp(ctx, pool, i, 100+uint64(i))
	}
	pool.Reset(ctx, 2, 2)

	dest := make([]byte, 6*16)
	err := pool.GetResults(ctx, 0, 6, dest, 16, vk.QueryResult64Bit|vk.QueryResultWithAvailability)
	assert.For(ctx, "err").ThatError(err).Equals(vk.NotReady)
	for i := 0; i < 6; i++ {
		avail := binary.LittleEndian.Uint64(dest[i*16+8:])
		if i == 2 || i == 3 {
			assert.For(ctx, "avail %d", i).That(avail).Equals(uint64(0))
		} else {
			assert.For(ctx, "avail %d", i).That(avail).Equals(uint64(1))
			value := binary.LittleEndian.Uint64(dest[i*16:])
			assert.For(ctx, "value %d", i).That(value).Equals(100 + uint64(i))
		}
	}
}

func TestTimestampResetOutOfRangeIsNoop(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool := timestampPoolOf(ctx, t, dev, 4)
	defer pool.Destroy(ctx)

	for i := uint32(0); i < 4; i++ {
		writeTimestamp(ctx, pool, i, 7)
	}
	pool.Reset(ctx, 4, 10)
	pool.Reset(ctx, 100, 1)

	dest := make([]byte, 4*8)
	err := pool.GetResults(ctx, 0, 4, dest, 8, vk.QueryResult64Bit)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	for i := 0; i < 4; i++ {
		assert.For(ctx, "value %d", i).That(binary.LittleEndian.Uint64(dest[i*8:])).Equals(uint64(7))
	}
}

func TestTimestampZeroCountAndZeroSlots(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 1, device.Config{})

	pool := timestampPoolOf(ctx, t, dev, 4)
	err := pool.GetResults(ctx, 0, 0, nil, 0, vk.QueryResultWait)
	assert.For(ctx, "zero count").ThatError(err).Succeeded()
	pool.Destroy(ctx)

	// Zero-slot pools allocate no GPU memory and keep zeroed descriptors.
	empty := timestampPoolOf(ctx, t, dev, 0)
	defer empty.Destroy(ctx)
	desc := empty.StorageViewDescriptor(device.DefaultDeviceIndex)
	assert.For(ctx, "descriptor").ThatSlice(desc).Equals(make([]byte, len(desc)))
}

func TestTimestampMultiDeviceAliasesOneAllocation(t *testing.T) {
	ctx := log.Testing(t)
	dev, _ := testDevice(ctx, t, 2, device.Config{})
	pool := timestampPoolOf(ctx, t, dev, 2)
	defer pool.Destroy(ctx)

	// A write through replica 1's mapping lands in the same physical
	// pages the default replica reads.
	data, err := pool.TimestampMemory().Map(1)
	assert.For(ctx, "map").ThatError(err).Succeeded()
	pal.StoreSlotWord(data[pool.TimestampSlotOffset(0):], 9001)
	pool.TimestampMemory().Unmap(1)

	dest := make([]byte, 8)
	err = pool.GetResults(ctx, 0, 1, dest, 8, vk.QueryResult64Bit)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "value").That(binary.LittleEndian.Uint64(dest)).Equals(uint64(9001))
}

func TestTimestampStorageViewDescriptors(t *testing.T) {
	ctx := log.Testing(t)

	// Typed fast path: a two-channel 32-bit view with the slot width as
	// its stride.
	dev, _ := testDevice(ctx, t, 1, device.Config{})
	pool := timestampPoolOf(ctx, t, dev, 4)
	r := endian.Reader(bytes.NewReader(pool.StorageViewDescriptor(0)), coredevice.LittleEndian)
	assert.For(ctx, "gpuAddr").That(r.Uint64()).Equals(pool.TimestampMemory().GpuVirtAddr(0))
	assert.For(ctx, "range").That(r.Uint64()).Equals(uint64(4 * 8))
	assert.For(ctx, "stride").That(r.Uint32()).Equals(uint32(8))
	assert.For(ctx, "format").That(r.Uint32()).Equals(uint32(gputypes.TextureFormatRG32Uint))
	pool.Destroy(ctx)

	// Generic path: untyped view with explicit stride.
	dev, _ = testDevice(ctx, t, 1, device.Config{UseStridedCopyQueryResults: true})
	pool = timestampPoolOf(ctx, t, dev, 4)
	defer pool.Destroy(ctx)
	r = endian.Reader(bytes.NewReader(pool.StorageViewDescriptor(0)), coredevice.LittleEndian)
	r.Uint64() // address
	r.Uint64() // range
	assert.For(ctx, "untyped stride").That(r.Uint32()).Equals(uint32(0))
	assert.For(ctx, "untyped format").That(r.Uint32()).Equals(uint32(gputypes.TextureFormatUndefined))
}
