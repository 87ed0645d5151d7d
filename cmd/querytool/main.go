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

// querytool exercises the query pool resource layer end to end on the
// software backend: it creates timestamp and occlusion pools, completes a
// few slots the way the GPU would, and prints the read-back results.
package main

import (
	"context"
	"encoding/binary"
	"flag"

	"github.com/google/gapid/core/app"
	"github.com/google/gapid/core/log"
	"github.com/xdevs23/xgl/device"
	"github.com/xdevs23/xgl/pal"
	"github.com/xdevs23/xgl/pal/soft"
	"github.com/xdevs23/xgl/query"
	"github.com/xdevs23/xgl/vk"
)

var (
	replicas = flag.Int("replicas", 1, "number of device replicas to simulate")
	slots    = flag.Int("slots", 8, "query slots per pool")
)

func main() {
	app.ShortHelp = "querytool exercises the query pool resource layer on the software backend"
	app.Name = "querytool"
	app.Run(run)
}

func run(ctx context.Context) error {
	pals := make([]pal.Device, *replicas)
	for i := range pals {
		pals[i] = soft.NewDevice(soft.DeviceConfig{})
	}
	dev, err := device.New(ctx, pals, device.Config{})
	if err != nil {
		return err
	}

	if err := timestamps(ctx, dev); err != nil {
		return err
	}
	return occlusion(ctx, dev)
}

func timestamps(ctx context.Context, dev *device.Device) error {
	pool, err := query.Create(ctx, dev, query.CreateInfo{
		QueryType:  vk.QueryTypeTimestamp,
		QueryCount: uint32(*slots),
	})
	if err != nil {
		return log.Err(ctx, err, "Creating timestamp pool")
	}
	defer pool.Destroy(ctx)

	pool.Reset(ctx, 0, uint32(*slots))

	// Complete the even slots the way the GPU command stream would: by
	// writing tick counts straight into the counter memory.
	data, err := pool.TimestampMemory().Map(device.DefaultDeviceIndex)
	if err != nil {
		return err
	}
	for i := 0; i < *slots; i += 2 {
		off := pool.TimestampSlotOffset(uint32(i))
		pal.StoreSlotWord(data[off:], 0x10000+uint64(i)*100)
	}
	pool.TimestampMemory().Unmap(device.DefaultDeviceIndex)

	dest := make([]byte, *slots*16)
	err = pool.GetResults(ctx, 0, uint32(*slots), dest, 16,
		vk.QueryResult64Bit|vk.QueryResultWithAvailability)
	if err != nil && err != vk.NotReady {
		return err
	}
	for i := 0; i < *slots; i++ {
		value := binary.LittleEndian.Uint64(dest[i*16:])
		avail := binary.LittleEndian.Uint64(dest[i*16+8:])
		log.I(ctx, "timestamp slot %d: value=%#x available=%d", i, value, avail)
	}
	log.I(ctx, "timestamp read-back status: %v", status(err))
	return nil
}

func occlusion(ctx context.Context, dev *device.Device) error {
	pool, err := query.Create(ctx, dev, query.CreateInfo{
		QueryType:  vk.QueryTypeOcclusion,
		QueryCount: uint32(*slots),
	})
	if err != nil {
		return log.Err(ctx, err, "Creating occlusion pool")
	}
	defer pool.Destroy(ctx)

	pool.Reset(ctx, 0, uint32(*slots))

	for i := 0; i < dev.NumPalDevices(); i++ {
		backend := pool.PalPool(i).(*soft.QueryPool)
		for s := 0; s < *slots; s++ {
			if err := backend.WriteCounters(uint32(s), uint64(s)*1000); err != nil {
				return err
			}
		}
	}

	dest := make([]byte, *slots*8)
	err = pool.GetResults(ctx, 0, uint32(*slots), dest, 8, vk.QueryResult64Bit)
	if err != nil && err != vk.NotReady {
		return err
	}
	for i := 0; i < *slots; i++ {
		log.I(ctx, "occlusion slot %d: samples=%d", i, binary.LittleEndian.Uint64(dest[i*8:]))
	}
	log.I(ctx, "occlusion read-back status: %v", status(err))
	return nil
}

func status(err error) string {
	if err == nil {
		return "success"
	}
	return err.Error()
}
