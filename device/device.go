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

// Package device models the logical device: a replica set of physical GPUs
// driven as one, with shared properties and a shared memory manager.
package device

import (
	"context"

	"github.com/google/gapid/core/fault"
	"github.com/google/gapid/core/log"
	"github.com/xdevs23/xgl/memory"
	"github.com/xdevs23/xgl/pal"
)

// DefaultDeviceIndex is the replica a single-device operation acts on.
const DefaultDeviceIndex = 0

// ErrNoDevices is returned when a logical device is created with an empty
// or oversized replica set.
const ErrNoDevices = fault.Const("replica set must hold between 1 and pal.MaxDevices devices")

// Properties are the device properties the resource layer reads.
type Properties struct {
	// TimestampQueryPoolSlotSize is the byte width of one timestamp slot.
	TimestampQueryPoolSlotSize uint32
	// BufferViewDescSize is the byte size of one buffer view descriptor.
	BufferViewDescSize uint32
}

// Config adjusts logical device behaviour.
type Config struct {
	// UseStridedCopyQueryResults selects untyped, explicitly strided
	// buffer views for bulk query copies instead of the typed two-channel
	// 32-bit fast path.
	UseStridedCopyQueryResults bool
}

// Device is a logical device spanning one or more physical replicas.
type Device struct {
	pals   []pal.Device
	memMgr *memory.Manager
	props  Properties
	cfg    Config
}

// New creates a logical device over the given physical replicas. Properties
// are read from the first replica; all replicas are assumed homogeneous.
func New(ctx context.Context, pals []pal.Device, cfg Config) (*Device, error) {
	if len(pals) == 0 || len(pals) > pal.MaxDevices {
		return nil, log.Err(ctx, ErrNoDevices, "Creating logical device")
	}
	p := pals[0].Properties()
	return &Device{
		pals:   pals,
		memMgr: memory.NewManager(pals),
		props: Properties{
			TimestampQueryPoolSlotSize: p.TimestampSlotSize,
			BufferViewDescSize:         p.BufferViewDescSize,
		},
		cfg: cfg,
	}, nil
}

// NumPalDevices returns the number of physical replicas.
func (d *Device) NumPalDevices() int { return len(d.pals) }

// PalDevice returns the physical device at the given replica index.
func (d *Device) PalDevice(deviceIdx int) pal.Device { return d.pals[deviceIdx] }

// MemMgr returns the device memory manager.
func (d *Device) MemMgr() *memory.Manager { return d.memMgr }

// Properties returns the device properties.
func (d *Device) Properties() Properties { return d.props }

// PalDeviceMask returns the bitmask selecting every replica.
func (d *Device) PalDeviceMask() uint32 { return (1 << uint(len(d.pals))) - 1 }

// UseStridedCopyQueryResults reports whether bulk query copies use untyped
// strided buffer views.
func (d *Device) UseStridedCopyQueryResults() bool { return d.cfg.UseStridedCopyQueryResults }
