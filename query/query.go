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

// Package query implements GPU query pools: fixed-size collections of
// asynchronous counter slots (occlusion, pipeline statistics, stream-output
// and timestamps) replicated across the physical devices of a logical
// device.
//
// Two variants exist behind one contract. Timestamp pools are self-managed
// plain coherent memory, one fixed-size word per slot. Every other kind
// delegates slot state to a hardware query backend object per replica.
package query

import (
	"context"

	"github.com/xdevs23/xgl/device"
	"github.com/xdevs23/xgl/vk"
)

// variant discriminates the two pool representations. The set is closed;
// call sites switch on it instead of using virtual dispatch.
type variant int

const (
	variantHardware variant = iota
	variantTimestamp
)

// CreateInfo describes a query pool.
type CreateInfo struct {
	QueryType  vk.QueryType
	QueryCount uint32
	// PipelineStatistics selects the counters of a statistics pool, one
	// per set bit.
	PipelineStatistics vk.QueryPipelineStatisticFlags
}

// Pool is a query pool of either variant. Pools are created by Create and
// must be destroyed exactly once with Destroy.
type Pool struct {
	dev       *device.Device
	queryType vk.QueryType
	variant   variant
	hw        *hardwarePool
	ts        *timestampPool
}

// Create builds a new query pool. Timestamp pools get the self-managed
// memory variant; everything else delegates to the hardware backend.
// Creation is all or nothing: on error no resource stays acquired.
func Create(ctx context.Context, dev *device.Device, info CreateInfo) (*Pool, error) {
	if info.QueryType == vk.QueryTypeTimestamp {
		ts, err := createTimestampPool(ctx, dev, info)
		if err != nil {
			return nil, err
		}
		return &Pool{dev: dev, queryType: info.QueryType, variant: variantTimestamp, ts: ts}, nil
	}
	hw, err := createHardwarePool(ctx, dev, info)
	if err != nil {
		return nil, err
	}
	return &Pool{dev: dev, queryType: info.QueryType, variant: variantHardware, hw: hw}, nil
}

// QueryType returns the kind of counter the pool tracks.
func (p *Pool) QueryType() vk.QueryType { return p.queryType }

// GetResults copies the values of queryCount slots starting at startQuery
// into dest, stride bytes apart (zero stride packs records by their natural
// size where the variant defines one). It never writes past len(dest).
// Returns vk.NotReady when some examined slot has no value yet.
func (p *Pool) GetResults(ctx context.Context, startQuery, queryCount uint32, dest []byte, stride uint64, flags vk.QueryResultFlags) error {
	switch p.variant {
	case variantTimestamp:
		return p.ts.getResults(ctx, startQuery, queryCount, dest, stride, flags)
	default:
		return p.hw.getResults(ctx, startQuery, queryCount, dest, stride, flags)
	}
}

// Reset returns the slot range to the unwritten state. Hardware pools
// forward to every replica's backend, fire and forget; timestamp pools
// overwrite their memory directly.
func (p *Pool) Reset(ctx context.Context, startQuery, queryCount uint32) {
	switch p.variant {
	case variantTimestamp:
		p.ts.reset(ctx, startQuery, queryCount)
	default:
		p.hw.reset(startQuery, queryCount)
	}
}

// Destroy releases every backend object and memory allocation the pool
// owns, in reverse order of acquisition.
func (p *Pool) Destroy(ctx context.Context) {
	switch p.variant {
	case variantTimestamp:
		p.ts.destroy(ctx)
	default:
		p.hw.destroy(ctx)
	}
}
