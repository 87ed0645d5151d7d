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

// Package vk declares the API-facing types of the resource layer: query
// kinds, result flags and the status values shared by all pool variants.
package vk

import "github.com/google/gapid/core/fault"

// QueryType identifies the kind of counter a query pool tracks.
type QueryType int

const (
	QueryTypeOcclusion QueryType = iota
	QueryTypePipelineStatistics
	QueryTypeTimestamp
	QueryTypeTransformFeedbackStream
)

func (t QueryType) String() string {
	switch t {
	case QueryTypeOcclusion:
		return "Occlusion"
	case QueryTypePipelineStatistics:
		return "PipelineStatistics"
	case QueryTypeTimestamp:
		return "Timestamp"
	case QueryTypeTransformFeedbackStream:
		return "TransformFeedbackStream"
	default:
		return "Unknown"
	}
}

// QueryResultFlags controls the layout and blocking behaviour of result
// read-back.
type QueryResultFlags uint32

const (
	// QueryResult64Bit requests 64-bit result values. Without this flag
	// values are truncated to 32 bits and are allowed to wrap.
	QueryResult64Bit QueryResultFlags = 1 << iota
	// QueryResultWait blocks until every requested slot has a value.
	QueryResultWait
	// QueryResultWithAvailability appends an availability word (0 or 1) of
	// the same width after each slot's value(s).
	QueryResultWithAvailability
	// QueryResultPartial permits values from slots that have not completed.
	QueryResultPartial
)

// QueryPipelineStatisticFlags selects which pipeline statistic counters a
// statistics pool accumulates, one counter per set bit.
type QueryPipelineStatisticFlags uint32

const (
	PipelineStatisticIAVertices QueryPipelineStatisticFlags = 1 << iota
	PipelineStatisticIAPrimitives
	PipelineStatisticVSInvocations
	PipelineStatisticGSInvocations
	PipelineStatisticGSPrimitives
	PipelineStatisticCRasterizedPrimitives
	PipelineStatisticCClippedPrimitives
	PipelineStatisticPSInvocations
	PipelineStatisticTCSPatches
	PipelineStatisticTESInvocations
	PipelineStatisticCSInvocations
)

const (
	// ErrOutOfHostMemory is returned when a host allocation fails.
	ErrOutOfHostMemory = fault.Const("out of host memory")
	// ErrOutOfDeviceMemory is returned when a GPU allocation or backend
	// object creation fails.
	ErrOutOfDeviceMemory = fault.Const("out of device memory")
	// NotReady is the non-fatal read-back status reporting that one or more
	// of the requested query slots does not have a value yet. It is compared
	// by identity, like io.EOF, and is never wrapped.
	NotReady = fault.Const("not ready")
)
