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
	"github.com/xdevs23/xgl/pal"
	"github.com/xdevs23/xgl/vk"
)

// toPalQueryType maps an API query kind to the backend counter kind.
func toPalQueryType(t vk.QueryType) pal.QueryType {
	switch t {
	case vk.QueryTypePipelineStatistics:
		return pal.QueryTypePipelineStats
	case vk.QueryTypeTransformFeedbackStream:
		return pal.QueryTypeStreamoutStats
	default:
		return pal.QueryTypeOcclusion
	}
}

// toPalQueryPoolType maps an API query kind to the backend pool category.
func toPalQueryPoolType(t vk.QueryType) pal.QueryPoolType {
	switch t {
	case vk.QueryTypePipelineStatistics:
		return pal.QueryPoolPipelineStats
	case vk.QueryTypeTransformFeedbackStream:
		return pal.QueryPoolStreamoutStats
	default:
		return pal.QueryPoolOcclusion
	}
}

// toPalQueryResultFlags maps API result flags to backend result flags.
func toPalQueryResultFlags(flags vk.QueryResultFlags) pal.QueryResultFlags {
	out := pal.QueryResultFlags(0)
	if flags&vk.QueryResult64Bit != 0 {
		out |= pal.QueryResult64Bit
	}
	if flags&vk.QueryResultWait != 0 {
		out |= pal.QueryResultWait
	}
	if flags&vk.QueryResultWithAvailability != 0 {
		out |= pal.QueryResultAvailability
	}
	if flags&vk.QueryResultPartial != 0 {
		out |= pal.QueryResultPartial
	}
	return out
}

// toPalQueryPipelineStatsFlags maps the API statistic selection onto the
// backend's counter mask. The bit assignments happen to line up.
func toPalQueryPipelineStatsFlags(flags vk.QueryPipelineStatisticFlags) uint32 {
	return uint32(flags)
}

// toVkResult maps a backend error onto the API error set. Backend not-ready
// becomes the API's non-fatal NotReady; unknown backend failures surface as
// device memory loss.
func toVkResult(err error) error {
	switch err {
	case nil:
		return nil
	case pal.ErrNotReady:
		return vk.NotReady
	case pal.ErrOutOfMemory:
		return vk.ErrOutOfHostMemory
	case pal.ErrOutOfGpuMemory:
		return vk.ErrOutOfDeviceMemory
	default:
		return err
	}
}
