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

// Package pipeline implements pipeline layout objects: the composite
// user-data register allocation across all descriptor set layouts of a
// pipeline. Layouts are consumed during pipeline construction and
// descriptor set binding; the query subsystem only declares them.
package pipeline

import (
	"context"

	"github.com/google/gapid/core/fault"
	"github.com/google/gapid/core/log"
	"github.com/xdevs23/xgl/device"
)

const (
	// SetPtrRegCount is the number of user data registers one descriptor
	// set address consumes (32-bit addresses).
	SetPtrRegCount = 1
	// DynDescRegCount is the number of user data registers one dynamic
	// descriptor consumes (a whole buffer SRD).
	DynDescRegCount = 4
	// InvalidReg marks an unmapped user data entry.
	InvalidReg = ^uint32(0)
	// MaxUserDataRegs bounds the registers a layout may claim.
	MaxUserDataRegs = 32
)

// ErrTooManyUserDataRegs is returned when a layout does not fit the user
// data register budget.
const ErrTooManyUserDataRegs = fault.Const("pipeline layout exceeds the user data register budget")

// DescriptorSetLayout is the per-set layout a pipeline layout composes.
type DescriptorSetLayout struct {
	// BindingCount is the number of bindings in the set.
	BindingCount uint32
	// DynamicDescCount is the number of dynamic descriptors in the set.
	DynamicDescCount uint32
}

// SetUserDataLayout places one descriptor set inside the register space.
// Offsets are relative to the set binding register base.
type SetUserDataLayout struct {
	SetPtrRegOffset      uint32
	DynDescDataRegOffset uint32
	DynDescDataRegCount  uint32
	DynDescCount         uint32
	FirstRegOffset       uint32
	TotalRegCount        uint32
}

// UserDataLayout is the top level register allocation scheme.
type UserDataLayout struct {
	PushConstRegBase   uint32
	PushConstRegCount  uint32
	SetBindingRegBase  uint32
	SetBindingRegCount uint32
}

// Info summarises a pipeline layout's register usage.
type Info struct {
	UserData         UserDataLayout
	SetCount         uint32
	UserDataRegCount uint32
}

// CreateInfo describes a pipeline layout.
type CreateInfo struct {
	SetLayouts []*DescriptorSetLayout
	// PushConstantBytes is the total push constant range size.
	PushConstantBytes uint32
}

// Layout is a pipeline layout object.
type Layout struct {
	dev         *device.Device
	info        Info
	setUserData []SetUserDataLayout
	setLayouts  []*DescriptorSetLayout
}

// Create builds a pipeline layout: push constants claim registers first,
// then each set claims registers for its dynamic descriptor data followed
// by its set pointer.
func Create(ctx context.Context, dev *device.Device, createInfo CreateInfo) (*Layout, error) {
	l := &Layout{
		dev:         dev,
		setUserData: make([]SetUserDataLayout, len(createInfo.SetLayouts)),
		setLayouts:  append([]*DescriptorSetLayout(nil), createInfo.SetLayouts...),
	}

	pushConstRegs := (createInfo.PushConstantBytes + 3) / 4
	l.info.UserData.PushConstRegBase = 0
	l.info.UserData.PushConstRegCount = pushConstRegs
	l.info.UserData.SetBindingRegBase = pushConstRegs

	offset := uint32(0)
	for i, set := range createInfo.SetLayouts {
		s := &l.setUserData[i]
		s.FirstRegOffset = offset
		s.DynDescCount = set.DynamicDescCount
		if set.DynamicDescCount > 0 {
			s.DynDescDataRegOffset = offset
			s.DynDescDataRegCount = set.DynamicDescCount * DynDescRegCount
		} else {
			s.DynDescDataRegOffset = InvalidReg
		}
		s.SetPtrRegOffset = offset + s.DynDescDataRegCount
		s.TotalRegCount = s.DynDescDataRegCount + SetPtrRegCount
		offset += s.TotalRegCount
	}

	l.info.UserData.SetBindingRegCount = offset
	l.info.SetCount = uint32(len(createInfo.SetLayouts))
	l.info.UserDataRegCount = pushConstRegs + offset

	if l.info.UserDataRegCount > MaxUserDataRegs {
		return nil, log.Errf(ctx, ErrTooManyUserDataRegs,
			"Layout needs %d registers of %d", l.info.UserDataRegCount, MaxUserDataRegs)
	}
	return l, nil
}

// Destroy releases the layout.
func (l *Layout) Destroy(ctx context.Context) {
	l.setUserData = nil
	l.setLayouts = nil
}

// GetInfo returns the layout's register usage summary.
func (l *Layout) GetInfo() Info { return l.info }

// GetSetUserData returns the register placement of the given set.
func (l *Layout) GetSetUserData(setIndex int) SetUserDataLayout {
	return l.setUserData[setIndex]
}

// GetSetLayout returns the original descriptor set layout of the given set.
func (l *Layout) GetSetLayout(setIndex int) *DescriptorSetLayout {
	return l.setLayouts[setIndex]
}
