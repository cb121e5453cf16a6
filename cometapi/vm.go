// Copyright 2021-2022 Buf Technologies, Inc.
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

package cometapi

import (
	"github.com/cometmodel/cometmodel-go"
)

// VMDiskSelection chooses which virtual disks of a machine are backed up.
// See VMDiskInfo for the disks a machine reports.
type VMDiskSelection struct {
	MachineID       string
	IncludeAllDisks bool
	Disks           []VMDiskInfo
	ExcludedDisks   []string

	// UnknownFields holds members the server sent that aren't declared
	// above. They are written back unchanged on encode.
	UnknownFields cometmodel.Object
}

var vmDiskSelectionSchema = cometmodel.NewSchema(
	"VMDiskSelection",
	func(r *VMDiskSelection) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("MachineID", cometmodel.StringElem(), func(r *VMDiskSelection) *string { return &r.MachineID }),
	cometmodel.Scalar("IncludeAllDisks", cometmodel.BoolElem(), func(r *VMDiskSelection) *bool { return &r.IncludeAllDisks }),
	cometmodel.Slice("Disks", cometmodel.RecordElem(vmDiskInfoSchema), func(r *VMDiskSelection) *[]VMDiskInfo { return &r.Disks }, cometmodel.Always),
	cometmodel.Slice("ExcludedDisks", cometmodel.StringElem(), func(r *VMDiskSelection) *[]string { return &r.ExcludedDisks }, cometmodel.OmitIfUnset),
)

// NewVMDiskSelection returns a VMDiskSelection with every field at its default.
func NewVMDiskSelection() *VMDiskSelection { return vmDiskSelectionSchema.New() }

func (r *VMDiskSelection) DecodeValue(v cometmodel.Value) error { return vmDiskSelectionSchema.Decode(r, v) }
func (r *VMDiskSelection) EncodeValue() cometmodel.Value { return vmDiskSelectionSchema.Encode(r) }
func (r *VMDiskSelection) UnmarshalJSON(data []byte) error { return vmDiskSelectionSchema.DecodeJSON(r, data) }
func (r *VMDiskSelection) MarshalJSON() ([]byte, error) { return vmDiskSelectionSchema.EncodeJSON(r) }

// VMDiskInfo is one virtual disk attached to a machine.
type VMDiskInfo struct {
	Filename      string
	CapacityBytes uint64
	DiskType      int
	Controller    *string

	UnknownFields cometmodel.Object
}

var vmDiskInfoSchema = cometmodel.NewSchema(
	"VMDiskInfo",
	func(r *VMDiskInfo) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Filename", cometmodel.StringElem(), func(r *VMDiskInfo) *string { return &r.Filename }),
	cometmodel.Scalar("CapacityBytes", cometmodel.NumberElem[uint64](), func(r *VMDiskInfo) *uint64 { return &r.CapacityBytes }),
	cometmodel.Scalar("DiskType", cometmodel.NumberElem[int](), func(r *VMDiskInfo) *int { return &r.DiskType }),
	cometmodel.Optional("Controller", cometmodel.StringElem(), func(r *VMDiskInfo) **string { return &r.Controller }),
)

// NewVMDiskInfo returns a VMDiskInfo with every field at its default.
func NewVMDiskInfo() *VMDiskInfo { return vmDiskInfoSchema.New() }

func (r *VMDiskInfo) DecodeValue(v cometmodel.Value) error { return vmDiskInfoSchema.Decode(r, v) }
func (r *VMDiskInfo) EncodeValue() cometmodel.Value { return vmDiskInfoSchema.Encode(r) }
func (r *VMDiskInfo) UnmarshalJSON(data []byte) error { return vmDiskInfoSchema.DecodeJSON(r, data) }
func (r *VMDiskInfo) MarshalJSON() ([]byte, error) { return vmDiskInfoSchema.EncodeJSON(r) }

// VMwareMachineInfo is one machine found on a VMware host.
type VMwareMachineInfo struct {
	Name       string
	Datacenter string
	PowerState string
	CPUCores   int
	RAMBytes   uint64
	Disks      []VMDiskInfo

	UnknownFields cometmodel.Object
}

var vmwareMachineInfoSchema = cometmodel.NewSchema(
	"VMwareMachineInfo",
	func(r *VMwareMachineInfo) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Name", cometmodel.StringElem(), func(r *VMwareMachineInfo) *string { return &r.Name }),
	cometmodel.Scalar("Datacenter", cometmodel.StringElem(), func(r *VMwareMachineInfo) *string { return &r.Datacenter }),
	cometmodel.Scalar("PowerState", cometmodel.StringElem(), func(r *VMwareMachineInfo) *string { return &r.PowerState }),
	cometmodel.Scalar("CPUCores", cometmodel.NumberElem[int](), func(r *VMwareMachineInfo) *int { return &r.CPUCores }),
	cometmodel.Scalar("RAMBytes", cometmodel.NumberElem[uint64](), func(r *VMwareMachineInfo) *uint64 { return &r.RAMBytes }),
	cometmodel.Slice("Disks", cometmodel.RecordElem(vmDiskInfoSchema), func(r *VMwareMachineInfo) *[]VMDiskInfo { return &r.Disks }, cometmodel.Always),
)

// NewVMwareMachineInfo returns a VMwareMachineInfo with every field at its default.
func NewVMwareMachineInfo() *VMwareMachineInfo { return vmwareMachineInfoSchema.New() }

func (r *VMwareMachineInfo) DecodeValue(v cometmodel.Value) error { return vmwareMachineInfoSchema.Decode(r, v) }
func (r *VMwareMachineInfo) EncodeValue() cometmodel.Value { return vmwareMachineInfoSchema.Encode(r) }
func (r *VMwareMachineInfo) UnmarshalJSON(data []byte) error { return vmwareMachineInfoSchema.DecodeJSON(r, data) }
func (r *VMwareMachineInfo) MarshalJSON() ([]byte, error) { return vmwareMachineInfoSchema.EncodeJSON(r) }

// BrowseVMwareResponse lists the machines a device can see on a VMware
// host.
type BrowseVMwareResponse struct {
	Status          int64
	Message         string
	VirtualMachines []VMwareMachineInfo

	UnknownFields cometmodel.Object
}

var browseVMwareResponseSchema = cometmodel.NewSchema(
	"BrowseVMwareResponse",
	func(r *BrowseVMwareResponse) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Status", cometmodel.NumberElem[int64](), func(r *BrowseVMwareResponse) *int64 { return &r.Status }),
	cometmodel.Scalar("Message", cometmodel.StringElem(), func(r *BrowseVMwareResponse) *string { return &r.Message }),
	cometmodel.Slice("VirtualMachines", cometmodel.RecordElem(vmwareMachineInfoSchema), func(r *BrowseVMwareResponse) *[]VMwareMachineInfo { return &r.VirtualMachines }, cometmodel.OmitIfUnset),
)

// NewBrowseVMwareResponse returns a BrowseVMwareResponse with every field at its default.
func NewBrowseVMwareResponse() *BrowseVMwareResponse { return browseVMwareResponseSchema.New() }

func (r *BrowseVMwareResponse) DecodeValue(v cometmodel.Value) error { return browseVMwareResponseSchema.Decode(r, v) }
func (r *BrowseVMwareResponse) EncodeValue() cometmodel.Value { return browseVMwareResponseSchema.Encode(r) }
func (r *BrowseVMwareResponse) UnmarshalJSON(data []byte) error { return browseVMwareResponseSchema.DecodeJSON(r, data) }
func (r *BrowseVMwareResponse) MarshalJSON() ([]byte, error) { return browseVMwareResponseSchema.EncodeJSON(r) }
