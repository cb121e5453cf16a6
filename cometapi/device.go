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

// DeviceConfig is one device registered to a user account.
type DeviceConfig struct {
	FriendlyName     string
	RegistrationTime int64
	PlatformVersion  OSInfo
	// Keyed by protected item GUID.
	Sources        map[string]SourceBasicInfo
	DeviceTimezone *string
	ClientVersion  string

	// UnknownFields holds members the server sent that aren't declared
	// above. They are written back unchanged on encode.
	UnknownFields cometmodel.Object
}

var deviceConfigSchema = cometmodel.NewSchema(
	"DeviceConfig",
	func(r *DeviceConfig) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("FriendlyName", cometmodel.StringElem(), func(r *DeviceConfig) *string { return &r.FriendlyName }),
	cometmodel.Scalar("RegistrationTime", cometmodel.NumberElem[int64](), func(r *DeviceConfig) *int64 { return &r.RegistrationTime }),
	cometmodel.Scalar("PlatformVersion", cometmodel.RecordElem(osInfoSchema), func(r *DeviceConfig) *OSInfo { return &r.PlatformVersion }),
	cometmodel.Map("Sources", cometmodel.RecordElem(sourceBasicInfoSchema), func(r *DeviceConfig) *map[string]SourceBasicInfo { return &r.Sources }, cometmodel.OmitIfUnset),
	cometmodel.Optional("DeviceTimezone", cometmodel.StringElem(), func(r *DeviceConfig) **string { return &r.DeviceTimezone }),
	cometmodel.Scalar("ClientVersion", cometmodel.StringElem(), func(r *DeviceConfig) *string { return &r.ClientVersion }),
)

// NewDeviceConfig returns a DeviceConfig with every field at its default.
func NewDeviceConfig() *DeviceConfig { return deviceConfigSchema.New() }

func (r *DeviceConfig) DecodeValue(v cometmodel.Value) error { return deviceConfigSchema.Decode(r, v) }
func (r *DeviceConfig) EncodeValue() cometmodel.Value { return deviceConfigSchema.Encode(r) }
func (r *DeviceConfig) UnmarshalJSON(data []byte) error { return deviceConfigSchema.DecodeJSON(r, data) }
func (r *DeviceConfig) MarshalJSON() ([]byte, error) { return deviceConfigSchema.EncodeJSON(r) }

// OSInfo describes the operating system of a device. Unlike most records,
// its keys are lower case on the wire.
type OSInfo struct {
	Version      string
	Distribution string
	OS           string
	Arch         string

	UnknownFields cometmodel.Object
}

var osInfoSchema = cometmodel.NewSchema(
	"OSInfo",
	func(r *OSInfo) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("version", cometmodel.StringElem(), func(r *OSInfo) *string { return &r.Version }),
	cometmodel.Scalar("distribution", cometmodel.StringElem(), func(r *OSInfo) *string { return &r.Distribution }),
	cometmodel.Scalar("os", cometmodel.StringElem(), func(r *OSInfo) *string { return &r.OS }),
	cometmodel.Scalar("arch", cometmodel.StringElem(), func(r *OSInfo) *string { return &r.Arch }),
)

// NewOSInfo returns an OSInfo with every field at its default.
func NewOSInfo() *OSInfo { return osInfoSchema.New() }

func (r *OSInfo) DecodeValue(v cometmodel.Value) error { return osInfoSchema.Decode(r, v) }
func (r *OSInfo) EncodeValue() cometmodel.Value { return osInfoSchema.Encode(r) }
func (r *OSInfo) UnmarshalJSON(data []byte) error { return osInfoSchema.DecodeJSON(r, data) }
func (r *OSInfo) MarshalJSON() ([]byte, error) { return osInfoSchema.EncodeJSON(r) }

// SourceBasicInfo is the summary of a protected item reported by a device.
type SourceBasicInfo struct {
	Description      string
	O365AccountCount int64
	Size             uint64

	UnknownFields cometmodel.Object
}

var sourceBasicInfoSchema = cometmodel.NewSchema(
	"SourceBasicInfo",
	func(r *SourceBasicInfo) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Description", cometmodel.StringElem(), func(r *SourceBasicInfo) *string { return &r.Description }),
	cometmodel.Scalar("O365AccountCount", cometmodel.NumberElem[int64](), func(r *SourceBasicInfo) *int64 { return &r.O365AccountCount }),
	cometmodel.Scalar("Size", cometmodel.NumberElem[uint64](), func(r *SourceBasicInfo) *uint64 { return &r.Size }),
)

// NewSourceBasicInfo returns a SourceBasicInfo with every field at its default.
func NewSourceBasicInfo() *SourceBasicInfo { return sourceBasicInfoSchema.New() }

func (r *SourceBasicInfo) DecodeValue(v cometmodel.Value) error { return sourceBasicInfoSchema.Decode(r, v) }
func (r *SourceBasicInfo) EncodeValue() cometmodel.Value { return sourceBasicInfoSchema.Encode(r) }
func (r *SourceBasicInfo) UnmarshalJSON(data []byte) error { return sourceBasicInfoSchema.DecodeJSON(r, data) }
func (r *SourceBasicInfo) MarshalJSON() ([]byte, error) { return sourceBasicInfoSchema.EncodeJSON(r) }

// SourceConfig is the full definition of a protected item.
type SourceConfig struct {
	Engine      string
	Description string
	OwnerDevice string
	CreateTime  int64
	ModifyTime  int64
	PreExec     []string
	ThawExec    []string
	PostExec    []string
	// Engine-specific settings; the keys depend on Engine.
	EngineProps                  map[string]string
	Exclusions                   []ExtraFileExclusion
	OverrideDestinationRetention map[string]RetentionPolicy
	Statistics                   *SourceStatistics

	UnknownFields cometmodel.Object
}

var sourceConfigSchema = cometmodel.NewSchema(
	"SourceConfig",
	func(r *SourceConfig) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Engine", cometmodel.StringElem(), func(r *SourceConfig) *string { return &r.Engine }),
	cometmodel.Scalar("Description", cometmodel.StringElem(), func(r *SourceConfig) *string { return &r.Description }),
	cometmodel.Scalar("OwnerDevice", cometmodel.StringElem(), func(r *SourceConfig) *string { return &r.OwnerDevice }),
	cometmodel.Scalar("CreateTime", cometmodel.NumberElem[int64](), func(r *SourceConfig) *int64 { return &r.CreateTime }),
	cometmodel.Scalar("ModifyTime", cometmodel.NumberElem[int64](), func(r *SourceConfig) *int64 { return &r.ModifyTime }),
	cometmodel.Slice("PreExec", cometmodel.StringElem(), func(r *SourceConfig) *[]string { return &r.PreExec }, cometmodel.Always),
	cometmodel.Slice("ThawExec", cometmodel.StringElem(), func(r *SourceConfig) *[]string { return &r.ThawExec }, cometmodel.Always),
	cometmodel.Slice("PostExec", cometmodel.StringElem(), func(r *SourceConfig) *[]string { return &r.PostExec }, cometmodel.Always),
	cometmodel.Map("EngineProps", cometmodel.StringElem(), func(r *SourceConfig) *map[string]string { return &r.EngineProps }, cometmodel.Always),
	cometmodel.Slice("ExtraFileExclusions", cometmodel.RecordElem(extraFileExclusionSchema), func(r *SourceConfig) *[]ExtraFileExclusion { return &r.Exclusions }, cometmodel.OmitIfUnset),
	cometmodel.Map("OverrideDestinationRetention", cometmodel.RecordElem(retentionPolicySchema), func(r *SourceConfig) *map[string]RetentionPolicy { return &r.OverrideDestinationRetention }, cometmodel.OmitIfUnset),
	cometmodel.Optional("Statistics", cometmodel.RecordElem(sourceStatisticsSchema), func(r *SourceConfig) **SourceStatistics { return &r.Statistics }),
)

// NewSourceConfig returns a SourceConfig with every field at its default.
func NewSourceConfig() *SourceConfig { return sourceConfigSchema.New() }

func (r *SourceConfig) DecodeValue(v cometmodel.Value) error { return sourceConfigSchema.Decode(r, v) }
func (r *SourceConfig) EncodeValue() cometmodel.Value { return sourceConfigSchema.Encode(r) }
func (r *SourceConfig) UnmarshalJSON(data []byte) error { return sourceConfigSchema.DecodeJSON(r, data) }
func (r *SourceConfig) MarshalJSON() ([]byte, error) { return sourceConfigSchema.EncodeJSON(r) }

// SourceStatistics records the most recent jobs of a protected item.
type SourceStatistics struct {
	LastStartedJob    BackupJobDetail
	LastSuccessfulJob BackupJobDetail

	UnknownFields cometmodel.Object
}

var sourceStatisticsSchema = cometmodel.NewSchema(
	"SourceStatistics",
	func(r *SourceStatistics) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("LastStartedJob", cometmodel.RecordElem(backupJobDetailSchema), func(r *SourceStatistics) *BackupJobDetail { return &r.LastStartedJob }),
	cometmodel.Scalar("LastSuccessfulJob", cometmodel.RecordElem(backupJobDetailSchema), func(r *SourceStatistics) *BackupJobDetail { return &r.LastSuccessfulJob }),
)

// NewSourceStatistics returns a SourceStatistics with every field at its default.
func NewSourceStatistics() *SourceStatistics { return sourceStatisticsSchema.New() }

func (r *SourceStatistics) DecodeValue(v cometmodel.Value) error { return sourceStatisticsSchema.Decode(r, v) }
func (r *SourceStatistics) EncodeValue() cometmodel.Value { return sourceStatisticsSchema.Encode(r) }
func (r *SourceStatistics) UnmarshalJSON(data []byte) error { return sourceStatisticsSchema.DecodeJSON(r, data) }
func (r *SourceStatistics) MarshalJSON() ([]byte, error) { return sourceStatisticsSchema.EncodeJSON(r) }

// ExtraFileExclusion is one path pattern excluded from a protected item.
type ExtraFileExclusion struct {
	Exclude   string
	Regex     bool
	Recursive bool

	UnknownFields cometmodel.Object
}

var extraFileExclusionSchema = cometmodel.NewSchema(
	"ExtraFileExclusion",
	func(r *ExtraFileExclusion) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Exclude", cometmodel.StringElem(), func(r *ExtraFileExclusion) *string { return &r.Exclude }),
	cometmodel.Scalar("Regex", cometmodel.BoolElem(), func(r *ExtraFileExclusion) *bool { return &r.Regex }),
	cometmodel.Scalar("Recursive", cometmodel.BoolElem(), func(r *ExtraFileExclusion) *bool { return &r.Recursive }),
)

// NewExtraFileExclusion returns an ExtraFileExclusion with every field at its default.
func NewExtraFileExclusion() *ExtraFileExclusion { return extraFileExclusionSchema.New() }

func (r *ExtraFileExclusion) DecodeValue(v cometmodel.Value) error { return extraFileExclusionSchema.Decode(r, v) }
func (r *ExtraFileExclusion) EncodeValue() cometmodel.Value { return extraFileExclusionSchema.Encode(r) }
func (r *ExtraFileExclusion) UnmarshalJSON(data []byte) error { return extraFileExclusionSchema.DecodeJSON(r, data) }
func (r *ExtraFileExclusion) MarshalJSON() ([]byte, error) { return extraFileExclusionSchema.EncodeJSON(r) }
