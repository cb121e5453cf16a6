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

// DestinationLocation says where a storage vault keeps its data. Only the
// fields for the chosen DestinationType are meaningful.
type DestinationLocation struct {
	DestinationType int
	CometServer     string
	CometBucket     string
	CometBucketKey  string
	S3Server        string
	S3UsesTLS       bool
	S3AccessKey     string
	S3SecretKey     string
	S3BucketName    string
	S3Subdir        string
	S3CustomRegion  string
	S3UsesV2Signing bool
	SFTPServer      string
	SFTPUsername    string
	SFTPRemotePath  string
	SFTPPrivateKey  []byte
	LocalcopyPath   string

	// UnknownFields holds members the server sent that aren't declared
	// above. They are written back unchanged on encode.
	UnknownFields cometmodel.Object
}

var destinationLocationSchema = cometmodel.NewSchema(
	"DestinationLocation",
	func(r *DestinationLocation) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("DestinationType", cometmodel.NumberElem[int](), func(r *DestinationLocation) *int { return &r.DestinationType }),
	cometmodel.Scalar("CometServer", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.CometServer }),
	cometmodel.Scalar("CometBucket", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.CometBucket }),
	cometmodel.Scalar("CometBucketKey", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.CometBucketKey }),
	cometmodel.Scalar("S3Server", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.S3Server }),
	cometmodel.Scalar("S3UsesTLS", cometmodel.BoolElem(), func(r *DestinationLocation) *bool { return &r.S3UsesTLS }),
	cometmodel.Scalar("S3AccessKey", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.S3AccessKey }),
	cometmodel.Scalar("S3SecretKey", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.S3SecretKey }),
	cometmodel.Scalar("S3BucketName", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.S3BucketName }),
	cometmodel.Scalar("S3Subdir", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.S3Subdir }),
	cometmodel.Scalar("S3CustomRegion", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.S3CustomRegion }),
	cometmodel.Scalar("S3UsesV2Signing", cometmodel.BoolElem(), func(r *DestinationLocation) *bool { return &r.S3UsesV2Signing }),
	cometmodel.Scalar("SFTPServer", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.SFTPServer }),
	cometmodel.Scalar("SFTPUsername", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.SFTPUsername }),
	cometmodel.Scalar("SFTPRemotePath", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.SFTPRemotePath }),
	cometmodel.Bytes("SFTPPrivateKey", func(r *DestinationLocation) *[]byte { return &r.SFTPPrivateKey }, cometmodel.OmitIfUnset),
	cometmodel.Scalar("LocalcopyPath", cometmodel.StringElem(), func(r *DestinationLocation) *string { return &r.LocalcopyPath }),
)

// NewDestinationLocation returns a DestinationLocation with every field at its default.
func NewDestinationLocation() *DestinationLocation { return destinationLocationSchema.New() }

func (r *DestinationLocation) DecodeValue(v cometmodel.Value) error { return destinationLocationSchema.Decode(r, v) }
func (r *DestinationLocation) EncodeValue() cometmodel.Value { return destinationLocationSchema.Encode(r) }
func (r *DestinationLocation) UnmarshalJSON(data []byte) error { return destinationLocationSchema.DecodeJSON(r, data) }
func (r *DestinationLocation) MarshalJSON() ([]byte, error) { return destinationLocationSchema.EncodeJSON(r) }

// DestinationConfig is one storage vault attached to a user account.
type DestinationConfig struct {
	Description         string
	CreateTime          int64
	ModifyTime          int64
	Location            DestinationLocation
	Statistics          DestinationStatistics
	DefaultRetention    RetentionPolicy
	RebrandStorage      bool
	StorageLimitEnabled bool
	StorageLimitBytes   uint64
	FreeSpace           *StorageFreeSpaceInfo

	UnknownFields cometmodel.Object
}

var destinationConfigSchema = cometmodel.NewSchema(
	"DestinationConfig",
	func(r *DestinationConfig) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Description", cometmodel.StringElem(), func(r *DestinationConfig) *string { return &r.Description }),
	cometmodel.Scalar("CreateTime", cometmodel.NumberElem[int64](), func(r *DestinationConfig) *int64 { return &r.CreateTime }),
	cometmodel.Scalar("ModifyTime", cometmodel.NumberElem[int64](), func(r *DestinationConfig) *int64 { return &r.ModifyTime }),
	cometmodel.Scalar("Location", cometmodel.RecordElem(destinationLocationSchema), func(r *DestinationConfig) *DestinationLocation { return &r.Location }),
	cometmodel.Scalar("Statistics", cometmodel.RecordElem(destinationStatisticsSchema), func(r *DestinationConfig) *DestinationStatistics { return &r.Statistics }),
	cometmodel.Scalar("DefaultRetention", cometmodel.RecordElem(retentionPolicySchema), func(r *DestinationConfig) *RetentionPolicy { return &r.DefaultRetention }),
	cometmodel.Scalar("RebrandStorage", cometmodel.BoolElem(), func(r *DestinationConfig) *bool { return &r.RebrandStorage }),
	cometmodel.Scalar("StorageLimitEnabled", cometmodel.BoolElem(), func(r *DestinationConfig) *bool { return &r.StorageLimitEnabled }),
	cometmodel.Scalar("StorageLimitBytes", cometmodel.NumberElem[uint64](), func(r *DestinationConfig) *uint64 { return &r.StorageLimitBytes }),
	cometmodel.Optional("FreeSpace", cometmodel.RecordElem(storageFreeSpaceInfoSchema), func(r *DestinationConfig) **StorageFreeSpaceInfo { return &r.FreeSpace }),
)

// NewDestinationConfig returns a DestinationConfig with every field at its default.
func NewDestinationConfig() *DestinationConfig { return destinationConfigSchema.New() }

func (r *DestinationConfig) DecodeValue(v cometmodel.Value) error { return destinationConfigSchema.Decode(r, v) }
func (r *DestinationConfig) EncodeValue() cometmodel.Value { return destinationConfigSchema.Encode(r) }
func (r *DestinationConfig) UnmarshalJSON(data []byte) error { return destinationConfigSchema.DecodeJSON(r, data) }
func (r *DestinationConfig) MarshalJSON() ([]byte, error) { return destinationConfigSchema.EncodeJSON(r) }

// DestinationStatistics summarizes what a storage vault holds.
type DestinationStatistics struct {
	ClientProvidedSize        SizeMeasurement
	ClientProvidedContent     ContentMeasurement
	LastSuccessfulBackupJobID string
	LastBackupJobID           string

	UnknownFields cometmodel.Object
}

var destinationStatisticsSchema = cometmodel.NewSchema(
	"DestinationStatistics",
	func(r *DestinationStatistics) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("ClientProvidedSize", cometmodel.RecordElem(sizeMeasurementSchema), func(r *DestinationStatistics) *SizeMeasurement { return &r.ClientProvidedSize }),
	cometmodel.Scalar("ClientProvidedContent", cometmodel.RecordElem(contentMeasurementSchema), func(r *DestinationStatistics) *ContentMeasurement { return &r.ClientProvidedContent }),
	cometmodel.Scalar("LastSuccessfulBackupJobID", cometmodel.StringElem(), func(r *DestinationStatistics) *string { return &r.LastSuccessfulBackupJobID }),
	cometmodel.Scalar("LastBackupJobID", cometmodel.StringElem(), func(r *DestinationStatistics) *string { return &r.LastBackupJobID }),
)

// NewDestinationStatistics returns a DestinationStatistics with every field at its default.
func NewDestinationStatistics() *DestinationStatistics { return destinationStatisticsSchema.New() }

func (r *DestinationStatistics) DecodeValue(v cometmodel.Value) error { return destinationStatisticsSchema.Decode(r, v) }
func (r *DestinationStatistics) EncodeValue() cometmodel.Value { return destinationStatisticsSchema.Encode(r) }
func (r *DestinationStatistics) UnmarshalJSON(data []byte) error { return destinationStatisticsSchema.DecodeJSON(r, data) }
func (r *DestinationStatistics) MarshalJSON() ([]byte, error) { return destinationStatisticsSchema.EncodeJSON(r) }

// ContentMeasurement breaks a vault's size down by protected item.
type ContentMeasurement struct {
	MeasureStarted   int64
	MeasureCompleted int64
	Components       []ContentMeasurementComponent

	UnknownFields cometmodel.Object
}

var contentMeasurementSchema = cometmodel.NewSchema(
	"ContentMeasurement",
	func(r *ContentMeasurement) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("MeasureStarted", cometmodel.NumberElem[int64](), func(r *ContentMeasurement) *int64 { return &r.MeasureStarted }),
	cometmodel.Scalar("MeasureCompleted", cometmodel.NumberElem[int64](), func(r *ContentMeasurement) *int64 { return &r.MeasureCompleted }),
	cometmodel.Slice("Components", cometmodel.RecordElem(contentMeasurementComponentSchema), func(r *ContentMeasurement) *[]ContentMeasurementComponent { return &r.Components }, cometmodel.Always),
)

// NewContentMeasurement returns a ContentMeasurement with every field at its default.
func NewContentMeasurement() *ContentMeasurement { return contentMeasurementSchema.New() }

func (r *ContentMeasurement) DecodeValue(v cometmodel.Value) error { return contentMeasurementSchema.Decode(r, v) }
func (r *ContentMeasurement) EncodeValue() cometmodel.Value { return contentMeasurementSchema.Encode(r) }
func (r *ContentMeasurement) UnmarshalJSON(data []byte) error { return contentMeasurementSchema.DecodeJSON(r, data) }
func (r *ContentMeasurement) MarshalJSON() ([]byte, error) { return contentMeasurementSchema.EncodeJSON(r) }

// ContentMeasurementComponent is the share of a vault used by a set of
// protected items.
type ContentMeasurementComponent struct {
	Bytes   int64
	Sources []string

	UnknownFields cometmodel.Object
}

var contentMeasurementComponentSchema = cometmodel.NewSchema(
	"ContentMeasurementComponent",
	func(r *ContentMeasurementComponent) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Bytes", cometmodel.NumberElem[int64](), func(r *ContentMeasurementComponent) *int64 { return &r.Bytes }),
	cometmodel.Slice("Sources", cometmodel.StringElem(), func(r *ContentMeasurementComponent) *[]string { return &r.Sources }, cometmodel.Always),
)

// NewContentMeasurementComponent returns a ContentMeasurementComponent with every field at its default.
func NewContentMeasurementComponent() *ContentMeasurementComponent { return contentMeasurementComponentSchema.New() }

func (r *ContentMeasurementComponent) DecodeValue(v cometmodel.Value) error { return contentMeasurementComponentSchema.Decode(r, v) }
func (r *ContentMeasurementComponent) EncodeValue() cometmodel.Value { return contentMeasurementComponentSchema.Encode(r) }
func (r *ContentMeasurementComponent) UnmarshalJSON(data []byte) error { return contentMeasurementComponentSchema.DecodeJSON(r, data) }
func (r *ContentMeasurementComponent) MarshalJSON() ([]byte, error) { return contentMeasurementComponentSchema.EncodeJSON(r) }

// RetentionPolicy decides which snapshots a vault keeps.
type RetentionPolicy struct {
	Mode   int
	Ranges []RetentionRange

	UnknownFields cometmodel.Object
}

var retentionPolicySchema = cometmodel.NewSchema(
	"RetentionPolicy",
	func(r *RetentionPolicy) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Mode", cometmodel.NumberElem[int](), func(r *RetentionPolicy) *int { return &r.Mode }),
	cometmodel.Slice("Ranges", cometmodel.RecordElem(retentionRangeSchema), func(r *RetentionPolicy) *[]RetentionRange { return &r.Ranges }, cometmodel.Always),
)

// NewRetentionPolicy returns a RetentionPolicy with every field at its default.
func NewRetentionPolicy() *RetentionPolicy { return retentionPolicySchema.New() }

func (r *RetentionPolicy) DecodeValue(v cometmodel.Value) error { return retentionPolicySchema.Decode(r, v) }
func (r *RetentionPolicy) EncodeValue() cometmodel.Value { return retentionPolicySchema.Encode(r) }
func (r *RetentionPolicy) UnmarshalJSON(data []byte) error { return retentionPolicySchema.DecodeJSON(r, data) }
func (r *RetentionPolicy) MarshalJSON() ([]byte, error) { return retentionPolicySchema.EncodeJSON(r) }

// RetentionRange is one rule of a RetentionPolicy. Which counters apply
// depends on Type.
type RetentionRange struct {
	Type        int
	Timestamp   int64
	Jobs        int64
	Days        int64
	Weeks       int64
	Months      int64
	Years       int64
	WeekOffset  int64
	MonthOffset int64
	YearOffset  int64

	UnknownFields cometmodel.Object
}

var retentionRangeSchema = cometmodel.NewSchema(
	"RetentionRange",
	func(r *RetentionRange) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Type", cometmodel.NumberElem[int](), func(r *RetentionRange) *int { return &r.Type }),
	cometmodel.Scalar("Timestamp", cometmodel.NumberElem[int64](), func(r *RetentionRange) *int64 { return &r.Timestamp }),
	cometmodel.Scalar("Jobs", cometmodel.NumberElem[int64](), func(r *RetentionRange) *int64 { return &r.Jobs }),
	cometmodel.Scalar("Days", cometmodel.NumberElem[int64](), func(r *RetentionRange) *int64 { return &r.Days }),
	cometmodel.Scalar("Weeks", cometmodel.NumberElem[int64](), func(r *RetentionRange) *int64 { return &r.Weeks }),
	cometmodel.Scalar("Months", cometmodel.NumberElem[int64](), func(r *RetentionRange) *int64 { return &r.Months }),
	cometmodel.Scalar("Years", cometmodel.NumberElem[int64](), func(r *RetentionRange) *int64 { return &r.Years }),
	cometmodel.Scalar("WeekOffset", cometmodel.NumberElem[int64](), func(r *RetentionRange) *int64 { return &r.WeekOffset }),
	cometmodel.Scalar("MonthOffset", cometmodel.NumberElem[int64](), func(r *RetentionRange) *int64 { return &r.MonthOffset }),
	cometmodel.Scalar("YearOffset", cometmodel.NumberElem[int64](), func(r *RetentionRange) *int64 { return &r.YearOffset }),
)

// NewRetentionRange returns a RetentionRange with every field at its default.
func NewRetentionRange() *RetentionRange { return retentionRangeSchema.New() }

func (r *RetentionRange) DecodeValue(v cometmodel.Value) error { return retentionRangeSchema.Decode(r, v) }
func (r *RetentionRange) EncodeValue() cometmodel.Value { return retentionRangeSchema.Encode(r) }
func (r *RetentionRange) UnmarshalJSON(data []byte) error { return retentionRangeSchema.DecodeJSON(r, data) }
func (r *RetentionRange) MarshalJSON() ([]byte, error) { return retentionRangeSchema.EncodeJSON(r) }

// StorageFreeSpaceInfo reports the space left in a storage location.
type StorageFreeSpaceInfo struct {
	StorageType    int
	Unlimited      bool
	UsedPercent    float64
	AvailableBytes uint64

	UnknownFields cometmodel.Object
}

var storageFreeSpaceInfoSchema = cometmodel.NewSchema(
	"StorageFreeSpaceInfo",
	func(r *StorageFreeSpaceInfo) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("StorageType", cometmodel.NumberElem[int](), func(r *StorageFreeSpaceInfo) *int { return &r.StorageType }),
	cometmodel.Scalar("Unlimited", cometmodel.BoolElem(), func(r *StorageFreeSpaceInfo) *bool { return &r.Unlimited }),
	cometmodel.Scalar("UsedPercent", cometmodel.NumberElem[float64](), func(r *StorageFreeSpaceInfo) *float64 { return &r.UsedPercent }),
	cometmodel.Scalar("AvailableBytes", cometmodel.NumberElem[uint64](), func(r *StorageFreeSpaceInfo) *uint64 { return &r.AvailableBytes }),
)

// NewStorageFreeSpaceInfo returns a StorageFreeSpaceInfo with every field at its default.
func NewStorageFreeSpaceInfo() *StorageFreeSpaceInfo { return storageFreeSpaceInfoSchema.New() }

func (r *StorageFreeSpaceInfo) DecodeValue(v cometmodel.Value) error { return storageFreeSpaceInfoSchema.Decode(r, v) }
func (r *StorageFreeSpaceInfo) EncodeValue() cometmodel.Value { return storageFreeSpaceInfoSchema.Encode(r) }
func (r *StorageFreeSpaceInfo) UnmarshalJSON(data []byte) error { return storageFreeSpaceInfoSchema.DecodeJSON(r, data) }
func (r *StorageFreeSpaceInfo) MarshalJSON() ([]byte, error) { return storageFreeSpaceInfoSchema.EncodeJSON(r) }
