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

// BucketProperties describes one storage bucket hosted by the server.
type BucketProperties struct {
	OrganizationID string
	ReadWriteKey   string
	// One of the bucket key format constants.
	ReadWriteKeyFormat int
	// Unix timestamps, in seconds.
	CreateTime   int64
	LastActivity int64
	Size         *SizeMeasurement

	// UnknownFields holds members the server sent that aren't declared
	// above. They are written back unchanged on encode.
	UnknownFields cometmodel.Object
}

var bucketPropertiesSchema = cometmodel.NewSchema(
	"BucketProperties",
	func(r *BucketProperties) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("OrganizationID", cometmodel.StringElem(), func(r *BucketProperties) *string { return &r.OrganizationID }),
	cometmodel.Scalar("ReadWriteKey", cometmodel.StringElem(), func(r *BucketProperties) *string { return &r.ReadWriteKey }),
	cometmodel.Scalar("ReadWriteKeyFormat", cometmodel.NumberElem[int](), func(r *BucketProperties) *int { return &r.ReadWriteKeyFormat }),
	cometmodel.Scalar("CreateTime", cometmodel.NumberElem[int64](), func(r *BucketProperties) *int64 { return &r.CreateTime }),
	cometmodel.Scalar("LastActivity", cometmodel.NumberElem[int64](), func(r *BucketProperties) *int64 { return &r.LastActivity }),
	cometmodel.Optional("Size", cometmodel.RecordElem(sizeMeasurementSchema), func(r *BucketProperties) **SizeMeasurement { return &r.Size }),
)

// NewBucketProperties returns a BucketProperties with every field at its default.
func NewBucketProperties() *BucketProperties { return bucketPropertiesSchema.New() }

func (r *BucketProperties) DecodeValue(v cometmodel.Value) error { return bucketPropertiesSchema.Decode(r, v) }
func (r *BucketProperties) EncodeValue() cometmodel.Value { return bucketPropertiesSchema.Encode(r) }
func (r *BucketProperties) UnmarshalJSON(data []byte) error { return bucketPropertiesSchema.DecodeJSON(r, data) }
func (r *BucketProperties) MarshalJSON() ([]byte, error) { return bucketPropertiesSchema.EncodeJSON(r) }

// BucketUsageInfo reports which user accounts reference a bucket.
type BucketUsageInfo struct {
	ExistsOnServer bool
	InUseBy        []string

	UnknownFields cometmodel.Object
}

var bucketUsageInfoSchema = cometmodel.NewSchema(
	"BucketUsageInfo",
	func(r *BucketUsageInfo) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("ExistsOnServer", cometmodel.BoolElem(), func(r *BucketUsageInfo) *bool { return &r.ExistsOnServer }),
	cometmodel.Slice("InUseBy", cometmodel.StringElem(), func(r *BucketUsageInfo) *[]string { return &r.InUseBy }, cometmodel.OmitIfUnset),
)

// NewBucketUsageInfo returns a BucketUsageInfo with every field at its default.
func NewBucketUsageInfo() *BucketUsageInfo { return bucketUsageInfoSchema.New() }

func (r *BucketUsageInfo) DecodeValue(v cometmodel.Value) error { return bucketUsageInfoSchema.Decode(r, v) }
func (r *BucketUsageInfo) EncodeValue() cometmodel.Value { return bucketUsageInfoSchema.Encode(r) }
func (r *BucketUsageInfo) UnmarshalJSON(data []byte) error { return bucketUsageInfoSchema.DecodeJSON(r, data) }
func (r *BucketUsageInfo) MarshalJSON() ([]byte, error) { return bucketUsageInfoSchema.EncodeJSON(r) }

// SizeMeasurement is a byte count along with when it was measured.
type SizeMeasurement struct {
	Size             uint64
	MeasureStarted   int64
	MeasureCompleted int64

	UnknownFields cometmodel.Object
}

var sizeMeasurementSchema = cometmodel.NewSchema(
	"SizeMeasurement",
	func(r *SizeMeasurement) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Size", cometmodel.NumberElem[uint64](), func(r *SizeMeasurement) *uint64 { return &r.Size }),
	cometmodel.Scalar("MeasureStarted", cometmodel.NumberElem[int64](), func(r *SizeMeasurement) *int64 { return &r.MeasureStarted }),
	cometmodel.Scalar("MeasureCompleted", cometmodel.NumberElem[int64](), func(r *SizeMeasurement) *int64 { return &r.MeasureCompleted }),
)

// NewSizeMeasurement returns a SizeMeasurement with every field at its default.
func NewSizeMeasurement() *SizeMeasurement { return sizeMeasurementSchema.New() }

func (r *SizeMeasurement) DecodeValue(v cometmodel.Value) error { return sizeMeasurementSchema.Decode(r, v) }
func (r *SizeMeasurement) EncodeValue() cometmodel.Value { return sizeMeasurementSchema.Encode(r) }
func (r *SizeMeasurement) UnmarshalJSON(data []byte) error { return sizeMeasurementSchema.DecodeJSON(r, data) }
func (r *SizeMeasurement) MarshalJSON() ([]byte, error) { return sizeMeasurementSchema.EncodeJSON(r) }
