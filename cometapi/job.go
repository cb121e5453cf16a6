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

// BackupJobDetail is the server's record of one job run by a device.
type BackupJobDetail struct {
	GUID            string
	Classification  int
	Status          int
	Username        string
	SourceGUID      string
	DestinationGUID string
	DeviceID        string
	SnapshotID      *string
	// Unix timestamps, in seconds. EndTime is zero while the job runs.
	StartTime         int64
	EndTime           int64
	LastHeartbeatTime int64
	TotalDirectories  uint64
	TotalFiles        uint64
	TotalSize         uint64
	TotalChunks       uint64
	UploadSize        uint64
	DownloadSize      uint64
	TotalVMCount      *int64
	CancellationID    string
	Progress          *BackupJobProgress

	// UnknownFields holds members the server sent that aren't declared
	// above. They are written back unchanged on encode.
	UnknownFields cometmodel.Object
}

var backupJobDetailSchema = cometmodel.NewSchema(
	"BackupJobDetail",
	func(r *BackupJobDetail) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("GUID", cometmodel.StringElem(), func(r *BackupJobDetail) *string { return &r.GUID }),
	cometmodel.Scalar("Classification", cometmodel.NumberElem[int](), func(r *BackupJobDetail) *int { return &r.Classification }),
	cometmodel.Scalar("Status", cometmodel.NumberElem[int](), func(r *BackupJobDetail) *int { return &r.Status }),
	cometmodel.Scalar("Username", cometmodel.StringElem(), func(r *BackupJobDetail) *string { return &r.Username }),
	cometmodel.Scalar("SourceGUID", cometmodel.StringElem(), func(r *BackupJobDetail) *string { return &r.SourceGUID }),
	cometmodel.Scalar("DestinationGUID", cometmodel.StringElem(), func(r *BackupJobDetail) *string { return &r.DestinationGUID }),
	cometmodel.Scalar("DeviceID", cometmodel.StringElem(), func(r *BackupJobDetail) *string { return &r.DeviceID }),
	cometmodel.Optional("SnapshotID", cometmodel.StringElem(), func(r *BackupJobDetail) **string { return &r.SnapshotID }),
	cometmodel.Scalar("StartTime", cometmodel.NumberElem[int64](), func(r *BackupJobDetail) *int64 { return &r.StartTime }),
	cometmodel.Scalar("EndTime", cometmodel.NumberElem[int64](), func(r *BackupJobDetail) *int64 { return &r.EndTime }),
	cometmodel.Scalar("LastHeartbeatTime", cometmodel.NumberElem[int64](), func(r *BackupJobDetail) *int64 { return &r.LastHeartbeatTime }),
	cometmodel.Scalar("TotalDirectories", cometmodel.NumberElem[uint64](), func(r *BackupJobDetail) *uint64 { return &r.TotalDirectories }),
	cometmodel.Scalar("TotalFiles", cometmodel.NumberElem[uint64](), func(r *BackupJobDetail) *uint64 { return &r.TotalFiles }),
	cometmodel.Scalar("TotalSize", cometmodel.NumberElem[uint64](), func(r *BackupJobDetail) *uint64 { return &r.TotalSize }),
	cometmodel.Scalar("TotalChunks", cometmodel.NumberElem[uint64](), func(r *BackupJobDetail) *uint64 { return &r.TotalChunks }),
	cometmodel.Scalar("UploadSize", cometmodel.NumberElem[uint64](), func(r *BackupJobDetail) *uint64 { return &r.UploadSize }),
	cometmodel.Scalar("DownloadSize", cometmodel.NumberElem[uint64](), func(r *BackupJobDetail) *uint64 { return &r.DownloadSize }),
	cometmodel.Optional("TotalVmCount", cometmodel.NumberElem[int64](), func(r *BackupJobDetail) **int64 { return &r.TotalVMCount }),
	cometmodel.Scalar("CancellationID", cometmodel.StringElem(), func(r *BackupJobDetail) *string { return &r.CancellationID }),
	cometmodel.Optional("Progress", cometmodel.RecordElem(backupJobProgressSchema), func(r *BackupJobDetail) **BackupJobProgress { return &r.Progress }),
)

// NewBackupJobDetail returns a BackupJobDetail with every field at its default.
func NewBackupJobDetail() *BackupJobDetail { return backupJobDetailSchema.New() }

func (r *BackupJobDetail) DecodeValue(v cometmodel.Value) error { return backupJobDetailSchema.Decode(r, v) }
func (r *BackupJobDetail) EncodeValue() cometmodel.Value { return backupJobDetailSchema.Encode(r) }
func (r *BackupJobDetail) UnmarshalJSON(data []byte) error { return backupJobDetailSchema.DecodeJSON(r, data) }
func (r *BackupJobDetail) MarshalJSON() ([]byte, error) { return backupJobDetailSchema.EncodeJSON(r) }

// BackupJobProgress is the latest progress report for a running job.
type BackupJobProgress struct {
	Counter  int64
	SentTime int64
	// The server spells this key "RecievedTime".
	ReceivedTime int64
	BytesDone    int64
	ItemsDone    int64
	BytesTotal   int64
	ItemsTotal   int64

	UnknownFields cometmodel.Object
}

var backupJobProgressSchema = cometmodel.NewSchema(
	"BackupJobProgress",
	func(r *BackupJobProgress) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Counter", cometmodel.NumberElem[int64](), func(r *BackupJobProgress) *int64 { return &r.Counter }),
	cometmodel.Scalar("SentTime", cometmodel.NumberElem[int64](), func(r *BackupJobProgress) *int64 { return &r.SentTime }),
	cometmodel.Scalar("RecievedTime", cometmodel.NumberElem[int64](), func(r *BackupJobProgress) *int64 { return &r.ReceivedTime }),
	cometmodel.Scalar("BytesDone", cometmodel.NumberElem[int64](), func(r *BackupJobProgress) *int64 { return &r.BytesDone }),
	cometmodel.Scalar("ItemsDone", cometmodel.NumberElem[int64](), func(r *BackupJobProgress) *int64 { return &r.ItemsDone }),
	cometmodel.Scalar("BytesTotal", cometmodel.NumberElem[int64](), func(r *BackupJobProgress) *int64 { return &r.BytesTotal }),
	cometmodel.Scalar("ItemsTotal", cometmodel.NumberElem[int64](), func(r *BackupJobProgress) *int64 { return &r.ItemsTotal }),
)

// NewBackupJobProgress returns a BackupJobProgress with every field at its default.
func NewBackupJobProgress() *BackupJobProgress { return backupJobProgressSchema.New() }

func (r *BackupJobProgress) DecodeValue(v cometmodel.Value) error { return backupJobProgressSchema.Decode(r, v) }
func (r *BackupJobProgress) EncodeValue() cometmodel.Value { return backupJobProgressSchema.Encode(r) }
func (r *BackupJobProgress) UnmarshalJSON(data []byte) error { return backupJobProgressSchema.DecodeJSON(r, data) }
func (r *BackupJobProgress) MarshalJSON() ([]byte, error) { return backupJobProgressSchema.EncodeJSON(r) }
