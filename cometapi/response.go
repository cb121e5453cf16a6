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

// CometAPIResponseMessage is the generic status reply returned by most
// mutating API calls. A Status of 200 indicates success.
type CometAPIResponseMessage struct {
	Status  int64
	Message string

	// UnknownFields holds members the server sent that aren't declared
	// above. They are written back unchanged on encode.
	UnknownFields cometmodel.Object
}

var cometAPIResponseMessageSchema = cometmodel.NewSchema(
	"CometAPIResponseMessage",
	func(r *CometAPIResponseMessage) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Status", cometmodel.NumberElem[int64](), func(r *CometAPIResponseMessage) *int64 { return &r.Status }),
	cometmodel.Scalar("Message", cometmodel.StringElem(), func(r *CometAPIResponseMessage) *string { return &r.Message }),
)

// NewCometAPIResponseMessage returns a CometAPIResponseMessage with every field at its default.
func NewCometAPIResponseMessage() *CometAPIResponseMessage { return cometAPIResponseMessageSchema.New() }

func (r *CometAPIResponseMessage) DecodeValue(v cometmodel.Value) error { return cometAPIResponseMessageSchema.Decode(r, v) }
func (r *CometAPIResponseMessage) EncodeValue() cometmodel.Value { return cometAPIResponseMessageSchema.Encode(r) }
func (r *CometAPIResponseMessage) UnmarshalJSON(data []byte) error { return cometAPIResponseMessageSchema.DecodeJSON(r, data) }
func (r *CometAPIResponseMessage) MarshalJSON() ([]byte, error) { return cometAPIResponseMessageSchema.EncodeJSON(r) }

// AddBucketResponseMessage is returned when a new storage bucket is created
// on the server. NewBucketKey is the bucket's read-write key.
type AddBucketResponseMessage struct {
	Status       int64
	Message      string
	NewBucketID  string
	NewBucketKey string

	UnknownFields cometmodel.Object
}

var addBucketResponseMessageSchema = cometmodel.NewSchema(
	"AddBucketResponseMessage",
	func(r *AddBucketResponseMessage) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Status", cometmodel.NumberElem[int64](), func(r *AddBucketResponseMessage) *int64 { return &r.Status }),
	cometmodel.Scalar("Message", cometmodel.StringElem(), func(r *AddBucketResponseMessage) *string { return &r.Message }),
	cometmodel.Scalar("NewBucketID", cometmodel.StringElem(), func(r *AddBucketResponseMessage) *string { return &r.NewBucketID }),
	cometmodel.Scalar("NewBucketKey", cometmodel.StringElem(), func(r *AddBucketResponseMessage) *string { return &r.NewBucketKey }),
)

// NewAddBucketResponseMessage returns an AddBucketResponseMessage with every field at its default.
func NewAddBucketResponseMessage() *AddBucketResponseMessage { return addBucketResponseMessageSchema.New() }

func (r *AddBucketResponseMessage) DecodeValue(v cometmodel.Value) error { return addBucketResponseMessageSchema.Decode(r, v) }
func (r *AddBucketResponseMessage) EncodeValue() cometmodel.Value { return addBucketResponseMessageSchema.Encode(r) }
func (r *AddBucketResponseMessage) UnmarshalJSON(data []byte) error { return addBucketResponseMessageSchema.DecodeJSON(r, data) }
func (r *AddBucketResponseMessage) MarshalJSON() ([]byte, error) { return addBucketResponseMessageSchema.EncodeJSON(r) }
