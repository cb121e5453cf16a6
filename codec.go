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

package cometmodel

import (
	"fmt"
)

const codecNameJSON = "json"

// A Codec can marshal records to and from bytes. It matches the codec
// interfaces of common RPC frameworks, so records can travel over them.
type Codec interface {
	Name() string
	Marshal(any) ([]byte, error)
	Unmarshal([]byte, any) error
}

// NewJSONCodec returns a Codec that reads and writes JSON. It accepts any
// Record, Value, or *Object; Unmarshal also accepts *Value.
//
// Unmarshal decodes into the supplied record without resetting it first.
func NewJSONCodec(options ...CodecOption) Codec {
	codec := &jsonCodec{}
	for _, opt := range options {
		opt.applyToCodec(codec)
	}
	return codec
}

type jsonCodec struct {
	prefix string
	indent string
}

var _ Codec = (*jsonCodec)(nil)

func (c *jsonCodec) Name() string { return codecNameJSON }

func (c *jsonCodec) Marshal(message any) ([]byte, error) {
	var value Value
	switch message := message.(type) {
	case Record:
		value = message.EncodeValue()
	case Value:
		value = message
	case *Object:
		value = ObjectValue(message)
	default:
		return nil, errNotRecord(message)
	}
	compact := value.AppendJSON(nil)
	if c.prefix == "" && c.indent == "" {
		return compact, nil
	}
	return indentJSON(compact, c.prefix, c.indent)
}

func (c *jsonCodec) Unmarshal(data []byte, message any) error {
	switch message := message.(type) {
	case Record:
		value, err := ParseJSON(data)
		if err != nil {
			return err
		}
		return message.DecodeValue(value)
	case *Value:
		return message.UnmarshalJSON(data)
	case *Object:
		value, err := ParseJSON(data)
		if err != nil {
			return err
		}
		obj, ok := value.Object()
		if !ok {
			return errTypeMismatch("object", value)
		}
		*message = *obj
		return nil
	}
	return errNotRecord(message)
}

func errNotRecord(m any) error {
	return fmt.Errorf("%T doesn't implement cometmodel.Record", m)
}
