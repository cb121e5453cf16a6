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
	"sort"

	"google.golang.org/protobuf/types/known/structpb"
)

// ToProto converts the value to a protobuf Value, for handing unknown members
// or opaque fields to protobuf-based services. Protobuf stores numbers as
// float64, so large integers may lose precision, and protobuf objects don't
// keep member order.
func (v Value) ToProto() (*structpb.Value, error) {
	switch v.kind {
	case KindNull:
		return structpb.NewNullValue(), nil
	case KindBool:
		return structpb.NewBoolValue(v.boolean), nil
	case KindNumber:
		f, ok := v.Float64()
		if !ok {
			return nil, errorf(CodeTypeMismatch, "number %q doesn't fit in a float64", v.text)
		}
		return structpb.NewNumberValue(f), nil
	case KindString:
		return structpb.NewStringValue(v.text), nil
	case KindArray:
		list := &structpb.ListValue{Values: make([]*structpb.Value, len(v.array))}
		for i, elem := range v.array {
			converted, err := elem.ToProto()
			if err != nil {
				return nil, atIndex(err, i)
			}
			list.Values[i] = converted
		}
		return structpb.NewListValue(list), nil
	case KindObject:
		fields := make(map[string]*structpb.Value, v.object.Len())
		var err error
		v.object.Range(func(key string, member Value) bool {
			var converted *structpb.Value
			converted, err = member.ToProto()
			if err != nil {
				err = atKey(err, key)
				return false
			}
			fields[key] = converted
			return true
		})
		if err != nil {
			return nil, err
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	}
	return nil, fmt.Errorf("invalid value kind %v", v.kind)
}

// ValueFromProto converts a protobuf Value. Object members are sorted by key,
// since protobuf doesn't record their order. A nil message is null.
func ValueFromProto(msg *structpb.Value) Value {
	switch kind := msg.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return BoolValue(kind.BoolValue)
	case *structpb.Value_NumberValue:
		return FloatValue(kind.NumberValue)
	case *structpb.Value_StringValue:
		return StringValue(kind.StringValue)
	case *structpb.Value_ListValue:
		values := kind.ListValue.GetValues()
		elems := make([]Value, len(values))
		for i, elem := range values {
			elems[i] = ValueFromProto(elem)
		}
		return ArrayValue(elems...)
	case *structpb.Value_StructValue:
		fields := kind.StructValue.GetFields()
		keys := make([]string, 0, len(fields))
		for key := range fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		obj := NewObject(len(keys))
		for _, key := range keys {
			obj.Set(key, ValueFromProto(fields[key]))
		}
		return ObjectValue(obj)
	}
	return NullValue()
}
