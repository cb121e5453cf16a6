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
	"encoding/json"
	"math"
	"strconv"
)

// Kind identifies which variant of JSON a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "kind_" + strconv.Itoa(int(k))
}

// A Value is an untyped JSON value. The zero Value is JSON null.
//
// Numbers keep their literal text, so a number read from the wire is written
// back exactly as it arrived. Values are treated as immutable: the Array and
// Object accessors return the value's own storage, which callers must not
// modify.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents, or number literal
	array   []Value
	object  *Object
}

// NullValue returns JSON null.
func NullValue() Value {
	return Value{}
}

// BoolValue returns a JSON boolean.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// IntValue returns a JSON number holding an integer.
func IntValue(n int64) Value {
	return Value{kind: KindNumber, text: strconv.FormatInt(n, 10)}
}

// UintValue returns a JSON number holding an unsigned integer.
func UintValue(n uint64) Value {
	return Value{kind: KindNumber, text: strconv.FormatUint(n, 10)}
}

// FloatValue returns a JSON number. JSON can't represent NaN or infinities, so
// those become null.
func FloatValue(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NullValue()
	}
	return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// NumberValue returns a JSON number with the given literal text. The literal
// isn't validated.
func NumberValue(n json.Number) Value {
	return Value{kind: KindNumber, text: string(n)}
}

// StringValue returns a JSON string.
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// ArrayValue returns a JSON array of the supplied elements.
func ArrayValue(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, array: elems}
}

// ObjectValue returns a JSON object. A nil Object is an empty object.
func ObjectValue(obj *Object) Value {
	if obj == nil {
		obj = &Object{}
	}
	return Value{kind: KindObject, object: obj}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the value's boolean, if it is one.
func (v Value) Bool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// Number returns the value's literal number text, if it is a number.
func (v Value) Number() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return json.Number(v.text), true
}

// Int64 returns the value as an int64, if it's a number that fits.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseInt(v.text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float64 returns the value as a float64, if it's a number.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Str returns the value's string, if it is one.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// Array returns the value's elements, if it's an array.
func (v Value) Array() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.array, true
}

// Object returns the value's members, if it's an object.
func (v Value) Object() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.object, true
}

// Equal reports whether two values are deeply equal. Numbers compare by
// literal text, and objects compare members in order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindNumber, KindString:
		return v.text == other.text
	case KindArray:
		if len(v.array) != len(other.array) {
			return false
		}
		for i := range v.array {
			if !v.array[i].Equal(other.array[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.object.Equal(*other.object)
	}
	return false
}

// String returns the value's compact JSON text.
func (v Value) String() string {
	return string(v.AppendJSON(nil))
}
