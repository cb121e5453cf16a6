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
	"errors"
	"math"
	"strconv"
)

// FieldKind is the declared type of a record field or of the elements of a
// sequence or map field.
type FieldKind uint8

const (
	FieldKindString FieldKind = iota + 1
	FieldKindNumber
	FieldKindBoolean
	FieldKindBinary
	FieldKindRecord
	FieldKindSequence
	FieldKindMap
	FieldKindAny
)

func (k FieldKind) String() string {
	switch k {
	case FieldKindString:
		return "string"
	case FieldKindNumber:
		return "number"
	case FieldKindBoolean:
		return "boolean"
	case FieldKindBinary:
		return "binary"
	case FieldKindRecord:
		return "record"
	case FieldKindSequence:
		return "sequence"
	case FieldKindMap:
		return "map"
	case FieldKindAny:
		return "any"
	}
	return "field_kind_" + strconv.Itoa(int(k))
}

// Numeric is the set of Go types a number field may use. JSON doesn't
// distinguish integers from floats, so any numeric literal decodes into any of
// them.
type Numeric interface {
	int | int32 | int64 | uint32 | uint64 | float32 | float64
}

// An Elem converts between JSON values and one Go type. Fields are built from
// an Elem and an accessor, and sequence and map fields apply the Elem to each
// entry.
type Elem[T any] struct {
	kind   FieldKind
	record string // record name, for FieldKindRecord

	decode func(Value) (T, error)
	encode func(T) Value
	// zero returns the default value. Records are default-constructed
	// recursively.
	zero func() T
	// skipNull makes a JSON null leave the field at its current value
	// instead of reaching decode.
	skipNull bool
}

// Kind returns the element's declared type.
func (e Elem[T]) Kind() FieldKind {
	return e.kind
}

// StringElem decodes JSON strings.
func StringElem() Elem[string] {
	return Elem[string]{
		kind: FieldKindString,
		decode: func(v Value) (string, error) {
			s, ok := v.Str()
			if !ok {
				return "", errTypeMismatch("string", v)
			}
			return s, nil
		},
		encode: StringValue,
		zero:   func() string { return "" },
	}
}

// NumberElem decodes JSON numbers into N. Integer types accept fractional or
// exponent literals, truncating toward zero. A number outside N's range, or a
// negative number for an unsigned N, is a TypeMismatch.
func NumberElem[N Numeric]() Elem[N] {
	return Elem[N]{
		kind:   FieldKindNumber,
		decode: decodeNumber[N],
		encode: encodeNumber[N],
		zero:   func() N { return 0 },
	}
}

// BoolElem decodes JSON booleans. Other values are accepted without a check
// and read by truthiness: null is false and anything else is true.
//
// The original value isn't kept, so a non-boolean such as "no" re-encodes as
// true.
func BoolElem() Elem[bool] {
	return Elem[bool]{
		kind: FieldKindBoolean,
		decode: func(v Value) (bool, error) {
			if b, ok := v.Bool(); ok {
				return b, nil
			}
			return !v.IsNull(), nil
		},
		encode: BoolValue,
		zero:   func() bool { return false },
	}
}

// BinaryElem decodes base64 text into bytes.
func BinaryElem() Elem[[]byte] {
	return Elem[[]byte]{
		kind: FieldKindBinary,
		decode: func(v Value) ([]byte, error) {
			s, ok := v.Str()
			if !ok {
				return nil, errTypeMismatch("base64 string", v)
			}
			return decodeBase64(s)
		},
		encode: func(b []byte) Value { return StringValue(encodeBase64(b)) },
		zero:   func() []byte { return nil },
	}
}

// AnyElem passes values through untouched.
func AnyElem() Elem[Value] {
	return Elem[Value]{
		kind:   FieldKindAny,
		decode: func(v Value) (Value, error) { return v, nil },
		encode: func(v Value) Value { return v },
		zero:   NullValue,
	}
}

// RecordElem decodes JSON objects into records described by schema. Each
// decoded record starts from a fresh default-constructed instance. A null
// leaves the field's current value in place.
func RecordElem[R any](schema *Schema[R]) Elem[R] {
	return Elem[R]{
		kind:   FieldKindRecord,
		record: schema.Name(),
		decode: func(v Value) (R, error) {
			record := schema.New()
			if err := schema.decode(record, v); err != nil {
				var zero R
				return zero, err
			}
			return *record, nil
		},
		encode: func(r R) Value {
			return schema.Encode(&r)
		},
		zero:     func() R { return *schema.New() },
		skipNull: true,
	}
}

func decodeNumber[N Numeric](v Value) (N, error) {
	literal, ok := v.Number()
	if !ok {
		return 0, errTypeMismatch("number", v)
	}
	text := string(literal)
	var zero N
	switch any(zero).(type) {
	case float32:
		return parseFloat[N](text, 32)
	case float64:
		return parseFloat[N](text, 64)
	case uint32:
		return parseUnsigned[N](text, 32)
	case uint64:
		return parseUnsigned[N](text, 64)
	case int32:
		return parseSigned[N](text, 32)
	case int64:
		return parseSigned[N](text, 64)
	default:
		return parseSigned[N](text, strconv.IntSize)
	}
}

func parseFloat[N Numeric](text string, bits int) (N, error) {
	f, err := strconv.ParseFloat(text, bits)
	if err != nil {
		return 0, numberError[N](text, err)
	}
	return N(f), nil
}

func parseUnsigned[N Numeric](text string, bits int) (N, error) {
	u, err := strconv.ParseUint(text, 10, bits)
	if err == nil {
		return N(u), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, numberError[N](text, err)
	}
	// Signed, fractional or exponent literals.
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, numberError[N](text, err)
	}
	f = math.Trunc(f)
	if f < 0 || f >= math.Ldexp(1, bits) {
		return 0, numberError[N](text, strconv.ErrRange)
	}
	return N(f), nil
}

func parseSigned[N Numeric](text string, bits int) (N, error) {
	i, err := strconv.ParseInt(text, 10, bits)
	if err == nil {
		return N(i), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, numberError[N](text, err)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, numberError[N](text, err)
	}
	f = math.Trunc(f)
	limit := math.Ldexp(1, bits-1)
	if f < -limit || f >= limit {
		return 0, numberError[N](text, strconv.ErrRange)
	}
	return N(f), nil
}

func numberError[N Numeric](text string, err error) *Error {
	if errors.Is(err, strconv.ErrRange) {
		var zero N
		return errorf(CodeTypeMismatch, "number %s out of range for %T", text, zero)
	}
	return errorf(CodeTypeMismatch, "invalid number %q", text)
}

func encodeNumber[N Numeric](n N) Value {
	switch n := any(n).(type) {
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return NullValue()
		}
		return Value{kind: KindNumber, text: strconv.FormatFloat(float64(n), 'g', -1, 32)}
	case float64:
		return FloatValue(n)
	case uint32:
		return UintValue(uint64(n))
	case uint64:
		return UintValue(n)
	case int:
		return IntValue(int64(n))
	case int32:
		return IntValue(int64(n))
	case int64:
		return IntValue(n)
	}
	return NullValue()
}
