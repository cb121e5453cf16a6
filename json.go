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
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// ParseJSON parses JSON text into a Value, keeping the order of object members
// and the literal text of numbers. When an object repeats a key, the last
// value wins and the key keeps its first position. Trailing data after the
// first value is an error.
func ParseJSON(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return Value{}, errorf(CodeSyntax, "invalid JSON text")
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// fromResult converts validated gjson output. ForEach visits members in
// document order and Raw holds number literals as written.
func fromResult(result gjson.Result) Value {
	switch result.Type {
	case gjson.Null:
		return NullValue()
	case gjson.False:
		return BoolValue(false)
	case gjson.True:
		return BoolValue(true)
	case gjson.Number:
		return NumberValue(json.Number(strings.TrimSpace(result.Raw)))
	case gjson.String:
		return StringValue(result.Str)
	}
	if result.IsArray() {
		elems := []Value{}
		result.ForEach(func(_, elem gjson.Result) bool {
			elems = append(elems, fromResult(elem))
			return true
		})
		return ArrayValue(elems...)
	}
	obj := &Object{}
	result.ForEach(func(key, member gjson.Result) bool {
		obj.Set(key.Str, fromResult(member))
		return true
	})
	return ObjectValue(obj)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.AppendJSON(nil), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// AppendJSON appends the value's compact JSON text to dst.
func (v Value) AppendJSON(dst []byte) []byte {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(dst, v.boolean)
	case KindNumber:
		if v.text == "" {
			return append(dst, '0')
		}
		return append(dst, v.text...)
	case KindString:
		return appendQuoted(dst, v.text)
	case KindArray:
		dst = append(dst, '[')
		for i, elem := range v.array {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = elem.AppendJSON(dst)
		}
		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		first := true
		v.object.Range(func(key string, value Value) bool {
			if !first {
				dst = append(dst, ',')
			}
			first = false
			dst = appendQuoted(dst, key)
			dst = append(dst, ':')
			dst = value.AppendJSON(dst)
			return true
		})
		return append(dst, '}')
	}
	return append(dst, "null"...)
}

const hex = "0123456789abcdef"

// appendQuoted writes s as a JSON string. Invalid UTF-8 is replaced with
// U+FFFD, and U+2028 and U+2029 are escaped so the output is safe to embed
// in JavaScript.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if b >= 0x20 && b != '"' && b != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch b {
			case '"', '\\':
				dst = append(dst, '\\', b)
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hex[b>>4], hex[b&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = append(dst, `\ufffd`...)
			i += size
			start = i
			continue
		}
		if r == '\u2028' || r == '\u2029' {
			dst = append(dst, s[start:i]...)
			dst = append(dst, '\\', 'u', '2', '0', '2', hex[r&0xF])
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

// indentJSON re-indents compact JSON text.
func indentJSON(compact []byte, prefix, indent string) ([]byte, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, compact, prefix, indent); err != nil {
		return nil, fmt.Errorf("indent JSON: %w", err)
	}
	return out.Bytes(), nil
}
