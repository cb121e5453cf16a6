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
	"sort"
)

// Presence controls whether an unset field is written during encoding.
type Presence uint8

const (
	// Always emits the field even when it holds an empty value.
	Always Presence = iota
	// OmitIfUnset skips the field only when its Go value is nil. Zero and
	// empty values that aren't nil are still emitted.
	OmitIfUnset
)

func (p Presence) String() string {
	if p == OmitIfUnset {
		return "omit-if-unset"
	}
	return "always"
}

// FieldInfo describes a declared field.
type FieldInfo struct {
	// Name is the exact, case-sensitive JSON key.
	Name string
	Kind FieldKind
	// Elem is the element type of sequence and map fields. For other fields
	// it equals Kind.
	Elem FieldKind
	// Record names the nested record type when Elem is FieldKindRecord.
	Record   string
	Presence Presence
}

// A Field binds a JSON key to one field of the record type R. Fields are
// constructed with Scalar, Optional, Bytes, Slice, and Map.
type Field[R any] interface {
	Info() FieldInfo

	decode(*R, Value) error
	encode(*R) (Value, bool)
	reset(*R)
}

type scalarField[R, T any] struct {
	info FieldInfo
	elem Elem[T]
	get  func(*R) *T
}

// Scalar declares a field that's always emitted. It suits strings, numbers,
// booleans, opaque values, and nested records held by value.
func Scalar[R, T any](name string, elem Elem[T], get func(*R) *T) Field[R] {
	return &scalarField[R, T]{
		info: newFieldInfo(name, elem.kind, elem, Always),
		elem: elem,
		get:  get,
	}
}

func (f *scalarField[R, T]) Info() FieldInfo { return f.info }

func (f *scalarField[R, T]) decode(record *R, value Value) error {
	if value.IsNull() && f.elem.skipNull {
		return nil
	}
	decoded, err := f.elem.decode(value)
	if err != nil {
		return atField(err, f.info.Name)
	}
	*f.get(record) = decoded
	return nil
}

func (f *scalarField[R, T]) encode(record *R) (Value, bool) {
	return f.elem.encode(*f.get(record)), true
}

func (f *scalarField[R, T]) reset(record *R) {
	*f.get(record) = f.elem.zero()
}

type optionalField[R, T any] struct {
	info FieldInfo
	elem Elem[T]
	get  func(*R) **T
}

// Optional declares a field held by pointer, omitted from the output while the
// pointer is nil.
func Optional[R, T any](name string, elem Elem[T], get func(*R) **T) Field[R] {
	return &optionalField[R, T]{
		info: newFieldInfo(name, elem.kind, elem, OmitIfUnset),
		elem: elem,
		get:  get,
	}
}

func (f *optionalField[R, T]) Info() FieldInfo { return f.info }

func (f *optionalField[R, T]) decode(record *R, value Value) error {
	if value.IsNull() && f.elem.skipNull {
		return nil
	}
	decoded, err := f.elem.decode(value)
	if err != nil {
		return atField(err, f.info.Name)
	}
	*f.get(record) = &decoded
	return nil
}

func (f *optionalField[R, T]) encode(record *R) (Value, bool) {
	ptr := *f.get(record)
	if ptr == nil {
		return Value{}, false
	}
	return f.elem.encode(*ptr), true
}

func (f *optionalField[R, T]) reset(record *R) {
	*f.get(record) = nil
}

type bytesField[R any] struct {
	info FieldInfo
	elem Elem[[]byte]
	get  func(*R) *[]byte
}

// Bytes declares a binary field, written as base64 text. With OmitIfUnset, a
// nil slice is skipped; an empty non-nil slice is written as "".
func Bytes[R any](name string, get func(*R) *[]byte, presence Presence) Field[R] {
	elem := BinaryElem()
	return &bytesField[R]{
		info: newFieldInfo(name, FieldKindBinary, elem, presence),
		elem: elem,
		get:  get,
	}
}

func (f *bytesField[R]) Info() FieldInfo { return f.info }

func (f *bytesField[R]) decode(record *R, value Value) error {
	decoded, err := f.elem.decode(value)
	if err != nil {
		return atField(err, f.info.Name)
	}
	if decoded == nil {
		decoded = []byte{}
	}
	*f.get(record) = decoded
	return nil
}

func (f *bytesField[R]) encode(record *R) (Value, bool) {
	data := *f.get(record)
	if data == nil && f.info.Presence == OmitIfUnset {
		return Value{}, false
	}
	return f.elem.encode(data), true
}

func (f *bytesField[R]) reset(record *R) {
	*f.get(record) = nil
}

type sliceField[R, T any] struct {
	info FieldInfo
	elem Elem[T]
	get  func(*R) *[]T
}

// Slice declares an ordered sequence field. JSON null decodes to an empty,
// non-nil slice. With OmitIfUnset, a nil slice is skipped; with Always, it's
// written as an empty array.
func Slice[R, T any](name string, elem Elem[T], get func(*R) *[]T, presence Presence) Field[R] {
	return &sliceField[R, T]{
		info: newFieldInfo(name, FieldKindSequence, elem, presence),
		elem: elem,
		get:  get,
	}
}

func (f *sliceField[R, T]) Info() FieldInfo { return f.info }

func (f *sliceField[R, T]) decode(record *R, value Value) error {
	if value.IsNull() {
		*f.get(record) = []T{}
		return nil
	}
	elems, ok := value.Array()
	if !ok {
		return atField(errTypeMismatch("array", value), f.info.Name)
	}
	decoded := make([]T, len(elems))
	for i, elem := range elems {
		item, err := f.elem.decode(elem)
		if err != nil {
			return atField(atIndex(err, i), f.info.Name)
		}
		decoded[i] = item
	}
	*f.get(record) = decoded
	return nil
}

func (f *sliceField[R, T]) encode(record *R) (Value, bool) {
	items := *f.get(record)
	if items == nil && f.info.Presence == OmitIfUnset {
		return Value{}, false
	}
	elems := make([]Value, len(items))
	for i, item := range items {
		elems[i] = f.elem.encode(item)
	}
	return ArrayValue(elems...), true
}

func (f *sliceField[R, T]) reset(record *R) {
	if f.info.Presence == Always {
		*f.get(record) = []T{}
		return
	}
	*f.get(record) = nil
}

type mapField[R, T any] struct {
	info FieldInfo
	elem Elem[T]
	get  func(*R) *map[string]T
}

// Map declares a field mapping strings to T. JSON null decodes to an empty,
// non-nil map. Entries are written in sorted key order, so the member order of
// a decoded payload is not reproduced on encode. Use an Any field when that
// order matters.
func Map[R, T any](name string, elem Elem[T], get func(*R) *map[string]T, presence Presence) Field[R] {
	return &mapField[R, T]{
		info: newFieldInfo(name, FieldKindMap, elem, presence),
		elem: elem,
		get:  get,
	}
}

func (f *mapField[R, T]) Info() FieldInfo { return f.info }

func (f *mapField[R, T]) decode(record *R, value Value) error {
	if value.IsNull() {
		*f.get(record) = map[string]T{}
		return nil
	}
	obj, ok := value.Object()
	if !ok {
		return atField(errTypeMismatch("object", value), f.info.Name)
	}
	decoded := make(map[string]T, obj.Len())
	var err error
	obj.Range(func(key string, entry Value) bool {
		var item T
		item, err = f.elem.decode(entry)
		if err != nil {
			err = atField(atKey(err, key), f.info.Name)
			return false
		}
		decoded[key] = item
		return true
	})
	if err != nil {
		return err
	}
	*f.get(record) = decoded
	return nil
}

func (f *mapField[R, T]) encode(record *R) (Value, bool) {
	entries := *f.get(record)
	if entries == nil && f.info.Presence == OmitIfUnset {
		return Value{}, false
	}
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	obj := NewObject(len(keys))
	for _, key := range keys {
		obj.Set(key, f.elem.encode(entries[key]))
	}
	return ObjectValue(obj), true
}

func (f *mapField[R, T]) reset(record *R) {
	if f.info.Presence == Always {
		*f.get(record) = map[string]T{}
		return
	}
	*f.get(record) = nil
}

func newFieldInfo[T any](name string, kind FieldKind, elem Elem[T], presence Presence) FieldInfo {
	return FieldInfo{
		Name:     name,
		Kind:     kind,
		Elem:     elem.kind,
		Record:   elem.record,
		Presence: presence,
	}
}
