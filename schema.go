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

// A Schema describes how one record type maps to a JSON object: its declared
// fields in order, plus where the record keeps members it doesn't recognize.
//
// Schemas are immutable once built and safe for concurrent use. Each record
// instance must only be used by one goroutine at a time.
type Schema[R any] struct {
	name    string
	fields  []Field[R]
	byName  map[string]Field[R]
	unknown func(*R) *Object
}

// NewSchema builds a schema for R. The unknown accessor returns the record's
// bag of unrecognized members. Declaring two fields with the same JSON key is
// a programming error, so NewSchema panics.
func NewSchema[R any](name string, unknown func(*R) *Object, fields ...Field[R]) *Schema[R] {
	schema := &Schema[R]{
		name:    name,
		fields:  fields,
		byName:  make(map[string]Field[R], len(fields)),
		unknown: unknown,
	}
	for _, field := range fields {
		key := field.Info().Name
		if _, ok := schema.byName[key]; ok {
			panic(fmt.Sprintf("cometmodel: schema %s declares field %q twice", name, key))
		}
		schema.byName[key] = field
	}
	return schema
}

// Name returns the record type's name.
func (s *Schema[R]) Name() string {
	return s.name
}

// Fields describes the declared fields in declaration order. The returned
// slice is safe for the caller to mutate.
func (s *Schema[R]) Fields() []FieldInfo {
	infos := make([]FieldInfo, len(s.fields))
	for i, field := range s.fields {
		infos[i] = field.Info()
	}
	return infos
}

// New returns a record with every field at its default.
func (s *Schema[R]) New() *R {
	record := new(R)
	s.Reset(record)
	return record
}

// Reset restores every field of the record to its default: zero scalars,
// empty always-emitted containers, default-constructed nested records, unset
// optional fields, and an empty unknown bag.
func (s *Schema[R]) Reset(record *R) {
	for _, field := range s.fields {
		field.reset(record)
	}
	*s.unknown(record) = Object{}
}

// Decode assigns the members of a JSON object to the record. Declared fields
// are type checked; all other members are kept verbatim in the unknown bag.
//
// Fields missing from the object keep their current values, so decode into a
// freshly constructed record. Decoding stops at the first error, which may
// leave earlier fields assigned.
func (s *Schema[R]) Decode(record *R, value Value) error {
	return inRecord(s.decode(record, value), s.name)
}

func (s *Schema[R]) decode(record *R, value Value) error {
	obj, ok := value.Object()
	if !ok {
		return errTypeMismatch("object", value)
	}
	unknown := s.unknown(record)
	var err error
	obj.Range(func(key string, member Value) bool {
		field, ok := s.byName[key]
		if !ok {
			unknown.Set(key, member)
			return true
		}
		err = field.decode(record, member)
		return err == nil
	})
	return err
}

// Encode returns the record as a JSON object: declared fields in declaration
// order, then the unknown bag in its own order. An unknown member sharing a
// declared field's key replaces that field's value in place.
func (s *Schema[R]) Encode(record *R) Value {
	unknown := s.unknown(record)
	obj := NewObject(len(s.fields) + unknown.Len())
	for _, field := range s.fields {
		if value, ok := field.encode(record); ok {
			obj.Set(field.Info().Name, value)
		}
	}
	unknown.Range(func(key string, value Value) bool {
		obj.Set(key, value)
		return true
	})
	return ObjectValue(obj)
}

// DecodeJSON parses JSON text and decodes it into the record.
func (s *Schema[R]) DecodeJSON(record *R, data []byte) error {
	value, err := ParseJSON(data)
	if err != nil {
		return inRecord(err, s.name)
	}
	return s.Decode(record, value)
}

// EncodeJSON returns the record's compact JSON text. The error is always nil;
// it's present so EncodeJSON can back a MarshalJSON method.
func (s *Schema[R]) EncodeJSON(record *R) ([]byte, error) {
	return s.Encode(record).AppendJSON(nil), nil
}
