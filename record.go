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
)

// A Record is a value that converts to and from a JSON object. Record types
// in this module implement it with a pointer receiver backed by a Schema.
type Record interface {
	DecodeValue(Value) error
	EncodeValue() Value
}

type registryEntry struct {
	factory func() Record
	fields  []FieldInfo
}

// A Registry maps record type names to constructors, so callers can pick a
// record type at runtime. Register everything before sharing the registry;
// afterwards it's safe for concurrent readers.
type Registry struct {
	entries map[string]registryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registryEntry)}
}

// Register adds a record type under name. Registering the same name twice
// is an error.
func (r *Registry) Register(name string, factory func() Record, fields []FieldInfo) error {
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("record type %q already registered", name)
	}
	r.entries[name] = registryEntry{factory: factory, fields: fields}
	return nil
}

// RegisterSchema adds the record type described by schema, using the
// schema's name. P is inferred as *R.
func RegisterSchema[R any, P interface {
	*R
	Record
}](r *Registry, schema *Schema[R]) error {
	return r.Register(schema.Name(), func() Record { return P(schema.New()) }, schema.Fields())
}

// New returns a default-constructed record of the named type.
func (r *Registry) New(name string) (Record, bool) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return entry.factory(), true
}

// Describe returns the declared fields of the named type. The returned slice
// is safe for the caller to mutate.
func (r *Registry) Describe(name string) ([]FieldInfo, bool) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	fields := make([]FieldInfo, len(entry.fields))
	copy(fields, entry.fields)
	return fields, true
}

// Names returns the registered type names in sorted order. The returned slice
// is safe for the caller to mutate.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode parses JSON text into a new record of the named type.
func (r *Registry) Decode(name string, data []byte) (Record, error) {
	record, ok := r.New(name)
	if !ok {
		return nil, fmt.Errorf("unknown record type %q", name)
	}
	value, err := ParseJSON(data)
	if err != nil {
		return nil, inRecord(err, name)
	}
	if err := record.DecodeValue(value); err != nil {
		return nil, err
	}
	return record, nil
}
