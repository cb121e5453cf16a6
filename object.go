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

// An Object is a JSON object whose members keep their insertion order. The
// zero value is an empty object ready to use.
//
// Setting a key that's already present replaces its value in place, so the
// key keeps its original position.
//
// Like a map, a copied non-empty Object shares its members with the original:
// a Set or Delete through either copy is seen by both. Use Clone for an
// independent copy.
type Object struct {
	m *members
}

type members struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty object with room for n members.
func NewObject(n int) *Object {
	return &Object{m: newMembers(n)}
}

func newMembers(n int) *members {
	return &members{
		keys:   make([]string, 0, n),
		values: make(map[string]Value, n),
	}
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil || o.m == nil {
		return 0
	}
	return len(o.m.keys)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil || o.m == nil {
		return Value{}, false
	}
	v, ok := o.m.values[key]
	return v, ok
}

// Set stores a value under key.
func (o *Object) Set(key string, value Value) {
	if o.m == nil {
		o.m = newMembers(0)
	}
	if _, ok := o.m.values[key]; !ok {
		o.m.keys = append(o.m.keys, key)
	}
	o.m.values[key] = value
}

// Delete removes key, if present.
func (o *Object) Delete(key string) {
	if o == nil || o.m == nil {
		return
	}
	if _, ok := o.m.values[key]; !ok {
		return
	}
	delete(o.m.values, key)
	for i, k := range o.m.keys {
		if k == key {
			o.m.keys = append(o.m.keys[:i], o.m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the member names in order. The returned slice is safe
// for the caller to mutate.
func (o *Object) Keys() []string {
	if o == nil || o.m == nil {
		return nil
	}
	keys := make([]string, len(o.m.keys))
	copy(keys, o.m.keys)
	return keys
}

// Range calls f for each member in order, stopping early if f returns false.
func (o *Object) Range(f func(key string, value Value) bool) {
	if o == nil || o.m == nil {
		return
	}
	for _, key := range o.m.keys {
		if !f(key, o.m.values[key]) {
			return
		}
	}
}

// Clone returns a shallow copy. Member values are immutable, so the copy is
// independent of the original.
func (o *Object) Clone() *Object {
	clone := NewObject(o.Len())
	o.Range(func(key string, value Value) bool {
		clone.Set(key, value)
		return true
	})
	return clone
}

// Equal reports whether both objects hold equal members in the same order.
func (o Object) Equal(other Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	if o.m == other.m {
		return true
	}
	for i, key := range o.m.keys {
		if other.m.keys[i] != key {
			return false
		}
		if !o.m.values[key].Equal(other.m.values[key]) {
			return false
		}
	}
	return true
}
