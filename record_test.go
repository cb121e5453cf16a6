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
	"testing"

	"github.com/cometmodel/cometmodel-go/internal/assert"
)

func newTestRegistry(t testing.TB) *Registry {
	t.Helper()
	reg := NewRegistry()
	assert.Nil(t, RegisterSchema(reg, testRecordSchema))
	assert.Nil(t, reg.Register("Alias", func() Record { return testRecordSchema.New() }, nil))
	return reg
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)
	assert.Equal(t, reg.Names(), []string{"Alias", "testRecord"})

	record, ok := reg.New("testRecord")
	assert.True(t, ok)
	typed, ok := record.(*testRecord)
	assert.True(t, ok)
	assert.NotNil(t, typed.Tags)

	_, ok = reg.New("missing")
	assert.False(t, ok)

	fields, ok := reg.Describe("testRecord")
	assert.True(t, ok)
	assert.Equal(t, fields, testRecordSchema.Fields())
	fields[0].Name = "mutated"
	again, _ := reg.Describe("testRecord")
	assert.Equal(t, again[0].Name, "Text")
	_, ok = reg.Describe("missing")
	assert.False(t, ok)
}

func TestRegistryDuplicate(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)
	assert.NotNil(t, RegisterSchema(reg, testRecordSchema))
}

func TestRegistryDecode(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t)
	record, err := reg.Decode("testRecord", []byte(`{"Text":"x","Later":true}`))
	assert.Nil(t, err)
	typed := record.(*testRecord)
	assert.Equal(t, typed.Text, "x")
	assert.Equal(t, typed.Unknown.Keys(), []string{"Later"})

	_, err = reg.Decode("missing", []byte(`{}`))
	assert.NotNil(t, err)
	_, err = reg.Decode("testRecord", []byte(`{`))
	assert.Equal(t, CodeOf(err), CodeSyntax)
	_, err = reg.Decode("testRecord", []byte(`[]`))
	assert.Equal(t, CodeOf(err), CodeTypeMismatch)
}
