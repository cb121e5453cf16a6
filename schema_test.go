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
	"testing"
	"testing/quick"

	"github.com/cometmodel/cometmodel-go/internal/assert"
)

type testInner struct {
	Name    string
	Unknown Object
}

var testInnerSchema = NewSchema(
	"testInner",
	func(r *testInner) *Object { return &r.Unknown },
	Scalar("Name", StringElem(), func(r *testInner) *string { return &r.Name }),
)

type testRecord struct {
	Text       string
	Count      int64
	Ratio      float64
	Flag       bool
	Blob       []byte
	Inner      testInner
	MaybeInner *testInner
	MaybeText  *string
	Tags       []string
	Items      []testInner
	Labels     map[string]string
	ByName     map[string]testInner
	Opaque     Value
	Unknown    Object
}

var testRecordSchema = NewSchema(
	"testRecord",
	func(r *testRecord) *Object { return &r.Unknown },
	Scalar("Text", StringElem(), func(r *testRecord) *string { return &r.Text }),
	Scalar("Count", NumberElem[int64](), func(r *testRecord) *int64 { return &r.Count }),
	Scalar("Ratio", NumberElem[float64](), func(r *testRecord) *float64 { return &r.Ratio }),
	Scalar("Flag", BoolElem(), func(r *testRecord) *bool { return &r.Flag }),
	Bytes("Blob", func(r *testRecord) *[]byte { return &r.Blob }, Always),
	Scalar("Inner", RecordElem(testInnerSchema), func(r *testRecord) *testInner { return &r.Inner }),
	Optional("MaybeInner", RecordElem(testInnerSchema), func(r *testRecord) **testInner { return &r.MaybeInner }),
	Optional("MaybeText", StringElem(), func(r *testRecord) **string { return &r.MaybeText }),
	Slice("Tags", StringElem(), func(r *testRecord) *[]string { return &r.Tags }, Always),
	Slice("Items", RecordElem(testInnerSchema), func(r *testRecord) *[]testInner { return &r.Items }, Always),
	Map("Labels", StringElem(), func(r *testRecord) *map[string]string { return &r.Labels }, Always),
	Map("ByName", RecordElem(testInnerSchema), func(r *testRecord) *map[string]testInner { return &r.ByName }, OmitIfUnset),
	Scalar("Opaque", AnyElem(), func(r *testRecord) *Value { return &r.Opaque }),
)

func (r *testRecord) DecodeValue(v Value) error { return testRecordSchema.Decode(r, v) }
func (r *testRecord) EncodeValue() Value        { return testRecordSchema.Encode(r) }

func decodeTestRecord(t testing.TB, text string) (*testRecord, error) {
	t.Helper()
	record := testRecordSchema.New()
	err := testRecordSchema.DecodeJSON(record, []byte(text))
	return record, err
}

func encodeText(t testing.TB, record *testRecord) string {
	t.Helper()
	data, err := testRecordSchema.EncodeJSON(record)
	assert.Nil(t, err)
	return string(data)
}

func TestSchemaDecodeEncode(t *testing.T) {
	t.Parallel()
	const input = `{"Text":"hi","Count":3,"Ratio":0.5,"Flag":true,"Blob":"aGVsbG8=",` +
		`"Inner":{"Name":"a","x":1},"Tags":["t1","t2"],"Items":[{"Name":"i0"},{"Name":"i1"}],` +
		`"Extra":42,"Labels":{"b":"2","a":"1"},"Opaque":[1,{"k":null}],"Zeta":"z"}`
	record, err := decodeTestRecord(t, input)
	assert.Nil(t, err)
	assert.Equal(t, record.Text, "hi")
	assert.Equal(t, record.Count, int64(3))
	assert.Equal(t, record.Ratio, 0.5)
	assert.True(t, record.Flag)
	assert.Equal(t, string(record.Blob), "hello")
	assert.Equal(t, record.Inner.Name, "a")
	assert.Equal(t, record.Inner.Unknown.Keys(), []string{"x"})
	assert.Nil(t, record.MaybeInner)
	assert.Nil(t, record.MaybeText)
	assert.Equal(t, record.Tags, []string{"t1", "t2"})
	assert.Equal(t, len(record.Items), 2)
	assert.Equal(t, record.Items[1].Name, "i1")
	assert.Equal(t, record.Labels, map[string]string{"a": "1", "b": "2"})
	assert.Nil(t, record.ByName)
	assert.Equal(t, record.Opaque.String(), `[1,{"k":null}]`)
	assert.Equal(t, record.Unknown.Keys(), []string{"Extra", "Zeta"})
	extra, ok := record.Unknown.Get("Extra")
	assert.True(t, ok)
	assert.Equal(t, extra, IntValue(42))

	const want = `{"Text":"hi","Count":3,"Ratio":0.5,"Flag":true,"Blob":"aGVsbG8=",` +
		`"Inner":{"Name":"a","x":1},"Tags":["t1","t2"],"Items":[{"Name":"i0"},{"Name":"i1"}],` +
		`"Labels":{"a":"1","b":"2"},"Opaque":[1,{"k":null}],"Extra":42,"Zeta":"z"}`
	assert.Equal(t, encodeText(t, record), want)

	again, err := decodeTestRecord(t, want)
	assert.Nil(t, err)
	assert.Equal(t, again, record)
}

func TestSchemaDefaults(t *testing.T) {
	t.Parallel()
	record := testRecordSchema.New()
	assert.NotNil(t, record.Tags)
	assert.NotNil(t, record.Items)
	assert.NotNil(t, record.Labels)
	assert.Nil(t, record.ByName)
	assert.Nil(t, record.MaybeInner)
	assert.Equal(t, record.Unknown.Len(), 0)
	assert.Equal(
		t,
		encodeText(t, record),
		`{"Text":"","Count":0,"Ratio":0,"Flag":false,"Blob":"","Inner":{"Name":""},"Tags":[],"Items":[],"Labels":{},"Opaque":null}`,
	)

	record.Text = "stale"
	record.Unknown.Set("x", BoolValue(true))
	testRecordSchema.Reset(record)
	assert.Equal(t, record.Text, "")
	assert.Equal(t, record.Unknown.Len(), 0)
}

func TestSchemaNulls(t *testing.T) {
	t.Parallel()
	record := testRecordSchema.New()
	record.Inner.Name = "kept"
	err := testRecordSchema.DecodeJSON(record, []byte(
		`{"Tags":null,"Items":null,"Labels":null,"ByName":null,"Inner":null,"MaybeInner":null,"Flag":null,"Opaque":null}`,
	))
	assert.Nil(t, err)
	assert.NotNil(t, record.Tags)
	assert.Equal(t, len(record.Tags), 0)
	assert.NotNil(t, record.Items)
	assert.NotNil(t, record.Labels)
	assert.NotNil(t, record.ByName)
	assert.Equal(t, len(record.ByName), 0)
	assert.Equal(t, record.Inner.Name, "kept")
	assert.Nil(t, record.MaybeInner)
	assert.False(t, record.Flag)
	assert.True(t, record.Opaque.IsNull())
}

func TestSchemaDecodeErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		input string
		code  Code
		path  string
	}{
		{name: "array at top level", input: `[]`, code: CodeTypeMismatch},
		{name: "number at top level", input: `1`, code: CodeTypeMismatch},
		{name: "string at top level", input: `"x"`, code: CodeTypeMismatch},
		{name: "null at top level", input: `null`, code: CodeTypeMismatch},
		{name: "number for string", input: `{"Text":5}`, code: CodeTypeMismatch, path: "Text"},
		{name: "null for string", input: `{"Text":null}`, code: CodeTypeMismatch, path: "Text"},
		{name: "string for number", input: `{"Count":"5"}`, code: CodeTypeMismatch, path: "Count"},
		{name: "object for sequence", input: `{"Tags":{}}`, code: CodeTypeMismatch, path: "Tags"},
		{name: "bad sequence element", input: `{"Tags":["a",1]}`, code: CodeTypeMismatch, path: "Tags[1]"},
		{name: "bad nested field", input: `{"Items":[{"Name":"x"},{"Name":2}]}`, code: CodeTypeMismatch, path: "Items[1].Name"},
		{name: "null sequence record", input: `{"Items":[null]}`, code: CodeTypeMismatch, path: "Items[0]"},
		{name: "bad map value", input: `{"Labels":{"a":1}}`, code: CodeTypeMismatch, path: `Labels["a"]`},
		{name: "array for map", input: `{"Labels":[]}`, code: CodeTypeMismatch, path: "Labels"},
		{name: "array for record", input: `{"Inner":[]}`, code: CodeTypeMismatch, path: "Inner"},
		{name: "bad optional record", input: `{"MaybeInner":{"Name":false}}`, code: CodeTypeMismatch, path: "MaybeInner.Name"},
		{name: "invalid base64", input: `{"Blob":"!!!"}`, code: CodeEncoding, path: "Blob"},
		{name: "number for binary", input: `{"Blob":7}`, code: CodeTypeMismatch, path: "Blob"},
		{name: "malformed text", input: `{"Text":`, code: CodeSyntax},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			_, err := decodeTestRecord(t, testCase.input)
			assert.NotNil(t, err)
			assert.Equal(t, CodeOf(err), testCase.code)
			modelErr, ok := asError(err)
			assert.True(t, ok)
			assert.Equal(t, modelErr.Path(), testCase.path)
			assert.Equal(t, modelErr.Record(), "testRecord")
		})
	}
}

func TestSchemaErrorText(t *testing.T) {
	t.Parallel()
	_, err := decodeTestRecord(t, `{"Items":[{"Name":"x"},{"Name":2}]}`)
	assert.NotNil(t, err)
	assert.Equal(t, err.Error(), "type_mismatch: testRecord.Items[1].Name: expected string, got number")
}

func TestSchemaNumbers(t *testing.T) {
	t.Parallel()
	record, err := decodeTestRecord(t, `{"Count":1.9,"Ratio":2}`)
	assert.Nil(t, err)
	assert.Equal(t, record.Count, int64(1))
	assert.Equal(t, record.Ratio, 2.0)
	record, err = decodeTestRecord(t, `{"Count":1e3}`)
	assert.Nil(t, err)
	assert.Equal(t, record.Count, int64(1000))
}

func TestSchemaBooleanTruthiness(t *testing.T) {
	t.Parallel()
	for input, want := range map[string]bool{
		`{"Flag":true}`:  true,
		`{"Flag":false}`: false,
		`{"Flag":null}`:  false,
		`{"Flag":0}`:     true,
		`{"Flag":"no"}`:  true,
	} {
		record, err := decodeTestRecord(t, input)
		assert.Nil(t, err)
		assert.Equal(t, record.Flag, want, assert.Sprintf("decode %s", input))
	}
}

func TestSchemaPresence(t *testing.T) {
	t.Parallel()
	record := testRecordSchema.New()
	empty := ""
	record.MaybeText = &empty
	record.ByName = map[string]testInner{}
	record.Tags = nil
	record.Labels = nil
	record.MaybeInner = testInnerSchema.New()
	assert.Equal(
		t,
		encodeText(t, record),
		`{"Text":"","Count":0,"Ratio":0,"Flag":false,"Blob":"","Inner":{"Name":""},"MaybeInner":{"Name":""},"MaybeText":"","Tags":[],"Items":[],"Labels":{},"ByName":{},"Opaque":null}`,
	)
}

func TestSchemaUnknownOverridesDeclared(t *testing.T) {
	t.Parallel()
	record := testRecordSchema.New()
	record.Text = "declared"
	record.Unknown.Set("Text", StringValue("override"))
	encoded := testRecordSchema.Encode(record)
	obj, ok := encoded.Object()
	assert.True(t, ok)
	assert.Equal(t, obj.Keys()[0], "Text")
	text, _ := obj.Get("Text")
	assert.Equal(t, text, StringValue("override"))
}

func TestSchemaDecodeKeepsAbsentFields(t *testing.T) {
	t.Parallel()
	record := testRecordSchema.New()
	record.Text = "stale"
	record.Count = 9
	assert.Nil(t, testRecordSchema.DecodeJSON(record, []byte(`{"Count":1}`)))
	assert.Equal(t, record.Text, "stale")
	assert.Equal(t, record.Count, int64(1))
}

func TestSchemaDuplicateField(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		NewSchema(
			"dup",
			func(r *testInner) *Object { return &r.Unknown },
			Scalar("Name", StringElem(), func(r *testInner) *string { return &r.Name }),
			Scalar("Name", StringElem(), func(r *testInner) *string { return &r.Name }),
		)
	})
}

func TestSchemaFields(t *testing.T) {
	t.Parallel()
	fields := testRecordSchema.Fields()
	assert.Equal(t, len(fields), 13)
	assert.Equal(t, fields[0], FieldInfo{Name: "Text", Kind: FieldKindString, Elem: FieldKindString})
	assert.Equal(t, fields[9], FieldInfo{
		Name:   "Items",
		Kind:   FieldKindSequence,
		Elem:   FieldKindRecord,
		Record: "testInner",
	})
	assert.Equal(t, fields[11].Presence, OmitIfUnset)
	fields[0].Name = "mutated"
	assert.Equal(t, testRecordSchema.Fields()[0].Name, "Text")
}

func TestSchemaRoundTrips(t *testing.T) {
	t.Parallel()
	roundtrip := func(text string, count int64, ratio float64, blob []byte, tags []string) bool {
		want := testRecordSchema.New()
		want.Text = text
		want.Count = count
		want.Ratio = ratio
		want.Blob = blob
		want.Tags = tags
		want.Unknown.Set("Future", StringValue(text))
		data, err := testRecordSchema.EncodeJSON(want)
		if err != nil {
			t.Fatal(err)
		}
		got := testRecordSchema.New()
		if err := testRecordSchema.DecodeJSON(got, data); err != nil {
			t.Fatal(err)
		}
		again, err := testRecordSchema.EncodeJSON(got)
		if err != nil {
			t.Fatal(err)
		}
		return bytes.Equal(again, data) &&
			got.Text == text &&
			got.Count == count &&
			got.Ratio == ratio &&
			bytes.Equal(got.Blob, blob) &&
			len(got.Tags) == len(tags) &&
			got.Unknown.Equal(want.Unknown)
	}
	if err := quick.Check(roundtrip, nil /* config */); err != nil {
		t.Error(err)
	}
}
