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
	"testing"
	"testing/quick"

	"github.com/cometmodel/cometmodel-go/internal/assert"
)

func TestParseJSONKeepsOrder(t *testing.T) {
	t.Parallel()
	value, err := ParseJSON([]byte(`{"z":1,"a":{"y":true,"b":null},"m":[1.50,"s"]}`))
	assert.Nil(t, err)
	obj, ok := value.Object()
	assert.True(t, ok)
	assert.Equal(t, obj.Keys(), []string{"z", "a", "m"})
	assert.Equal(t, value.String(), `{"z":1,"a":{"y":true,"b":null},"m":[1.50,"s"]}`)
}

func TestParseJSONDuplicateKeys(t *testing.T) {
	t.Parallel()
	value, err := ParseJSON([]byte(`{"a":1,"b":2,"a":3}`))
	assert.Nil(t, err)
	assert.Equal(t, value.String(), `{"a":3,"b":2}`)
}

func TestParseJSONErrors(t *testing.T) {
	t.Parallel()
	for _, input := range []string{
		``,
		`{`,
		`{"a":}`,
		`[1,]`,
		`{} {}`,
		`{}x`,
		`nul`,
	} {
		_, err := ParseJSON([]byte(input))
		assert.NotNil(t, err, assert.Sprintf("parse %q", input))
		assert.Equal(t, CodeOf(err), CodeSyntax, assert.Sprintf("parse %q", input))
	}
}

func TestParseJSONEscapesAndSpace(t *testing.T) {
	t.Parallel()
	value, err := ParseJSON([]byte(" {\"\\u0041\" : \"line\\nbreak\", \"n\" : -0.0e+1 , \"l\":[ 1 , 2 ]} \n"))
	assert.Nil(t, err)
	assert.Equal(t, value.String(), `{"A":"line\nbreak","n":-0.0e+1,"l":[1,2]}`)

	_, err = ParseJSON([]byte(`{"a":NaN}`))
	assert.Equal(t, CodeOf(err), CodeSyntax)
	assert.Equal(t, err.Error(), "syntax: invalid JSON text")
}

func TestParseJSONScalars(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input string
		want  Value
	}{
		{`null`, NullValue()},
		{`true`, BoolValue(true)},
		{`-12`, IntValue(-12)},
		{`1e3`, NumberValue("1e3")},
		{`"aé"`, StringValue("aé")},
		{` [ ] `, ArrayValue()},
		{`{}`, ObjectValue(nil)},
	}
	for _, testCase := range testCases {
		got, err := ParseJSON([]byte(testCase.input))
		assert.Nil(t, err)
		assert.Equal(t, got, testCase.want, assert.Sprintf("parse %q", testCase.input))
	}
}

func TestAppendQuoted(t *testing.T) {
	t.Parallel()
	assert.Equal(
		t,
		string(appendQuoted(nil, "a\"b\\c\n\t\r\x01<>&\u2028")),
		`"a\"b\\c\n\t\r\u0001<>&\u2028"`,
	)
	assert.Equal(t, string(appendQuoted(nil, "bad\xffbyte")), `"bad\ufffdbyte"`)
	roundtrip := func(s string) bool {
		var got string
		if err := json.Unmarshal(appendQuoted(nil, s), &got); err != nil {
			t.Fatal(err)
		}
		return got == s
	}
	if err := quick.Check(roundtrip, nil /* config */); err != nil {
		t.Error(err)
	}
}

func TestValueJSONInterop(t *testing.T) {
	t.Parallel()
	type envelope struct {
		Payload Value `json:"payload"`
	}
	var env envelope
	assert.Nil(t, json.Unmarshal([]byte(`{"payload":{"b":1,"a":[true]}}`), &env))
	assert.Equal(t, env.Payload.String(), `{"b":1,"a":[true]}`)
	data, err := json.Marshal(env)
	assert.Nil(t, err)
	assert.Equal(t, string(data), `{"payload":{"b":1,"a":[true]}}`)
}

func TestIndentJSON(t *testing.T) {
	t.Parallel()
	indented, err := indentJSON([]byte(`{"a":[1]}`), "", "  ")
	assert.Nil(t, err)
	assert.Equal(t, string(indented), "{\n  \"a\": [\n    1\n  ]\n}")
}
