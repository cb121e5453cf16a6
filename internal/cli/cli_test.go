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

package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cometmodel/cometmodel-go"
	"github.com/cometmodel/cometmodel-go/internal/assert"
	"github.com/cometmodel/cometmodel-go/internal/cli"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd(&stdout, &stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestRootHelp(t *testing.T) {
	t.Parallel()
	res := run(t, "", "--help")
	assert.Nil(t, res.err)
	assert.Contains(t, res.stdout, "Usage:")
	assert.Contains(t, res.stdout, "roundtrip")
}

func TestVersion(t *testing.T) {
	t.Parallel()
	res := run(t, "", "version")
	assert.Nil(t, res.err)
	assert.Equal(t, res.stdout, cometmodel.Version+"\n")
}

func TestTypes(t *testing.T) {
	t.Parallel()
	res := run(t, "", "types")
	assert.Nil(t, res.err)
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	assert.Equal(t, len(lines), 36)
	assert.Contains(t, res.stdout, "AddBucketResponseMessage\n")

	res = run(t, "", "types", "-o", "json")
	assert.Nil(t, res.err)
	var names []string
	assert.Nil(t, json.Unmarshal([]byte(res.stdout), &names))
	assert.Equal(t, names, lines)

	res = run(t, "", "types", "-o", "yaml")
	assert.NotNil(t, res.err)
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	res := run(t, "", "describe", "SourceConfig")
	assert.Nil(t, res.err)
	rows := make(map[string][]string)
	for _, line := range strings.Split(strings.TrimSpace(res.stdout), "\n") {
		cells := strings.Fields(line)
		rows[cells[0]] = cells[1:]
	}
	assert.Equal(t, rows["FIELD"], []string{"KIND", "PRESENCE"})
	assert.Equal(t, rows["Engine"], []string{"string", "always"})
	assert.Equal(t, rows["EngineProps"], []string{"map", "of", "string", "always"})
	assert.Equal(t, rows["ExtraFileExclusions"], []string{"sequence", "of", "record", "ExtraFileExclusion", "omit-if-unset"})
	assert.Equal(t, rows["Statistics"], []string{"record", "SourceStatistics", "omit-if-unset"})

	res = run(t, "", "describe", "Nope")
	assert.NotNil(t, res.err)
	assert.Contains(t, res.err.Error(), `"Nope"`)
}

func TestRoundTripStdin(t *testing.T) {
	t.Parallel()
	res := run(
		t,
		`{"Status": 200, "Message": "ok", "NewBucketID": "b1", "NewBucketKey": "k1", "Extra": 42}`,
		"roundtrip", "--indent", "", "AddBucketResponseMessage",
	)
	assert.Nil(t, res.err)
	assert.Equal(t, res.stdout, `{"Status":200,"Message":"ok","NewBucketID":"b1","NewBucketKey":"k1","Extra":42}`+"\n")
	assert.Equal(t, res.stderr, "warn: unknown field AddBucketResponseMessage.Extra\n")
}

func TestRoundTripStrict(t *testing.T) {
	t.Parallel()
	res := run(t, `{"Status":200,"Extra":42}`, "roundtrip", "--strict", "AddBucketResponseMessage")
	assert.NotNil(t, res.err)
	assert.Contains(t, res.err.Error(), "1 unknown field(s)")
	assert.Equal(t, res.stdout, "")

	res = run(t, `{"Status":200}`, "roundtrip", "--strict", "--indent", "", "CometAPIResponseMessage")
	assert.Nil(t, res.err)
	assert.Equal(t, res.stdout, `{"Status":200,"Message":""}`+"\n")
}

func TestRoundTripFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "response.json")
	assert.Nil(t, os.WriteFile(path, []byte(`{"Message":"ok","Status":200}`), 0o600))
	res := run(t, "", "roundtrip", "--indent", "  ", "CometAPIResponseMessage", path)
	assert.Nil(t, res.err)
	assert.Equal(t, res.stdout, "{\n  \"Status\": 200,\n  \"Message\": \"ok\"\n}\n")

	res = run(t, "", "roundtrip", "CometAPIResponseMessage", filepath.Join(t.TempDir(), "missing.json"))
	assert.NotNil(t, res.err)
}

func TestRoundTripNestedUnknown(t *testing.T) {
	t.Parallel()
	res := run(
		t,
		`{"Location":{"AzureAccount":"acct"},"DefaultRetention":{"Ranges":[{"Type":900},{"Hours":4}]},"ReplicaOf":null}`,
		"roundtrip", "--indent", "", "DestinationConfig",
	)
	assert.Nil(t, res.err)
	assert.Equal(
		t,
		res.stderr,
		"warn: unknown field DestinationConfig.Location.AzureAccount\n"+
			"warn: unknown field DestinationConfig.DefaultRetention.Ranges[1].Hours\n"+
			"warn: unknown field DestinationConfig.ReplicaOf\n",
	)
	assert.Contains(t, res.stdout, `"AzureAccount":"acct"`)
	assert.Contains(t, res.stdout, `"Hours":4`)
}

func TestRoundTripDecodeError(t *testing.T) {
	t.Parallel()
	res := run(t, `{"Status":"200"}`, "roundtrip", "CometAPIResponseMessage")
	assert.NotNil(t, res.err)
	assert.Equal(t, cometmodel.CodeOf(res.err), cometmodel.CodeTypeMismatch)
	assert.Equal(t, res.err.Error(), "type_mismatch: CometAPIResponseMessage.Status: expected number, got string")

	res = run(t, `{"Status":`, "roundtrip", "CometAPIResponseMessage")
	assert.Equal(t, cometmodel.CodeOf(res.err), cometmodel.CodeSyntax)

	res = run(t, `{}`, "roundtrip", "Nope")
	assert.NotNil(t, res.err)
}

func TestRoundTripEnvironment(t *testing.T) {
	t.Setenv("COMETMODEL_INDENT", "\t")
	t.Setenv("COMETMODEL_STRICT", "true")
	res := run(t, `{"Status":200,"Message":"ok"}`, "roundtrip", "CometAPIResponseMessage")
	assert.Nil(t, res.err)
	assert.Equal(t, res.stdout, "{\n\t\"Status\": 200,\n\t\"Message\": \"ok\"\n}\n")

	res = run(t, `{"Status":200,"Extra":1}`, "roundtrip", "CometAPIResponseMessage")
	assert.NotNil(t, res.err)

	res = run(t, `{"Status":200,"Extra":1}`, "roundtrip", "--strict=false", "--indent", "", "CometAPIResponseMessage")
	assert.Nil(t, res.err)
	assert.Equal(t, res.stdout, `{"Status":200,"Message":"","Extra":1}`+"\n")

	t.Setenv("COMETMODEL_STRICT", "maybe")
	res = run(t, `{}`, "roundtrip", "CometAPIResponseMessage")
	assert.NotNil(t, res.err)
	assert.Contains(t, res.err.Error(), "parse env")
}

func TestRoundTripYAML(t *testing.T) {
	t.Parallel()
	res := run(
		t,
		"Status: 200\nMessage: ok\nExtra:\n  b: 1\n  a: [x, true, null, 1.5]\n",
		"roundtrip", "--from", "yaml", "--indent", "", "CometAPIResponseMessage",
	)
	assert.Nil(t, res.err)
	assert.Equal(t, res.stdout, `{"Status":200,"Message":"ok","Extra":{"b":1,"a":["x",true,null,1.5]}}`+"\n")
	assert.Equal(t, res.stderr, "warn: unknown field CometAPIResponseMessage.Extra\n")

	res = run(t, "Status: [", "roundtrip", "--from", "yaml", "CometAPIResponseMessage")
	assert.NotNil(t, res.err)
	assert.Contains(t, res.err.Error(), "parse yaml")

	res = run(t, "{}", "roundtrip", "--from", "toml", "CometAPIResponseMessage")
	assert.NotNil(t, res.err)
}
