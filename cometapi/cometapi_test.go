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

package cometapi_test

import (
	"encoding/json"
	"testing"

	"github.com/cometmodel/cometmodel-go"
	"github.com/cometmodel/cometmodel-go/cometapi"
	"github.com/cometmodel/cometmodel-go/internal/assert"
)

func TestAddBucketResponseMessage(t *testing.T) {
	t.Parallel()
	resp := cometapi.NewAddBucketResponseMessage()
	err := json.Unmarshal(
		[]byte(`{"Status": 200, "Message": "ok", "NewBucketID": "b1", "NewBucketKey": "k1", "Extra": 42}`),
		resp,
	)
	assert.Nil(t, err)
	assert.Equal(t, resp.Status, int64(200))
	assert.Equal(t, resp.Message, "ok")
	assert.Equal(t, resp.NewBucketID, "b1")
	assert.Equal(t, resp.NewBucketKey, "k1")
	extra, ok := resp.UnknownFields.Get("Extra")
	assert.True(t, ok)
	assert.Equal(t, extra, cometmodel.IntValue(42))
	assert.Equal(t, resp.UnknownFields.Len(), 1)

	data, err := json.Marshal(resp)
	assert.Nil(t, err)
	assert.Equal(t, string(data), `{"Status":200,"Message":"ok","NewBucketID":"b1","NewBucketKey":"k1","Extra":42}`)
}

func TestStringFieldRejectsNumber(t *testing.T) {
	t.Parallel()
	resp := cometapi.NewCometAPIResponseMessage()
	err := resp.UnmarshalJSON([]byte(`{"Message":500}`))
	assert.Equal(t, cometmodel.CodeOf(err), cometmodel.CodeTypeMismatch)
	assert.Contains(t, err.Error(), "CometAPIResponseMessage.Message")

	resp = cometapi.NewCometAPIResponseMessage()
	assert.Nil(t, resp.UnmarshalJSON([]byte(`{"Message":"500"}`)))
	assert.Equal(t, resp.Message, "500")
}

func TestTopLevelMustBeObject(t *testing.T) {
	t.Parallel()
	for _, input := range []string{`[]`, `1`, `"x"`, `true`} {
		err := cometapi.NewBucketProperties().UnmarshalJSON([]byte(input))
		assert.Equal(t, cometmodel.CodeOf(err), cometmodel.CodeTypeMismatch, assert.Sprintf("decode %s", input))
	}
}

func TestNullSequenceIsEmpty(t *testing.T) {
	t.Parallel()
	usage := cometapi.NewBucketUsageInfo()
	assert.Nil(t, usage.UnmarshalJSON([]byte(`{"ExistsOnServer":true,"InUseBy":null}`)))
	assert.NotNil(t, usage.InUseBy)
	assert.Equal(t, len(usage.InUseBy), 0)
	data, err := usage.MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(t, string(data), `{"ExistsOnServer":true,"InUseBy":[]}`)

	fresh, err := cometapi.NewBucketUsageInfo().MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(t, string(fresh), `{"ExistsOnServer":false}`)
}

func TestBinaryFields(t *testing.T) {
	t.Parallel()
	cred := cometapi.NewWebAuthnCredential()
	assert.Nil(t, cred.UnmarshalJSON([]byte(
		`{"ID":"aGVsbG8=","PublicKey":"","AttestationType":"none","Authenticator":{"AAGUID":"AAEC","SignCount":7}}`,
	)))
	assert.Equal(t, string(cred.ID), "hello")
	assert.Equal(t, len(cred.PublicKey), 0)
	assert.Equal(t, cred.Authenticator.AAGUID, []byte{0, 1, 2})
	assert.Equal(t, cred.Authenticator.SignCount, uint32(7))
	assert.Nil(t, cred.Transport)

	data, err := cred.MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(
		t,
		string(data),
		`{"ID":"aGVsbG8=","PublicKey":"","AttestationType":"none","Authenticator":{"AAGUID":"AAEC","SignCount":7,"CloneWarning":false}}`,
	)

	err = cometapi.NewWebAuthnCredential().UnmarshalJSON([]byte(`{"ID":"%%%"}`))
	assert.Equal(t, cometmodel.CodeOf(err), cometmodel.CodeEncoding)
}

func TestPresencePoliciesPerField(t *testing.T) {
	t.Parallel()
	usage := cometapi.NewLicenseUsageInfo()
	data, err := usage.MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(t, string(data), `{"deviceCount":0,"ValidUntil":0}`)

	zero := int64(0)
	usage.BoosterCount = &zero
	usage.Features = map[string]bool{"vmware": true, "hyperv": false}
	data, err = usage.MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(t, string(data), `{"deviceCount":0,"boosterCount":0,"ValidUntil":0,"Features":{"hyperv":false,"vmware":true}}`)
}

func TestWireNamesAreCaseSensitive(t *testing.T) {
	t.Parallel()
	info := cometapi.NewOSInfo()
	assert.Nil(t, info.UnmarshalJSON([]byte(`{"version":"10.0","os":"windows","arch":"amd64","OS":"shadow"}`)))
	assert.Equal(t, info.OS, "windows")
	assert.Equal(t, info.Version, "10.0")
	assert.Equal(t, info.UnknownFields.Keys(), []string{"OS"})

	progress := cometapi.NewBackupJobProgress()
	assert.Nil(t, progress.UnmarshalJSON([]byte(`{"RecievedTime":5}`)))
	assert.Equal(t, progress.ReceivedTime, int64(5))
}

func TestNestedUnknownFieldsSurvive(t *testing.T) {
	t.Parallel()
	const input = `{
		"Description": "Offsite",
		"Location": {"DestinationType": 1000, "S3Server": "s3.example.com", "AzureAccount": "acct"},
		"Statistics": {
			"ClientProvidedSize": {"Size": 1024, "MeasureStarted": 1, "MeasureCompleted": 2},
			"ClientProvidedContent": {"Components": [{"Bytes": 10, "Sources": ["a"], "Weight": 0.25}]}
		},
		"DefaultRetention": {"Mode": 801, "Ranges": [{"Type": 900, "Days": 30}]},
		"FreeSpace": {"Unlimited": false, "UsedPercent": 12.5},
		"ReplicaOf": null
	}`
	dest := cometapi.NewDestinationConfig()
	assert.Nil(t, json.Unmarshal([]byte(input), dest))
	assert.Equal(t, dest.Location.S3Server, "s3.example.com")
	assert.Equal(t, dest.Statistics.ClientProvidedSize.Size, uint64(1024))
	assert.Equal(t, dest.Statistics.ClientProvidedContent.Components[0].Sources, []string{"a"})
	assert.Equal(t, dest.DefaultRetention.Ranges[0].Days, int64(30))
	assert.NotNil(t, dest.FreeSpace)
	assert.Equal(t, dest.FreeSpace.UsedPercent, 12.5)
	assert.Equal(t, dest.UnknownFields.Keys(), []string{"ReplicaOf"})
	assert.Equal(t, dest.Location.UnknownFields.Keys(), []string{"AzureAccount"})

	data, err := json.Marshal(dest)
	assert.Nil(t, err)
	again := cometapi.NewDestinationConfig()
	assert.Nil(t, json.Unmarshal(data, again))
	assert.Equal(t, again, dest)

	reencoded, err := json.Marshal(again)
	assert.Nil(t, err)
	assert.Equal(t, string(reencoded), string(data))
	assert.Contains(t, string(data), `"AzureAccount":"acct"`)
	assert.Contains(t, string(data), `"Weight":0.25`)
	assert.Contains(t, string(data), `"ReplicaOf":null`)
}

func TestNestedErrorPath(t *testing.T) {
	t.Parallel()
	stats := cometapi.NewSourceStatistics()
	err := stats.UnmarshalJSON([]byte(`{"LastStartedJob":{"GUID":"j1","Progress":{"Counter":"x"}}}`))
	assert.Equal(t, cometmodel.CodeOf(err), cometmodel.CodeTypeMismatch)
	assert.Equal(
		t,
		err.Error(),
		"type_mismatch: SourceStatistics.LastStartedJob.Progress.Counter: expected number, got string",
	)
}

func TestMapOfRecords(t *testing.T) {
	t.Parallel()
	device := cometapi.NewDeviceConfig()
	assert.Nil(t, device.UnmarshalJSON([]byte(`{
		"FriendlyName": "laptop",
		"PlatformVersion": {"os": "linux"},
		"Sources": {"s2": {"Description": "Home"}, "s1": {"Description": "Mail", "Size": 3}}
	}`)))
	assert.Equal(t, len(device.Sources), 2)
	assert.Equal(t, device.Sources["s1"].Size, uint64(3))
	assert.Nil(t, device.DeviceTimezone)

	data, err := device.MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(
		t,
		string(data),
		`{"FriendlyName":"laptop","RegistrationTime":0,"PlatformVersion":{"version":"","distribution":"","os":"linux","arch":""},`+
			`"Sources":{"s1":{"Description":"Mail","O365AccountCount":0,"Size":3},"s2":{"Description":"Home","O365AccountCount":0,"Size":0}},`+
			`"ClientVersion":""}`,
	)
}

func TestOpaqueDetails(t *testing.T) {
	t.Parallel()
	event := cometapi.NewAdminAuditEvent()
	assert.Nil(t, event.UnmarshalJSON([]byte(`{"Action":"login","Details":{"z":1.50,"a":[null]}}`)))
	assert.NotNil(t, event.Details)
	assert.Equal(t, event.Details.String(), `{"z":1.50,"a":[null]}`)
	data, err := event.MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(t, string(data), `{"Timestamp":0,"Username":"","Action":"login","RemoteAddr":"","Details":{"z":1.50,"a":[null]}}`)
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	reg := cometapi.Registry()
	names := reg.Names()
	assert.Equal(t, len(names), 36)
	for _, name := range names {
		record, ok := reg.New(name)
		assert.True(t, ok, assert.Sprintf("new %s", name))
		encoded := record.EncodeValue()

		decoded, ok := reg.New(name)
		assert.True(t, ok)
		assert.Nil(t, decoded.DecodeValue(encoded), assert.Sprintf("decode %s", name))
		assert.Equal(t, decoded.EncodeValue(), encoded, assert.Sprintf("round-trip %s", name))

		fields, ok := reg.Describe(name)
		assert.True(t, ok)
		assert.NotEqual(t, len(fields), 0, assert.Sprintf("fields of %s", name))
	}

	record, err := reg.Decode("AddBucketResponseMessage", []byte(`{"Status":200,"NewBucketID":"b1"}`))
	assert.Nil(t, err)
	resp, ok := record.(*cometapi.AddBucketResponseMessage)
	assert.True(t, ok)
	assert.Equal(t, resp.NewBucketID, "b1")
}

func TestNumbersOutOfRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		record cometmodel.Record
		input  string
		want   string
	}{
		{
			name:   "uint32 overflow",
			record: cometapi.NewWebAuthnAuthenticator(),
			input:  `{"SignCount":4294967297}`,
			want:   "type_mismatch: WebAuthnAuthenticator.SignCount: number 4294967297 out of range for uint32",
		},
		{
			name:   "negative unsigned",
			record: cometapi.NewSizeMeasurement(),
			input:  `{"Size":-1}`,
			want:   "type_mismatch: SizeMeasurement.Size: number -1 out of range for uint64",
		},
		{
			name:   "int64 overflow",
			record: cometapi.NewCometAPIResponseMessage(),
			input:  `{"Status":1e19}`,
			want:   "type_mismatch: CometAPIResponseMessage.Status: number 1e19 out of range for int64",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			value, err := cometmodel.ParseJSON([]byte(tt.input))
			assert.Nil(t, err)
			err = tt.record.DecodeValue(value)
			assert.Equal(t, cometmodel.CodeOf(err), cometmodel.CodeTypeMismatch)
			assert.Equal(t, err.Error(), tt.want)
		})
	}
}

func TestCopiedRecordKeepsUnknownFields(t *testing.T) {
	t.Parallel()
	original := cometapi.NewCometAPIResponseMessage()
	assert.Nil(t, original.UnmarshalJSON([]byte(`{"Status":200,"Extra":1}`)))
	copied := *original
	original.UnknownFields.Set("X", cometmodel.IntValue(2))
	copied.UnknownFields.Set("X", cometmodel.IntValue(3))

	data, err := copied.MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(t, string(data), `{"Status":200,"Message":"","Extra":1,"X":3}`)
	data, err = original.MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(t, string(data), `{"Status":200,"Message":"","Extra":1,"X":3}`)

	independent := *original
	independent.UnknownFields = *original.UnknownFields.Clone()
	independent.UnknownFields.Delete("X")
	data, err = original.MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(t, string(data), `{"Status":200,"Message":"","Extra":1,"X":3}`)
}
