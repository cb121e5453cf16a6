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
	"encoding/base64"
	"strings"
)

// decodeBase64 decodes standard-alphabet base64 text with or without trailing
// padding. Go's base64 package won't accept both forms from one Encoding, so
// unpadded input is padded out to a multiple of four first.
func decodeBase64(text string) ([]byte, error) {
	if rem := len(text) % 4; rem != 0 {
		text += strings.Repeat(string(base64.StdPadding), 4-rem)
	}
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, errorf(CodeEncoding, "invalid base64: %v", err)
	}
	return data, nil
}

// encodeBase64 always emits padded standard base64.
func encodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
