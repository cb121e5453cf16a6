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
	"strconv"
)

var strToCode = map[string]Code{
	"UNKNOWN":       CodeUnknown,
	"TYPE_MISMATCH": CodeTypeMismatch,
	"ENCODING":      CodeEncoding,
	"SYNTAX":        CodeSyntax,
}

// A Code classifies decode failures. There are no user-defined codes, so only
// the codes enumerated below are valid.
type Code uint32

const (
	CodeUnknown      Code = 0 // error didn't originate in this package
	CodeTypeMismatch Code = 1 // JSON value's type disagrees with the declared field type
	CodeEncoding     Code = 2 // binary field isn't valid base64 text
	CodeSyntax       Code = 3 // input isn't well-formed JSON text

	minCode Code = CodeUnknown
	maxCode Code = CodeSyntax
)

// MarshalText implements encoding.TextMarshaler. Codes are marshaled in their
// numeric representations.
func (c Code) MarshalText() ([]byte, error) {
	if c < minCode || c > maxCode {
		return nil, fmt.Errorf("invalid code %v", c)
	}
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts both numeric
// representations (as produced by MarshalText) and the all-caps names, such as
// "TYPE_MISMATCH".
func (c *Code) UnmarshalText(b []byte) error {
	if n, ok := strToCode[string(b)]; ok {
		*c = n
		return nil
	}
	n, err := strconv.ParseUint(string(b), 10 /* base */, 32 /* bitsize */)
	if err != nil {
		return fmt.Errorf("invalid code %q", string(b))
	}
	code := Code(n)
	if code < minCode || code > maxCode {
		return fmt.Errorf("invalid code %v", n)
	}
	*c = code
	return nil
}

func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeTypeMismatch:
		return "type_mismatch"
	case CodeEncoding:
		return "encoding"
	case CodeSyntax:
		return "syntax"
	}
	return fmt.Sprintf("code_%d", c)
}
