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

// A CodecOption configures a Codec.
type CodecOption interface {
	applyToCodec(*jsonCodec)
}

type indentOption struct {
	prefix string
	indent string
}

// WithIndent makes Marshal produce indented output, as json.MarshalIndent
// does: each line begins with prefix and is indented by copies of indent.
// By default, output is compact.
func WithIndent(prefix, indent string) CodecOption {
	return &indentOption{prefix: prefix, indent: indent}
}

func (o *indentOption) applyToCodec(codec *jsonCodec) {
	codec.prefix = o.prefix
	codec.indent = o.indent
}
