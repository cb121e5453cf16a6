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

// Package cometmodel converts between Go records and the loosely typed JSON
// objects exchanged with a Comet backup-management server.
//
// Each record type is described once by a Schema: an ordered table of fields,
// each with its exact JSON key, declared kind, and presence policy. One
// generic routine decodes and encodes every record from that table. Members
// a schema doesn't declare are kept verbatim in the record's unknown bag and
// written back on encode, so a client built against an older server version
// round-trips newer payloads without losing data.
//
// The record types themselves live in the cometapi package.
package cometmodel

// Version is the semantic version of the cometmodel module.
const Version = "0.1.0"
