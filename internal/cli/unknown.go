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

package cli

import (
	"strconv"

	"github.com/cometmodel/cometmodel-go"
)

// findUnknown returns the paths of object members in value that the named
// record type, or the record types nested in it, don't declare. Paths look
// like "DestinationConfig.Location.AzureAccount".
func findUnknown(registry *cometmodel.Registry, record string, value cometmodel.Value) []string {
	var found []string
	walkRecord(registry, record, value, record, &found)
	return found
}

func walkRecord(registry *cometmodel.Registry, record string, value cometmodel.Value, path string, found *[]string) {
	obj, ok := value.Object()
	if !ok {
		return
	}
	fields, ok := registry.Describe(record)
	if !ok {
		return
	}
	declared := make(map[string]cometmodel.FieldInfo, len(fields))
	for _, field := range fields {
		declared[field.Name] = field
	}
	obj.Range(func(key string, member cometmodel.Value) bool {
		field, ok := declared[key]
		if !ok {
			*found = append(*found, path+"."+key)
			return true
		}
		if field.Elem != cometmodel.FieldKindRecord {
			return true
		}
		fieldPath := path + "." + key
		switch field.Kind {
		case cometmodel.FieldKindSequence:
			items, _ := member.Array()
			for i, item := range items {
				walkRecord(registry, field.Record, item, fieldPath+"["+strconv.Itoa(i)+"]", found)
			}
		case cometmodel.FieldKindMap:
			entries, ok := member.Object()
			if !ok {
				return true
			}
			entries.Range(func(name string, item cometmodel.Value) bool {
				walkRecord(registry, field.Record, item, fieldPath+"["+strconv.Quote(name)+"]", found)
				return true
			})
		default:
			walkRecord(registry, field.Record, member, fieldPath, found)
		}
		return true
	})
}
