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
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/cometmodel/cometmodel-go"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// parseInput converts a JSON or YAML document to a Value.
func parseInput(data []byte, format string) (cometmodel.Value, error) {
	switch format {
	case formatJSON, "":
		return cometmodel.ParseJSON(data)
	case formatYAML:
		// Decoding into MapSlice makes nested mappings MapSlices too, which
		// keeps their key order.
		var doc yaml.MapSlice
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return cometmodel.Value{}, fmt.Errorf("parse yaml: %w", err)
		}
		return yamlToValue(doc)
	default:
		return cometmodel.Value{}, fmt.Errorf("unsupported --from: %s", format)
	}
}

func yamlToValue(node any) (cometmodel.Value, error) {
	switch node := node.(type) {
	case nil:
		return cometmodel.NullValue(), nil
	case bool:
		return cometmodel.BoolValue(node), nil
	case int:
		return cometmodel.IntValue(int64(node)), nil
	case int64:
		return cometmodel.IntValue(node), nil
	case uint64:
		return cometmodel.UintValue(node), nil
	case float64:
		return cometmodel.FloatValue(node), nil
	case string:
		return cometmodel.StringValue(node), nil
	case []any:
		items := make([]cometmodel.Value, len(node))
		for i, item := range node {
			value, err := yamlToValue(item)
			if err != nil {
				return cometmodel.Value{}, err
			}
			items[i] = value
		}
		return cometmodel.ArrayValue(items...), nil
	case yaml.MapSlice:
		obj := cometmodel.NewObject(len(node))
		for _, item := range node {
			value, err := yamlToValue(item.Value)
			if err != nil {
				return cometmodel.Value{}, err
			}
			obj.Set(fmt.Sprint(item.Key), value)
		}
		return cometmodel.ObjectValue(obj), nil
	default:
		return cometmodel.Value{}, fmt.Errorf("unsupported yaml value of type %T", node)
	}
}
