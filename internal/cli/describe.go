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
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cometmodel/cometmodel-go"
)

func newDescribeCmd(stdout io.Writer, registry *cometmodel.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "describe TYPE",
		Short: "Show the declared fields of a record type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, ok := registry.Describe(args[0])
			if !ok {
				return fmt.Errorf("unknown record type %q", args[0])
			}
			return renderFields(stdout, fields)
		},
	}
}

func renderFields(w io.Writer, fields []cometmodel.FieldInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tKIND\tPRESENCE")
	for _, field := range fields {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", field.Name, kindLabel(field), field.Presence)
	}
	return tw.Flush()
}

// kindLabel renders a field's shape, e.g. "sequence of record RetentionRange".
func kindLabel(field cometmodel.FieldInfo) string {
	elem := field.Elem.String()
	if field.Elem == cometmodel.FieldKindRecord {
		elem += " " + field.Record
	}
	switch field.Kind {
	case cometmodel.FieldKindSequence, cometmodel.FieldKindMap:
		return field.Kind.String() + " of " + elem
	default:
		return elem
	}
}
