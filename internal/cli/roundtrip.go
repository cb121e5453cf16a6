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
	"os"

	"github.com/spf13/cobra"

	"github.com/cometmodel/cometmodel-go"
)

func newRoundTripCmd(stdout io.Writer, registry *cometmodel.Registry, warn func(error)) *cobra.Command {
	var (
		indent string
		strict bool
		from   string
	)
	cmd := &cobra.Command{
		Use:   "roundtrip TYPE [FILE]",
		Short: "Decode a record and write it back out as JSON",
		Long: "Decode a record of the given type from FILE (or stdin) and re-encode it as JSON.\n" +
			"Members the type doesn't declare are reported and kept in the output.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("indent") {
				indent = cfg.Indent
			}
			if !cmd.Flags().Changed("strict") {
				strict = cfg.Strict
			}

			record, ok := registry.New(args[0])
			if !ok {
				return fmt.Errorf("unknown record type %q", args[0])
			}

			input := cmd.InOrStdin()
			if len(args) == 2 && args[1] != "-" {
				file, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer file.Close()
				input = file
			}
			data, err := io.ReadAll(input)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			value, err := parseInput(data, from)
			if err != nil {
				return err
			}
			if err := record.DecodeValue(value); err != nil {
				return err
			}

			unknown := findUnknown(registry, args[0], value)
			for _, path := range unknown {
				warn(fmt.Errorf("unknown field %s", path))
			}
			if strict && len(unknown) > 0 {
				return fmt.Errorf("%s: %d unknown field(s)", args[0], len(unknown))
			}

			var options []cometmodel.CodecOption
			if indent != "" {
				options = append(options, cometmodel.WithIndent("", indent))
			}
			out, err := cometmodel.NewJSONCodec(options...).Marshal(record)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(stdout, "%s\n", out)
			return err
		},
	}
	cmd.Flags().StringVar(&indent, "indent", "", "Indent per level; empty for compact output (default $COMETMODEL_INDENT)")
	cmd.Flags().StringVar(&from, "from", formatJSON, "Input format: json|yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the input has undeclared fields (default $COMETMODEL_STRICT)")
	return cmd
}
