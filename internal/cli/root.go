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

// Package cli implements the cometmodel command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cometmodel/cometmodel-go"
	"github.com/cometmodel/cometmodel-go/cometapi"
)

// NewRootCmd returns the root cobra command for the cometmodel CLI, reading
// record types from the Comet API registry.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return newRootCmd(stdout, stderr, cometapi.Registry())
}

func newRootCmd(stdout, stderr io.Writer, registry *cometmodel.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cometmodel",
		Short:         "Inspect and round-trip Comet API records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	warn := newWarnIfError(newStderrWarn(stderr))
	cmd.AddCommand(newVersionCmd(stdout))
	cmd.AddCommand(newTypesCmd(stdout, registry))
	cmd.AddCommand(newDescribeCmd(stdout, registry))
	cmd.AddCommand(newRoundTripCmd(stdout, registry, warn))
	return cmd
}

// Execute runs the CLI with the process stdio.
func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
