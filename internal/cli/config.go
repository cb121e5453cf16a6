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

	"github.com/caarlos0/env/v11"
)

// config holds defaults that flags override.
type config struct {
	// Indent is the per-level indent for roundtrip output. Empty means
	// compact output.
	Indent string `env:"COMETMODEL_INDENT" envDefault:"  "`
	// Strict makes roundtrip fail when the input has undeclared fields.
	Strict bool `env:"COMETMODEL_STRICT" envDefault:"false"`
}

// loadConfig reads the config from environment variables.
func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
