// This file is part of b93 - https://github.com/derrickturk/b93
//
// Copyright 2023 The b93 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// config holds the default values for command line flags.
type config struct {
	Seed     *int64 `toml:"seed"`
	MaxSteps int64  `toml:"max_steps"`
	Raw      bool   `toml:"raw"`
	Dump     bool   `toml:"dump"`
	Trace    bool   `toml:"trace"`
}

// loadConfig reads a configuration file. Unknown keys are an error.
func loadConfig(fileName string) (*config, error) {
	var c config
	md, err := toml.DecodeFile(fileName, &c)
	if err != nil {
		return nil, errors.Wrapf(err, "parse error in %s", fileName)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("%s: unknown key %q", fileName, keys[0].String())
	}
	return &c, nil
}

// flags returns the configuration as flag name/value pairs.
func (c *config) flags() map[string]string {
	m := map[string]string{
		"raw":   strconv.FormatBool(c.Raw),
		"dump":  strconv.FormatBool(c.Dump),
		"trace": strconv.FormatBool(c.Trace),
	}
	if c.Seed != nil {
		m["seed"] = strconv.FormatInt(*c.Seed, 10)
	}
	if c.MaxSteps != 0 {
		m["steps"] = strconv.FormatInt(c.MaxSteps, 10)
	}
	return m
}
