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

package vm

import "github.com/pkg/errors"

// Run executes the program until it halts, using the input, output and
// randomness source configured with the Input, Output and WithRand (or Seed)
// options.
//
// If an error occurs, the instruction pointer will point to the instruction
// that triggered it. The returned error is annotated with that position; use
// errors.Cause to get the bare fault.
//
// If the output has a Flush method, it is called before returning.
func (i *Instance) Run() (err error) {
	defer func() {
		if f, ok := i.output.(flusher); ok {
			if ferr := f.Flush(); err == nil && ferr != nil {
				err = errors.Wrap(ioError(ferr), "flush failed")
			}
		}
	}()
	var st Status
	for st == Running {
		if i.maxSteps > 0 && i.insCount >= i.maxSteps {
			return errors.Wrapf(ErrStepLimit, "after %d steps @(%d,%d)", i.insCount, i.Row, i.Col)
		}
		st, err = i.Step(i.input, i.output, i.rand)
		if err != nil {
			return errors.Wrapf(err, "fault @(%d,%d) '%s'", i.Row, i.Col, escapeByte(i.Next()))
		}
	}
	return nil
}
