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

// Package vm implements a Befunge-93 virtual machine.
//
// A program is loaded into a fixed size playfield of 25 rows by 80 columns.
// The playfield is a torus: the instruction pointer leaving it on one edge
// re-enters on the opposite edge. Programs may modify the playfield at run
// time with the 'p' instruction.
//
// The VM can either be driven one instruction at a time with Step, with the
// caller providing the I/O channels and randomness source on every call, or
// run to completion with Run, in which case these are set with the Input,
// Output and WithRand options:
//
//	i, err := vm.Load(strings.NewReader(`"!olleH",,,,,,@`), vm.Output(os.Stdout))
//	if err == nil {
//		err = i.Run()
//	}
//
// The implementation follows the Befunge-93 specification, with the following
// choices where the specification is silent:
//
//	- popping an empty stack yields 0,
//	- ':' duplicates the value at the bottom of the stack, not the top,
//	- binary operators pop a then b and push a op b,
//	- '`' pushes 1 only if a > b (a popped first),
//	- 'g' outside of the playfield pushes 32 (space), 'p' outside of it is a no-op,
//	- '&' reads a full line and fails on anything but a base 10 integer,
//	- ',' only accepts values in the 0-127 range.
//
// Division or modulo by zero, and dividing the smallest int64 by -1, are
// faults.
package vm
