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

import (
	"io"
	"strconv"

	"github.com/derrickturk/b93/internal/bfi"
)

// Direction is the direction in which the instruction pointer moves.
type Direction int

// Directions, in the order used by the '?' instruction.
const (
	Up Direction = iota
	Down
	Left
	Right
)

var dirNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if d < Up || d > Right {
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
	return dirNames[d]
}

// Status is the outcome of a single step.
type Status int

// Step outcomes.
const (
	Running Status = iota // more steps expected
	Halted                // the program executed '@'
)

// Instance represents a Befunge-93 VM instance.
type Instance struct {
	Row      uint8     // instruction pointer row
	Col      uint8     // instruction pointer column
	Dir      Direction // instruction pointer direction
	Field    *Playfield
	stack    []int64
	bridge   bool
	strMode  bool
	insCount int64
	maxSteps int64
	input    Reader
	output   io.Writer
	rand     Rand
}

// Option interface
type Option func(*Instance) error

// Input sets the input channel used by Run. If r does not implement Reader, it
// will be buffered.
func Input(r io.Reader) Option {
	return func(i *Instance) error {
		i.input = newReader(r)
		return nil
	}
}

// Output sets the output channel used by Run. If w has a Flush method, Run
// calls it before returning.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = w
		return nil
	}
}

// WithRand sets the randomness source used by Run for the '?' instruction.
func WithRand(r Rand) Option {
	return func(i *Instance) error {
		i.rand = r
		return nil
	}
}

// Seed makes Run use a math/rand source seeded with seed.
func Seed(seed int64) Option {
	return func(i *Instance) error {
		i.rand = newRand(seed)
		return nil
	}
}

// StepLimit makes Run fail with ErrStepLimit once n steps have been executed
// without the program halting. A limit <= 0 disables the check.
func StepLimit(n int64) Option {
	return func(i *Instance) error {
		i.maxSteps = n
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance running the program in p. The playfield is
// used in place and will be modified by the 'p' instruction. A nil p is an
// empty playfield.
//
// The instruction pointer starts at the top left corner, moving right. Unless
// configured otherwise, Run reads from an empty input, discards output and uses
// a time seeded random source.
func New(p *Playfield, opts ...Option) (*Instance, error) {
	if p == nil {
		p = NewPlayfield()
	}
	i := &Instance{
		Field: p,
		Dir:   Right,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.input == nil {
		i.input = eofReader{}
	}
	if i.output == nil {
		i.output = io.Discard
	}
	if i.rand == nil {
		i.rand = defaultRand()
	}
	return i, nil
}

// Push pushes the argument on top of the stack.
func (i *Instance) Push(v int64) {
	i.stack = append(i.stack, v)
}

// Pop pops the value on top of the stack and returns it. Popping an empty
// stack returns 0.
func (i *Instance) Pop() int64 {
	l := len(i.stack) - 1
	if l < 0 {
		return 0
	}
	v := i.stack[l]
	i.stack = i.stack[:l]
	return v
}

// bottom returns the value at the bottom of the stack, or 0.
func (i *Instance) bottom() int64 {
	if len(i.stack) == 0 {
		return 0
	}
	return i.stack[0]
}

// Data returns the stack, bottom first. Note that value changes will be
// reflected in the instance's stack. To add/remove values, use the Push and
// Pop functions.
func (i *Instance) Data() []int64 {
	return i.stack
}

// Depth returns the stack depth.
func (i *Instance) Depth() int {
	return len(i.stack)
}

// Next returns the cell under the instruction pointer.
func (i *Instance) Next() byte {
	return i.Field[i.Row][i.Col]
}

// Bridge reports whether the next cell will be skipped.
func (i *Instance) Bridge() bool { return i.bridge }

// StringMode reports whether the instance is in string mode.
func (i *Instance) StringMode() bool { return i.strMode }

// StepCount returns the number of steps executed so far.
func (i *Instance) StepCount() int64 {
	return i.insCount
}

// Dump dumps the stack, instruction pointer and playfield to w. The three
// sections are introduced by the bytes 0x1C, 0x1D and 0x1D.
func (i *Instance) Dump(w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	ew.Write([]byte{'\x1C'})
	for n, v := range i.stack {
		if n > 0 {
			ew.Write([]byte{' '})
		}
		io.WriteString(ew, strconv.FormatInt(v, 10))
	}
	ew.Write([]byte{'\x1D'})
	io.WriteString(ew, strconv.Itoa(int(i.Row))+","+strconv.Itoa(int(i.Col))+","+i.Dir.String())
	ew.Write([]byte{'\x1D'})
	io.WriteString(ew, i.Field.String())
	return ew.Err
}
