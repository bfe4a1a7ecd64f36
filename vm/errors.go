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
	"fmt"

	"github.com/pkg/errors"
)

// Load-time and arithmetic faults.
var (
	ErrPlayfieldTooWide = errors.New("playfield too wide")
	ErrPlayfieldTooTall = errors.New("playfield too tall")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrDivisionOverflow = errors.New("division overflow")
	ErrStepLimit        = errors.New("step limit exceeded")
)

// InvalidCharacterError is returned by the ',' instruction when the popped
// value is outside of the ASCII range.
type InvalidCharacterError int64

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("attempt to output %d as character", int64(e))
}

// InvalidInstructionError is returned when the instruction pointer lands on a
// byte that is not a Befunge-93 instruction.
type InvalidInstructionError byte

func (e InvalidInstructionError) Error() string {
	return "invalid instruction: '" + escapeByte(byte(e)) + "'"
}

// InvalidNumericError carries the raw input line that the '&' instruction
// failed to parse as a number.
type InvalidNumericError string

func (e InvalidNumericError) Error() string {
	return "attempt to input '" + string(e) + "' as number"
}

// IOError reports a failure of the underlying input or output channel.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return "IO error: '" + e.Err.Error() + "'"
}

func (e *IOError) Unwrap() error { return e.Err }

func ioError(err error) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(&IOError{err})
}

func escapeByte(c byte) string {
	switch c {
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case '\n':
		return `\n`
	case '\\', '\'', '"':
		return `\` + string(c)
	}
	if c >= 0x20 && c < 0x7f {
		return string(c)
	}
	return fmt.Sprintf(`\x%02x`, c)
}
