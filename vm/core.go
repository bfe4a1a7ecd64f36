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
	"math"
	"strconv"
	"strings"
)

// Step executes the instruction under the instruction pointer, then moves the
// pointer one cell in the current direction. The '&' and '~' instructions read
// from in, '.' and ',' write to out and '?' draws from rnd.
//
// Step returns Halted without moving the pointer when the program executes
// '@'. Errors are fatal: the instance is left as it was at the point of
// failure, and the pointer still designates the faulting cell.
func (i *Instance) Step(in Reader, out io.Writer, rnd Rand) (Status, error) {
	i.insCount++

	if i.bridge {
		i.bridge = false
		i.advance()
		return Running, nil
	}

	if i.strMode {
		if c := i.Next(); c == '"' {
			i.strMode = false
		} else {
			i.Push(int64(c))
		}
		i.advance()
		return Running, nil
	}

	switch c := i.Next(); c {
	case ' ':
	case '@':
		return Halted, nil
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		i.Push(int64(c - '0'))
	case '^':
		i.Dir = Up
	case 'v':
		i.Dir = Down
	case '<':
		i.Dir = Left
	case '>':
		i.Dir = Right
	case '?':
		i.Dir = Direction(rnd.Intn(4))
	case '"':
		i.strMode = true
	case '+':
		a, b := i.Pop(), i.Pop()
		i.Push(a + b)
	case '-':
		a, b := i.Pop(), i.Pop()
		i.Push(a - b)
	case '*':
		a, b := i.Pop(), i.Pop()
		i.Push(a * b)
	case '/', '%':
		a, b := i.Pop(), i.Pop()
		if b == 0 {
			return Running, ErrDivisionByZero
		}
		if a == math.MinInt64 && b == -1 {
			return Running, ErrDivisionOverflow
		}
		if c == '/' {
			i.Push(a / b)
		} else {
			i.Push(a % b)
		}
	case '!':
		if i.Pop() != 0 {
			i.Push(0)
		} else {
			i.Push(1)
		}
	case '_':
		if i.Pop() != 0 {
			i.Dir = Left
		} else {
			i.Dir = Right
		}
	case '|':
		if i.Pop() != 0 {
			i.Dir = Up
		} else {
			i.Dir = Down
		}
	case '&':
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return Running, ioError(err)
		}
		v, perr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if perr != nil {
			return Running, InvalidNumericError(line)
		}
		i.Push(v)
	case '~':
		b, err := in.ReadByte()
		if err != nil {
			return Running, ioError(err)
		}
		i.Push(int64(b))
	case '.':
		var buf [24]byte
		b := strconv.AppendInt(buf[:0], i.Pop(), 10)
		if _, err := out.Write(append(b, ' ')); err != nil {
			return Running, ioError(err)
		}
	case ',':
		v := i.Pop()
		if v < 0 || v > 127 {
			return Running, InvalidCharacterError(v)
		}
		if _, err := out.Write([]byte{byte(v)}); err != nil {
			return Running, ioError(err)
		}
	case '#':
		i.bridge = true
	case ':':
		i.Push(i.bottom())
	case '$':
		i.Pop()
	case '\\':
		a, b := i.Pop(), i.Pop()
		i.Push(a)
		i.Push(b)
	case '`':
		a, b := i.Pop(), i.Pop()
		if a > b {
			i.Push(1)
		} else {
			i.Push(0)
		}
	case 'g':
		y, x := i.Pop(), i.Pop()
		if v, ok := i.Field.Get(x, y); ok {
			i.Push(int64(v))
		} else {
			i.Push(' ')
		}
	case 'p':
		y, x, v := i.Pop(), i.Pop(), i.Pop()
		i.Field.Put(x, y, byte(v))
	default:
		return Running, InvalidInstructionError(c)
	}

	i.advance()
	return Running, nil
}

// advance moves the instruction pointer one cell in the current direction,
// wrapping around the playfield edges.
func (i *Instance) advance() {
	switch i.Dir {
	case Up:
		if i.Row == 0 {
			i.Row = Height - 1
		} else {
			i.Row--
		}
	case Down:
		i.Row = (i.Row + 1) % Height
	case Left:
		if i.Col == 0 {
			i.Col = Width - 1
		} else {
			i.Col--
		}
	case Right:
		i.Col = (i.Col + 1) % Width
	}
}
