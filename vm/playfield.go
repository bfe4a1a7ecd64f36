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
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Playfield dimensions.
const (
	Height = 25
	Width  = 80
)

// Playfield is the toroidal program grid, indexed by [row][column].
type Playfield [Height][Width]byte

// NewPlayfield returns a playfield filled with spaces.
func NewPlayfield() *Playfield {
	var p Playfield
	for x := range p {
		for y := range p[x] {
			p[x][y] = ' '
		}
	}
	return &p
}

func inBounds(x, y int64) bool {
	return x >= 0 && x < Height && y >= 0 && y < Width
}

// Get returns the cell at row x, column y. ok is false if the coordinates are
// out of bounds.
func (p *Playfield) Get(x, y int64) (c byte, ok bool) {
	if !inBounds(x, y) {
		return 0, false
	}
	return p[x][y], true
}

// Put stores v at row x, column y and reports whether the coordinates were in
// bounds. Out of bounds writes are dropped.
func (p *Playfield) Put(x, y int64, v byte) bool {
	if !inBounds(x, y) {
		return false
	}
	p[x][y] = v
	return true
}

// String renders the playfield as text, one line per row. Trailing spaces and
// trailing blank rows are omitted, so loading a program and rendering it back
// yields the original source.
func (p *Playfield) String() string {
	var rows []string
	for x := range p {
		rows = append(rows, strings.TrimRight(string(p[x][:]), " "))
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n") + "\n"
}

// ReadPlayfield reads a whole program from r. Lines may be terminated by
// "\n", "\r\n" or a single "\r".
func ReadPlayfield(r io.Reader) (*Playfield, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	p := NewPlayfield()
	var x, y int
	cr := false
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return p, nil
			}
			return nil, ioError(err)
		}
		if c == '\n' && cr {
			cr = false
			continue
		}
		cr = c == '\r'
		if c == '\r' || c == '\n' {
			x++
			y = 0
			continue
		}
		if x >= Height {
			return nil, ErrPlayfieldTooTall
		}
		if y >= Width {
			return nil, ErrPlayfieldTooWide
		}
		p[x][y] = c
		y++
	}
}

// Load reads a program from r and returns a new Instance ready to run it.
func Load(r io.Reader, opts ...Option) (*Instance, error) {
	p, err := ReadPlayfield(r)
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	return New(p, opts...)
}

// LoadFile loads the program in file fileName.
func LoadFile(fileName string, opts ...Option) (*Instance, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return Load(f, opts...)
}
