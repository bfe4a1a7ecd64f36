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
	"math/rand"
	"time"
)

// Reader is the input channel used by the '&' and '~' instructions.
// *bufio.Reader implements it.
type Reader interface {
	io.ByteReader
	ReadString(delim byte) (string, error)
}

// Rand is the randomness source used by the '?' instruction. Intn must return
// a uniformly distributed value in [0, n). *rand.Rand implements it.
type Rand interface {
	Intn(n int) int
}

type flusher interface {
	Flush() error
}

// newReader returns r if it already implements Reader or wraps it into a
// bufio.Reader.
func newReader(r io.Reader) Reader {
	switch rr := r.(type) {
	case nil:
		return nil
	case Reader:
		return rr
	default:
		return bufio.NewReader(r)
	}
}

func newRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

func defaultRand() Rand {
	return newRand(time.Now().UnixNano())
}

// eofReader is the input used when no Input option is given.
type eofReader struct{}

func (eofReader) ReadByte() (byte, error) { return 0, io.EOF }
func (eofReader) ReadString(byte) (string, error) { return "", io.EOF }
