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

package bfi_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/derrickturk/b93/internal/bfi"
	"github.com/pkg/errors"
)

type limitWriter struct {
	w io.Writer
	n int
}

func (l *limitWriter) Write(p []byte) (int, error) {
	if len(p) > l.n {
		return 0, io.ErrShortWrite
	}
	l.n -= len(p)
	return l.w.Write(p)
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	w := bfi.NewErrWriter(&limitWriter{&b, 4})
	if _, err := w.Write([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("def")); errors.Cause(err) != io.ErrShortWrite {
		t.Fatalf("expected %v, got %v", io.ErrShortWrite, err)
	}
	// sticky error, nothing written
	if n, err := w.Write([]byte("g")); n != 0 || err != w.Err {
		t.Fatalf("expected sticky error, got %d, %v", n, err)
	}
	if s := b.String(); s != "abc" {
		t.Fatalf("expected \"abc\", got %q", s)
	}
}
