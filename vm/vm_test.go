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

package vm_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/derrickturk/b93/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRunFile(t *testing.T) {
	var tests = [...]struct {
		file   string
		output string
	}{
		{"testdata/hello.bf", "Hello World!\n"},
		{"testdata/count.bf", "10 9 8 7 6 5 4 3 2 1 "},
	}
	for _, test := range tests {
		var out bytes.Buffer
		i, err := vm.LoadFile(test.file, vm.Output(&out))
		require.NoError(t, err, test.file)
		require.NoError(t, i.Run(), test.file)
		require.Equal(t, test.output, out.String(), test.file)
	}
}

func TestRunFlushesOutput(t *testing.T) {
	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	i, err := vm.Load(strings.NewReader(`"ih",,@`), vm.Output(w))
	require.NoError(t, err)
	require.NoError(t, i.Run())
	require.Equal(t, "hi", b.String())
}

func TestRunFaultPosition(t *testing.T) {
	i, err := vm.Load(strings.NewReader("v\n\n>1x"))
	require.NoError(t, err)
	err = i.Run()
	require.Error(t, err)
	require.Equal(t, vm.InvalidInstructionError('x'), errors.Cause(err))
	require.Contains(t, err.Error(), "fault @(2,2) 'x'")
	require.Equal(t, uint8(2), i.Row)
	require.Equal(t, uint8(2), i.Col)
}

func TestStepLimit(t *testing.T) {
	i, err := vm.Load(strings.NewReader(">"), vm.StepLimit(100))
	require.NoError(t, err)
	err = i.Run()
	require.Equal(t, vm.ErrStepLimit, errors.Cause(err))
	require.Equal(t, int64(100), i.StepCount())
}

func TestSeed(t *testing.T) {
	src := strings.Repeat(strings.Repeat("?", vm.Width)+"\n", vm.Height)
	walk := func(seed int64) (uint8, uint8, vm.Direction) {
		i, err := vm.Load(strings.NewReader(src), vm.Seed(seed), vm.StepLimit(500))
		require.NoError(t, err)
		require.Equal(t, vm.ErrStepLimit, errors.Cause(i.Run()))
		return i.Row, i.Col, i.Dir
	}
	r1, c1, d1 := walk(42)
	r2, c2, d2 := walk(42)
	require.Equal(t, r1, r2)
	require.Equal(t, c1, c2)
	require.Equal(t, d1, d2)
}

func TestDump(t *testing.T) {
	i, err := vm.Load(strings.NewReader("12@\n v"))
	require.NoError(t, err)
	require.NoError(t, i.Run())
	var b bytes.Buffer
	require.NoError(t, i.Dump(&b))
	require.Equal(t, "\x1C1 2\x1D0,2,right\x1D12@\n v\n", b.String())
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "up", vm.Up.String())
	require.Equal(t, "left", vm.Left.String())
	require.Equal(t, "Direction(7)", vm.Direction(7).String())
}

func TestNewDefaults(t *testing.T) {
	i, err := vm.New(nil)
	require.NoError(t, err)
	require.Equal(t, vm.Right, i.Dir)
	require.Zero(t, i.Depth())
	require.False(t, i.Bridge())
	require.False(t, i.StringMode())
	require.Equal(t, "", i.Field.String())

	// without an Input option, input is at EOF
	i.Field[0][0] = '&'
	err = i.Run()
	require.Equal(t, vm.InvalidNumericError(""), errors.Cause(err))
}

func TestOptionError(t *testing.T) {
	bad := func(*vm.Instance) error { return errors.New("bad option") }
	_, err := vm.New(nil, bad)
	require.EqualError(t, err, "bad option")
}
