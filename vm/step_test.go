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
	"github.com/stretchr/testify/require"
)

func newInstance(t *testing.T) *vm.Instance {
	t.Helper()
	i, err := vm.New(nil)
	require.NoError(t, err)
	return i
}

func TestHaltHasNoSideEffects(t *testing.T) {
	i := newInstance(t)
	i.Field[0][0] = '@'
	var out bytes.Buffer
	st, err := i.Step(bufio.NewReader(strings.NewReader("")), &out, fixedRand(0))
	require.NoError(t, err)
	require.Equal(t, vm.Halted, st)
	require.Zero(t, out.Len())
	require.Zero(t, i.Depth())
	require.Equal(t, uint8(0), i.Row)
	require.Equal(t, uint8(0), i.Col)
	require.Equal(t, vm.Right, i.Dir)
}

func TestWraparound(t *testing.T) {
	var wraps = [...]struct {
		name     string
		op       byte
		row, col uint8
		expRow   uint8
		expCol   uint8
	}{
		{"up", '^', 0, 0, 24, 0},
		{"left", '<', 0, 0, 0, 79},
		{"down", 'v', 24, 0, 0, 0},
		{"right", '>', 0, 79, 0, 0},
		{"inner up", '^', 12, 40, 11, 40},
		{"inner right", '>', 12, 40, 12, 41},
	}
	for _, w := range wraps {
		i := newInstance(t)
		i.Field[w.row][w.col] = w.op
		i.Row, i.Col = w.row, w.col
		st, err := i.Step(nil, nil, nil)
		require.NoError(t, err, w.name)
		require.Equal(t, vm.Running, st, w.name)
		require.Equal(t, w.expRow, i.Row, w.name)
		require.Equal(t, w.expCol, i.Col, w.name)
	}
}

func TestRandomDirection(t *testing.T) {
	for n, exp := range []vm.Direction{vm.Up, vm.Down, vm.Left, vm.Right} {
		i := newInstance(t)
		i.Field[0][0] = '?'
		_, err := i.Step(nil, nil, fixedRand(n))
		require.NoError(t, err)
		require.Equal(t, exp, i.Dir)
	}

	i := newInstance(t)
	i.Field[0][0] = '?'
	_, err := i.Step(nil, nil, fixedRand(2))
	require.NoError(t, err)
	require.Equal(t, vm.Left, i.Dir)
	require.Equal(t, uint8(79), i.Col)
}

func TestBridgeAndStringFlags(t *testing.T) {
	i, err := vm.Load(strings.NewReader(`#x"@"`))
	require.NoError(t, err)

	_, err = i.Step(nil, nil, nil)
	require.NoError(t, err)
	require.True(t, i.Bridge())

	// the invalid instruction under the bridge is skipped
	_, err = i.Step(nil, nil, nil)
	require.NoError(t, err)
	require.False(t, i.Bridge())

	_, err = i.Step(nil, nil, nil)
	require.NoError(t, err)
	require.True(t, i.StringMode())

	// '@' is pushed, not executed
	st, err := i.Step(nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, vm.Running, st)
	require.Equal(t, []int64{'@'}, i.Data())

	_, err = i.Step(nil, nil, nil)
	require.NoError(t, err)
	require.False(t, i.StringMode())
	require.Equal(t, int64(5), i.StepCount())
	require.Equal(t, byte(' '), i.Next())
}

func TestConditionals(t *testing.T) {
	var conds = [...]struct {
		op  byte
		v   int64
		dir vm.Direction
	}{
		{'_', 0, vm.Right},
		{'_', 1, vm.Left},
		{'_', -3, vm.Left},
		{'|', 0, vm.Down},
		{'|', 7, vm.Up},
	}
	for _, c := range conds {
		i := newInstance(t)
		i.Field[0][0] = c.op
		i.Push(c.v)
		_, err := i.Step(nil, nil, nil)
		require.NoError(t, err)
		require.Equal(t, c.dir, i.Dir, "%c %d", c.op, c.v)
		require.Zero(t, i.Depth())
	}
}

func TestFaultLeavesPointer(t *testing.T) {
	i, err := vm.Load(strings.NewReader("12x"))
	require.NoError(t, err)
	for n := 0; n < 2; n++ {
		_, err = i.Step(nil, nil, nil)
		require.NoError(t, err)
	}
	_, err = i.Step(nil, nil, nil)
	require.Equal(t, vm.InvalidInstructionError('x'), err)
	require.Equal(t, uint8(2), i.Col)
	require.Equal(t, []int64{1, 2}, i.Data())
}
