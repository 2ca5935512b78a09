// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

import (
	"testing"

	"github.com/facebookgo/ensure"
	"github.com/holiman/uint256"
)

// run executes program against a fresh storage with n slots.
func run(t *testing.T, program *Program, slots int) (*VM, *Storage, error) {
	storage := NewStorage(nil)
	for i := 0; i < slots; i++ {
		storage.Grow()
	}
	machine := New(*program)
	err := machine.Run(storage)
	return machine, storage, err
}

func TestRunPushPop(t *testing.T) {
	w := new(uint256.Int).Lsh(uint256.NewInt(1), 255)
	machine, _, err := run(t, NewProgram().AddPush32(w).AddPush1(0xab).AddOp(OPPOP), 0)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, machine.StackDepth(), 1)

	top, err := machine.PopResult()
	ensure.Nil(t, err)
	ensure.DeepEqual(t, top, *w)
}

func TestRunIsZero(t *testing.T) {
	machine, _, err := run(t, NewProgram().AddPush1(0).AddOp(OPISZERO), 0)
	ensure.Nil(t, err)
	top, _ := machine.PopResult()
	ensure.DeepEqual(t, top, *uint256.NewInt(1))

	machine, _, err = run(t, NewProgram().AddPush1(7).AddOp(OPISZERO), 0)
	ensure.Nil(t, err)
	top, _ = machine.PopResult()
	ensure.True(t, top.IsZero())

	// nonzero anywhere in the word counts
	w := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
	machine, _, err = run(t, NewProgram().AddPush32(w).AddOp(OPISZERO), 0)
	ensure.Nil(t, err)
	top, _ = machine.PopResult()
	ensure.True(t, top.IsZero())
}

func TestRunDupSwap(t *testing.T) {
	machine, _, err := run(t, NewProgram().AddPush1(5).AddOp(OPDUP1), 0)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, machine.StackDepth(), 2)
	first, _ := machine.PopResult()
	second, _ := machine.PopResult()
	ensure.DeepEqual(t, first, second)

	machine, _, err = run(t, NewProgram().AddPush1(1).AddPush1(2).AddOp(OPSWAP1), 0)
	ensure.Nil(t, err)
	top, _ := machine.PopResult()
	ensure.DeepEqual(t, top, *uint256.NewInt(1))
}

func TestRunStoreLoad(t *testing.T) {
	v := uint256.NewInt(0xbeef)
	program := NewProgram().
		AddPush32(v).AddPush1(1).AddOp(OPSSTORE).
		AddPush1(1).AddOp(OPSLOAD).AddOp(OPRETURN)

	machine, storage, err := run(t, program, 2)
	ensure.Nil(t, err)

	top, err := machine.PopResult()
	ensure.Nil(t, err)
	ensure.DeepEqual(t, top, *v)

	stored, err := storage.Load(1)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, stored, *v)
}

func TestRunReturnHalts(t *testing.T) {
	program := NewProgram().AddPush1(1).AddOp(OPRETURN).AddPush1(2)
	machine, _, err := run(t, program, 0)
	ensure.Nil(t, err)

	// the push after OP_RETURN never ran
	ensure.DeepEqual(t, machine.StackDepth(), 1)
	top, _ := machine.PopResult()
	ensure.DeepEqual(t, top, *uint256.NewInt(1))
}

func TestRunFaults(t *testing.T) {
	// pop on empty stack
	_, _, err := run(t, NewProgram().AddOp(OPPOP), 0)
	ensure.DeepEqual(t, err, ErrStackUnderflow)

	// dup on empty stack
	_, _, err = run(t, NewProgram().AddOp(OPDUP1), 0)
	ensure.DeepEqual(t, err, ErrStackUnderflow)

	// swap with one word
	_, _, err = run(t, NewProgram().AddPush1(1).AddOp(OPSWAP1), 0)
	ensure.DeepEqual(t, err, ErrStackUnderflow)

	// load/store beyond storage length
	_, _, err = run(t, NewProgram().AddPush1(0).AddOp(OPSLOAD), 0)
	ensure.DeepEqual(t, err, ErrInvalidStorageSlot)
	_, _, err = run(t, NewProgram().AddPush1(1).AddPush1(3).AddOp(OPSSTORE), 2)
	ensure.DeepEqual(t, err, ErrInvalidStorageSlot)

	// storage key too wide for any slot
	huge := new(uint256.Int).Lsh(uint256.NewInt(1), 100)
	_, _, err = run(t, NewProgram().AddPush32(huge).AddOp(OPSLOAD), 1)
	ensure.DeepEqual(t, err, ErrInvalidStorageSlot)

	// byte outside the instruction set
	_, _, err = run(t, &Program{{Code: OpCode(0xfe)}}, 0)
	ensure.DeepEqual(t, err, ErrBadOpcode)
}

func TestRunStackOverflow(t *testing.T) {
	program := NewProgram()
	for i := 0; i <= StackLimit; i++ {
		program.AddPush1(1)
	}
	_, _, err := run(t, program, 0)
	ensure.DeepEqual(t, err, ErrStackOverflow)
}
