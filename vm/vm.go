// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

import (
	"github.com/holiman/uint256"

	"github.com/tinysol/tinysol/log"
)

var logger = log.NewLogger("vm") // logger

// VM executes one straight-line bytecode program against a storage
// snapshot.
type VM struct {
	program Program
	pc      int
	stack   *Stack
}

// New creates a VM ready to run program.
func New(program Program) *VM {
	return &VM{
		program: program,
		stack:   newStack(),
	}
}

// Run interprets the program against storage. The caller supplies a
// disposable snapshot; on fault the snapshot must be discarded, as it may
// hold partial writes.
func (vm *VM) Run(storage *Storage) error {
	for vm.pc < len(vm.program) {
		inst := vm.program[vm.pc]
		halt, err := vm.step(inst, storage)
		if err != nil {
			logger.Debugf("program faulted at pc %d op %s: %v", vm.pc, inst.Code, err)
			return err
		}
		vm.pc++
		if halt {
			break
		}
	}
	return nil
}

// step executes a single instruction and reports whether execution halts.
func (vm *VM) step(inst Instruction, storage *Storage) (bool, error) {
	switch inst.Code {
	case OPPUSH32:
		return false, vm.stack.push(&inst.Operand)

	case OPPUSH1:
		return false, vm.stack.pushByte(byte(inst.Operand.Uint64()))

	case OPPOP:
		_, err := vm.stack.pop()
		return false, err

	case OPDUP1:
		w, err := vm.stack.pop()
		if err != nil {
			return false, err
		}
		if err := vm.stack.push(&w); err != nil {
			return false, err
		}
		return false, vm.stack.push(&w)

	case OPSWAP1:
		return false, vm.stack.swap()

	case OPSLOAD:
		key, err := vm.stack.pop()
		if err != nil {
			return false, err
		}
		slot, err := storage.slotIndex(&key)
		if err != nil {
			return false, err
		}
		val, err := storage.Load(slot)
		if err != nil {
			return false, err
		}
		return false, vm.stack.push(&val)

	case OPSSTORE:
		key, err := vm.stack.pop()
		if err != nil {
			return false, err
		}
		val, err := vm.stack.pop()
		if err != nil {
			return false, err
		}
		slot, err := storage.slotIndex(&key)
		if err != nil {
			return false, err
		}
		return false, storage.Store(slot, &val)

	case OPISZERO:
		w, err := vm.stack.pop()
		if err != nil {
			return false, err
		}
		if w.IsZero() {
			return false, vm.stack.push(uint256.NewInt(1))
		}
		return false, vm.stack.push(new(uint256.Int))

	case OPRETURN:
		// halt; whatever is left on the stack is the return buffer
		return true, nil

	default:
		return false, ErrBadOpcode
	}
}

// PopResult pops one word off the final stack. Return values are decoded
// this way after a run completes, most recent word first.
func (vm *VM) PopResult() (uint256.Int, error) {
	return vm.stack.pop()
}

// StackDepth returns the number of words left on the stack.
func (vm *VM) StackDepth() int {
	return vm.stack.size()
}
