// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package vm implements the contract virtual machine.

The vm package implements a word-oriented byte code VM. It loops over a
straight-line program of opcodes and executes them against a 1024-word
stack and a slot-indexed contract storage. The instruction set has no jump
or branch opcode, so every program terminates within its own length.
*/
package vm
