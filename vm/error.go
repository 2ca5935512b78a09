// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

import (
	"errors"
)

// error
var (

	// stack.go
	ErrStackOverflow  = errors.New("Word stack overflow")
	ErrStackUnderflow = errors.New("Word stack underflow")

	// storage.go
	ErrInvalidStorageSlot = errors.New("Invalid storage slot")

	// program.go / vm.go
	ErrBadOpcode    = errors.New("Bad opcode")
	ErrProgramBound = errors.New("Program counter out of program bound")
)
