// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

import (
	"github.com/holiman/uint256"
)

// StackLimit is the hard cap on word stack depth.
const StackLimit = 1024

// Stack is the word stack all opcode operands flow through.
type Stack struct {
	words []uint256.Int
}

func newStack() *Stack {
	return &Stack{words: make([]uint256.Int, 0, StackLimit)}
}

func (s *Stack) size() int {
	return len(s.words)
}

func (s *Stack) empty() bool {
	return len(s.words) == 0
}

// push appends a word. Pushing onto a full stack is a fault, never a
// silent drop: a dropped word would corrupt every instruction after it.
func (s *Stack) push(w *uint256.Int) error {
	if len(s.words) >= StackLimit {
		return ErrStackOverflow
	}
	s.words = append(s.words, *w)
	return nil
}

// pushByte pushes a single byte zero-extended to a full word.
func (s *Stack) pushByte(b byte) error {
	return s.push(uint256.NewInt(uint64(b)))
}

func (s *Stack) pop() (uint256.Int, error) {
	stackLen := len(s.words)
	if stackLen == 0 {
		return uint256.Int{}, ErrStackUnderflow
	}

	w := s.words[stackLen-1]
	s.words = s.words[:stackLen-1]
	return w, nil
}

// swap exchanges the two most recent words.
func (s *Stack) swap() error {
	stackLen := len(s.words)
	if stackLen < 2 {
		return ErrStackUnderflow
	}
	s.words[stackLen-1], s.words[stackLen-2] = s.words[stackLen-2], s.words[stackLen-1]
	return nil
}
