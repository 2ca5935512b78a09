// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

import (
	"github.com/holiman/uint256"
)

// Storage is a contract's persistent word array. One slot is assigned per
// declared state variable at lowering time; slots are never reclaimed, so
// indices stay stable for the contract's lifetime.
type Storage struct {
	slots []uint256.Int
}

// NewStorage builds storage over existing words. A nil slice is an empty
// storage.
func NewStorage(slots []uint256.Int) *Storage {
	return &Storage{slots: slots}
}

// Len returns the number of allocated slots.
func (s *Storage) Len() int {
	return len(s.slots)
}

// Grow appends one zero-initialized slot and returns its index.
func (s *Storage) Grow() int {
	s.slots = append(s.slots, uint256.Int{})
	return len(s.slots) - 1
}

// Load reads the word at the given slot.
func (s *Storage) Load(slot uint64) (uint256.Int, error) {
	if slot >= uint64(len(s.slots)) {
		return uint256.Int{}, ErrInvalidStorageSlot
	}
	return s.slots[slot], nil
}

// Store writes a word to the given slot.
func (s *Storage) Store(slot uint64, w *uint256.Int) error {
	if slot >= uint64(len(s.slots)) {
		return ErrInvalidStorageSlot
	}
	s.slots[slot] = *w
	return nil
}

// Slots returns a copy of the underlying words.
func (s *Storage) Slots() []uint256.Int {
	slots := make([]uint256.Int, len(s.slots))
	copy(slots, s.slots)
	return slots
}

// Copy returns a deep copy, used as a call's working snapshot.
func (s *Storage) Copy() *Storage {
	return NewStorage(s.Slots())
}

// slotIndex converts a key word popped off the stack into a slot index.
func (s *Storage) slotIndex(key *uint256.Int) (uint64, error) {
	slot, overflow := key.Uint64WithOverflow()
	if overflow || slot >= uint64(len(s.slots)) {
		return 0, ErrInvalidStorageSlot
	}
	return slot, nil
}
