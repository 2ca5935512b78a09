// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

import (
	"testing"

	"github.com/facebookgo/ensure"
	"github.com/holiman/uint256"
)

func TestStorageGrow(t *testing.T) {
	s := NewStorage(nil)
	ensure.DeepEqual(t, s.Len(), 0)

	ensure.DeepEqual(t, s.Grow(), 0)
	ensure.DeepEqual(t, s.Grow(), 1)
	ensure.DeepEqual(t, s.Len(), 2)

	// new slots are zero-initialized
	w, err := s.Load(1)
	ensure.Nil(t, err)
	ensure.True(t, w.IsZero())
}

func TestStorageLoadStore(t *testing.T) {
	s := NewStorage(nil)
	s.Grow()
	s.Grow()

	v := uint256.NewInt(42)
	ensure.Nil(t, s.Store(1, v))

	got, err := s.Load(1)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, got, *v)

	// the untouched slot stays zero
	got, err = s.Load(0)
	ensure.Nil(t, err)
	ensure.True(t, got.IsZero())
}

func TestStorageOutOfRange(t *testing.T) {
	s := NewStorage(nil)
	s.Grow()

	_, err := s.Load(1)
	ensure.DeepEqual(t, err, ErrInvalidStorageSlot)
	ensure.DeepEqual(t, s.Store(1, uint256.NewInt(1)), ErrInvalidStorageSlot)
}

func TestStorageCopyIsolation(t *testing.T) {
	s := NewStorage(nil)
	s.Grow()
	ensure.Nil(t, s.Store(0, uint256.NewInt(7)))

	snapshot := s.Copy()
	ensure.Nil(t, snapshot.Store(0, uint256.NewInt(9)))

	orig, err := s.Load(0)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, orig, *uint256.NewInt(7))

	copied, err := snapshot.Load(0)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, copied, *uint256.NewInt(9))
}

func TestStorageSlotIndex(t *testing.T) {
	s := NewStorage(nil)
	s.Grow()

	slot, err := s.slotIndex(uint256.NewInt(0))
	ensure.Nil(t, err)
	ensure.DeepEqual(t, slot, uint64(0))

	// beyond length
	_, err = s.slotIndex(uint256.NewInt(1))
	ensure.DeepEqual(t, err, ErrInvalidStorageSlot)

	// does not fit a uint64 at all
	huge := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
	_, err = s.slotIndex(huge)
	ensure.DeepEqual(t, err, ErrInvalidStorageSlot)
}
