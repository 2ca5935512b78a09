// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/facebookgo/ensure"
)

func TestKeccak256(t *testing.T) {
	// well-known keccak256 vectors
	ensure.DeepEqual(t, hex.EncodeToString(Keccak256(nil)),
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	ensure.DeepEqual(t, hex.EncodeToString(Keccak256([]byte("abc"))),
		"4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")

	// multi-chunk writes hash the concatenation
	ensure.DeepEqual(t, Keccak256([]byte("ab"), []byte("c")), Keccak256([]byte("abc")))
}

func TestKeccak256Hash(t *testing.T) {
	h := Keccak256Hash([]byte("abc"))
	ensure.DeepEqual(t, h[:], Keccak256([]byte("abc")))
	ensure.DeepEqual(t, h.String(),
		"4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
}

func TestHashTypeSetBytes(t *testing.T) {
	var h, expected HashType
	ensure.NotNil(t, h.SetBytes([]byte{1, 2, 3}))

	digest := Keccak256([]byte("abc"))
	ensure.Nil(t, h.SetBytes(digest))
	copy(expected[:], digest)
	ensure.True(t, h.IsEqual(&expected))
}
