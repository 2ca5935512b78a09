// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contract

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/holiman/uint256"

	"github.com/tinysol/tinysol/vm"
)

// imageVersion tags the CBOR layout of a serialized contract.
const imageVersion = 1

// canonical mode keeps the encoding deterministic
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("contract: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// image is the flat codec form of a Contract. Words travel as 32-byte
// big-endian values, programs in their wire form.
type image struct {
	Version       int                      `cbor:"1,keyasint"`
	Name          string                   `cbor:"2,keyasint"`
	Slots         [][]byte                 `cbor:"3,keyasint,omitempty"`
	VariableSlots map[string]int           `cbor:"4,keyasint,omitempty"`
	Functions     map[string]functionImage `cbor:"5,keyasint,omitempty"`
}

// functionImage is the codec form of one Function, keyed by selector.
type functionImage struct {
	Code       []byte           `cbor:"1,keyasint"`
	Visibility int              `cbor:"2,keyasint"`
	Mutability int              `cbor:"3,keyasint"`
	Returns    []parameterImage `cbor:"4,keyasint,omitempty"`
}

type parameterImage struct {
	Name string `cbor:"1,keyasint,omitempty"`
	Type string `cbor:"2,keyasint"`
}

// MarshalImage serializes the contract to CBOR bytes. Where the image ends
// up (file, database, wire) is the caller's business.
func (c *Contract) MarshalImage() ([]byte, error) {
	img := image{
		Version:       imageVersion,
		Name:          c.Name,
		VariableSlots: c.VariableSlots,
		Functions:     make(map[string]functionImage, len(c.Functions)),
	}

	for _, w := range c.Storage.Slots() {
		word := w.Bytes32()
		img.Slots = append(img.Slots, word[:])
	}

	for selector, function := range c.Functions {
		fimg := functionImage{
			Code:       function.Program.Bytes(),
			Visibility: int(function.Visibility),
			Mutability: int(function.Mutability),
		}
		for _, param := range function.Returns {
			fimg.Returns = append(fimg.Returns, parameterImage{
				Name: param.Name,
				Type: string(param.Type),
			})
		}
		img.Functions[selector] = fimg
	}

	return cborEncMode.Marshal(img)
}

// LoadImage deserializes a contract image produced by MarshalImage.
func LoadImage(data []byte) (*Contract, error) {
	var img image
	if err := cbor.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("contract: unmarshal image: %w", err)
	}
	if img.Version != imageVersion {
		return nil, ErrBadImageVersion
	}

	c := New(img.Name)
	slots := make([]uint256.Int, 0, len(img.Slots))
	for _, word := range img.Slots {
		var w uint256.Int
		w.SetBytes(word)
		slots = append(slots, w)
	}
	c.Storage = vm.NewStorage(slots)

	for name, slot := range img.VariableSlots {
		c.VariableSlots[name] = slot
	}

	for selector, fimg := range img.Functions {
		program, err := vm.ParseProgram(fimg.Code)
		if err != nil {
			return nil, fmt.Errorf("contract: function %s: %w", selector, err)
		}
		function := &Function{
			Program:    program,
			Visibility: Visibility(fimg.Visibility),
			Mutability: Mutability(fimg.Mutability),
		}
		for _, param := range fimg.Returns {
			function.Returns = append(function.Returns, Parameter{
				Name: param.Name,
				Type: TypeName(param.Type),
			})
		}
		c.Functions[selector] = function
	}

	return c, nil
}
