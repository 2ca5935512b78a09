// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

// OpCode enum
type OpCode byte

// These constants reuse the EVM's byte encodings
const (
	OPISZERO OpCode = 0x15 // 21
	OPPOP    OpCode = 0x50 // 80
	OPSLOAD  OpCode = 0x54 // 84
	OPSSTORE OpCode = 0x55 // 85
	OPPUSH1  OpCode = 0x60 // 96
	OPPUSH32 OpCode = 0x7f // 127
	OPDUP1   OpCode = 0x80 // 128
	OPSWAP1  OpCode = 0x90 // 144
	OPRETURN OpCode = 0xf3 // 243
)

// opCodeToName maps op code to name
func opCodeToName(opCode OpCode) string {
	switch opCode {
	case OPISZERO:
		return "OP_ISZERO"
	case OPPOP:
		return "OP_POP"
	case OPSLOAD:
		return "OP_SLOAD"
	case OPSSTORE:
		return "OP_SSTORE"
	case OPPUSH1:
		return "OP_PUSH1"
	case OPPUSH32:
		return "OP_PUSH32"
	case OPDUP1:
		return "OP_DUP1"
	case OPSWAP1:
		return "OP_SWAP1"
	case OPRETURN:
		return "OP_RETURN"
	default:
		return "OP_UNKNOWN"
	}
}

func (opCode OpCode) String() string {
	return opCodeToName(opCode)
}
