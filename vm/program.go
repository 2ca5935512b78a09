// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vm

import (
	"strings"

	"github.com/holiman/uint256"
)

// Instruction is one decoded opcode. Operand is only meaningful for the
// push opcodes; a single-byte OP_PUSH1 immediate is kept zero-extended.
type Instruction struct {
	Code    OpCode
	Operand uint256.Int
}

// Program is a straight-line opcode sequence. It is append-only while a
// function body is lowered and read-only afterwards. There is no jump
// opcode, so a program always terminates within len(program) steps.
type Program []Instruction

// NewProgram returns an empty program.
func NewProgram() *Program {
	p := make(Program, 0, 8)
	return &p
}

// AddOp appends a bare opcode to the program.
func (p *Program) AddOp(code OpCode) *Program {
	*p = append(*p, Instruction{Code: code})
	return p
}

// AddPush32 appends an OP_PUSH32 with a full-word immediate.
func (p *Program) AddPush32(w *uint256.Int) *Program {
	*p = append(*p, Instruction{Code: OPPUSH32, Operand: *w})
	return p
}

// AddPush1 appends an OP_PUSH1 with a single-byte immediate.
func (p *Program) AddPush1(b byte) *Program {
	*p = append(*p, Instruction{Code: OPPUSH1, Operand: *uint256.NewInt(uint64(b))})
	return p
}

// AddProgram appends another program to the program.
func (p *Program) AddProgram(program Program) *Program {
	*p = append(*p, program...)
	return p
}

// Bytes encodes the program in its wire form: one byte per opcode,
// followed by a 1-byte immediate for OP_PUSH1 and a 32-byte big-endian
// immediate for OP_PUSH32.
func (p Program) Bytes() []byte {
	buf := make([]byte, 0, len(p))
	for _, inst := range p {
		buf = append(buf, byte(inst.Code))
		switch inst.Code {
		case OPPUSH1:
			buf = append(buf, byte(inst.Operand.Uint64()))
		case OPPUSH32:
			word := inst.Operand.Bytes32()
			buf = append(buf, word[:]...)
		}
	}
	return buf
}

// ParseProgram decodes the wire form produced by Bytes.
func ParseProgram(code []byte) (Program, error) {
	program := make(Program, 0, len(code))
	for pc := 0; pc < len(code); {
		opCode := OpCode(code[pc])
		pc++

		switch opCode {
		case OPPUSH1:
			if len(code)-pc < 1 {
				return nil, ErrProgramBound
			}
			program.AddPush1(code[pc])
			pc++
		case OPPUSH32:
			if len(code)-pc < 32 {
				return nil, ErrProgramBound
			}
			var w uint256.Int
			w.SetBytes(code[pc : pc+32])
			program.AddPush32(&w)
			pc += 32
		case OPISZERO, OPPOP, OPSLOAD, OPSSTORE, OPDUP1, OPSWAP1, OPRETURN:
			program.AddOp(opCode)
		default:
			return nil, ErrBadOpcode
		}
	}
	return program, nil
}

// Disasm disassembles the program in human readable format.
func (p Program) Disasm() string {
	var str []string
	for _, inst := range p {
		switch inst.Code {
		case OPPUSH1, OPPUSH32:
			str = append(str, opCodeToName(inst.Code), inst.Operand.Hex())
		default:
			str = append(str, opCodeToName(inst.Code))
		}
	}
	return strings.Join(str, " ")
}
