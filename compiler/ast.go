// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package compiler

import (
	"github.com/tinysol/tinysol/contract"
)

// The external parser hands the compiler a tree of the types below. Only
// the shapes the lowering rules understand are defined; anything else the
// parser may someday produce must satisfy the marker interfaces and will be
// rejected with ErrUnsupportedConstruct.

// SourceUnit is a parsed compilation unit: the top-level list of contract
// definitions.
type SourceUnit struct {
	Parts []SourceUnitPart
}

// SourceUnitPart is one top-level item of a source unit.
type SourceUnitPart interface {
	sourceUnitPart()
}

// ContractDefinition declares a contract and its members, in source order.
type ContractDefinition struct {
	Name  string
	Parts []ContractPart
}

func (d *ContractDefinition) sourceUnitPart() {}

// ContractPart is one member of a contract definition.
type ContractPart interface {
	contractPart()
}

// FunctionDefinition declares a function. A nil Body marks a
// declaration-only (abstract) function, which produces no function table
// entry.
type FunctionDefinition struct {
	Name       string
	Params     []contract.Parameter
	Attributes []FunctionAttribute
	Returns    []contract.Parameter
	Body       Statement
}

func (d *FunctionDefinition) contractPart() {}

// StateVariableDefinition declares a contract state variable. Each one is
// assigned the next storage slot in declaration order.
type StateVariableDefinition struct {
	Type contract.TypeName
	Name string
}

func (d *StateVariableDefinition) contractPart() {}

// ConstructorDefinition declares a constructor. Deployment semantics live
// outside this core, so the lowering pass skips these.
type ConstructorDefinition struct {
	Params     []contract.Parameter
	Attributes []FunctionAttribute
	Body       Statement
}

func (d *ConstructorDefinition) contractPart() {}

// FunctionAttribute is a visibility or mutability marker on a function.
// When a category repeats, the last attribute wins.
type FunctionAttribute interface {
	functionAttribute()
}

// VisibilityAttribute sets a function's visibility.
type VisibilityAttribute struct {
	Visibility contract.Visibility
}

func (a *VisibilityAttribute) functionAttribute() {}

// MutabilityAttribute sets a function's mutability.
type MutabilityAttribute struct {
	Mutability contract.Mutability
}

func (a *MutabilityAttribute) functionAttribute() {}

// Statement is a node lowered to an opcode sequence.
type Statement interface {
	stmt()
}

// BlockStatement is a braced statement list, lowered front to back into one
// flat sequence.
type BlockStatement struct {
	Statements []Statement
}

func (s *BlockStatement) stmt() {}

// ExpressionStatement evaluates an expression for its effect.
type ExpressionStatement struct {
	Expr Expression
}

func (s *ExpressionStatement) stmt() {}

// ReturnStatement halts the function. A nil Expr is a bare return.
type ReturnStatement struct {
	Expr Expression
}

func (s *ReturnStatement) stmt() {}

// Expression is a value-producing node.
type Expression interface {
	expr()
}

// BoolLiteral is a true/false literal.
type BoolLiteral struct {
	Value bool
}

func (e *BoolLiteral) expr() {}

// Variable references a state variable by name.
type Variable struct {
	Name string
}

func (e *Variable) expr() {}

// Assign stores Value into Target. Only a direct Variable target is
// supported.
type Assign struct {
	Target Expression
	Value  Expression
}

func (e *Assign) expr() {}

// Not is logical negation.
type Not struct {
	Operand Expression
}

func (e *Not) expr() {}

// TypeExpr is a bare type mention. It never produces a value.
type TypeExpr struct {
	Type contract.TypeName
}

func (e *TypeExpr) expr() {}
