// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/holiman/uint256"

	"github.com/tinysol/tinysol/log"
	"github.com/tinysol/tinysol/vm"
)

var logger = log.NewLogger("contract") // logger

// Visibility classifies who may call a function.
type Visibility int

// Visibility values. Internal is the default when a function declares none.
const (
	Internal Visibility = iota
	Public
	Private
	External
)

// Mutability classifies whether a call may commit storage. View and Pure
// calls always leave the caller's storage untouched.
type Mutability int

// Mutability values. NonPayable is the default when a function declares
// none.
const (
	NonPayable Mutability = iota
	Constant
	Payable
	View
	Pure
)

// TypeName names a type in parameter and return declarations.
type TypeName string

// TypeBool is the only type return decoding understands so far.
const TypeBool TypeName = "bool"

// Parameter describes one declared parameter or return value.
type Parameter struct {
	Name string
	Type TypeName
}

// Function is a lowered function body together with its call metadata.
// It is immutable once lowering has produced it.
type Function struct {
	Program    vm.Program
	Visibility Visibility
	Mutability Mutability
	Returns    []Parameter
}

// Contract aggregates the function table keyed by selector, the state
// variable slot map and storage. Calls are value to value: a successful
// mutating call yields a new Contract rather than updating the receiver in
// place, which is what makes the mutability gate explicit.
type Contract struct {
	Name          string
	Functions     map[string]*Function
	VariableSlots map[string]int
	Storage       *vm.Storage
}

// New returns an empty contract.
func New(name string) *Contract {
	return &Contract{
		Name:          name,
		Functions:     make(map[string]*Function),
		VariableSlots: make(map[string]int),
		Storage:       vm.NewStorage(nil),
	}
}

// Call resolves selector against the function table and runs its program
// against a snapshot of current storage. An unknown selector is not an
// error: the contract comes back unchanged with no return values. An
// execution fault aborts the call and leaves the receiver's committed
// state untouched.
func (c *Contract) Call(selector string) (*Contract, []interface{}, error) {
	function, ok := c.Functions[selector]
	if !ok {
		logger.Debugf("contract %s: no function for selector %s", c.Name, selector)
		return c, nil, nil
	}

	snapshot := c.Storage.Copy()
	machine := vm.New(function.Program)
	if err := machine.Run(snapshot); err != nil {
		return nil, nil, err
	}

	returns := decodeReturns(machine, function.Returns)

	next := c.clone()
	if function.Mutability != View && function.Mutability != Pure {
		next.Storage = snapshot
	}
	return next, returns, nil
}

// clone shares the immutable tables and deep-copies storage.
func (c *Contract) clone() *Contract {
	return &Contract{
		Name:          c.Name,
		Functions:     c.Functions,
		VariableSlots: c.VariableSlots,
		Storage:       c.Storage.Copy(),
	}
}

// decodeReturns pops one word per declared return parameter, in
// declaration order. Only bool decoding is implemented; other declared
// types yield no value. An exhausted stack ends decoding early.
func decodeReturns(machine *vm.VM, params []Parameter) []interface{} {
	var returns []interface{}
	for _, param := range params {
		w, err := machine.PopResult()
		if err != nil {
			break
		}
		if param.Type == TypeBool {
			returns = append(returns, w.Eq(uint256.NewInt(1)))
		}
	}
	return returns
}
