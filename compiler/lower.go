// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package compiler

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/tinysol/tinysol/contract"
	"github.com/tinysol/tinysol/log"
	"github.com/tinysol/tinysol/vm"
)

var logger = log.NewLogger("compiler") // logger

// DefaultSelectorCacheSize bounds the signature to selector memo.
const DefaultSelectorCacheSize = 256

// Config carries compiler tunables.
type Config struct {
	SelectorCacheSize int `mapstructure:"selector_cache_size"`
}

// Compiler lowers parsed source units into contracts.
type Compiler struct {
	cfg       Config
	selectors *lru.Cache
}

// New creates a compiler.
func New(cfg Config) *Compiler {
	if cfg.SelectorCacheSize <= 0 {
		cfg.SelectorCacheSize = DefaultSelectorCacheSize
	}
	selectors, _ := lru.New(cfg.SelectorCacheSize)
	return &Compiler{cfg: cfg, selectors: selectors}
}

// CreateContracts lowers every contract definition in the source unit, in
// source order. A lowering fault in any member aborts the whole unit.
func (c *Compiler) CreateContracts(unit *SourceUnit) ([]*contract.Contract, error) {
	var contracts []*contract.Contract
	for _, part := range unit.Parts {
		definition, ok := part.(*ContractDefinition)
		if !ok {
			continue
		}
		lowered, err := c.lowerContract(definition)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, lowered)
	}
	return contracts, nil
}

// lowerContract processes contract members in declaration order: state
// variables claim storage slots, function bodies lower to programs.
func (c *Compiler) lowerContract(definition *ContractDefinition) (*contract.Contract, error) {
	lowered := contract.New(definition.Name)

	for _, part := range definition.Parts {
		switch member := part.(type) {
		case *StateVariableDefinition:
			slot := lowered.Storage.Grow()
			lowered.VariableSlots[member.Name] = slot

		case *FunctionDefinition:
			if member.Body == nil {
				// declaration only, nothing to lower
				continue
			}
			function, err := c.lowerFunction(member, lowered)
			if err != nil {
				return nil, fmt.Errorf("contract %s: function %s: %w",
					definition.Name, member.Name, err)
			}
			selector := c.Selector(Signature(member.Name, member.Params))
			if _, exists := lowered.Functions[selector]; exists {
				// colliding signatures are not rejected; the last
				// definition wins
				logger.Warnf("contract %s: selector %s collides, keeping %s",
					definition.Name, selector, member.Name)
			}
			lowered.Functions[selector] = function

		case *ConstructorDefinition:
			// deployment is modeled by the surrounding system
			logger.Debugf("contract %s: skipping constructor", definition.Name)
		}
	}
	return lowered, nil
}

func (c *Compiler) lowerFunction(definition *FunctionDefinition, lowered *contract.Contract) (*contract.Function, error) {
	program, err := c.lowerStatement(definition.Body, lowered)
	if err != nil {
		return nil, err
	}
	// implicit halt when the body does not end in an explicit return
	if n := len(*program); n == 0 || (*program)[n-1].Code != vm.OPRETURN {
		program.AddOp(vm.OPRETURN)
	}

	visibility, mutability := foldAttributes(definition.Attributes)

	return &contract.Function{
		Program:    *program,
		Visibility: visibility,
		Mutability: mutability,
		Returns:    definition.Returns,
	}, nil
}

// foldAttributes resolves visibility and mutability left to right over the
// attribute list; the last attribute of each category wins.
func foldAttributes(attributes []FunctionAttribute) (contract.Visibility, contract.Mutability) {
	visibility := contract.Internal
	mutability := contract.NonPayable
	for _, attribute := range attributes {
		switch a := attribute.(type) {
		case *VisibilityAttribute:
			visibility = a.Visibility
		case *MutabilityAttribute:
			mutability = a.Mutability
		}
	}
	return visibility, mutability
}

func (c *Compiler) lowerStatement(statement Statement, lowered *contract.Contract) (*vm.Program, error) {
	switch s := statement.(type) {
	case *BlockStatement:
		program := vm.NewProgram()
		for _, inner := range s.Statements {
			sub, err := c.lowerStatement(inner, lowered)
			if err != nil {
				return nil, err
			}
			program.AddProgram(*sub)
		}
		return program, nil

	case *ExpressionStatement:
		return c.lowerExpression(s.Expr, lowered)

	case *ReturnStatement:
		if s.Expr == nil {
			return vm.NewProgram().AddOp(vm.OPRETURN), nil
		}
		program, err := c.lowerExpression(s.Expr, lowered)
		if err != nil {
			return nil, err
		}
		return program.AddOp(vm.OPRETURN), nil

	default:
		return nil, fmt.Errorf("%w: %T statement", ErrUnsupportedConstruct, statement)
	}
}

func (c *Compiler) lowerExpression(expression Expression, lowered *contract.Contract) (*vm.Program, error) {
	switch e := expression.(type) {
	case *BoolLiteral:
		if e.Value {
			return vm.NewProgram().AddPush1(1), nil
		}
		return vm.NewProgram().AddPush1(0), nil

	case *Variable:
		slot, err := resolveSlot(e.Name, lowered)
		if err != nil {
			return nil, err
		}
		return vm.NewProgram().AddPush1(slot).AddOp(vm.OPSLOAD), nil

	case *Assign:
		target, ok := e.Target.(*Variable)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedAssignTarget, e.Target)
		}
		slot, err := resolveSlot(target.Name, lowered)
		if err != nil {
			return nil, err
		}
		program, err := c.lowerExpression(e.Value, lowered)
		if err != nil {
			return nil, err
		}
		return program.AddPush1(slot).AddOp(vm.OPSSTORE), nil

	case *Not:
		program, err := c.lowerExpression(e.Operand, lowered)
		if err != nil {
			return nil, err
		}
		return program.AddOp(vm.OPISZERO), nil

	default:
		// covers TypeExpr used as a value and any future parser shapes
		return nil, fmt.Errorf("%w: %T expression", ErrUnsupportedConstruct, expression)
	}
}

// resolveSlot maps a state variable name to its slot as an OP_PUSH1
// immediate. An undeclared name is a compile-time fault, never a silent
// fallback to slot 0.
func resolveSlot(name string, lowered *contract.Contract) (byte, error) {
	slot, ok := lowered.VariableSlots[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownIdentifier, name)
	}
	if slot > 0xff {
		return 0, fmt.Errorf("%w: %s at slot %d", ErrSlotOutOfRange, name, slot)
	}
	return byte(slot), nil
}
