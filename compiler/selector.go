// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package compiler

import (
	"encoding/hex"
	"strings"

	"github.com/tinysol/tinysol/contract"
	"github.com/tinysol/tinysol/crypto"
)

// SelectorSize is the number of digest bytes kept in a function selector.
const SelectorSize = 4

// Signature builds the canonical name(type,...) form a selector is derived
// from.
func Signature(name string, params []contract.Parameter) string {
	types := make([]string, 0, len(params))
	for _, param := range params {
		types = append(types, string(param.Type))
	}
	return name + "(" + strings.Join(types, ",") + ")"
}

// Selector derives the selector for a canonical signature: the first four
// bytes of its keccak digest, rendered as lowercase hex. Two identical
// signatures always collide; derivations are memoized per compiler.
func (c *Compiler) Selector(signature string) string {
	if cached, ok := c.selectors.Get(signature); ok {
		return cached.(string)
	}

	selector := hex.EncodeToString(crypto.Keccak256([]byte(signature))[:SelectorSize])
	c.selectors.Add(signature, selector)
	return selector
}
