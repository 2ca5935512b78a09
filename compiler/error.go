// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package compiler

import (
	"errors"
)

// error
var (

	// lower.go
	ErrUnknownIdentifier       = errors.New("Unknown identifier")
	ErrUnsupportedAssignTarget = errors.New("Unsupported assignment target")
	ErrUnsupportedConstruct    = errors.New("Unsupported construct")
	ErrSlotOutOfRange          = errors.New("Storage slot exceeds PUSH1 range")
)
