// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contract

import (
	"errors"
)

// error
var (

	// image.go
	ErrBadImageVersion = errors.New("Unsupported contract image version")
)
