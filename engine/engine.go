// Copyright 2026 Gradlet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/gradlet-ml/gradlet/internal/engine"
)

// Value is a scalar node in the computation graph.
//
// Data holds the forward value and Grad the gradient accumulated by the
// backward pass.
type Value = engine.Value

// New returns a leaf node holding data.
//
// Example:
//
//	x := engine.New(3.0)
//	y := x.Mul(x) // y.Data == 9
func New(data float64) *Value {
	return engine.New(data)
}
