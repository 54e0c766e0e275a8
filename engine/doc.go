// Copyright 2026 Gradlet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides scalar reverse-mode automatic differentiation.
//
// # Overview
//
// The engine operates on Value nodes. Every arithmetic operation returns a
// new node that remembers its operands, so evaluating an expression builds
// a computation graph. Calling Backward on the result walks that graph in
// reverse topological order and accumulates each node's gradient into its
// Grad field.
//
// # Basic Usage
//
//	a := engine.New(-4.0)
//	b := engine.New(2.0)
//	c := a.Add(b)
//	d := a.Mul(b).Add(b.Pow(3))
//	y := c.Mul(d).Relu()
//
//	y.Backward()
//
//	fmt.Println(a.Grad) // dy/da
//	fmt.Println(b.Grad) // dy/db
//
// # Gradient Accumulation
//
// Backward sums into Grad rather than overwriting it, so a node feeding
// several downstream expressions receives every contribution. Reset
// gradients between passes with ZeroGrad:
//
//	for _, p := range model.Parameters() {
//	    p.ZeroGrad()
//	}
package engine
