// Copyright 2026 Gradlet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over the scalar
// autodiff engine.
//
// # Overview
//
// This package contains:
//   - Neuron: a weighted sum of inputs plus bias, optional ReLU
//   - Layer: an ordered collection of Neurons over one input width
//   - MLP: a feed-forward stack of Layers
//   - Model: a dataflow graph of Layers addressed by named registers
//   - Module interface and ZeroGrad: parameter management
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/gradlet-ml/gradlet/engine"
//	    "github.com/gradlet-ml/gradlet/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//
//	    // Build a 2-16-16-1 network.
//	    model := nn.NewMLP(rng, 2, []int{16, 16, 1})
//
//	    // Forward pass
//	    x := []*engine.Value{engine.New(0.5), engine.New(-1.2)}
//	    out, err := model.Forward(x)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Backward pass
//	    out[0].Backward()
//	}
//
// # Register Graphs
//
// Model wires layers into an arbitrary dataflow graph addressed by named
// registers. Register "I" holds the input, "O" the output, and each
// architecture step reads one register or a pair (a pair is concatenated),
// feeds a layer, and writes the result to a register:
//
//	model, err := nn.NewModel(rng, 4, []string{"r0", "r1"}, []nn.Step{
//	    {In: []string{"I"}, Width: 4, Out: "r0"},
//	    {In: []string{"I"}, Width: 4, Out: "r1"},
//	    {In: []string{"r0", "r1"}, Width: 4, Out: "O", Options: nn.Options{Linear: true}},
//	})
//
// Steps execute in declaration order; there is no dependency-based
// reordering.
//
// # Parameter Management
//
// Every component implements Module and exposes its trainable scalars as
// a flat list for a training loop to update:
//
//	for _, p := range model.Parameters() {
//	    p.Data -= learningRate * p.Grad
//	}
//
// Call nn.ZeroGrad(model) before each backward pass.
package nn
