// Copyright 2026 Gradlet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/gradlet-ml/gradlet/internal/nn"
)

// Module is the common interface for all network components.
type Module = nn.Module

// Options configures the units a constructor builds. The zero value
// requests a nonlinear (ReLU) unit; set Linear for a purely affine one.
type Options = nn.Options

// Neuron is a single scalar unit: a weighted sum of inputs plus bias,
// with an optional rectified-linear activation.
type Neuron = nn.Neuron

// NewNeuron creates a unit with nin inputs, weights drawn uniformly from
// [-1, 1] using rng, and a zero bias.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	n := nn.NewNeuron(rng, 3, nn.Options{})
func NewNeuron(rng *rand.Rand, nin int, opts Options) *Neuron {
	return nn.NewNeuron(rng, nin, opts)
}

// Layer is an ordered collection of Neurons sharing one input width.
type Layer = nn.Layer

// NewLayer creates a layer of nout units, each with nin inputs.
//
// Example:
//
//	layer := nn.NewLayer(rng, 2, 16, nn.Options{})
//	out, err := layer.Forward(x) // len(out) == 16
func NewLayer(rng *rand.Rand, nin, nout int, opts Options) *Layer {
	return nn.NewLayer(rng, nin, nout, opts)
}

// NewConjoinLayer creates a layer sized to consume the concatenated
// outputs of l1 and l2. Only the source widths are read; the new layer
// keeps no reference to either source.
func NewConjoinLayer(rng *rand.Rand, l1, l2 *Layer, nout int, opts Options) *Layer {
	return nn.NewConjoinLayer(rng, l1, l2, nout, opts)
}

// NewRegisterConjoinLayer creates a layer sized to consume the
// concatenation of two inputs of the given widths.
func NewRegisterConjoinLayer(rng *rand.Rand, nin1, nin2, nout int, opts Options) *Layer {
	return nn.NewRegisterConjoinLayer(rng, nin1, nin2, nout, opts)
}

// MLP is a feed-forward stack of fully connected layers.
type MLP = nn.MLP

// NewMLP creates a stack with input width nin and one layer per entry of
// nouts. Every layer is nonlinear except the last.
//
// Example:
//
//	model := nn.NewMLP(rng, 2, []int{16, 16, 1})
func NewMLP(rng *rand.Rand, nin int, nouts []int) *MLP {
	return nn.NewMLP(rng, nin, nouts)
}

// Model is a dataflow graph of layers addressed by named registers.
type Model = nn.Model

// Step is one entry of a Model architecture.
type Step = nn.Step

// NewModel creates a register graph with input width nin, the given
// additional register names, and one layer per architecture step.
//
// Example:
//
//	model, err := nn.NewModel(rng, 4, []string{"r0", "r1"}, []nn.Step{
//	    {In: []string{"I"}, Width: 4, Out: "r0"},
//	    {In: []string{"I"}, Width: 4, Out: "r1"},
//	    {In: []string{"r0", "r1"}, Width: 4, Out: "O", Options: nn.Options{Linear: true}},
//	})
func NewModel(rng *rand.Rand, nin int, registers []string, architecture []Step) (*Model, error) {
	return nn.NewModel(rng, nin, registers, architecture)
}

// ZeroGrad resets the accumulated gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Errors

// ErrOutputUnwritten reports that an evaluation ran every step without any
// of them writing register "O".
var ErrOutputUnwritten = nn.ErrOutputUnwritten

// WidthMismatchError reports an output register declared with two
// different widths across architecture steps.
type WidthMismatchError = nn.WidthMismatchError

// RegisterSpecError reports a step input spec that names neither a single
// register nor a pair of registers.
type RegisterSpecError = nn.RegisterSpecError

// UnsetRegisterError reports a read from a register that no earlier step
// has written in the current evaluation.
type UnsetRegisterError = nn.UnsetRegisterError

// InputWidthError reports an input vector whose length does not match the
// expected input width.
type InputWidthError = nn.InputWidthError
