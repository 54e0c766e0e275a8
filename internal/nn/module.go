// Package nn implements the network-definition layer on top of the scalar
// autodiff engine.
//
// This package provides the building blocks for composing scalar units into
// networks:
//   - Module interface: parameter enumeration shared by all components
//   - Neuron: a weighted sum of inputs plus bias, optional nonlinearity
//   - Layer: an ordered collection of Neurons over one input width
//   - MLP: a feed-forward stack of Layers
//   - Model: a dataflow graph of Layers addressed by named registers
package nn

import (
	"github.com/gradlet-ml/gradlet/internal/engine"
)

// Module is the common interface for all network components.
//
// A Module exposes its trainable scalars as a flat list so a training loop
// can update them and reset their gradients without knowing the component's
// structure. Neuron, Layer, MLP and Model all implement it.
type Module interface {
	// Parameters returns every trainable scalar of this component, in a
	// stable order: contained components contribute their parameters in
	// construction order.
	Parameters() []*engine.Value
}

// ZeroGrad resets the accumulated gradient of every parameter of m.
//
// Call this before each backward pass; gradients are summed into, never
// overwritten, so stale values would otherwise leak between iterations.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
