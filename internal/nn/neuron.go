package nn

import (
	"fmt"
	"math/rand"

	"github.com/gradlet-ml/gradlet/internal/engine"
)

// Neuron is a single scalar unit computing sum(w_i * x_i) + b, with an
// optional rectified-linear activation on the result.
//
// Weights are initialized uniformly in [-1, 1] from the supplied random
// source; the bias starts at 0. The input width is fixed at construction.
type Neuron struct {
	weights []*engine.Value
	bias    *engine.Value
	linear  bool
}

// NewNeuron creates a unit with nin inputs.
//
// The random source is explicit so initialization is reproducible; every
// constructor in this package threads it through to here.
func NewNeuron(rng *rand.Rand, nin int, opts Options) *Neuron {
	weights := make([]*engine.Value, nin)
	for i := range weights {
		weights[i] = engine.New(rng.Float64()*2 - 1)
	}
	return &Neuron{
		weights: weights,
		bias:    engine.New(0),
		linear:  opts.Linear,
	}
}

// Forward evaluates the unit against the input vector x.
//
// Returns an InputWidthError if len(x) differs from the unit's input
// width; excess or missing inputs are never silently dropped.
func (n *Neuron) Forward(x []*engine.Value) (*engine.Value, error) {
	if len(x) != len(n.weights) {
		return nil, &InputWidthError{Got: len(x), Want: len(n.weights)}
	}

	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(x[i]))
	}
	if n.linear {
		return act, nil
	}
	return act.Relu(), nil
}

// Parameters returns the unit's weights followed by its bias.
func (n *Neuron) Parameters() []*engine.Value {
	params := make([]*engine.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// In returns the unit's input width.
func (n *Neuron) In() int {
	return len(n.weights)
}

// String implements fmt.Stringer.
func (n *Neuron) String() string {
	if n.linear {
		return fmt.Sprintf("LinearNeuron(%d)", len(n.weights))
	}
	return fmt.Sprintf("ReLUNeuron(%d)", len(n.weights))
}
