package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gradlet-ml/gradlet/internal/engine"
)

// Layer is an ordered collection of Neurons sharing one input width.
//
// Its output width is the number of contained units.
type Layer struct {
	neurons []*Neuron
	in      int
}

// NewLayer creates a layer of nout units, each with nin inputs, forwarding
// opts to every unit.
func NewLayer(rng *rand.Rand, nin, nout int, opts Options) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(rng, nin, opts)
	}
	return &Layer{neurons: neurons, in: nin}
}

// Forward evaluates every unit against x and returns all outputs in unit
// order.
//
// A single-unit layer still returns a one-element slice, so composition
// code always sees the same shape regardless of the layer's width.
func (l *Layer) Forward(x []*engine.Value) ([]*engine.Value, error) {
	out := make([]*engine.Value, len(l.neurons))
	for i, n := range l.neurons {
		y, err := n.Forward(x)
		if err != nil {
			return nil, err
		}
		out[i] = y
	}
	return out, nil
}

// Parameters concatenates each unit's parameters in unit order.
func (l *Layer) Parameters() []*engine.Value {
	params := make([]*engine.Value, 0, len(l.neurons)*(l.in+1))
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// In returns the layer's input width.
func (l *Layer) In() int {
	return l.in
}

// Out returns the layer's output width.
func (l *Layer) Out() int {
	return len(l.neurons)
}

// String implements fmt.Stringer.
func (l *Layer) String() string {
	descs := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		descs[i] = n.String()
	}
	return fmt.Sprintf("Layer of [%s]", strings.Join(descs, ", "))
}
