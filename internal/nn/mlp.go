package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gradlet-ml/gradlet/internal/engine"
)

// MLP is a feed-forward stack of fully connected layers.
//
// Each layer's output feeds the next layer's input. Every layer is
// nonlinear except the last, which is left affine so the network's output
// range is unconstrained.
type MLP struct {
	layers []*Layer
}

// NewMLP creates a stack with input width nin and one layer per entry of
// nouts, sized [nin, nouts[0]], [nouts[0], nouts[1]] and so on.
func NewMLP(rng *rand.Rand, nin int, nouts []int) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range nouts {
		layers[i] = NewLayer(rng, sizes[i], sizes[i+1], Options{Linear: i == len(nouts)-1})
	}
	return &MLP{layers: layers}
}

// Forward threads x through every layer in order.
func (m *MLP) Forward(x []*engine.Value) ([]*engine.Value, error) {
	var err error
	for _, l := range m.layers {
		x, err = l.Forward(x)
		if err != nil {
			return nil, err
		}
	}
	return x, nil
}

// Parameters concatenates each layer's parameters in layer order.
func (m *MLP) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// Len returns the number of layers in the stack.
func (m *MLP) Len() int {
	return len(m.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (m *MLP) Layer(index int) *Layer {
	if index < 0 || index >= len(m.layers) {
		panic("MLP.Layer: index out of bounds")
	}
	return m.layers[index]
}

// String implements fmt.Stringer.
func (m *MLP) String() string {
	descs := make([]string, len(m.layers))
	for i, l := range m.layers {
		descs[i] = l.String()
	}
	return fmt.Sprintf("MLP of [%s]", strings.Join(descs, ", "))
}
