package nn

import (
	"math/rand"
)

// NewConjoinLayer creates a layer whose input is the concatenation of the
// outputs of l1 and l2.
//
// Only the source layers' output widths are read; the new layer keeps no
// reference to either source. Callers supply the concatenated vector
// themselves at evaluation time.
func NewConjoinLayer(rng *rand.Rand, l1, l2 *Layer, nout int, opts Options) *Layer {
	return NewLayer(rng, l1.Out()+l2.Out(), nout, opts)
}

// NewRegisterConjoinLayer is NewConjoinLayer for callers that know the two
// source widths directly, such as a Model step reading a register pair.
func NewRegisterConjoinLayer(rng *rand.Rand, nin1, nin2, nout int, opts Options) *Layer {
	return NewLayer(rng, nin1+nin2, nout, opts)
}
