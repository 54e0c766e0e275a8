package nn_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradlet-ml/gradlet/internal/nn"
)

// TestLayer_ParameterCount checks |params| == nout * (nin + 1).
func TestLayer_ParameterCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cases := []struct{ nin, nout int }{
		{1, 1},
		{2, 3},
		{4, 4},
		{16, 1},
		{3, 16},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dx%d", tc.nin, tc.nout), func(t *testing.T) {
			layer := nn.NewLayer(rng, tc.nin, tc.nout, nn.Options{})
			assert.Len(t, layer.Parameters(), tc.nout*(tc.nin+1))
			assert.Equal(t, tc.nin, layer.In())
			assert.Equal(t, tc.nout, layer.Out())
		})
	}
}

// TestLayer_SingleUnitShape checks that a one-unit layer still returns a
// slice, keeping the output shape independent of the layer's width.
func TestLayer_SingleUnitShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewLayer(rng, 3, 1, nn.Options{})

	out, err := layer.Forward(values(1, 2, 3))
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestLayer_Forward(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewLayer(rng, 2, 3, nn.Options{Linear: true})

	// Three units with distinct weights sharing one input.
	setParams(layer,
		1, 0, 0, // unit 0: picks x0
		0, 1, 0, // unit 1: picks x1
		1, 1, 0.5, // unit 2: x0 + x1 + 0.5
	)

	out, err := layer.Forward(values(2, 3))
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.InDelta(t, 2, out[0].Data, 1e-12)
	assert.InDelta(t, 3, out[1].Data, 1e-12)
	assert.InDelta(t, 5.5, out[2].Data, 1e-12)
}

func TestLayer_InputWidthError(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewLayer(rng, 4, 2, nn.Options{})

	_, err := layer.Forward(values(1, 2))
	var widthErr *nn.InputWidthError
	require.ErrorAs(t, err, &widthErr)
	assert.Equal(t, 4, widthErr.Want)
}

// TestConjoinLayer checks sizing from two source layers' output widths.
func TestConjoinLayer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	l1 := nn.NewLayer(rng, 2, 3, nn.Options{})
	l2 := nn.NewLayer(rng, 2, 5, nn.Options{})

	joined := nn.NewConjoinLayer(rng, l1, l2, 4, nn.Options{})
	assert.Equal(t, 8, joined.In())
	assert.Equal(t, 4, joined.Out())

	out, err := joined.Forward(values(1, 2, 3, 4, 5, 6, 7, 8))
	require.NoError(t, err)
	assert.Len(t, out, 4)

	// The concatenated width is mandatory; a single source's width is not
	// enough.
	_, err = joined.Forward(values(1, 2, 3))
	assert.Error(t, err)
}

// TestRegisterConjoinLayer checks sizing from two explicit widths.
func TestRegisterConjoinLayer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	joined := nn.NewRegisterConjoinLayer(rng, 4, 4, 4, nn.Options{})
	assert.Equal(t, 8, joined.In())
	assert.Equal(t, 4, joined.Out())
	assert.Len(t, joined.Parameters(), 4*(8+1))
}

func TestLayer_String(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewLayer(rng, 2, 2, nn.Options{})
	assert.Equal(t, "Layer of [ReLUNeuron(2), ReLUNeuron(2)]", layer.String())
}
