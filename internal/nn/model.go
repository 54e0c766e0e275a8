package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gradlet-ml/gradlet/internal/engine"
)

// Step is one entry of a Model architecture: read the registers named by
// In, feed their contents through a layer of Width units, and write the
// result to the register named by Out.
//
// In names either a single register or exactly two. With two, the
// registers' current values are concatenated in the order given before the
// layer runs. Options is forwarded to every unit the step constructs.
type Step struct {
	In      []string
	Width   int
	Out     string
	Options Options
}

// boundStep is a Step whose layer has been constructed.
type boundStep struct {
	in    []string
	layer *Layer
	out   string
}

// Model is a dataflow graph of layers addressed by named registers.
//
// Register "I" holds the input vector and register "O" the result; further
// registers are declared at construction. Steps execute strictly in
// declaration order — that order is the sole scheduling mechanism, so every
// register a step reads must have been written by an earlier step (or be
// "I"). A register may be written by more than one step; later writes
// overwrite earlier ones.
//
// Register contents are per-evaluation state: each Forward call starts
// from a fresh register file, so a Model carries no state between calls. A
// single Model still assumes at most one in-flight evaluation.
//
// Example of a split-and-merge architecture with nin = 4:
//
//	model, err := nn.NewModel(rng, 4, []string{"r0", "r1"}, []nn.Step{
//	    {In: []string{"I"}, Width: 4, Out: "r0"},
//	    {In: []string{"I"}, Width: 4, Out: "r1"},
//	    {In: []string{"r0", "r1"}, Width: 4, Out: "O", Options: nn.Options{Linear: true}},
//	})
type Model struct {
	in    int
	steps []boundStep
}

// NewModel creates a register graph with input width nin, the given
// additional register names, and one layer per architecture step.
//
// Construction runs two passes over the architecture. The first infers
// every output register's width and validates the steps: an input spec
// must name one or two declared registers (RegisterSpecError otherwise),
// "I" must never be a write target, and a register redeclared with a
// different width is a WidthMismatchError. The second pass constructs the
// layers in declaration order, sizing each step's input from the inferred
// widths — the sum of both widths for a register pair.
func NewModel(rng *rand.Rand, nin int, registers []string, architecture []Step) (*Model, error) {
	declared := map[string]bool{"I": true, "O": true}
	for _, r := range registers {
		declared[r] = true
	}

	widths := map[string]int{"I": nin}
	for _, step := range architecture {
		if len(step.In) != 1 && len(step.In) != 2 {
			return nil, &RegisterSpecError{Spec: step.In}
		}
		for _, r := range step.In {
			if !declared[r] {
				return nil, fmt.Errorf("step reads undeclared register %q", r)
			}
		}
		if !declared[step.Out] {
			return nil, fmt.Errorf("step writes undeclared register %q", step.Out)
		}
		if step.Out == "I" {
			return nil, fmt.Errorf(`register "I" is read-only`)
		}
		if want, ok := widths[step.Out]; ok {
			if want != step.Width {
				return nil, &WidthMismatchError{Register: step.Out, Got: step.Width, Want: want}
			}
		} else {
			widths[step.Out] = step.Width
		}
	}

	steps := make([]boundStep, 0, len(architecture))
	for _, step := range architecture {
		ins := make([]int, len(step.In))
		for i, r := range step.In {
			w, ok := widths[r]
			if !ok {
				return nil, fmt.Errorf("cannot size step input: no step writes register %q", r)
			}
			ins[i] = w
		}

		var layer *Layer
		if len(step.In) == 2 {
			layer = NewRegisterConjoinLayer(rng, ins[0], ins[1], step.Width, step.Options)
		} else {
			layer = NewLayer(rng, ins[0], step.Width, step.Options)
		}
		steps = append(steps, boundStep{in: step.In, layer: layer, out: step.Out})
	}

	return &Model{in: nin, steps: steps}, nil
}

// Forward evaluates the graph on the input vector x.
//
// Registers start unset except "I", which is seeded with x. Steps run in
// declaration order; reading a register no earlier step has written yields
// an UnsetRegisterError, and if after the last step "O" is still unset the
// result is ErrOutputUnwritten.
func (m *Model) Forward(x []*engine.Value) ([]*engine.Value, error) {
	if len(x) != m.in {
		return nil, &InputWidthError{Got: len(x), Want: m.in}
	}

	regs := map[string][]*engine.Value{"I": x}
	for _, step := range m.steps {
		input, err := gather(regs, step.in)
		if err != nil {
			return nil, err
		}
		out, err := step.layer.Forward(input)
		if err != nil {
			return nil, err
		}
		regs[step.out] = out
	}

	out, ok := regs["O"]
	if !ok {
		return nil, ErrOutputUnwritten
	}
	return out, nil
}

// gather reads the named registers and concatenates their contents in spec
// order.
func gather(regs map[string][]*engine.Value, in []string) ([]*engine.Value, error) {
	if len(in) == 1 {
		v, ok := regs[in[0]]
		if !ok {
			return nil, &UnsetRegisterError{Register: in[0]}
		}
		return v, nil
	}

	var joined []*engine.Value
	for _, r := range in {
		v, ok := regs[r]
		if !ok {
			return nil, &UnsetRegisterError{Register: r}
		}
		joined = append(joined, v...)
	}
	return joined, nil
}

// Parameters concatenates every step layer's parameters in step order.
func (m *Model) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, step := range m.steps {
		params = append(params, step.layer.Parameters()...)
	}
	return params
}

// In returns the width of register "I".
func (m *Model) In() int {
	return m.in
}

// Len returns the number of steps in the architecture.
func (m *Model) Len() int {
	return len(m.steps)
}

// String implements fmt.Stringer.
func (m *Model) String() string {
	descs := make([]string, len(m.steps))
	for i, step := range m.steps {
		descs[i] = fmt.Sprintf("%v -> %s -> %q", step.in, step.layer, step.out)
	}
	return fmt.Sprintf("Model of [%s]", strings.Join(descs, ", "))
}
