package engine

import (
	"fmt"
	"math"
)

// Value is a scalar node in a reverse-mode automatic differentiation graph.
//
// Data holds the forward result and Grad accumulates d(output)/d(this node)
// during Backward. Every operation returns a fresh node that retains
// references to its operands, so evaluating an expression builds the full
// computation graph as a side effect.
type Value struct {
	Data float64
	Grad float64

	prev     []*Value
	backward func()
}

// New returns a leaf node holding data, with zero gradient and no operands.
func New(data float64) *Value {
	return &Value{Data: data}
}

// Add returns a node computing v + other.
func (v *Value) Add(other *Value) *Value {
	out := &Value{Data: v.Data + other.Data, prev: []*Value{v, other}}
	out.backward = func() {
		v.Grad += out.Grad
		other.Grad += out.Grad
	}
	return out
}

// Mul returns a node computing v * other.
func (v *Value) Mul(other *Value) *Value {
	out := &Value{Data: v.Data * other.Data, prev: []*Value{v, other}}
	out.backward = func() {
		v.Grad += other.Data * out.Grad
		other.Grad += v.Data * out.Grad
	}
	return out
}

// Neg returns a node computing -v.
func (v *Value) Neg() *Value {
	return v.Mul(New(-1))
}

// Sub returns a node computing v - other.
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Pow returns a node computing v raised to the constant power p.
func (v *Value) Pow(p float64) *Value {
	out := &Value{Data: math.Pow(v.Data, p), prev: []*Value{v}}
	out.backward = func() {
		v.Grad += p * math.Pow(v.Data, p-1) * out.Grad
	}
	return out
}

// Div returns a node computing v / other.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// Exp returns a node computing e**v.
func (v *Value) Exp() *Value {
	e := math.Exp(v.Data)
	out := &Value{Data: e, prev: []*Value{v}}
	out.backward = func() {
		v.Grad += e * out.Grad
	}
	return out
}

// Relu returns a node computing max(0, v).
//
// The gradient passes through unchanged where the input is positive and is
// blocked where it is not.
func (v *Value) Relu() *Value {
	d := 0.0
	if v.Data > 0 {
		d = v.Data
	}
	out := &Value{Data: d, prev: []*Value{v}}
	out.backward = func() {
		if v.Data > 0 {
			v.Grad += out.Grad
		}
	}
	return out
}

// Backward runs the reverse-mode pass from v through every ancestor node.
//
// Nodes are visited in reverse topological order, so a node's gradient is
// complete before it is propagated to its operands. Gradients are summed
// into Grad, never overwritten: a node feeding several downstream nodes
// receives the contribution of each. Callers reset gradients between
// passes via ZeroGrad.
func (v *Value) Backward() {
	var topo []*Value
	visited := make(map[*Value]bool)

	var build func(*Value)
	build = func(n *Value) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, p := range n.prev {
			build(p)
		}
		topo = append(topo, n)
	}
	build(v)

	v.Grad = 1
	for i := len(topo) - 1; i >= 0; i-- {
		if topo[i].backward != nil {
			topo[i].backward()
		}
	}
}

// ZeroGrad resets the accumulated gradient of this node.
func (v *Value) ZeroGrad() {
	v.Grad = 0
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%g, grad=%g)", v.Data, v.Grad)
}
