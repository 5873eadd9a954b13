package net

import (
	"fmt"
	"math/rand"

	"github.com/drakos74/free-net/internal/math"
)

// defaultRate is the learning rate applied on the weight updates, unless overridden.
const defaultRate = 0.1

// Network is an insertion ordered sequence of layers forming a single path
// from the input layer to the output layer.
// The network owns its layers and drives the propagation over them by index,
// forward in ascending and backward in descending order.
type Network struct {
	layers []*Layer
	rate   float64
}

// New creates a new empty network.
func New() *Network {
	return &Network{
		layers: make([]*Layer, 0),
		rate:   defaultRate,
	}
}

// WithRate adjusts the learning rate for the weight updates.
func (n *Network) WithRate(rate float64) *Network {
	n.rate = rate
	return n
}

// Add appends the given layer to the network.
// The input width of the new layer must match the output width of the current tail.
func (n *Network) Add(l *Layer) *Network {
	if tail := n.tail(); tail != nil {
		_, out := tail.Size()
		in, _ := l.Size()
		if out != in {
			panic(fmt.Sprintf("mismatched adjacent layer sizes %d vs %d", out, in))
		}
	}
	n.layers = append(n.layers, l)
	return n
}

// Init allocates the weight matrices for all layers that have a successor,
// with entries drawn uniformly from [-1,1] out of the given source.
func (n *Network) Init(rnd *rand.Rand) *Network {
	gen := math.Rand(-1, 1, rnd)
	for i := 0; i+1 < len(n.layers); i++ {
		n.layers[i].InitWeights(gen)
	}
	return n
}

// SetInput assigns the given vector to the head layer values.
func (n *Network) SetInput(v math.Vector) {
	head := n.head()
	if head == nil {
		return
	}
	math.MustHaveSameSize(v, head.Values)
	head.Values.With(v...)
}

// Forward propagates the head layer values through the chain up to the tail.
func (n *Network) Forward() {
	for i := 0; i+1 < len(n.layers); i++ {
		n.layers[i].Forward(n.layers[i+1])
	}
}

// Backward seeds the output layer delta from the given labels
// and propagates it back towards the head, updating the weights on the way.
func (n *Network) Backward(labels math.Vector) {
	tail := n.tail()
	if tail == nil {
		return
	}
	math.MustHaveSameSize(labels, tail.Values)
	delta := math.Vec(len(tail.Values))
	for i, y := range tail.Values {
		delta[i] = tail.module.D(y) * (labels[i] - y)
	}
	for i := len(n.layers) - 1; i > 0; i-- {
		delta = n.layers[i].Backward(n.layers[i-1], delta, n.rate)
	}
}

// Output returns a copy of the tail layer values,
// so that callers are not exposed to mutations from subsequent forward passes.
func (n *Network) Output() math.Vector {
	tail := n.tail()
	if tail == nil {
		return nil
	}
	return tail.Values.Copy()
}

func (n *Network) head() *Layer {
	if len(n.layers) == 0 {
		return nil
	}
	return n.layers[0]
}

func (n *Network) tail() *Layer {
	if len(n.layers) == 0 {
		return nil
	}
	return n.layers[len(n.layers)-1]
}
