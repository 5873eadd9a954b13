package net

import (
	"fmt"

	"github.com/drakos74/free-net/internal/math"
	"github.com/drakos74/free-net/internal/math/ml"
	"github.com/rs/zerolog/log"
)

// Layer represents a single stage in the network.
// It holds the current activation values, the biases applied on those values
// during the predecessor's forward pass, and the weight matrix towards the successor.
// The weight matrix is only allocated for layers that have a successor.
type Layer struct {
	Values  math.Vector
	Biases  math.Vector
	Weights math.Matrix

	in, out int
	module  ml.Activation
}

// NewLayer creates a new layer for the given input and output widths.
// Values and biases are zero-initialized, weight allocation is deferred to InitWeights.
func NewLayer(in, out int) *Layer {
	return &Layer{
		Values: math.Vec(in),
		Biases: math.Vec(in),
		in:     in,
		out:    out,
		module: ml.Sigmoid,
	}
}

// Size returns the input and output width of the layer.
func (l *Layer) Size() (int, int) {
	return l.in, l.out
}

// InitWeights allocates the weight matrix towards the successor
// and fills it row by row from the given generator.
func (l *Layer) InitWeights(gen math.VectorGenerator) {
	l.Weights = math.Mat(l.out).Generate(l.in, gen)
}

// Forward computes the activation values of the successor layer
// from the current values, the weight matrix and the successor biases.
func (l *Layer) Forward(next *Layer) {
	if next == nil {
		return
	}
	if l.Weights == nil {
		panic(fmt.Sprintf("uninitialized weights for layer (%d,%d)", l.in, l.out))
	}
	math.MustHaveSize(next.Values, l.out)
	for i := 0; i < l.out; i++ {
		next.Values[i] = l.module.F(l.Weights[i].Dot(l.Values) + next.Biases[i])
	}
}

// Backward applies one gradient step on the predecessor weight matrix
// and returns the delta for the predecessor layer.
// Note : each weight entry is updated in place before it is used
// for the propagated delta.
func (l *Layer) Backward(prev *Layer, delta math.Vector, rate float64) math.Vector {
	if prev == nil {
		return nil
	}
	if prev.Weights == nil {
		panic(fmt.Sprintf("uninitialized weights for layer (%d,%d)", prev.in, prev.out))
	}
	math.MustHaveSize(delta, l.in)
	prevDelta := math.Vec(prev.in)
	for i := 0; i < l.in; i++ {
		w := prev.Weights[i]
		for j := 0; j < len(w); j++ {
			w[j] += rate * delta[i] * prev.Values[j]
			prevDelta[j] = prev.module.D(prev.Values[j]) * w[j] * delta[i]
		}
	}
	log.Trace().
		Floats64("delta", delta).
		Floats64("prev-delta", prevDelta).
		Msg("backward")
	return prevDelta
}
