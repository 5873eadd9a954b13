package ml

import (
	"math"
)

// Activation defines the activation function for an ml module.
type Activation interface {
	F(x float64) float64
	D(y float64) float64
}

// Sigmoid uses the logistic sigmoid activation.
var Sigmoid = sigmoid{}

type sigmoid struct {
}

// F applies the activation function.
func (s sigmoid) F(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-1*x))
}

// D returns the derivative of the activation function.
// Note the argument is the already activated output.
func (s sigmoid) D(y float64) float64 {
	return y * (1.0 - y)
}
