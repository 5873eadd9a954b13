package ml

import (
	"github.com/drakos74/free-net/internal/math"
)

// Loss defines the loss function for the evaluation of the expected and actual output.
type Loss func(expected, output math.Vector) math.Vector

// Diff is the simplest loss function where it s the difference of the expected and output.
var Diff Loss = func(expected, output math.Vector) math.Vector {
	math.MustHaveSameSize(expected, output)
	return expected.Diff(output)
}

// Pow is the squared error loss function.
var Pow Loss = func(expected, output math.Vector) math.Vector {
	math.MustHaveSameSize(expected, output)
	return expected.Diff(output).Pow(2)
}
