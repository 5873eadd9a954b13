package math

import (
	"fmt"
	"math"
)

// pp is the print precision for floats
const pp = 8

// Check checks if the given number is a valid one.
func Check(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("%v is not a valid number", v))
	}
}

// Op is a general mathematical operation from one number to another
type Op func(x float64) float64

// Scale scales the given number according to the scaling factor provided.
func Scale(s float64) Op {
	return func(x float64) float64 {
		return x * s
	}
}

// Pow raises the argument to the given power.
func Pow(p float64) Op {
	return func(x float64) float64 {
		return math.Pow(x, p)
	}
}

// Dop is a general mathematical operation from 2 numbers to another
type Dop func(x, y float64) float64

// Diff returns the difference of the two numbers.
var Diff Dop = func(x, y float64) float64 {
	return x - y
}
