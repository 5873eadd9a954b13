package math

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Vector is an alias for a one dimensional array.
type Vector []float64

// Vec creates a new vector of the given dimension.
func Vec(dim int) Vector {
	v := make([]float64, dim)
	return v
}

// String prints the vector in an easily readable form
func (v Vector) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("(%d)", len(v)))
	builder.WriteString("[ ")
	for i := 0; i < len(v); i++ {
		builder.WriteString(strconv.FormatFloat(v[i], 'f', pp, 64))
		if i < len(v)-1 {
			// dont add the comma to the last element
			builder.WriteString(" , ")
		}
	}
	builder.WriteString(" ]")
	return builder.String()
}

// Vector Operations

// Dot returns the dot product of the 2 vectors
func (v Vector) Dot(w Vector) float64 {
	MustHaveSameSize(v, w)
	var p float64
	for i := 0; i < len(v); i++ {
		p += v[i] * w[i]
	}
	return p
}

// X returns the hadamard product of the given vectors.
// e.g. point-wise multiplication
func (v Vector) X(w Vector) Vector {
	MustHaveSameSize(v, w)
	z := Vec(len(v))
	for i := 0; i < len(v); i++ {
		z[i] = v[i] * w[i]
	}
	return z
}

// Add adds 2 vectors.
func (v Vector) Add(w Vector) Vector {
	MustHaveSameSize(v, w)
	z := Vec(len(v))
	for i := 0; i < len(v); i++ {
		z[i] = v[i] + w[i]
	}
	return z
}

// Diff returns the difference of the corresponding elements between the given vectors
func (v Vector) Diff(w Vector) Vector {
	return v.Dop(Diff, w)
}

// Pow returns a vector with all the elements to the given power
func (v Vector) Pow(p float64) Vector {
	return v.Op(Pow(p))
}

// Mult multiplies a vector with a constant number
func (v Vector) Mult(s float64) Vector {
	return v.Op(Scale(s))
}

// Sum returns the sum of all elements of the vector
func (v Vector) Sum() float64 {
	var sum float64
	for i := 0; i < len(v); i++ {
		sum += v[i]
	}
	return sum
}

// Copy copies the vector into a new one with the same values
// this is for cases where we want to apply mutations, but would like to leave the initial vector intact
func (v Vector) Copy() Vector {
	w := Vec(len(v))
	for i := 0; i < len(v); i++ {
		w[i] = v[i]
	}
	return w
}

// Vector operation abstractions

// Op applies to each of the elements a specific function
func (v Vector) Op(transform Op) Vector {
	w := Vec(len(v))
	for i := range v {
		w[i] = transform(v[i])
	}
	return w
}

// Dop applies to each of the elements a specific function based on the elements index
func (v Vector) Dop(transform Dop, w Vector) Vector {
	MustHaveSameSize(v, w)
	z := Vec(len(v))
	for i := range v {
		z[i] = transform(v[i], w[i])
	}
	return z
}

// Vector Construction methods

// With applies the given elements in the corresponding positions of the vector
func (v Vector) With(w ...float64) Vector {
	MustHaveSameSize(v, w)
	for i, vv := range w {
		v[i] = vv
	}
	return v
}

// VectorGenerator is a type alias defining the creation instructions for vectors
// s is the size of the vector
type VectorGenerator func(s, index int) Vector

// VoidVector creates a vector with zeros
var VoidVector VectorGenerator = func(s, index int) Vector {
	return Vec(s)
}

// Rand generates a vector of the given size with random values between min and max.
// The source is injected explicitly so that runs are reproducible with a fixed seed.
var Rand = func(min, max float64, rnd *rand.Rand) VectorGenerator {
	return func(p, index int) Vector {
		w := Vec(p)
		for i := 0; i < p; i++ {
			w[i] = rnd.Float64()*(max-min) + min
		}
		return w
	}
}

// Const generates a vector of the given size with constant values
var Const = func(v float64) VectorGenerator {
	return func(p, index int) Vector {
		w := Vec(p)
		for i := 0; i < p; i++ {
			w[i] = v
		}
		return w
	}
}

// MustHaveSize will check and make sure that the given vector is of the given size
func MustHaveSize(v Vector, n int) {
	if len(v) != n {
		panic(fmt.Sprintf("vector must have size '%v' vs '%v'", v, n))
	}
}

// MustHaveSameSize verifies if the given vectors are of the same size
func MustHaveSameSize(v, w Vector) {
	if len(v) != len(w) {
		panic(fmt.Sprintf("vectors must have the same size '%v' vs '%v'", len(v), len(w)))
	}
}
