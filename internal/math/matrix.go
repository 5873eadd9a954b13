package math

import (
	"fmt"
	"strings"
)

// Matrix is an ordered collection of equally sized vectors.
type Matrix []Vector

// Mat creates a new Matrix of the given dimension
func Mat(m int) Matrix {
	mat := make([]Vector, m)
	return mat
}

// Of initialises the rows of the matrix with vectors of the given length
func (m Matrix) Of(n int) Matrix {
	for i := 0; i < len(m); i++ {
		m[i] = Vec(n)
	}
	return m
}

// With applies the elements of the given vectors to the corresponding positions in the matrix
func (m Matrix) With(v ...Vector) Matrix {
	for i := range m {
		m[i] = v[i]
	}
	return m
}

// Generate generates the rows of the matrix using the generator func
func (m Matrix) Generate(p int, gen VectorGenerator) Matrix {
	for i := range m {
		m[i] = gen(p, i)
	}
	return m
}

// Prod returns the product of the matrix with the given vector
func (m Matrix) Prod(v Vector) Vector {
	w := Vec(len(m))
	for i := range m {
		MustHaveSameSize(m[i], v)
		w[i] = m[i].Dot(v)
	}
	return w
}

// Copy copies the matrix into a new one with the same values
// this is for cases where we want to apply mutations, but would like to leave the initial matrix intact
func (m Matrix) Copy() Matrix {
	n := Mat(len(m))
	for i := 0; i < len(m); i++ {
		n[i] = m[i].Copy()
	}
	return n
}

// String prints the matrix in an easily readable form
func (m Matrix) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("(%d)", len(m)))
	builder.WriteString("\n")
	for i := 0; i < len(m); i++ {
		builder.WriteString("\t")
		builder.WriteString(fmt.Sprintf("[%d]", i))
		builder.WriteString(fmt.Sprintf("%v", m[i]))
		builder.WriteString("\n")
	}
	return builder.String()
}
