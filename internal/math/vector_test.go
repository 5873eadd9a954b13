package math

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_Dot(t *testing.T) {

	type test struct {
		v      Vector
		w      Vector
		output float64
	}

	tests := map[string]test{
		"unit": {
			v:      Vec(2).With(1, 0),
			w:      Vec(2).With(0, 1),
			output: 0,
		},
		"simple": {
			v:      Vec(3).With(1, 2, 3),
			w:      Vec(3).With(4, 5, 6),
			output: 32,
		},
		"negative": {
			v:      Vec(2).With(-1, 2),
			w:      Vec(2).With(3, 0.5),
			output: -2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.output, tt.v.Dot(tt.w))
		})
	}

}

func TestVector_DotPanicsOnSizeMismatch(t *testing.T) {
	assert.Panics(t, func() {
		Vec(3).Dot(Vec(2))
	})
}

func TestVector_Ops(t *testing.T) {

	v := Vec(3).With(1, -2, 3)
	w := Vec(3).With(2, 2, 2)

	assert.Equal(t, Vec(3).With(2, -4, 6), v.X(w))
	assert.Equal(t, Vec(3).With(3, 0, 5), v.Add(w))
	assert.Equal(t, Vec(3).With(-1, -4, 1), v.Diff(w))
	assert.Equal(t, Vec(3).With(1, 4, 9), v.Pow(2))
	assert.Equal(t, Vec(3).With(2, -4, 6), v.Mult(2))
	assert.Equal(t, 2.0, v.Sum())

	assert.Panics(t, func() {
		v.Add(Vec(2))
	})
	assert.Panics(t, func() {
		v.With(1, 2)
	})
}

func TestVector_Copy(t *testing.T) {

	v := Vec(2).With(1, 2)
	w := v.Copy()
	w[0] = 99

	assert.Equal(t, 1.0, v[0])
	assert.Equal(t, 99.0, w[0])
}

func TestRandGenerator(t *testing.T) {

	gen := Rand(-1, 1, rand.New(rand.NewSource(42)))

	v := gen(100, 0)

	assert.Equal(t, 100, len(v))
	for i, x := range v {
		assert.True(t, x >= -1 && x <= 1, "element %d out of range : %f", i, x)
	}
}

func TestConstGenerator(t *testing.T) {
	v := Const(0.5)(4, 0)
	assert.Equal(t, Vec(4).With(0.5, 0.5, 0.5, 0.5), v)
}
