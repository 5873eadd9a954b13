package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_Push(t *testing.T) {

	b := NewBuffer(10)

	for i := 0; i < 100; i++ {
		evicted, ok := b.Push(float64(i))
		if i < 10 {
			assert.False(t, ok)
		} else {
			assert.True(t, ok)
			assert.Equal(t, float64(i-10), evicted)
		}
	}

	assert.Equal(t, 10, b.Len())
	assert.Equal(t, []float64{90, 91, 92, 93, 94, 95, 96, 97, 98, 99}, b.Get())
	assert.Equal(t, 99.0, b.GetReverse()[0])

	last, ok := b.Last()
	assert.True(t, ok)
	assert.Equal(t, 99.0, last)
}

func TestBuffer_Empty(t *testing.T) {

	b := NewBuffer(5)

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, []float64{}, b.Get())

	_, ok := b.Last()
	assert.False(t, ok)
}
