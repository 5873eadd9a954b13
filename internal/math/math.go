package math

import (
	"strconv"
)

// Format formats a float based on the given precision
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Series generates an arithmetic series of the given length scaled by the factor.
func Series(factor float64, limit int) []float64 {
	xx := make([]float64, 0)
	for i := 0; i < limit; i++ {
		xx = append(xx, factor*float64(i))
	}
	return xx
}

// ToInt converts a float slice to an int slice
func ToInt(ff []float64) []int {
	ii := make([]int, len(ff))
	for i, f := range ff {
		ii[i] = int(f)
	}
	return ii
}

// ToFloat converts an int slice to a float slice
func ToFloat(ii []int) []float64 {
	ff := make([]float64, len(ii))
	for f, i := range ii {
		ff[f] = float64(i)
	}
	return ff
}
