package spec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitScale(t *testing.T) {
	assert.Equal(t, 15.0, Feet.Scale())
	assert.Equal(t, 50.0, Meters.Scale())
	assert.Equal(t, 0.0, Unit("yards").Scale())

	_, err := ParseUnit("yards")
	assert.Error(t, err)
}

func TestClampRoom(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{40, 40},
		{5, 5},
		{100, 100},
		{4.9, 5},
		{0, 5},
		{-3, 5},
		{math.NaN(), 5},
		{250, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampRoom(tt.in), "ClampRoom(%v)", tt.in)
	}
}
