package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 4.8, RoundTo(4.8, 3))
	assert.Equal(t, 1.235, RoundTo(1.23456, 3))
	assert.Equal(t, 1.23, RoundTo(1.23456, 2))
	assert.Equal(t, 30.0, RoundTo(30, 0))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 1, ClampInt(0, 1, 200))
	assert.Equal(t, 200, ClampInt(500, 1, 200))
	assert.Equal(t, 50, ClampInt(50, 1, 200))
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(0.001))
	assert.False(t, IsPositive(0))
	assert.False(t, IsPositive(-1))
	assert.False(t, IsPositive(math.NaN()))
	assert.False(t, IsPositive(math.Inf(1)))
}
