package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIsEmpty(t *testing.T) {
	assert.True(t, Rect{}.IsEmpty())
	assert.True(t, NewRect(0, 0, 10, 0).IsEmpty())
	assert.True(t, NewRect(0, 0, -5, 10).IsEmpty())
	assert.False(t, NewRect(0, 0, 1, 1).IsEmpty())
}

func TestRectCenter(t *testing.T) {
	x, y := NewRect(10, 20, 30, 40).Center()
	assert.Equal(t, float64(25), x)
	assert.Equal(t, float64(40), y)
}

func TestRectRound(t *testing.T) {
	got := NewRect(1.4, 2.5, -3.5, 4.49).Round()
	assert.Equal(t, NewRect(1, 3, -4, 4), got)
}

func TestRoundToInt(t *testing.T) {
	assert.Equal(t, 2, RoundToInt(1.5))
	assert.Equal(t, -2, RoundToInt(-1.5))
	assert.Equal(t, 1, RoundToInt(1.49))
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, 1.23, Quantize(1.2345, 100))
	assert.Equal(t, 12.346, Quantize(12.3456, 1000))
	assert.Equal(t, -0.25, Quantize(-0.25, 100))
}

func TestPrecisionCompare(t *testing.T) {
	assert.Equal(t, 0, PrecisionCompare(1.0001, 1.0002, 0.001))
	assert.Equal(t, -1, PrecisionCompare(1, 2, 0.001))
	assert.Equal(t, 1, PrecisionCompare(2, 1, 0.001))
}
