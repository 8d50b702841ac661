package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestInRange verifies both bounds are inclusive
func TestInRange(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		lo, hi   int
		expected bool
	}{
		{name: "below lower bound", x: -1, lo: 0, hi: 100, expected: false},
		{name: "at lower bound", x: 0, lo: 0, hi: 100, expected: true},
		{name: "inside", x: 55, lo: 0, hi: 100, expected: true},
		{name: "at upper bound", x: 100, lo: 0, hi: 100, expected: true},
		{name: "above upper bound", x: 101, lo: 0, hi: 100, expected: false},
		{name: "degenerate interval", x: 7, lo: 7, hi: 7, expected: true},
		{name: "inverted interval is empty", x: 5, lo: 10, hi: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InRange(tt.x, tt.lo, tt.hi))
		})
	}
}

func TestInRange_Floats(t *testing.T) {
	assert.True(t, InRange(0.5, 0.0, 1.0))
	assert.False(t, InRange(1.0000001, 0.0, 1.0))
	assert.False(t, InRange(-0.1, 0.0, 1.0))
}

// TestFloorAt tests flooring behaviour
func TestFloorAt(t *testing.T) {
	t.Run("value above floor is unchanged", func(t *testing.T) {
		assert.Equal(t, 90, FloorAt(90, 0))
	})

	t.Run("value below floor is raised", func(t *testing.T) {
		assert.Equal(t, 0, FloorAt(-5, 0))
	})

	t.Run("value equal to floor", func(t *testing.T) {
		assert.Equal(t, 0, FloorAt(0, 0))
	})

	t.Run("floats", func(t *testing.T) {
		assert.InDelta(t, 1.5, FloorAt(0.5, 1.5), 0.0001)
	})
}
