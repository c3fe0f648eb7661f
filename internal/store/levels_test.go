package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		name     string
		totalXP  int64
		expected int
	}{
		{name: "zero xp", totalXP: 0, expected: 0},
		{name: "below first threshold", totalXP: int64(LevelBaseXP) - 1, expected: 0},
		{name: "exactly first threshold", totalXP: int64(LevelBaseXP), expected: 1},
		{name: "between one and two", totalXP: 120, expected: 1},
		{name: "negative clamps to zero", totalXP: -50, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelForXP(tt.totalXP))
		})
	}
}

func TestLevelThresholds_MonotonicallyIncreasing(t *testing.T) {
	prev := int64(0)
	for level := 1; level <= 50; level++ {
		threshold := XPForLevel(level)
		assert.Greater(t, threshold, prev, "threshold for level %d must exceed level %d", level, level-1)
		prev = threshold
	}
}

func TestLevelForXP_RoundTripsThresholds(t *testing.T) {
	for level := 1; level <= 25; level++ {
		threshold := XPForLevel(level)
		assert.Equal(t, level, LevelForXP(threshold))
		assert.Equal(t, level-1, LevelForXP(threshold-1))
	}
}

func TestXPProgress(t *testing.T) {
	level, toNext := XPProgress(0)
	assert.Equal(t, 0, level)
	assert.Equal(t, int64(LevelBaseXP), toNext)

	level, toNext = XPProgress(int64(LevelBaseXP))
	assert.Equal(t, 1, level)
	assert.Positive(t, toNext)
}
