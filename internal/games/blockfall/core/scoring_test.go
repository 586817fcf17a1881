package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		rows int
		spin bool
		want ClearResult
	}{
		{0, false, ClearNone},
		{1, false, ClearSingle},
		{2, false, ClearDouble},
		{3, false, ClearTriple},
		{4, false, ClearTetris},
		{0, true, ClearMiniSpin},
		{1, true, ClearSpinSingle},
		{2, true, ClearSpinDouble},
		{3, true, ClearSpinTriple},
		{4, true, ClearNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.rows, tt.spin), "Classify(%d, %v)", tt.rows, tt.spin)
	}
}

func TestBasePoints(t *testing.T) {
	tests := map[ClearResult]int{
		ClearNone:       0,
		ClearSingle:     100,
		ClearDouble:     300,
		ClearTriple:     500,
		ClearTetris:     800,
		ClearMiniSpin:   100,
		ClearSpinSingle: 800,
		ClearSpinDouble: 1200,
		ClearSpinTriple: 1600,
	}
	for result, want := range tests {
		assert.Equal(t, want, result.BasePoints(), result.String())
	}
}

func TestAwardBackToBackSequence(t *testing.T) {
	points, b2b := Award(ClearTetris, 1, false)
	assert.Equal(t, 800, points)
	assert.True(t, b2b)

	points, b2b = Award(ClearTetris, 1, b2b)
	assert.Equal(t, 1200, points)
	assert.True(t, b2b)

	points, b2b = Award(ClearSingle, 1, b2b)
	assert.Equal(t, 100, points)
	assert.False(t, b2b)
}

func TestAwardMiniSpinEndsStreak(t *testing.T) {
	points, b2b := Award(ClearMiniSpin, 2, true)
	assert.Equal(t, 200, points, "mini spin earns no bonus")
	assert.False(t, b2b)
	assert.False(t, ClearMiniSpin.BackToBackEligible())
}

func TestAwardLevelMultiplier(t *testing.T) {
	points, _ := Award(ClearDouble, 3, false)
	assert.Equal(t, 900, points)

	// Bonus is half of the multiplied award, truncated.
	points, _ = Award(ClearSpinSingle, 3, true)
	assert.Equal(t, 3600, points)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		lines, want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{11, 2},
		{19, 2},
		{20, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.lines), "LevelFor(%d)", tt.lines)
	}
}
