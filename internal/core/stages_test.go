package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageForHue(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
		want int
	}{
		{"deep green", 100, 1},
		{"light green", 55, 2},
		{"yellowish", 45, 3},
		{"more yellow", 35, 4},
		{"green tips", 27, 5},
		{"peak yellow", 22, 6},
		{"brown flecks", 10, 7},
		{"zero hue", 0, 7},
		{"top of scale", 120, 1},
		{"wraps mod 360", 360 + 55, 2},
		{"negative wraps", -305, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := StageForHue(tt.hue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, desc.Stage)
		})
	}
}

// Shared boundary hues must resolve to the earlier-declared stage, every time.
func TestStageForHueBoundaries(t *testing.T) {
	boundaries := map[float64]int{
		60: 1,
		50: 2,
		40: 3,
		30: 4,
		25: 5,
		20: 6,
	}

	for hue, want := range boundaries {
		for i := 0; i < 3; i++ {
			desc, err := StageForHue(hue)
			require.NoError(t, err)
			assert.Equal(t, want, desc.Stage, "hue %.0f", hue)
		}
	}
}

func TestStageForHueOutOfRange(t *testing.T) {
	for _, hue := range []float64{121, 180, 240, 359.9} {
		_, err := StageForHue(hue)
		assert.ErrorIs(t, err, ErrHueOutOfRange, "hue %.1f", hue)
	}
}

func TestStageTableCoversHueDomain(t *testing.T) {
	for hue := 0.0; hue <= 120; hue += 0.25 {
		_, err := StageForHue(hue)
		assert.NoError(t, err, "hue %.2f", hue)
	}
}

func TestDaysToPeak(t *testing.T) {
	want := map[int]float64{1: 10.5, 2: 8, 3: 6, 4: 4, 5: 2, 6: 0, 7: 0}
	for stage, days := range want {
		assert.InDelta(t, days, DaysToPeak(stage), 1e-9, "stage %d", stage)
	}
}

func TestDaysToPeakMonotone(t *testing.T) {
	prev := DaysToPeak(1)
	for stage := 2; stage <= 7; stage++ {
		days := DaysToPeak(stage)
		assert.LessOrEqual(t, days, prev, "stage %d", stage)
		assert.GreaterOrEqual(t, days, 0.0)
		prev = days
	}
	assert.Zero(t, DaysToPeak(PeakStage))
}

func TestStageByNumber(t *testing.T) {
	desc, ok := StageByNumber(5)
	require.True(t, ok)
	assert.Equal(t, "Yellow with Green Tips", desc.Label)

	_, ok = StageByNumber(8)
	assert.False(t, ok)
}
