package core

import (
	"fmt"
	"math"
)

// StageDescriptor is the immutable description of one ripeness stage on the
// USDA banana color scale.
type StageDescriptor struct {
	Stage       int
	Label       string
	Description string

	// Hue range in degrees, both ends inclusive. Ranges of adjacent stages
	// share boundary hues; stageTable order decides which stage wins.
	HueLow  float64
	HueHigh float64

	// How long a banana typically spends at this stage, in days.
	MinDays float64
	MaxDays float64

	Recommendations []string
}

// PeakStage is the stage of peak eating quality. Days-to-peak estimates count
// down to this stage and are 0 at or past it.
const PeakStage = 6

// stageTable is matched in declaration order and the first range containing
// the hue wins, so boundary hues (60, 50, 40, 30, 25, 20) resolve to the
// earlier-declared stage. The ranges cover [0, 120] with no gaps.
var stageTable = []StageDescriptor{
	{
		Stage:       1,
		Label:       "Green",
		Description: "Entirely green, firm and starchy. High in resistant starch.",
		HueLow:      60,
		HueHigh:     120,
		MinDays:     1,
		MaxDays:     4,
		Recommendations: []string{
			"Wait 3-4 days for optimal ripeness",
			"Store at room temperature",
			"Perfect for cooking if you prefer less sweet",
		},
	},
	{
		Stage:       2,
		Label:       "Light Green",
		Description: "Breaking toward yellow. Still firm and less sweet.",
		HueLow:      50,
		HueHigh:     60,
		MinDays:     1,
		MaxDays:     3,
		Recommendations: []string{
			"Wait 2-3 days for better sweetness",
			"Store at room temperature",
		},
	},
	{
		Stage:       3,
		Label:       "Yellowish",
		Description: "Minimal green. Begins to develop sweetness.",
		HueLow:      40,
		HueHigh:     50,
		MinDays:     1,
		MaxDays:     3,
		Recommendations: []string{
			"Wait 1-2 days for peak ripeness",
			"Good for eating now if you prefer less sweet",
		},
	},
	{
		Stage:       4,
		Label:       "More Yellow",
		Description: "Mostly yellow with some green. Starches converting to sugars.",
		HueLow:      30,
		HueHigh:     40,
		MinDays:     1,
		MaxDays:     3,
		Recommendations: []string{
			"Wait 1 day for optimal sweetness",
			"Great for smoothies",
		},
	},
	{
		Stage:       5,
		Label:       "Yellow with Green Tips",
		Description: "Ideal for retail. Peak for purchase.",
		HueLow:      25,
		HueHigh:     30,
		MinDays:     1,
		MaxDays:     3,
		Recommendations: []string{
			"Perfect for eating",
			"Peak retail stage",
		},
	},
	{
		Stage:       6,
		Label:       "Yellow",
		Description: "Peak eating quality. Aromatic and sweet.",
		HueLow:      20,
		HueHigh:     25,
		MinDays:     1,
		MaxDays:     3,
		Recommendations: []string{
			"Peak eating quality!",
			"Consume within 1-2 days",
		},
	},
	{
		Stage:       7,
		Label:       "Yellow with Brown Flecks",
		Description: "Overripe. Best for baking or smoothies.",
		HueLow:      0,
		HueHigh:     20,
		MinDays:     2,
		MaxDays:     5,
		Recommendations: []string{
			"Best for baking or smoothies",
			"Overripe for fresh eating",
		},
	},
}

// Stages returns the stage descriptors in classification order.
func Stages() []StageDescriptor {
	out := make([]StageDescriptor, len(stageTable))
	copy(out, stageTable)
	return out
}

// StageByNumber looks up a descriptor by its stage number.
func StageByNumber(stage int) (StageDescriptor, bool) {
	for _, s := range stageTable {
		if s.Stage == stage {
			return s, true
		}
	}
	return StageDescriptor{}, false
}

// StageForHue maps a hue to a ripeness stage. The hue is normalized mod 360
// first; normalized hues above 120 degrees are not banana skin colors.
func StageForHue(hue float64) (StageDescriptor, error) {
	h := normalizeHue(hue)
	for _, s := range stageTable {
		if h >= s.HueLow && h <= s.HueHigh {
			return s, nil
		}
	}
	return StageDescriptor{}, fmt.Errorf("%w: %.1f degrees", ErrHueOutOfRange, h)
}

// DaysToPeak estimates how many days remain until peak eating quality by
// summing the average duration of every stage between the current one and
// PeakStage. Stages at or past the peak return 0.
func DaysToPeak(stage int) float64 {
	if stage >= PeakStage {
		return 0
	}
	var days float64
	for _, s := range stageTable {
		if s.Stage >= stage && s.Stage < PeakStage {
			days += (s.MinDays + s.MaxDays) / 2
		}
	}
	return days
}

func normalizeHue(hue float64) float64 {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	return h
}
