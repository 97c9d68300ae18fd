package core

import (
	"image"
	"math"
)

const (
	// Pixels below these thresholds are near-gray, near-black or near-white
	// and do not carry usable skin color. Chosen empirically.
	minSaturation = 0.15
	minValue      = 0.15

	hueBucketWidth = 5.0
	hueBucketCount = 72 // 360 / hueBucketWidth
)

// DominantHue finds the most frequent hue among pixels that pass the
// saturation/value filter, bucketing hues into 5-degree bins. Ties go to the
// lowest hue. The returned confidence is the fraction of qualifying pixels in
// the dominant bucket and its two neighbors.
func DominantHue(img image.Image) (hue float64, confidence float64, err error) {
	var counts [hueBucketCount]int
	total := 0

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			hsv := RGBColor{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}.HSV()
			if hsv.S < minSaturation || hsv.V < minValue {
				continue
			}
			counts[hueBucket(hsv.H)]++
			total++
		}
	}

	if total == 0 {
		return 0, 0, ErrNoColorDetected
	}

	// Ascending scan with a strict comparison keeps the lowest hue on ties.
	dominant := 0
	for i, c := range counts {
		if c > counts[dominant] {
			dominant = i
		}
	}

	neighborhood := counts[dominant]
	neighborhood += counts[(dominant+hueBucketCount-1)%hueBucketCount]
	neighborhood += counts[(dominant+1)%hueBucketCount]

	confidence = math.Min(1, float64(neighborhood)/float64(total))
	return float64(dominant) * hueBucketWidth, confidence, nil
}

func hueBucket(h float64) int {
	return int(math.Round(h/hueBucketWidth)) % hueBucketCount
}
