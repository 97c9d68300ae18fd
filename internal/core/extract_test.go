package core

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDominantHueSolidGreen(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{0, 255, 0, 255})

	hue, confidence, err := DominantHue(img)
	require.NoError(t, err)
	assert.InDelta(t, 120, hue, 0.001)
	assert.InDelta(t, 1.0, confidence, 0.001)
}

func TestDominantHueAllGray(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{128, 128, 128, 255})

	_, _, err := DominantHue(img)
	assert.ErrorIs(t, err, ErrNoColorDetected)
}

func TestDominantHueAllBlack(t *testing.T) {
	img := solidImage(4, 4, color.RGBA{0, 0, 0, 255})

	_, _, err := DominantHue(img)
	assert.ErrorIs(t, err, ErrNoColorDetected)
}

func TestDominantHueMajorityWins(t *testing.T) {
	// 70 green pixels, 30 red pixels.
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if y < 7 {
				img.Set(x, y, color.RGBA{0, 255, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			}
		}
	}

	hue, confidence, err := DominantHue(img)
	require.NoError(t, err)
	assert.InDelta(t, 120, hue, 0.001)
	assert.InDelta(t, 0.7, confidence, 0.001)
}

func TestDominantHueTieBreaksToLowestHue(t *testing.T) {
	// Equal red (hue 0) and green (hue 120) pixel counts.
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if y < 5 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 255, 0, 255})
			}
		}
	}

	hue, _, err := DominantHue(img)
	require.NoError(t, err)
	assert.InDelta(t, 0, hue, 0.001)
}

func TestDominantHueIgnoresFilteredPixels(t *testing.T) {
	// Yellow surrounded by near-white pixels that must not count.
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x == 0 {
				img.Set(x, y, color.RGBA{255, 255, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{250, 250, 245, 255})
			}
		}
	}

	hue, confidence, err := DominantHue(img)
	require.NoError(t, err)
	assert.InDelta(t, 60, hue, 0.001)
	assert.InDelta(t, 1.0, confidence, 0.001)
}

func TestDominantHueNeighborhoodConfidence(t *testing.T) {
	// Hues ~115 and ~122 land in adjacent buckets; both count toward the
	// dominant bucket's neighborhood, so confidence stays 1.
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if y%2 == 0 {
				img.Set(x, y, color.RGBA{10, 200, 16, 255}) // hue ~121.9, bucket 24
			} else {
				img.Set(x, y, color.RGBA{26, 200, 10, 255}) // hue ~114.9, bucket 23
			}
		}
	}

	_, confidence, err := DominantHue(img)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, confidence, 0.001)
}
