package core

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifyHex(t *testing.T, hex string) (RipenessResult, error) {
	t.Helper()
	c, err := ParseHexColor(hex)
	require.NoError(t, err)
	return Classify(NewColorSample(c))
}

func TestClassifyForestGreen(t *testing.T) {
	result, err := classifyHex(t, "#228B22")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stage)
	assert.Equal(t, "Green", result.Label)
	assert.InDelta(t, 120, result.Hue, 0.01)
	assert.Equal(t, 1.0, result.Confidence)
	assert.InDelta(t, 10.5, result.DaysToPeak, 1e-9)
}

func TestClassifyGold(t *testing.T) {
	result, err := classifyHex(t, "#FFD700")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stage)
	assert.InDelta(t, 50.59, result.Hue, 0.01)
	assert.Equal(t, 1.0, result.Confidence)
}

// Hue 60 sits on the stage 1 / stage 2 boundary and must always resolve to
// stage 1, the earlier table entry.
func TestClassifyPureYellowBoundary(t *testing.T) {
	for i := 0; i < 5; i++ {
		result, err := classifyHex(t, "#FFFF00")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Stage)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first, err := classifyHex(t, "#E8D24A")
	require.NoError(t, err)
	second, err := classifyHex(t, "#E8D24A")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClassifyBlueOutOfRange(t *testing.T) {
	_, err := classifyHex(t, "#0000FF")
	assert.ErrorIs(t, err, ErrHueOutOfRange)
}

func TestClassifyNoSample(t *testing.T) {
	_, err := Classify(ColorSample{})
	assert.ErrorIs(t, err, ErrNoSample)
}

func TestClassifyImageSample(t *testing.T) {
	img := solidImage(8, 8, color.RGBA{0, 255, 0, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	result, err := Classify(NewImageSample(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stage)
	assert.InDelta(t, 120, result.Hue, 0.001)
	assert.InDelta(t, 1.0, result.Confidence, 0.001)
}

func TestClassifyGrayImage(t *testing.T) {
	img := solidImage(8, 8, color.RGBA{120, 120, 120, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	_, err := Classify(NewImageSample(buf.Bytes()))
	assert.ErrorIs(t, err, ErrNoColorDetected)
}

func TestClassifyBadImageBytes(t *testing.T) {
	_, err := Classify(NewImageSample([]byte("not an image")))
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = Classify(NewImageSample(nil))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestDecodeImageFormats(t *testing.T) {
	img := solidImage(4, 4, color.RGBA{255, 255, 0, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	decoded, err := DecodeImage(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), decoded.Bounds())
}

func TestSampleKindString(t *testing.T) {
	assert.Equal(t, "none", SampleNone.String())
	assert.Equal(t, "image", NewImageSample(nil).Kind().String())
	assert.Equal(t, "color", NewColorSample(RGBColor{}).Kind().String())
}
