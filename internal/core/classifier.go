// Package core implements the banana ripeness classifier: a pure, deterministic
// mapping from an image or an explicit color to a ripeness stage on the USDA
// banana color scale, with a confidence score and a days-to-peak estimate.
package core

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// SampleKind is the input form of a classification request. A request carries
// exactly one of an image or an explicit color, never both.
type SampleKind int

const (
	SampleNone SampleKind = iota
	SampleImage
	SampleColor
)

func (k SampleKind) String() string {
	switch k {
	case SampleImage:
		return "image"
	case SampleColor:
		return "color"
	default:
		return "none"
	}
}

// ColorSample is the input to Classify. Construct with NewImageSample or
// NewColorSample; the zero value has kind SampleNone and does not classify.
type ColorSample struct {
	kind  SampleKind
	image []byte
	color RGBColor
}

func NewImageSample(data []byte) ColorSample {
	return ColorSample{kind: SampleImage, image: data}
}

func NewColorSample(c RGBColor) ColorSample {
	return ColorSample{kind: SampleColor, color: c}
}

func (s ColorSample) Kind() SampleKind { return s.kind }

// RipenessResult is the outcome of a single classification.
type RipenessResult struct {
	Stage           int
	Label           string
	Description     string
	Hue             float64
	Confidence      float64
	DaysToPeak      float64
	Recommendations []string
}

// Classify maps a color sample to a ripeness result. It is deterministic:
// identical samples always produce identical results.
func Classify(sample ColorSample) (RipenessResult, error) {
	switch sample.kind {
	case SampleImage:
		img, err := DecodeImage(sample.image)
		if err != nil {
			return RipenessResult{}, err
		}
		hue, confidence, err := DominantHue(img)
		if err != nil {
			return RipenessResult{}, err
		}
		return classifyHue(hue, confidence)
	case SampleColor:
		// A user-declared color has no sampling uncertainty.
		return classifyHue(sample.color.HSV().H, 1.0)
	default:
		return RipenessResult{}, ErrNoSample
	}
}

// DecodeImage decodes PNG, JPEG, GIF or BMP image bytes.
func DecodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidImage)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}

func classifyHue(hue, confidence float64) (RipenessResult, error) {
	desc, err := StageForHue(hue)
	if err != nil {
		return RipenessResult{}, err
	}

	return RipenessResult{
		Stage:           desc.Stage,
		Label:           desc.Label,
		Description:     desc.Description,
		Hue:             normalizeHue(hue),
		Confidence:      confidence,
		DaysToPeak:      DaysToPeak(desc.Stage),
		Recommendations: desc.Recommendations,
	}, nil
}
