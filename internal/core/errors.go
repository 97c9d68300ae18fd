package core

import "errors"

var (
	// ErrInvalidColorFormat indicates a malformed hex string or an RGB channel
	// outside [0, 255].
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrNoColorDetected indicates that no pixel in the image passed the
	// saturation/value filter.
	ErrNoColorDetected = errors.New("no banana color detected in image")

	// ErrHueOutOfRange indicates a hue that does not fall in any stage range.
	ErrHueOutOfRange = errors.New("hue outside classifiable range")

	// ErrNoSample indicates a classification request with no image and no color.
	ErrNoSample = errors.New("no color sample provided")

	// ErrInvalidImage indicates image bytes that could not be decoded.
	ErrInvalidImage = errors.New("invalid image data")
)
