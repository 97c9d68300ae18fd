package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexColorRegex = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// ParseHexColor parses a 6-digit hex color with an optional leading '#'.
func ParseHexColor(s string) (RGBColor, error) {
	if !hexColorRegex.MatchString(s) {
		return RGBColor{}, fmt.Errorf("%w: %q is not a 6-digit hex color", ErrInvalidColorFormat, s)
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil {
		return RGBColor{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	return RGBColor{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// NewRGBColor validates that each channel is in [0, 255].
func NewRGBColor(r, g, b int) (RGBColor, error) {
	for _, ch := range [3]int{r, g, b} {
		if ch < 0 || ch > 255 {
			return RGBColor{}, fmt.Errorf("%w: rgb channel %d out of range [0, 255]", ErrInvalidColorFormat, ch)
		}
	}
	return RGBColor{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Hex returns the color as an uppercase '#RRGGBB' string.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
