package api

import (
	"time"

	"github.com/google/uuid"
)

// RGB is an explicit color given channel by channel, each in [0, 255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// ClassifyColorRequest is the JSON body of POST /classify when the input is an
// explicit color rather than an uploaded image. Exactly one field is set.
type ClassifyColorRequest struct {
	Color string `json:"color,omitempty"`
	RGB   *RGB   `json:"rgb,omitempty"`
}

type Classification struct {
	Id uuid.UUID

	Source     string
	InputColor string `json:"InputColor,omitempty"`

	Stage       int
	Label       string
	Description string
	Hue         float64
	Confidence  float64
	DaysToPeak  float64

	Recommendations []string `json:"Recommendations,omitempty"`

	HasImage bool `json:"HasImage,omitempty"`

	CreationTime time.Time
}

type Stage struct {
	Stage       int
	Label       string
	Description string

	HueLow  float64
	HueHigh float64

	DaysToPeak float64

	Recommendations []string
}
