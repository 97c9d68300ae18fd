package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	SourceImage string = "IMAGE"
	SourceColor string = "COLOR"
)

// Classification is the audit record of one classification request. The
// classifier core itself persists nothing; this row is written by the API
// layer after the result is produced.
type Classification struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Source string `gorm:"size:10;not null"`

	// Hex string of the request color, explicit-color requests only.
	InputColor sql.NullString `gorm:"size:7"`

	Hue        float64
	Stage      int `gorm:"not null"`
	Confidence float64
	DaysToPeak float64

	// Object store key of the archived upload, when archival is enabled.
	ImageObjectKey sql.NullString

	CreationTime time.Time
}
