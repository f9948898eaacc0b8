package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Itinerary struct {
	BaseModel
	AccountID   uuid.UUID
	Destination string
	StartDate   int64 // unix seconds
	EndDate     int64
	Budget      float64
	Travelers   int
	Interests   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Summary     string

	Days []ItineraryDayRecord `gorm:"foreignKey:ItineraryID"`
}

type ItineraryDayRecord struct {
	BaseModel
	ItineraryID uuid.UUID
	DayNumber   int
	Date        time.Time
	Title       string
	Stay        string

	Activities []ItineraryActivityRecord `gorm:"foreignKey:ItineraryDayID"`
}

type ItineraryActivityRecord struct {
	BaseModel
	ItineraryDayID uuid.UUID
	Name           string
	Description    string
	Category       string
	Cost           float64
	Duration       float64
	StartTime      string // HH:MM
	EndTime        string
	Position       int
	ImageURL       string
	Location       string
	GeoSpecific    bool
}
