package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// Venue kinds recognized by the enrichment provider.
const (
	VenueKindRestaurant = "restaurant"
	VenueKindExperience = "experience"
	VenueKindAttraction = "attraction"
)

// Venue is a real place tied to a destination, used to enrich generated
// itineraries. Rows are seeded offline; the API only reads them.
type Venue struct {
	BaseModel
	Destination  string `gorm:"index"`
	Kind         string `gorm:"index"`
	Name         string
	Description  string
	Area         string
	Cuisine      string
	Operator     string
	Cost         float64
	DurationHrs  float64
	EntryFee     string // free text as scraped, e.g. "₹500 - ₹800"
	AvgVisitTime string // free text, e.g. "2-3 hours"
	Timing       string
	BestFor      pq.StringArray `gorm:"type:text[]"`
}

type VenueEmbedding struct {
	VenueID     string `gorm:"primaryKey;column:venue_id"`
	Destination string
	Kind        string
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}
