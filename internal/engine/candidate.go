package engine

import "time"

type Category string

const (
	CategoryAttraction    Category = "attraction"
	CategoryFood          Category = "food"
	CategoryActivity      Category = "activity"
	CategoryTransport     Category = "transport"
	CategoryAccommodation Category = "accommodation"
)

// fullDayDuration marks entries that occupy a whole day (accommodation)
// and must never be laid out as a timed slot.
const fullDayDuration = 24

// CandidateActivity is one schedulable option from the catalog or from
// geo enrichment. Name is the unique key within a destination's pool.
type CandidateActivity struct {
	Name        string
	Cost        float64
	Duration    float64 // hours
	Category    Category
	Description string
	Location    string
	Score       int
	GeoSpecific bool
}

// FullDay reports whether the entry occupies the whole day and therefore
// bypasses the day scheduler (booked once, not slotted).
func (c CandidateActivity) FullDay() bool {
	return c.Category == CategoryAccommodation || c.Duration >= fullDayDuration
}

// ScheduledActivity is a candidate laid out on a concrete day.
type ScheduledActivity struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Cost        float64  `json:"cost"`
	Duration    float64  `json:"duration"`
	StartTime   string   `json:"start_time"` // HH:MM, 24-hour
	EndTime     string   `json:"end_time"`
	Order       int      `json:"order"`
	ImageURL    string   `json:"image_url"`
	Location    string   `json:"location,omitempty"`
	GeoSpecific bool     `json:"geo_specific,omitempty"`
}

type ItineraryDay struct {
	Day        int                 `json:"day"`
	Date       time.Time           `json:"date"`
	Title      string              `json:"title"`
	Stay       string              `json:"stay,omitempty"`
	Activities []ScheduledActivity `json:"activities"`
}

type TripRequest struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Travelers   int
	Budget      float64
	Interests   []string
	Prompt      string
	StayArea    string
}

// GeneratedItinerary is the engine's sole output value. Persistence and
// record identity belong to the caller.
type GeneratedItinerary struct {
	Destination string         `json:"destination"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Budget      float64        `json:"budget"`
	Travelers   int            `json:"travelers"`
	Interests   []string       `json:"interests"`
	Summary     string         `json:"summary,omitempty"`
	Days        []ItineraryDay `json:"days"`
}
