package response_models

type ScheduledActivityResponse struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Cost        float64 `json:"cost"`
	Duration    float64 `json:"duration"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Order       int     `json:"order"`
	ImageURL    string  `json:"image_url"`
	Location    string  `json:"location,omitempty"`
	GeoSpecific bool    `json:"geo_specific,omitempty"`
}

type ItineraryDayResponse struct {
	Day        int                         `json:"day"`
	Date       string                      `json:"date"` // 2006-01-02
	Title      string                      `json:"title"`
	Stay       string                      `json:"stay,omitempty"`
	Activities []ScheduledActivityResponse `json:"activities"`
}

type ItineraryResponse struct {
	ID          string                 `json:"id"`
	Destination string                 `json:"destination"`
	StartDate   string                 `json:"start_date"`
	EndDate     string                 `json:"end_date"`
	Budget      float64                `json:"budget"`
	Travelers   int                    `json:"travelers"`
	Interests   []string               `json:"interests"`
	Summary     string                 `json:"summary,omitempty"`
	Days        []ItineraryDayResponse `json:"days"`
}

// ItineraryListItem is the trimmed shape for paginated listings.
type ItineraryListItem struct {
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	DayCount    int     `json:"day_count"`
}
