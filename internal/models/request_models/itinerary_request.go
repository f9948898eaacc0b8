package request_models

// GenerateItineraryRequest carries the raw trip request. Travelers and
// budget arrive as strings and are parsed defensively server-side:
// absent or malformed values fall back to the documented defaults
// instead of rejecting the request.
type GenerateItineraryRequest struct {
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"` // ISO date, 2006-01-02
	EndDate     string   `json:"end_date" binding:"required"`
	Travelers   string   `json:"travelers"`
	Budget      string   `json:"budget"`
	Interests   []string `json:"interests"`
	Prompt      string   `json:"prompt"`
	StayArea    string   `json:"stay_area"`
	// SkipEnrichment turns off the geo-context lookup for this request.
	SkipEnrichment bool `json:"skip_enrichment"`
}
