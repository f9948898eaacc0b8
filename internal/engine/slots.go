package engine

import (
	"fmt"
	"math"
)

const (
	DefaultStartHour = 9
	closingMinute    = 21 * 60 // activities never run past 21:00
	breakMinutes     = 30
)

// categoryImages is a fixed lookup; unrecognized categories fall back to
// the attraction image.
var categoryImages = map[Category]string{
	CategoryAttraction:    "https://images.roamio.app/categories/attraction.jpg",
	CategoryFood:          "https://images.roamio.app/categories/food.jpg",
	CategoryActivity:      "https://images.roamio.app/categories/activity.jpg",
	CategoryTransport:     "https://images.roamio.app/categories/transport.jpg",
	CategoryAccommodation: "https://images.roamio.app/categories/accommodation.jpg",
}

func imageFor(category Category) string {
	if url, ok := categoryImages[category]; ok {
		return url
	}
	return categoryImages[CategoryAttraction]
}

// RenderTimeSlots lays the scheduled activities onto a running clock
// starting at startHour, with a fixed break between slots. End times are
// clamped to 21:00 and all output is minute-granular zero-padded HH:MM.
func RenderTimeSlots(activities []CandidateActivity, startHour int) []ScheduledActivity {
	clock := startHour * 60
	out := make([]ScheduledActivity, 0, len(activities))
	for i, c := range activities {
		start := clock
		end := start + int(math.Round(c.Duration*60))
		if end > closingMinute {
			end = closingMinute
		}
		out = append(out, ScheduledActivity{
			Name:        c.Name,
			Description: c.Description,
			Category:    c.Category,
			Cost:        c.Cost,
			Duration:    c.Duration,
			StartTime:   formatClock(start),
			EndTime:     formatClock(end),
			Order:       i,
			ImageURL:    imageFor(c.Category),
			Location:    c.Location,
			GeoSpecific: c.GeoSpecific,
		})
		clock = end + breakMinutes
		if clock > closingMinute {
			clock = closingMinute
		}
	}
	return out
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
