package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// GeoContext carries real-place enrichment for a destination, supplied by
// the caller before generation. Every field is optional; a nil context is
// simply "no enrichment", not an error.
type GeoContext struct {
	Destination string
	Restaurants []GeoRestaurant
	Experiences []GeoExperience
	Attractions []GeoAttraction
	// Summary is opaque third-party insight text. It is attached to the
	// output as-is and never consumed algorithmically.
	Summary string
}

type GeoRestaurant struct {
	Name    string
	Cuisine string
	Cost    float64
	BestFor []string // suitability tags, e.g. "breakfast", "lunch", "seafood"
	Timing  string   // free text, e.g. "7 AM - 11 PM"
	Area    string
}

type GeoExperience struct {
	Name     string
	Operator string
	Cost     float64
	Duration float64 // hours
	Area     string
}

type GeoAttraction struct {
	Name         string
	EntryFee     string // free text, e.g. "₹500 - ₹800" or "free"
	AvgVisitTime string // free text, e.g. "2-3 hours"
	Description  string
	Area         string
}

// Per-activity ceiling relative to the daily budget; shared with the
// budget filter.
const budgetCeilingShare = 0.3

const (
	maxGeoExperiences = 2
	maxGeoAttractions = 2
	fallbackVisitTime = 2 // hours, when AvgVisitTime is missing or unparseable
)

// DeriveGeoCandidates converts enrichment data into catalog-shaped
// candidates, all flagged geo-specific so the scheduler places them ahead
// of generic entries. Malformed numeric fields degrade to defaults; a nil
// context yields nil.
func DeriveGeoCandidates(geo *GeoContext, dailyBudget float64) []CandidateActivity {
	if geo == nil {
		return nil
	}

	ceiling := dailyBudget * budgetCeilingShare
	var out []CandidateActivity
	taken := make(map[string]bool)

	if breakfast, ok := pickRestaurant(geo.Restaurants, ceiling, taken, isBreakfastSuited); ok {
		taken[breakfast.Name] = true
		out = append(out, CandidateActivity{
			Name:        "Breakfast at " + breakfast.Name,
			Cost:        breakfast.Cost,
			Duration:    1,
			Category:    CategoryFood,
			Description: mealDescription(breakfast),
			Location:    breakfast.Area,
			GeoSpecific: true,
		})
	}
	if lunch, ok := pickRestaurant(geo.Restaurants, ceiling, taken, isLunchSuited); ok {
		taken[lunch.Name] = true
		out = append(out, CandidateActivity{
			Name:        "Lunch at " + lunch.Name,
			Cost:        lunch.Cost,
			Duration:    1.5,
			Category:    CategoryFood,
			Description: mealDescription(lunch),
			Location:    lunch.Area,
			GeoSpecific: true,
		})
	}

	count := 0
	for _, exp := range geo.Experiences {
		if count >= maxGeoExperiences {
			break
		}
		if exp.Name == "" || exp.Cost > ceiling {
			continue
		}
		duration := exp.Duration
		if duration <= 0 {
			duration = fallbackVisitTime
		}
		desc := exp.Name
		if exp.Operator != "" {
			desc = fmt.Sprintf("%s with %s", exp.Name, exp.Operator)
		}
		out = append(out, CandidateActivity{
			Name:        exp.Name,
			Cost:        exp.Cost,
			Duration:    duration,
			Category:    CategoryActivity,
			Description: desc,
			Location:    exp.Area,
			GeoSpecific: true,
		})
		count++
	}

	count = 0
	for _, attr := range geo.Attractions {
		if count >= maxGeoAttractions {
			break
		}
		if attr.Name == "" {
			continue
		}
		out = append(out, CandidateActivity{
			Name:        attr.Name,
			Cost:        parseAmount(attr.EntryFee),
			Duration:    parseHours(attr.AvgVisitTime),
			Category:    CategoryAttraction,
			Description: attr.Description,
			Location:    attr.Area,
			GeoSpecific: true,
		})
		count++
	}

	return out
}

func pickRestaurant(restaurants []GeoRestaurant, ceiling float64, taken map[string]bool, suited func(GeoRestaurant) bool) (GeoRestaurant, bool) {
	for _, r := range restaurants {
		if r.Name == "" || taken[r.Name] || r.Cost > ceiling {
			continue
		}
		if suited(r) {
			return r, true
		}
	}
	return GeoRestaurant{}, false
}

func isBreakfastSuited(r GeoRestaurant) bool {
	for _, tag := range r.BestFor {
		if strings.Contains(strings.ToLower(tag), "breakfast") {
			return true
		}
	}
	return strings.Contains(strings.ToUpper(r.Timing), "AM")
}

// Lunch suitability is loose: an explicit tag wins, otherwise the next
// distinct restaurant serves.
func isLunchSuited(r GeoRestaurant) bool {
	for _, tag := range r.BestFor {
		lower := strings.ToLower(tag)
		if strings.Contains(lower, "lunch") || strings.Contains(lower, "seafood") {
			return true
		}
	}
	return true
}

func mealDescription(r GeoRestaurant) string {
	if r.Cuisine == "" {
		return "Local favourite"
	}
	return r.Cuisine + " cuisine"
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// parseAmount pulls the lower bound out of a free-text money field.
// "₹500 - ₹800" yields 500; anything unparseable yields 0.
func parseAmount(s string) float64 {
	match := numberPattern.FindString(s)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseHours pulls the lower bound out of a free-text duration field,
// defaulting to two hours.
func parseHours(s string) float64 {
	match := numberPattern.FindString(s)
	if match == "" {
		return fallbackVisitTime
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || v <= 0 {
		return fallbackVisitTime
	}
	return v
}
