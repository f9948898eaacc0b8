package engine

import (
	"fmt"
	"strings"
)

const (
	defaultTravelers = 1
	defaultBudget    = 50000
)

// Goa trips carry a fixed scooter-rental slot on every day after the
// first; a narrative embellishment, not part of the general algorithm.
var scooterRental = CandidateActivity{
	Name:        "Scooter Rental",
	Cost:        400,
	Duration:    0.5,
	Category:    CategoryTransport,
	Description: "Pick up a scooter for the day, helmet included",
}

var middleDayThemes = []string{
	"Exploring %s",
	"Local Flavours of %s",
	"Hidden Corners of %s",
	"A Slow Day in %s",
}

// Generator produces itineraries from an injected, immutable catalog.
// Generation is pure and idempotent: identical inputs, including the geo
// context, yield identical output.
type Generator struct {
	catalog *Catalog
}

func NewGenerator(catalog *Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// Generate builds the full day-by-day itinerary for a trip request. The
// caller guarantees EndDate >= StartDate and a trip length within the
// upstream cap; travelers and budget default when non-positive. It never
// fails: sparse or empty days are preserved as-is.
func (g *Generator) Generate(req TripRequest, geo *GeoContext) GeneratedItinerary {
	if req.Travelers <= 0 {
		req.Travelers = defaultTravelers
	}
	if req.Budget <= 0 {
		req.Budget = defaultBudget
	}

	totalDays := inclusiveDays(req)
	dailyBudget := req.Budget / float64(totalDays)

	pool := g.catalog.ActivitiesForDestination(req.Destination)
	pool = append(pool, DeriveGeoCandidates(geo, dailyBudget)...)
	pool = FilterByInterests(pool, req.Interests)
	pool = FilterByBudget(pool, dailyBudget)

	stay := staySuggestion(pool, req.StayArea)
	isGoa := strings.Contains(strings.ToLower(req.Destination), "goa")

	used := make(map[string]bool)
	days := make([]ItineraryDay, 0, totalDays)
	for day := 1; day <= totalDays; day++ {
		dayPool := unusedOnly(pool, used)
		if !hasSchedulable(dayPool) {
			// Timed options exhausted across days; repeats beat an empty day.
			dayPool = pool
		}

		selected := ScheduleDay(dayPool, AvailableHours(req.Destination, day, totalDays), day)
		for _, c := range selected {
			used[c.Name] = true
		}

		var slots []ScheduledActivity
		if isGoa && day > 1 {
			slots = prependScooterRental(RenderTimeSlots(selected, DefaultStartHour+1))
		} else {
			slots = RenderTimeSlots(selected, DefaultStartHour)
		}

		days = append(days, ItineraryDay{
			Day:        day,
			Date:       req.StartDate.AddDate(0, 0, day-1),
			Title:      dayTitle(req.Destination, day, totalDays),
			Stay:       stay,
			Activities: slots,
		})
	}

	out := GeneratedItinerary{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Travelers:   req.Travelers,
		Interests:   req.Interests,
		Days:        days,
	}
	if geo != nil {
		out.Summary = geo.Summary
	}
	return out
}

func inclusiveDays(req TripRequest) int {
	days := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// hasSchedulable reports whether the pool still holds anything the day
// scheduler could place. Full-day entries don't count: they are never
// slotted, so a pool of nothing but accommodation is exhausted.
func hasSchedulable(pool []CandidateActivity) bool {
	for _, c := range pool {
		if !c.FullDay() {
			return true
		}
	}
	return false
}

func unusedOnly(pool []CandidateActivity, used map[string]bool) []CandidateActivity {
	out := make([]CandidateActivity, 0, len(pool))
	for _, c := range pool {
		if !used[c.Name] {
			out = append(out, c)
		}
	}
	return out
}

// staySuggestion surfaces the cheapest accommodation surviving the budget
// filter; full-day entries are booked once per trip, never slotted.
func staySuggestion(pool []CandidateActivity, stayArea string) string {
	var best *CandidateActivity
	for i := range pool {
		if !pool[i].FullDay() {
			continue
		}
		if best == nil || pool[i].Cost < best.Cost {
			best = &pool[i]
		}
	}
	if best == nil {
		return ""
	}
	if stayArea != "" {
		return fmt.Sprintf("%s near %s", best.Name, stayArea)
	}
	return best.Name
}

func prependScooterRental(slots []ScheduledActivity) []ScheduledActivity {
	rental := ScheduledActivity{
		Name:        scooterRental.Name,
		Description: scooterRental.Description,
		Category:    scooterRental.Category,
		Cost:        scooterRental.Cost,
		Duration:    scooterRental.Duration,
		StartTime:   "09:00",
		EndTime:     "09:30",
		Order:       0,
		ImageURL:    imageFor(scooterRental.Category),
	}
	out := make([]ScheduledActivity, 0, len(slots)+1)
	out = append(out, rental)
	for _, s := range slots {
		s.Order = len(out)
		out = append(out, s)
	}
	return out
}

func dayTitle(destination string, day, totalDays int) string {
	name := strings.TrimSpace(destination)
	if name == "" {
		name = "Your Destination"
	}
	switch {
	case day == 1:
		return fmt.Sprintf("Arrival in %s", name)
	case day == totalDays:
		return fmt.Sprintf("Farewell, %s", name)
	default:
		return fmt.Sprintf(middleDayThemes[(day-2)%len(middleDayThemes)], name)
	}
}
