package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tripDays(t *testing.T, it GeneratedItinerary) int {
	t.Helper()
	return len(it.Days)
}

func TestGenerateProducesOneEntryPerDay(t *testing.T) {
	gen := NewGenerator(LoadDefaultCatalog())

	req := TripRequest{
		Destination: "Jaipur",
		StartDate:   date(2026, time.November, 10),
		EndDate:     date(2026, time.November, 14),
		Budget:      40000,
		Travelers:   2,
	}
	it := gen.Generate(req, nil)

	require.Len(t, it.Days, 5)
	for i, day := range it.Days {
		require.Equal(t, i+1, day.Day)
		require.Equal(t, req.StartDate.AddDate(0, 0, i), day.Date)
		require.NotEmpty(t, day.Title)
	}
}

func TestGenerateDefaultsTravelersAndBudget(t *testing.T) {
	gen := NewGenerator(LoadDefaultCatalog())

	it := gen.Generate(TripRequest{
		Destination: "Mumbai",
		StartDate:   date(2026, time.March, 1),
		EndDate:     date(2026, time.March, 2),
	}, nil)

	require.Equal(t, 1, it.Travelers)
	require.Equal(t, float64(50000), it.Budget)
}

func TestGenerateIsIdempotent(t *testing.T) {
	gen := NewGenerator(LoadDefaultCatalog())

	req := TripRequest{
		Destination: "Kerala",
		StartDate:   date(2026, time.January, 5),
		EndDate:     date(2026, time.January, 9),
		Budget:      60000,
		Interests:   []string{"Nature", "Food"},
	}
	geo := &GeoContext{
		Destination: "Kerala",
		Restaurants: []GeoRestaurant{
			{Name: "Grand Pavilion", Cost: 350, BestFor: []string{"breakfast"}},
			{Name: "Harbour House", Cost: 600, BestFor: []string{"seafood"}},
		},
		Summary: "Backwaters are calmest in January.",
	}

	first := gen.Generate(req, geo)
	second := gen.Generate(req, geo)
	require.Equal(t, first, second)
}

func TestGenerateSlotsNeverOverlapAndRespectClosing(t *testing.T) {
	gen := NewGenerator(LoadDefaultCatalog())

	for _, destination := range []string{"Goa", "Jaipur", "Atlantis"} {
		it := gen.Generate(TripRequest{
			Destination: destination,
			StartDate:   date(2026, time.February, 2),
			EndDate:     date(2026, time.February, 6),
			Budget:      45000,
		}, nil)

		for _, day := range it.Days {
			for i, act := range day.Activities {
				require.Equal(t, i, act.Order)
				require.Regexp(t, `^([01]\d|2[0-3]):[0-5]\d$`, act.StartTime)
				require.Regexp(t, `^([01]\d|2[0-3]):[0-5]\d$`, act.EndTime)
				require.LessOrEqual(t, act.EndTime, "21:00")
				if i > 0 {
					require.LessOrEqual(t, day.Activities[i-1].EndTime, act.StartTime,
						"day %d of %s overlaps", day.Day, destination)
				}
			}
		}
	}
}

func TestGenerateRespectsBudgetCeiling(t *testing.T) {
	gen := NewGenerator(LoadDefaultCatalog())

	req := TripRequest{
		Destination: "Jaipur",
		StartDate:   date(2026, time.April, 1),
		EndDate:     date(2026, time.April, 5),
		Budget:      20000,
	}
	it := gen.Generate(req, nil)

	ceiling := req.Budget / float64(tripDays(t, it)) * budgetCeilingShare
	for _, day := range it.Days {
		for _, act := range day.Activities {
			require.LessOrEqual(t, act.Cost, ceiling)
		}
	}
}

func TestGenerateAvoidsRepeatsAcrossDays(t *testing.T) {
	gen := NewGenerator(LoadDefaultCatalog())

	it := gen.Generate(TripRequest{
		Destination: "Mumbai",
		StartDate:   date(2026, time.June, 1),
		EndDate:     date(2026, time.June, 3),
		Budget:      50000,
	}, nil)

	seen := make(map[string]int)
	for _, day := range it.Days {
		for _, act := range day.Activities {
			seen[act.Name]++
		}
	}
	for name, n := range seen {
		require.Equal(t, 1, n, "%s scheduled on more than one day", name)
	}
}

func TestGenerateRepeatsWhenPoolExhausted(t *testing.T) {
	catalog := &Catalog{
		attractions: map[string][]CandidateActivity{
			defaultDestinationKey: {
				{Name: "Only Sight", Cost: 100, Duration: 2, Category: CategoryAttraction},
			},
		},
	}
	gen := NewGenerator(catalog)

	it := gen.Generate(TripRequest{
		Destination: "Nowhere",
		StartDate:   date(2026, time.May, 1),
		EndDate:     date(2026, time.May, 3),
		Budget:      30000,
	}, nil)

	for _, day := range it.Days {
		require.Len(t, day.Activities, 1, "repeats beat an empty day")
		require.Equal(t, "Only Sight", day.Activities[0].Name)
	}
}

// A trip long enough to use up every timed candidate must still fill the
// later days by repeating; lingering accommodation entries in the unused
// pool must not mask the exhaustion.
func TestGenerateLongTripFillsEveryDay(t *testing.T) {
	gen := NewGenerator(LoadDefaultCatalog())

	it := gen.Generate(TripRequest{
		Destination: "Jaipur",
		StartDate:   date(2026, time.October, 1),
		EndDate:     date(2026, time.October, 10),
		Budget:      50000,
	}, nil)

	require.Len(t, it.Days, 10)
	for _, day := range it.Days {
		require.NotEmpty(t, day.Activities, "day %d is empty although repeats were available", day.Day)
	}
}

// Goa, 3 days: no scooter on day 1; later days open with the 09:00-09:30
// rental and a longer middle day.
func TestGenerateGoaScooterRental(t *testing.T) {
	gen := NewGenerator(LoadDefaultCatalog())

	it := gen.Generate(TripRequest{
		Destination: "Goa",
		StartDate:   date(2026, time.December, 20),
		EndDate:     date(2026, time.December, 22),
		Budget:      30000,
		Interests:   []string{"Beach", "Food"},
	}, nil)

	require.Len(t, it.Days, 3)
	for _, act := range it.Days[0].Activities {
		require.NotEqual(t, "Scooter Rental", act.Name)
	}
	day2 := it.Days[1]
	require.NotEmpty(t, day2.Activities)
	require.Equal(t, "Scooter Rental", day2.Activities[0].Name)
	require.Equal(t, "09:00", day2.Activities[0].StartTime)
	require.Equal(t, "09:30", day2.Activities[0].EndTime)

	require.Equal(t, float64(6), AvailableHours("Goa", 1, 3))
	require.Equal(t, float64(10), AvailableHours("Goa", 2, 3))
}

// Unknown destinations fall back to the Default pool and still produce a
// fully-formed itinerary.
func TestGenerateUnknownDestinationFallsBack(t *testing.T) {
	gen := NewGenerator(LoadDefaultCatalog())

	it := gen.Generate(TripRequest{
		Destination: "Atlantis",
		StartDate:   date(2026, time.July, 1),
		EndDate:     date(2026, time.July, 3),
		Budget:      40000,
	}, nil)

	require.Len(t, it.Days, 3)
	for _, day := range it.Days {
		require.NotEmpty(t, day.Title)
		require.NotEmpty(t, day.Activities)
	}
}

// A budget below the cheapest entry empties every day; documented
// behavior, not an error.
func TestGenerateStarvedBudgetYieldsEmptyDays(t *testing.T) {
	gen := NewGenerator(LoadDefaultCatalog())

	it := gen.Generate(TripRequest{
		Destination: "Jaipur",
		StartDate:   date(2026, time.August, 1),
		EndDate:     date(2026, time.August, 2),
		Budget:      100,
	}, nil)

	require.Len(t, it.Days, 2)
	for _, day := range it.Days {
		require.Empty(t, day.Activities)
	}
}

func TestGenerateGeoCandidatesLeadDayOne(t *testing.T) {
	gen := NewGenerator(LoadDefaultCatalog())

	geo := &GeoContext{
		Destination: "Goa",
		Restaurants: []GeoRestaurant{
			{Name: "Sunrise Shack", Cost: 400, BestFor: []string{"breakfast"}, Area: "Baga"},
			{Name: "Tide & Salt", Cost: 900, BestFor: []string{"seafood", "lunch"}, Area: "Calangute"},
		},
	}
	it := gen.Generate(TripRequest{
		Destination: "Goa",
		StartDate:   date(2026, time.November, 2),
		EndDate:     date(2026, time.November, 4),
		Budget:      36000,
	}, geo)

	day1 := it.Days[0]
	var breakfasts, lunches int
	lastGeo := -1
	firstGeneric := len(day1.Activities)
	for i, act := range day1.Activities {
		if strings.HasPrefix(act.Name, "Breakfast at ") {
			breakfasts++
			require.True(t, act.GeoSpecific)
		}
		if strings.HasPrefix(act.Name, "Lunch at ") {
			lunches++
			require.True(t, act.GeoSpecific)
		}
		if act.GeoSpecific {
			lastGeo = i
		} else if i < firstGeneric {
			firstGeneric = i
		}
	}
	require.Equal(t, 1, breakfasts)
	require.Equal(t, 1, lunches)
	require.Less(t, lastGeo, firstGeneric, "geo-specific entries come before generic ones")
}

func TestGenerateAttachesStayAndSummary(t *testing.T) {
	gen := NewGenerator(LoadDefaultCatalog())

	geo := &GeoContext{Summary: "Shoulder season; book ferries ahead."}
	it := gen.Generate(TripRequest{
		Destination: "Mumbai",
		StartDate:   date(2026, time.September, 1),
		EndDate:     date(2026, time.September, 3),
		Budget:      60000,
		StayArea:    "Colaba",
	}, geo)

	require.Equal(t, "Shoulder season; book ferries ahead.", it.Summary)
	for _, day := range it.Days {
		require.Equal(t, "Backpacker Hostel near Colaba", day.Stay)
		for _, act := range day.Activities {
			require.NotEqual(t, CategoryAccommodation, act.Category,
				"accommodation must never appear as a timed slot")
		}
	}
}
