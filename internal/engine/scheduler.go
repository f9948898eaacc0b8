package engine

import (
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"
)

const (
	edgeDayHours   = 6  // arrival and departure days
	middleDayHours = 8
	goaDayHours    = 10
)

// AvailableHours returns the time budget for one day of the trip. First
// and last days are shortened for arrival and departure; Goa middle days
// run longer.
func AvailableHours(destination string, day, totalDays int) float64 {
	if day == 1 || day == totalDays {
		return edgeDayHours
	}
	if strings.Contains(strings.ToLower(destination), "goa") {
		return goaDayHours
	}
	return middleDayHours
}

// tieBreak hashes "{daySeed}:{name}" with 32-bit FNV-1a and normalizes to
// [0,1). The same pool therefore orders differently on different days
// while staying fully reproducible.
func tieBreak(daySeed int, name string) float64 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d:%s", daySeed, name)
	return float64(h.Sum32()) / float64(math.MaxUint32+1)
}

// ScheduleDay selects candidates for one day. Geo-specific entries are
// admitted first and consume hours off the top; the rest of the pool is
// walked greedily in score order with the day-seeded tie-break, skipping
// anything that would overflow the remaining hours. Full-day entries are
// never slotted. An under-filled or empty result is valid.
func ScheduleDay(pool []CandidateActivity, availableHours float64, daySeed int) []CandidateActivity {
	var geo, generic []CandidateActivity
	for _, c := range pool {
		if c.FullDay() {
			continue
		}
		if c.GeoSpecific {
			geo = append(geo, c)
		} else {
			generic = append(generic, c)
		}
	}

	sortForDay(geo, daySeed)
	sortForDay(generic, daySeed)

	selected := make([]CandidateActivity, 0, len(geo)+len(generic))
	remaining := availableHours
	for _, c := range geo {
		selected = append(selected, c)
		remaining -= c.Duration
	}
	if remaining < 0 {
		remaining = 0
	}

	used := 0.0
	for _, c := range generic {
		if used+c.Duration > remaining {
			continue
		}
		selected = append(selected, c)
		used += c.Duration
	}
	return selected
}

func sortForDay(pool []CandidateActivity, daySeed int) {
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Score != pool[j].Score {
			return pool[i].Score > pool[j].Score
		}
		return tieBreak(daySeed, pool[i].Name) < tieBreak(daySeed, pool[j].Name)
	})
}
