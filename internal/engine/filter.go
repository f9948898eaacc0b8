package engine

import "strings"

const (
	scoreFavored = 2
	scoreDefault = 1
)

// interestCategories maps a declared interest tag to the categories it
// favours. Unknown tags contribute nothing.
var interestCategories = map[string][]Category{
	"food":       {CategoryFood},
	"history":    {CategoryAttraction},
	"culture":    {CategoryAttraction},
	"beach":      {CategoryActivity, CategoryAttraction},
	"adventure":  {CategoryActivity},
	"nature":     {CategoryAttraction, CategoryActivity},
	"shopping":   {CategoryAttraction},
	"nightlife":  {CategoryFood, CategoryActivity},
	"relaxation": {CategoryActivity, CategoryAccommodation},
}

// FilterByInterests attaches an affinity score to every candidate: 2 when
// its category is favoured by at least one requested interest, 1
// otherwise. When no interest maps to any category the pool passes
// through unchanged apart from the default score.
func FilterByInterests(candidates []CandidateActivity, interests []string) []CandidateActivity {
	favored := make(map[Category]bool)
	for _, interest := range interests {
		for _, cat := range interestCategories[strings.ToLower(strings.TrimSpace(interest))] {
			favored[cat] = true
		}
	}

	out := make([]CandidateActivity, len(candidates))
	for i, c := range candidates {
		if favored[c.Category] {
			c.Score = scoreFavored
		} else {
			c.Score = scoreDefault
		}
		out[i] = c
	}
	return out
}

// FilterByBudget removes candidates costing more than 30% of the daily
// budget. This is a hard ceiling; a very low budget can legitimately
// empty the pool.
func FilterByBudget(candidates []CandidateActivity, dailyBudget float64) []CandidateActivity {
	ceiling := dailyBudget * budgetCeilingShare
	out := make([]CandidateActivity, 0, len(candidates))
	for _, c := range candidates {
		if c.Cost <= ceiling {
			out = append(out, c)
		}
	}
	return out
}
