package engine

import "strings"

// Catalog is the read-only reference table of candidate activities.
// Build it once with LoadDefaultCatalog and inject it; it is safe for
// concurrent reads and never mutated afterwards.
type Catalog struct {
	attractions   map[string][]CandidateActivity
	food          []CandidateActivity
	activities    []CandidateActivity
	transport     []CandidateActivity
	accommodation []CandidateActivity
}

const defaultDestinationKey = "default"

// Resolution order is fixed so that a destination matching more than one
// key resolves the same way on every call.
var destinationKeys = []string{"goa", "jaipur", "kerala", "manali", "mumbai"}

// ActivitiesForDestination resolves a destination by case-insensitive
// substring match against the known keys, falling back to the Default
// pool. The result always concatenates destination attractions with the
// universal food, activity, transport and accommodation pools.
func (c *Catalog) ActivitiesForDestination(destination string) []CandidateActivity {
	key := defaultDestinationKey
	lower := strings.ToLower(strings.TrimSpace(destination))
	if lower != "" {
		for _, known := range destinationKeys {
			if strings.Contains(lower, known) || strings.Contains(known, lower) {
				key = known
				break
			}
		}
	}

	attractions := c.attractions[key]
	out := make([]CandidateActivity, 0,
		len(attractions)+len(c.food)+len(c.activities)+len(c.transport)+len(c.accommodation))
	out = append(out, attractions...)
	out = append(out, c.food...)
	out = append(out, c.activities...)
	out = append(out, c.transport...)
	out = append(out, c.accommodation...)
	return out
}

// Destinations lists the known destination keys, Default excluded.
func (c *Catalog) Destinations() []string {
	keys := make([]string, len(destinationKeys))
	copy(keys, destinationKeys)
	return keys
}

// LoadDefaultCatalog builds the built-in activity table. Costs are in the
// same currency unit as trip budgets (rupees in the shipped data).
func LoadDefaultCatalog() *Catalog {
	return &Catalog{
		attractions: map[string][]CandidateActivity{
			"goa": {
				{Name: "Baga Beach", Cost: 200, Duration: 3, Category: CategoryAttraction, Description: "Water sports and shacks on North Goa's busiest beach", Location: "North Goa"},
				{Name: "Fort Aguada", Cost: 100, Duration: 2, Category: CategoryAttraction, Description: "17th-century Portuguese fort overlooking the Arabian Sea", Location: "Candolim"},
				{Name: "Basilica of Bom Jesus", Cost: 50, Duration: 1.5, Category: CategoryAttraction, Description: "UNESCO-listed church holding the relics of St. Francis Xavier", Location: "Old Goa"},
				{Name: "Dudhsagar Falls Trip", Cost: 1500, Duration: 5, Category: CategoryAttraction, Description: "Jeep safari to the four-tiered milk-white waterfall", Location: "Mollem"},
				{Name: "Anjuna Flea Market", Cost: 300, Duration: 2, Category: CategoryAttraction, Description: "Wednesday market of stalls, trinkets and trance music", Location: "Anjuna"},
				{Name: "Chapora Fort Sunset", Cost: 80, Duration: 1.5, Category: CategoryAttraction, Description: "Hilltop ruin with a sweeping view over Vagator", Location: "Vagator"},
			},
			"jaipur": {
				{Name: "Amber Fort", Cost: 500, Duration: 3, Category: CategoryAttraction, Description: "Hilltop fort-palace with mirrored halls and elephant ramps", Location: "Amer"},
				{Name: "City Palace", Cost: 700, Duration: 2, Category: CategoryAttraction, Description: "Royal residence blending Rajput and Mughal courtyards", Location: "Pink City"},
				{Name: "Hawa Mahal", Cost: 200, Duration: 1, Category: CategoryAttraction, Description: "The five-storey Palace of Winds and its 953 jharokhas", Location: "Badi Choupad"},
				{Name: "Jantar Mantar", Cost: 200, Duration: 1.5, Category: CategoryAttraction, Description: "Eighteenth-century stone observatory, still accurate", Location: "Pink City"},
				{Name: "Nahargarh Fort", Cost: 200, Duration: 2.5, Category: CategoryAttraction, Description: "Aravalli ridge fort with the best sunset over the city", Location: "Brahampuri"},
			},
			"kerala": {
				{Name: "Alleppey Backwater Cruise", Cost: 1200, Duration: 4, Category: CategoryAttraction, Description: "Houseboat drift through palm-lined canals", Location: "Alappuzha"},
				{Name: "Munnar Tea Gardens", Cost: 300, Duration: 3, Category: CategoryAttraction, Description: "Rolling plantation walks and the tea museum", Location: "Munnar"},
				{Name: "Fort Kochi Walk", Cost: 100, Duration: 2, Category: CategoryAttraction, Description: "Chinese fishing nets, spice warehouses and colonial lanes", Location: "Kochi"},
				{Name: "Periyar Wildlife Sanctuary", Cost: 450, Duration: 4, Category: CategoryAttraction, Description: "Boat safari on the lake inside the tiger reserve", Location: "Thekkady"},
				{Name: "Kathakali Performance", Cost: 350, Duration: 1.5, Category: CategoryAttraction, Description: "Classical dance-drama with live make-up session", Location: "Kochi"},
			},
			"manali": {
				{Name: "Solang Valley", Cost: 500, Duration: 4, Category: CategoryAttraction, Description: "Ropeway, zorbing and paragliding meadow", Location: "Solang"},
				{Name: "Hadimba Temple", Cost: 50, Duration: 1, Category: CategoryAttraction, Description: "Pagoda shrine in a deodar cedar grove", Location: "Dhungri"},
				{Name: "Old Manali Cafes", Cost: 250, Duration: 2, Category: CategoryAttraction, Description: "Riverside lanes of cafes and woollen stalls", Location: "Old Manali"},
				{Name: "Rohtang Pass Excursion", Cost: 2000, Duration: 6, Category: CategoryAttraction, Description: "High-altitude snow point drive, permits arranged", Location: "Rohtang"},
				{Name: "Vashisht Hot Springs", Cost: 100, Duration: 1.5, Category: CategoryAttraction, Description: "Sulphur spring baths beside a stone temple", Location: "Vashisht"},
			},
			"mumbai": {
				{Name: "Gateway of India", Cost: 50, Duration: 1, Category: CategoryAttraction, Description: "Harbourfront arch and the ferry point for Elephanta", Location: "Colaba"},
				{Name: "Elephanta Caves", Cost: 600, Duration: 4, Category: CategoryAttraction, Description: "Rock-cut Shiva temples an hour's ferry from the Gateway", Location: "Elephanta Island"},
				{Name: "Marine Drive Promenade", Cost: 50, Duration: 1.5, Category: CategoryAttraction, Description: "The Queen's Necklace at dusk", Location: "Nariman Point"},
				{Name: "Chhatrapati Shivaji Museum", Cost: 300, Duration: 2, Category: CategoryAttraction, Description: "Indo-Saracenic museum of art and natural history", Location: "Fort"},
				{Name: "Dharavi Art Walk", Cost: 500, Duration: 2.5, Category: CategoryAttraction, Description: "Community-led tour of workshops and rooftop views", Location: "Dharavi"},
			},
			defaultDestinationKey: {
				{Name: "City Heritage Walk", Cost: 200, Duration: 2, Category: CategoryAttraction, Description: "Guided loop of the old quarter's landmarks"},
				{Name: "Central Museum", Cost: 150, Duration: 2, Category: CategoryAttraction, Description: "Regional history and craft galleries"},
				{Name: "Sunset Viewpoint", Cost: 50, Duration: 1.5, Category: CategoryAttraction, Description: "The classic photo stop above town"},
				{Name: "Local Market Stroll", Cost: 100, Duration: 1.5, Category: CategoryAttraction, Description: "Produce lanes, street snacks and souvenirs"},
			},
		},
		food: []CandidateActivity{
			{Name: "Street Food Crawl", Cost: 300, Duration: 2, Category: CategoryFood, Description: "Chaat, kebabs and whatever the locals queue for"},
			{Name: "Traditional Thali Lunch", Cost: 400, Duration: 1.5, Category: CategoryFood, Description: "Regional platter at a family-run mess"},
			{Name: "Heritage Cafe Breakfast", Cost: 250, Duration: 1, Category: CategoryFood, Description: "Filter coffee and the house special since 1952"},
			{Name: "Rooftop Dinner", Cost: 900, Duration: 2, Category: CategoryFood, Description: "Slow dinner with a skyline or sea view"},
		},
		activities: []CandidateActivity{
			{Name: "Cycle Tour", Cost: 600, Duration: 3, Category: CategoryActivity, Description: "Early-morning guided ride before traffic wakes up"},
			{Name: "Cooking Class", Cost: 800, Duration: 2.5, Category: CategoryActivity, Description: "Market visit and a three-dish hands-on class"},
			{Name: "Ayurvedic Spa Session", Cost: 1200, Duration: 2, Category: CategoryActivity, Description: "Abhyanga massage and steam"},
			{Name: "Craft Workshop", Cost: 500, Duration: 2, Category: CategoryActivity, Description: "Block printing or pottery with a local artisan"},
		},
		transport: []CandidateActivity{
			{Name: "Airport Transfer", Cost: 700, Duration: 1, Category: CategoryTransport, Description: "Prepaid cab between airport and stay"},
			{Name: "Full-Day Car Hire", Cost: 2500, Duration: 8, Category: CategoryTransport, Description: "Driver-led car for out-of-town sights"},
			{Name: "Local Transit Pass", Cost: 150, Duration: 1, Category: CategoryTransport, Description: "Day pass for buses and metro where available"},
		},
		accommodation: []CandidateActivity{
			{Name: "Boutique Guesthouse", Cost: 2800, Duration: fullDayDuration, Category: CategoryAccommodation, Description: "Mid-range stay near the sights, breakfast included"},
			{Name: "Backpacker Hostel", Cost: 800, Duration: fullDayDuration, Category: CategoryAccommodation, Description: "Dorm beds, lockers and a common kitchen"},
			{Name: "Heritage Hotel", Cost: 6500, Duration: fullDayDuration, Category: CategoryAccommodation, Description: "Restored haveli with courtyard dining"},
		},
	}
}
