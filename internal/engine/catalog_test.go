package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActivitiesForDestinationSubstringMatch(t *testing.T) {
	catalog := LoadDefaultCatalog()

	for _, destination := range []string{"Goa", "goa", "North Goa, India", "GOA"} {
		pool := catalog.ActivitiesForDestination(destination)
		require.Equal(t, "Baga Beach", pool[0].Name, "destination %q", destination)
	}
}

func TestActivitiesForDestinationDefaultFallback(t *testing.T) {
	catalog := LoadDefaultCatalog()

	pool := catalog.ActivitiesForDestination("Atlantis")
	require.Equal(t, "City Heritage Walk", pool[0].Name)
	require.NotEmpty(t, pool)
}

// Destination attractions first, then the universal food, activity,
// transport and accommodation pools, in that order.
func TestActivitiesForDestinationConcatenationOrder(t *testing.T) {
	catalog := LoadDefaultCatalog()
	pool := catalog.ActivitiesForDestination("Jaipur")

	var order []Category
	for _, c := range pool {
		if len(order) == 0 || order[len(order)-1] != c.Category {
			order = append(order, c.Category)
		}
	}
	require.Equal(t, []Category{
		CategoryAttraction,
		CategoryFood,
		CategoryActivity,
		CategoryTransport,
		CategoryAccommodation,
	}, order)
}

func TestCatalogAccommodationIsFullDay(t *testing.T) {
	catalog := LoadDefaultCatalog()
	for _, c := range catalog.ActivitiesForDestination("Kerala") {
		if c.Category == CategoryAccommodation {
			require.True(t, c.FullDay())
		} else {
			require.False(t, c.FullDay(), "%s must be schedulable", c.Name)
		}
	}
}

func TestDestinationsListsKnownKeys(t *testing.T) {
	catalog := LoadDefaultCatalog()
	require.ElementsMatch(t, []string{"goa", "jaipur", "kerala", "manali", "mumbai"}, catalog.Destinations())
}
