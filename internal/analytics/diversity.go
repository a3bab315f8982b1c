package analytics

import (
	"math"

	"github.com/chrisdamba/foodinsights/internal/models"
)

// analyzeDiversity needs a chronological view; with fewer than two orders it
// returns the all-zero facet.
func analyzeDiversity(sorted []timedOrder) models.DiversityAnalytics {
	if len(sorted) < 2 {
		return models.DiversityAnalytics{
			NewRestaurantsPerMonth:     map[string]int{},
			CuisinePreferenceEvolution: map[string]map[string]int{},
		}
	}

	switches := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Restaurant() != sorted[i-1].Restaurant() {
			switches++
		}
	}

	// restaurant name stands in for cuisine throughout this facet
	seenRestaurants := make(map[string]bool)
	newPerMonth := make(map[string]int)
	evolution := make(map[string]map[string]int)

	for _, order := range sorted {
		month := order.placedAt.Format("2006-01")
		name := order.Restaurant()

		if !seenRestaurants[name] {
			seenRestaurants[name] = true
			newPerMonth[month]++
		}

		if evolution[month] == nil {
			evolution[month] = make(map[string]int)
		}
		evolution[month][name]++
	}

	var discoverySum float64
	for _, count := range newPerMonth {
		discoverySum += float64(count)
	}
	discoveryRate := discoverySum / float64(len(newPerMonth))

	variety := math.Min(100, float64(len(seenRestaurants))/float64(len(sorted))*200)

	return models.DiversityAnalytics{
		CuisineSwitchingRate:       round2(percentage(float64(switches), float64(len(sorted)-1))),
		NewRestaurantsPerMonth:     newPerMonth,
		RestaurantDiscoveryRate:    round2(discoveryRate),
		CuisinePreferenceEvolution: evolution,
		VarietyScore:               round2(variety),
	}
}
