package analytics

import (
	"sort"

	"github.com/chrisdamba/foodinsights/internal/models"
)

func analyzeRestaurants(orders []timedOrder) models.RestaurantAnalytics {
	counts := make(map[string]int)
	firstSeen := make([]string, 0)

	for _, order := range orders {
		name := order.Restaurant()
		if _, ok := counts[name]; !ok {
			firstSeen = append(firstSeen, name)
		}
		counts[name]++
	}

	// rank by count descending; stable sort keeps first-seen order on ties
	ranked := make([]models.RestaurantCount, 0, len(firstSeen))
	for _, name := range firstSeen {
		ranked = append(ranked, models.RestaurantCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	top := ranked
	if len(top) > 10 {
		top = top[:10]
	}

	topPct := percentage(float64(ranked[0].Count), float64(len(orders)))

	return models.RestaurantAnalytics{
		UniqueRestaurants:     len(counts),
		TopRestaurantsByOrder: top,
		LoyaltyAnalysis:       classifyLoyalty(ranked[0].Name, topPct),
	}
}

func classifyLoyalty(topRestaurant string, topPct float64) models.LoyaltyAnalysis {
	analysis := models.LoyaltyAnalysis{
		TopRestaurant:           topRestaurant,
		TopRestaurantPercentage: round2(topPct),
	}
	switch {
	case topPct > 30:
		analysis.Tier = models.LoyaltySuperLoyal
		analysis.Description = "One restaurant rules your feed. You know what you like and you stick with it."
	case topPct > 15:
		analysis.Tier = models.LoyaltyLoyal
		analysis.Description = "You have clear favourites but still shop around."
	default:
		analysis.Tier = models.LoyaltyExplorer
		analysis.Description = "No single restaurant dominates. You treat the app like a tasting menu."
	}
	return analysis
}
