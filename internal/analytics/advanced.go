package analytics

import (
	"math"

	"github.com/chrisdamba/foodinsights/internal/models"
)

// analyzeAdvanced blends several facets into composite behaviour scores.
// The coefficients are fixed heuristics, reproduced literally.
func analyzeAdvanced(orders []timedOrder, restaurants models.RestaurantAnalytics, timeAnalysis models.TimeAnalytics, spending models.SpendingAnalytics) models.AdvancedAnalytics {
	first, last := orders[0].placedAt, orders[0].placedAt
	hours := make([]float64, 0, len(orders))
	for _, order := range orders {
		if order.placedAt.Before(first) {
			first = order.placedAt
		}
		if order.placedAt.After(last) {
			last = order.placedAt
		}
		hours = append(hours, float64(order.placedAt.Hour()))
	}

	daysSpan := last.Sub(first).Hours() / hoursPerDay
	clv := spending.TotalSpent / math.Max(1, daysSpan) * 365

	efficiency := math.Min(100, float64(len(orders))/float64(restaurants.UniqueRestaurants)*10)

	loyaltyPct := restaurants.LoyaltyAnalysis.TopRestaurantPercentage
	brandLoyalty := math.Min(100, loyaltyPct*0.6+(100-spending.VoucherUsageRate)*0.4)

	spontaneity := math.Min(100, populationVariance(hours)/50*100)

	churn := 20.0
	switch accel := timeAnalysis.OrderingAcceleration; {
	case accel < -20:
		churn = 80
	case accel < 0:
		churn = 50
	}

	exploitation := percentage(float64(restaurants.TopRestaurantsByOrder[0].Count), float64(len(orders)))

	return models.AdvancedAnalytics{
		CustomerLifetimeValue:  round2(clv),
		OrderEfficiencyScore:   round2(efficiency),
		BrandLoyaltyScore:      round2(brandLoyalty),
		SpontaneityIndex:       round2(spontaneity),
		DealDependencyRatio:    spending.VoucherUsageRate,
		ChurnRiskScore:         churn,
		ExplorationPercentage:  round2(100 - exploitation),
		ExploitationPercentage: round2(exploitation),
	}
}
