package analytics

import (
	"strings"

	"github.com/chrisdamba/foodinsights/internal/models"
)

func analyzeHealthDietary(orders []timedOrder) models.HealthAnalytics {
	var healthy, indulgent, drinks, mentions int
	meals := make(map[string]int)

	for _, order := range orders {
		// keyword sets are independent; one item can count in several
		for _, item := range order.Items {
			name := strings.TrimSpace(strings.ToLower(item.Name))
			if name == "" {
				continue
			}
			mentions++
			if matchesAny(name, healthyKeywords) {
				healthy++
			}
			if matchesAny(name, indulgentKeywords) {
				indulgent++
			}
			if matchesAny(name, drinkKeywords) {
				drinks++
			}
		}
		meals[mealType(order.placedAt.Hour())]++
	}

	// raw-count fallback when nothing indulgent was ordered, kept as-is
	ratio := float64(healthy)
	if indulgent > 0 {
		ratio = float64(healthy) / float64(indulgent)
	}

	var drinkToFood float64
	if food := mentions - drinks; food > 0 {
		drinkToFood = float64(drinks) / float64(food)
	}

	return models.HealthAnalytics{
		HealthyPercentage:       round2(percentage(float64(healthy), float64(mentions))),
		IndulgentPercentage:     round2(percentage(float64(indulgent), float64(mentions))),
		HealthyVsIndulgentRatio: round2(ratio),
		MealTypeDistribution:    meals,
		DrinkToFoodRatio:        round2(drinkToFood),
	}
}

func mealType(hour int) string {
	switch {
	case hour >= 5 && hour < 11:
		return "breakfast"
	case hour >= 11 && hour < 16:
		return "lunch"
	case hour >= 16 && hour < 22:
		return "dinner"
	default:
		return "snack"
	}
}
