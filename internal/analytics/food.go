package analytics

import (
	"sort"
	"strings"

	"github.com/chrisdamba/foodinsights/internal/models"
)

// categoryOrder fixes the iteration order over foodCategoryKeywords so the
// counting pass is deterministic.
var categoryOrder = []string{
	"Burger", "Pizza", "Rice/Biriyani", "Chicken", "Fast Food",
	"Drinks", "Dessert", "Pasta", "Healthy",
}

func analyzeFood(orders []timedOrder) models.FoodAnalytics {
	itemCounts := make(map[string]int)
	firstSeen := make([]string, 0)
	categories := make(map[string]int)
	totalMentions := 0

	for _, order := range orders {
		for _, item := range order.Items {
			name := strings.TrimSpace(strings.ToLower(item.Name))
			if name == "" {
				continue
			}
			if _, ok := itemCounts[name]; !ok {
				firstSeen = append(firstSeen, name)
			}
			itemCounts[name]++
			totalMentions++

			for _, category := range categoryOrder {
				if matchesAny(name, foodCategoryKeywords[category]) {
					categories[category]++
				}
			}
		}
	}

	ranked := make([]models.ItemCount, 0, len(firstSeen))
	for _, name := range firstSeen {
		ranked = append(ranked, models.ItemCount{Name: name, Count: itemCounts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > 15 {
		ranked = ranked[:15]
	}

	return models.FoodAnalytics{
		TopFoodItems:         ranked,
		FoodCategories:       categories,
		AverageItemsPerOrder: round2(float64(totalMentions) / float64(len(orders))),
		TotalUniqueItems:     len(itemCounts),
	}
}

func matchesAny(name string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}
