package analytics

import (
	"sort"
	"strings"

	"github.com/chrisdamba/foodinsights/internal/models"
)

func analyzeBehavior(orders []timedOrder) models.BehaviorAnalytics {
	var dist models.OrderSizeDistribution
	var basketTotal int
	var drinkOrders, dessertOrders int

	signatureCounts := make(map[string]int)
	itemCounts := make(map[string]int)
	itemFirstSeen := make([]string, 0)

	for _, order := range orders {
		size := order.BasketSize()
		basketTotal += size
		switch {
		case size <= 2:
			dist.Small++
		case size <= 5:
			dist.Medium++
		default:
			dist.Large++
		}

		hasDrink, hasDessert := false, false
		for _, item := range order.Items {
			name := strings.TrimSpace(strings.ToLower(item.Name))
			if name == "" {
				continue
			}
			if matchesAny(name, drinkKeywords) {
				hasDrink = true
			}
			if matchesAny(name, dessertKeywords) {
				hasDessert = true
			}
			if _, ok := itemCounts[name]; !ok {
				itemFirstSeen = append(itemFirstSeen, name)
			}
			itemCounts[name]++
		}
		if hasDrink {
			drinkOrders++
		}
		if hasDessert {
			dessertOrders++
		}

		signatureCounts[orderSignature(order.Order)]++
	}

	// a repeated signature means the exact same basket shape was ordered again
	reorders := 0
	for _, count := range signatureCounts {
		if count > 1 {
			reorders++
		}
	}

	// individual items ordered at least 3 times, most frequent first
	frequent := make([]models.ItemCount, 0)
	for _, name := range itemFirstSeen {
		if itemCounts[name] >= 3 {
			frequent = append(frequent, models.ItemCount{Name: name, Count: itemCounts[name]})
		}
	}
	sort.SliceStable(frequent, func(i, j int) bool {
		return frequent[i].Count > frequent[j].Count
	})
	if len(frequent) > 10 {
		frequent = frequent[:10]
	}

	total := float64(len(orders))
	return models.BehaviorAnalytics{
		OrderSizeDistribution: dist,
		AverageBasketSize:     round2(float64(basketTotal) / total),
		DrinkAddonRate:        round2(percentage(float64(drinkOrders), total)),
		DessertAddonRate:      round2(percentage(float64(dessertOrders), total)),
		ExactReorderCount:     reorders,
		SimilarItemsFrequency: frequent,
	}
}

// orderSignature is the sorted, pipe-joined set of distinct lowercase item
// names: the order's shape for repeat detection.
func orderSignature(order models.Order) string {
	seen := make(map[string]bool)
	names := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		name := strings.TrimSpace(strings.ToLower(item.Name))
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}
