package analytics

import "github.com/chrisdamba/foodinsights/internal/models"

func analyzePrices(orders []timedOrder) models.PriceAnalytics {
	var weightedSum, totalQuantity float64
	var minPrice, maxPrice float64
	var haveItems bool

	restaurantTotals := make(map[string]float64)
	restaurantOrders := make(map[string]int)

	var discountSum float64
	var discountCount int

	monthlyWeighted := make(map[string]float64)
	monthlyQuantity := make(map[string]float64)

	for _, order := range orders {
		month := order.placedAt.Format("2006-01")
		for _, item := range order.Items {
			qty := float64(item.Quantity)
			weightedSum += item.Price * qty
			totalQuantity += qty
			monthlyWeighted[month] += item.Price * qty
			monthlyQuantity[month] += qty

			if !haveItems || item.Price < minPrice {
				minPrice = item.Price
			}
			if !haveItems || item.Price > maxPrice {
				maxPrice = item.Price
			}
			haveItems = true
		}

		name := order.Restaurant()
		restaurantTotals[name] += order.TotalValue
		restaurantOrders[name]++

		if order.VoucherDiscount > 0 {
			discountSum += order.VoucherDiscount
			discountCount++
		}
	}

	valueScores := make(map[string]float64, len(restaurantTotals))
	for name, total := range restaurantTotals {
		valueScores[name] = round2(total / float64(restaurantOrders[name]))
	}

	trend := make(map[string]float64, len(monthlyWeighted))
	for month, weighted := range monthlyWeighted {
		if monthlyQuantity[month] > 0 {
			trend[month] = round2(weighted / monthlyQuantity[month])
		}
	}

	var avgPerItem float64
	if totalQuantity > 0 {
		avgPerItem = weightedSum / totalQuantity
	}

	var discountEffectiveness float64
	if discountCount > 0 {
		discountEffectiveness = discountSum / float64(discountCount)
	}

	return models.PriceAnalytics{
		AveragePricePerItem:   round2(avgPerItem),
		PriceRange:            models.PriceRange{Min: minPrice, Max: maxPrice},
		RestaurantValueScores: valueScores,
		DiscountEffectiveness: round2(discountEffectiveness),
		PriceTrendOverTime:    trend,
	}
}
