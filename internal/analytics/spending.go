package analytics

import "github.com/chrisdamba/foodinsights/internal/models"

func analyzeSpending(orders []timedOrder) models.SpendingAnalytics {
	var totalSpent, deliveryFees, serviceFees, voucherSavings float64
	var voucherOrders int
	values := make([]float64, 0, len(orders))
	monthly := make(map[string]float64)

	for _, order := range orders {
		totalSpent += order.TotalValue
		deliveryFees += order.DeliveryFee
		serviceFees += order.ServiceFee
		voucherSavings += order.VoucherDiscount
		if order.VoucherDiscount > 0 {
			voucherOrders++
		}
		values = append(values, order.TotalValue)
		monthly[order.placedAt.Format("2006-01")] += order.TotalValue
	}
	for month, total := range monthly {
		monthly[month] = round2(total)
	}

	avg := totalSpent / float64(len(orders))

	return models.SpendingAnalytics{
		TotalSpent:          round2(totalSpent),
		AverageOrderValue:   round2(avg),
		MedianOrderValue:    round2(median(values)),
		TotalDeliveryFees:   round2(deliveryFees),
		TotalServiceFees:    round2(serviceFees),
		TotalVoucherSavings: round2(voucherSavings),
		VoucherUsageRate:    round2(percentage(float64(voucherOrders), float64(len(orders)))),
		MonthlySpending:     monthly,
		SpendingCategory:    classifySpending(avg),
	}
}

// classifySpending bands the average order value. Thresholds are strict
// greater-than, evaluated high to low.
func classifySpending(avgOrderValue float64) models.SpendingCategory {
	switch {
	case avgOrderValue > 400:
		return models.SpendingCategory{
			Type:        models.SpenderBig,
			Description: "You go big when you order. Premium picks and generous baskets.",
		}
	case avgOrderValue > 250:
		return models.SpendingCategory{
			Type:        models.SpenderMedium,
			Description: "Solid, balanced orders. Not too frugal, not extravagant.",
		}
	default:
		return models.SpendingCategory{
			Type:        models.SpenderLight,
			Description: "You keep orders lean and wallet-friendly.",
		}
	}
}
