package analytics

import "github.com/chrisdamba/foodinsights/internal/models"

func analyzePayments(orders []timedOrder) models.PaymentAnalytics {
	counts := make(map[string]int)
	firstSeen := make([]string, 0)

	for _, order := range orders {
		method := order.PaymentMethod
		if _, ok := counts[method]; !ok {
			firstSeen = append(firstSeen, method)
		}
		counts[method]++
	}

	// mode; ties resolve to the method seen first in the history
	preferred, best := "", 0
	for _, method := range firstSeen {
		if counts[method] > best {
			preferred = method
			best = counts[method]
		}
	}

	return models.PaymentAnalytics{
		MethodCounts:           counts,
		PreferredPaymentMethod: preferred,
	}
}
