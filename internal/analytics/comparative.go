package analytics

import (
	"math"

	"github.com/chrisdamba/foodinsights/internal/models"
)

// analyzeComparative places the user against fixed regional baselines.
// The percentile thresholds assume BDT-scale order values.
func analyzeComparative(spending models.SpendingAnalytics, timeAnalysis models.TimeAnalytics, costs models.CostOptimizationAnalytics) models.ComparativeAnalytics {
	monthlyTotals := make([]float64, 0, len(spending.MonthlySpending))
	for _, total := range spending.MonthlySpending {
		monthlyTotals = append(monthlyTotals, total)
	}
	meanMonthlySpend := mean(monthlyTotals)

	monthlyCounts := make([]float64, 0, len(timeAnalysis.OrderFrequencyTrend))
	for _, count := range timeAnalysis.OrderFrequencyTrend {
		monthlyCounts = append(monthlyCounts, float64(count))
	}
	meanMonthlyOrders := mean(monthlyCounts)

	var percentile float64
	switch {
	case meanMonthlySpend > 30000:
		percentile = 90
	case meanMonthlySpend > 20000:
		percentile = 75
	case meanMonthlySpend > 15000:
		percentile = 60
	case meanMonthlySpend > 10000:
		percentile = 45
	default:
		percentile = 30
	}

	frequency := models.FrequencyLight
	switch {
	case meanMonthlyOrders > 15:
		frequency = models.FrequencyHeavy
	case meanMonthlyOrders > 8:
		frequency = models.FrequencyModerate
	}

	consciousness := spending.VoucherUsageRate*0.6 + math.Max(0, 100-costs.AverageFeePercentage*2)*0.4

	return models.ComparativeAnalytics{
		SpendingPercentile:      percentile,
		OrderFrequencyCategory:  frequency,
		ValueConsciousnessScore: round2(consciousness),
	}
}
