package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/chrisdamba/foodinsights/internal/models"
)

const (
	recentWindowMonths = 6
	trendClampPercent  = 15.0
	recentWeight       = 0.7
	lifetimeWeight     = 0.3
)

// analyzePredictive forecasts next-month spending from a linearly-weighted
// recent average blended with the lifetime monthly average, adjusted by a
// slope-derived trend percentage clamped to ±15%.
func analyzePredictive(sorted []timedOrder, spending models.SpendingAnalytics, timeAnalysis models.TimeAnalytics) models.PredictiveAnalytics {
	if len(sorted) < 2 {
		// too little history for a regression; the ×12 annual figure is a
		// placeholder, not a real annualization
		return models.PredictiveAnalytics{
			ForecastedMonthlySpending: spending.AverageOrderValue,
			EstimatedAnnualSpending:   round2(spending.TotalSpent * 12),
			SpendingTrend:             models.TrendStable,
			TrendPercentage:           0,
			PredictedNextOrderDays:    7,
		}
	}

	first := sorted[0].placedAt
	last := sorted[len(sorted)-1].placedAt
	activeMonths := monthSpan(first, last)
	lifetimeMonthlyAvg := spending.TotalSpent / float64(activeMonths)

	recent := recentMonthlyTotals(spending.MonthlySpending, recentWindowMonths)

	var weightedSum, weightTotal float64
	for i, total := range recent {
		weight := float64(i + 1)
		weightedSum += total * weight
		weightTotal += weight
	}
	recentWeightedAvg := weightedSum / weightTotal

	trendPct := 0.0
	if m := mean(recent); m != 0 {
		trendPct = clamp(olsSlope(recent)/m*100, -trendClampPercent, trendClampPercent)
	}

	forecast := (recentWeight*recentWeightedAvg + lifetimeWeight*lifetimeMonthlyAvg) * (1 + trendPct/100)

	trend := models.TrendStable
	switch {
	case trendPct > 5:
		trend = models.TrendIncreasing
	case trendPct < -5:
		trend = models.TrendDecreasing
	}

	return models.PredictiveAnalytics{
		ForecastedMonthlySpending: round2(forecast),
		EstimatedAnnualSpending:   round2(forecast * 12),
		SpendingTrend:             trend,
		TrendPercentage:           round2(trendPct),
		PredictedNextOrderDays:    math.Max(1, timeAnalysis.AverageDaysBetweenOrders),
	}
}

// monthSpan is the inclusive calendar-month distance between two dates, ≥1.
func monthSpan(first, last time.Time) int {
	span := (last.Year()-first.Year())*12 + int(last.Month()) - int(first.Month()) + 1
	if span < 1 {
		return 1
	}
	return span
}

// recentMonthlyTotals returns the last ≤n monthly totals in chronological
// order; "YYYY-MM" keys sort lexicographically into date order.
func recentMonthlyTotals(monthly map[string]float64, n int) []float64 {
	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)
	if len(months) > n {
		months = months[len(months)-n:]
	}
	totals := make([]float64, 0, len(months))
	for _, month := range months {
		totals = append(totals, monthly[month])
	}
	return totals
}
