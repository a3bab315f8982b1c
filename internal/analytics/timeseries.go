package analytics

import (
	"fmt"

	"github.com/chrisdamba/foodinsights/internal/models"
)

const hoursPerDay = 24.0

// analyzeTime consumes the chronological view. Every metric degrades to zero
// rather than erroring when the history is too short.
func analyzeTime(sorted []timedOrder) models.TimeAnalytics {
	result := models.TimeAnalytics{
		OrderFrequencyTrend: map[string]int{},
		SpendingByDayOfWeek: map[string]float64{},
		SeasonalPatterns:    map[string]float64{},
	}
	if len(sorted) == 0 {
		return result
	}

	var gaps models.TimeGapDistribution
	var gapSum float64

	for i, order := range sorted {
		month := order.placedAt.Format("2006-01")
		result.OrderFrequencyTrend[month]++

		day := order.placedAt.Weekday().String()
		result.SpendingByDayOfWeek[day] += order.TotalValue

		quarter := (int(order.placedAt.Month())-1)/3 + 1
		season := fmt.Sprintf("%d-Q%d", order.placedAt.Year(), quarter)
		result.SeasonalPatterns[season] += order.TotalValue

		if i == 0 {
			continue
		}
		gapDays := sorted[i].placedAt.Sub(sorted[i-1].placedAt).Hours() / hoursPerDay
		gapSum += gapDays
		switch {
		case gapDays < 1:
			gaps.SameDay++
		case gapDays <= 7:
			gaps.WithinWeek++
		case gapDays <= 30:
			gaps.WithinMonth++
		default:
			gaps.OverMonth++
		}
	}
	for day, total := range result.SpendingByDayOfWeek {
		result.SpendingByDayOfWeek[day] = round2(total)
	}
	for season, total := range result.SeasonalPatterns {
		result.SeasonalPatterns[season] = round2(total)
	}

	if len(sorted) > 1 {
		result.AverageDaysBetweenOrders = round2(gapSum / float64(len(sorted)-1))
	}
	result.TimeGapDistribution = gaps
	result.OrderingAcceleration = round2(orderingAcceleration(sorted))

	return result
}

// orderingAcceleration splits the history at the midpoint index and compares
// orders-per-day between the two halves. Zero when there is no midpoint or
// the first half has no measurable frequency.
func orderingAcceleration(sorted []timedOrder) float64 {
	mid := len(sorted) / 2
	if mid == 0 {
		return 0
	}
	firstFreq := halfFrequency(sorted[:mid])
	secondFreq := halfFrequency(sorted[mid:])
	if firstFreq == 0 {
		return 0
	}
	return (secondFreq - firstFreq) / firstFreq * 100
}

// halfFrequency is orders/day over a half's span. A half inside a single day
// uses a one-day floor so the rate is defined.
func halfFrequency(half []timedOrder) float64 {
	if len(half) == 0 {
		return 0
	}
	spanDays := half[len(half)-1].placedAt.Sub(half[0].placedAt).Hours() / hoursPerDay
	if spanDays < 1 {
		spanDays = 1
	}
	return float64(len(half)) / spanDays
}
