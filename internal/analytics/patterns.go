package analytics

import (
	"time"

	"github.com/chrisdamba/foodinsights/internal/models"
)

// weekdayOrder fixes Sunday-first traversal for the peak-day fold.
var weekdayOrder = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

func analyzePatterns(orders []timedOrder) models.PatternAnalytics {
	hourly := make(map[int]int)
	daily := make(map[string]int)
	var weekendOrders int

	for _, order := range orders {
		hourly[order.placedAt.Hour()]++
		daily[order.placedAt.Weekday().String()]++
		if isWeekend(order.placedAt.Weekday()) {
			weekendOrders++
		}
	}

	// fold hours ascending; ties resolve to the lowest hour
	peakHour, peakHourCount := 0, 0
	for hour := 0; hour < 24; hour++ {
		if hourly[hour] > peakHourCount {
			peakHour = hour
			peakHourCount = hourly[hour]
		}
	}

	// fold weekdays Sunday-first; ties resolve to the earliest day
	peakDay, peakDayCount := "", 0
	for _, day := range weekdayOrder {
		if daily[day.String()] > peakDayCount {
			peakDay = day.String()
			peakDayCount = daily[day.String()]
		}
	}

	weekdayOrders := len(orders) - weekendOrders

	return models.PatternAnalytics{
		HourlyPatterns:    hourly,
		PeakHour:          peakHour,
		DailyPatterns:     daily,
		PeakDay:           peakDay,
		WeekendOrders:     weekendOrders,
		WeekdayOrders:     weekdayOrders,
		WeekendPercentage: round2(percentage(float64(weekendOrders), float64(len(orders)))),
	}
}

// isWeekend uses the Saturday/Sunday convention, not the regional
// Friday/Saturday one.
func isWeekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}
