package analytics

import (
	"fmt"

	"github.com/chrisdamba/foodinsights/internal/models"
)

// insight accent colors, one per category.
const (
	colorSpending = "#e74c3c"
	colorVoucher  = "#27ae60"
	colorTiming   = "#f39c12"
	colorLoyalty  = "#8e44ad"
)

// generateInsights emits the narrative list in fixed order:
// spending, voucher (conditional), timing, loyalty.
func generateInsights(spending models.SpendingAnalytics, patterns models.PatternAnalytics, restaurants models.RestaurantAnalytics) []models.Insight {
	insights := make([]models.Insight, 0, 4)

	insights = append(insights, spendingInsight(spending))
	if spending.VoucherUsageRate > 20 {
		insights = append(insights, voucherInsight(spending))
	}
	insights = append(insights, timingInsight(patterns))
	insights = append(insights, loyaltyInsight(restaurants))

	return insights
}

func spendingInsight(spending models.SpendingAnalytics) models.Insight {
	category := spending.SpendingCategory
	return models.Insight{
		Category:    models.InsightSpending,
		Title:       category.Type,
		Description: category.Description,
		DetailedExplanation: fmt.Sprintf(
			"Across %s total spend your average order comes to %.2f, which puts you in the %s bracket.",
			formatAmount(spending.TotalSpent), spending.AverageOrderValue, category.Type),
		Color: colorSpending,
	}
}

func voucherInsight(spending models.SpendingAnalytics) models.Insight {
	title := "Deal Hunter"
	if spending.VoucherUsageRate > 50 {
		title = "Smart Saver"
	}
	return models.Insight{
		Category:    models.InsightVoucher,
		Title:       title,
		Description: fmt.Sprintf("Vouchers applied on %.2f%% of your orders.", spending.VoucherUsageRate),
		DetailedExplanation: fmt.Sprintf(
			"You have saved %s through vouchers so far. Keeping an eye on promos clearly pays off for you.",
			formatAmount(spending.TotalVoucherSavings)),
		Color: colorVoucher,
	}
}

func timingInsight(patterns models.PatternAnalytics) models.Insight {
	hour := patterns.PeakHour
	var title, description string
	switch {
	case hour >= 5 && hour <= 11:
		title = "Early Bird"
		description = fmt.Sprintf("Most of your orders land around %d:00 — breakfast is your moment.", hour)
	case hour >= 12 && hour <= 16:
		title = "Lunch Regular"
		description = fmt.Sprintf("Your peak ordering hour is %d:00. Lunch delivery is a habit.", hour)
	case hour >= 17 && hour <= 21:
		title = "Dinner Devotee"
		description = fmt.Sprintf("Around %d:00 is when you order most. Evenings are for delivery.", hour)
	default:
		title = "Night Owl"
		description = fmt.Sprintf("Peak hour %d:00 — you order when most kitchens are winding down.", hour)
	}
	return models.Insight{
		Category:    models.InsightTiming,
		Title:       title,
		Description: description,
		DetailedExplanation: fmt.Sprintf(
			"%d of your orders were placed during hour %d, your busiest ordering window.",
			patterns.HourlyPatterns[hour], hour),
		Color: colorTiming,
	}
}

func loyaltyInsight(restaurants models.RestaurantAnalytics) models.Insight {
	loyalty := restaurants.LoyaltyAnalysis
	return models.Insight{
		Category:    models.InsightLoyalty,
		Title:       loyalty.Tier,
		Description: loyalty.Description,
		DetailedExplanation: fmt.Sprintf(
			"%s accounts for %.2f%% of all your orders across %d restaurants.",
			loyalty.TopRestaurant, loyalty.TopRestaurantPercentage, restaurants.UniqueRestaurants),
		Color: colorLoyalty,
	}
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
