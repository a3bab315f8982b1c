package analytics

import (
	"sort"
	"time"

	"github.com/chrisdamba/foodinsights/internal/models"
)

// timestamp layouts accepted for order dates, tried in sequence.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// timedOrder pairs an order with its resolved timestamp so the date string
// is parsed exactly once per run.
type timedOrder struct {
	models.Order
	placedAt time.Time
}

// Analyze is the engine's sole entry point: a pure, deterministic
// transformation from an order history to the full analytics bundle.
// Cancelled and failed orders are dropped first; if nothing usable remains
// the canonical empty record is returned. An unparseable date on a valid
// order aborts the run with an InvalidOrderDataError.
func Analyze(orders []models.Order) (*models.FullAnalytics, error) {
	valid := filterValid(orders)
	if len(valid) == 0 {
		return emptyAnalytics(), nil
	}

	timed, err := resolveTimestamps(valid)
	if err != nil {
		return nil, err
	}
	sorted := sortChronological(timed)

	// independent facets
	spending := analyzeSpending(timed)
	restaurants := analyzeRestaurants(timed)
	food := analyzeFood(timed)
	patterns := analyzePatterns(timed)
	payments := analyzePayments(timed)
	prices := analyzePrices(timed)
	behavior := analyzeBehavior(timed)
	diversity := analyzeDiversity(sorted)
	timeAnalysis := analyzeTime(sorted)
	costs := analyzeCostOptimization(timed)
	health := analyzeHealthDietary(timed)

	// derived facets
	predictive := analyzePredictive(sorted, spending, timeAnalysis)
	advanced := analyzeAdvanced(timed, restaurants, timeAnalysis, spending)
	comparative := analyzeComparative(spending, timeAnalysis, costs)

	insights := generateInsights(spending, patterns, restaurants)

	return &models.FullAnalytics{
		TotalOrders:      len(timed),
		Spending:         spending,
		Restaurants:      restaurants,
		Food:             food,
		Patterns:         patterns,
		Payments:         payments,
		Prices:           prices,
		Behavior:         behavior,
		Diversity:        diversity,
		TimeAnalysis:     timeAnalysis,
		CostOptimization: costs,
		HealthDietary:    health,
		Predictive:       predictive,
		Advanced:         advanced,
		Comparative:      comparative,
		Insights:         insights,
	}, nil
}

// filterValid drops cancelled and failed orders.
func filterValid(orders []models.Order) []models.Order {
	valid := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.IsValid() {
			valid = append(valid, order)
		}
	}
	return valid
}

// resolveTimestamps parses each order date once. Bad timestamps are a
// data-quality defect, never silently defaulted.
func resolveTimestamps(orders []models.Order) ([]timedOrder, error) {
	timed := make([]timedOrder, 0, len(orders))
	for _, order := range orders {
		placedAt, ok := parseDate(order.Date)
		if !ok {
			return nil, &models.InvalidOrderDataError{
				OrderID: order.ID,
				Field:   "date",
				Value:   order.Date,
			}
		}
		timed = append(timed, timedOrder{Order: order, placedAt: placedAt})
	}
	return timed, nil
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sortChronological returns a date-ascending copy; the input slice is never
// reordered. The sort is stable so same-timestamp orders keep input order.
func sortChronological(orders []timedOrder) []timedOrder {
	sorted := make([]timedOrder, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].placedAt.Before(sorted[j].placedAt)
	})
	return sorted
}

// emptyAnalytics is the canonical zero-value result for a history with no
// usable orders. It is structurally identical on every call so callers can
// treat it as a constant fixture.
func emptyAnalytics() *models.FullAnalytics {
	return &models.FullAnalytics{
		Spending: models.SpendingAnalytics{
			MonthlySpending:  map[string]float64{},
			SpendingCategory: models.SpendingCategory{Type: "N/A", Description: "No order data available"},
		},
		Restaurants: models.RestaurantAnalytics{
			TopRestaurantsByOrder: []models.RestaurantCount{},
		},
		Food: models.FoodAnalytics{
			TopFoodItems:   []models.ItemCount{},
			FoodCategories: map[string]int{},
		},
		Patterns: models.PatternAnalytics{
			HourlyPatterns: map[int]int{},
			DailyPatterns:  map[string]int{},
		},
		Payments: models.PaymentAnalytics{
			MethodCounts: map[string]int{},
		},
		Prices: models.PriceAnalytics{
			RestaurantValueScores: map[string]float64{},
			PriceTrendOverTime:    map[string]float64{},
		},
		Behavior: models.BehaviorAnalytics{
			SimilarItemsFrequency: []models.ItemCount{},
		},
		Diversity: models.DiversityAnalytics{
			NewRestaurantsPerMonth:     map[string]int{},
			CuisinePreferenceEvolution: map[string]map[string]int{},
		},
		TimeAnalysis: models.TimeAnalytics{
			OrderFrequencyTrend: map[string]int{},
			SpendingByDayOfWeek: map[string]float64{},
			SeasonalPatterns:    map[string]float64{},
		},
		HealthDietary: models.HealthAnalytics{
			MealTypeDistribution: map[string]int{},
		},
		Predictive: models.PredictiveAnalytics{
			SpendingTrend: models.TrendStable,
		},
		Comparative: models.ComparativeAnalytics{
			SpendingPercentile:     50,
			OrderFrequencyCategory: models.FrequencyLight,
		},
		Insights: []models.Insight{},
	}
}
