package analytics

import (
	"testing"

	"github.com/chrisdamba/foodinsights/internal/models"
)

func TestDiversityRequiresTwoOrders(t *testing.T) {
	orders := []models.Order{fixtureOrder("1", "A", "2024-01-01T12:00:00Z", 300, 0)}
	got, err := Analyze(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := got.Diversity
	if d.CuisineSwitchingRate != 0 || d.VarietyScore != 0 || d.RestaurantDiscoveryRate != 0 {
		t.Errorf("single-order diversity should be all-zero, got %+v", d)
	}
}

func TestCuisineSwitchingRate(t *testing.T) {
	orders := []models.Order{
		fixtureOrder("1", "A", "2024-01-01T12:00:00Z", 300, 0),
		fixtureOrder("2", "B", "2024-01-02T12:00:00Z", 300, 0),
		fixtureOrder("3", "B", "2024-01-03T12:00:00Z", 300, 0),
		fixtureOrder("4", "C", "2024-01-04T12:00:00Z", 300, 0),
	}
	got, err := Analyze(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// switches on 2 of 3 adjacent pairs
	if got.Diversity.CuisineSwitchingRate != 66.67 {
		t.Errorf("cuisine_switching_rate = %v, want 66.67", got.Diversity.CuisineSwitchingRate)
	}
}

func TestNewRestaurantsAndDiscoveryRate(t *testing.T) {
	orders := []models.Order{
		fixtureOrder("1", "A", "2024-01-01T12:00:00Z", 300, 0),
		fixtureOrder("2", "B", "2024-01-15T12:00:00Z", 300, 0),
		fixtureOrder("3", "A", "2024-02-01T12:00:00Z", 300, 0),
		fixtureOrder("4", "C", "2024-02-10T12:00:00Z", 300, 0),
	}
	got, err := Analyze(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := got.Diversity
	if d.NewRestaurantsPerMonth["2024-01"] != 2 {
		t.Errorf("new_restaurants_per_month[2024-01] = %d, want 2", d.NewRestaurantsPerMonth["2024-01"])
	}
	if d.NewRestaurantsPerMonth["2024-02"] != 1 {
		t.Errorf("new_restaurants_per_month[2024-02] = %d, want 1", d.NewRestaurantsPerMonth["2024-02"])
	}
	if d.RestaurantDiscoveryRate != 1.5 {
		t.Errorf("restaurant_discovery_rate = %v, want 1.5", d.RestaurantDiscoveryRate)
	}
	if d.CuisinePreferenceEvolution["2024-02"]["A"] != 1 {
		t.Errorf("cuisine_preference_evolution[2024-02][A] = %d, want 1", d.CuisinePreferenceEvolution["2024-02"]["A"])
	}
}

func TestVarietyScoreSaturates(t *testing.T) {
	// 2 orders from 2 restaurants: (2/2)*200 saturates at 100
	orders := []models.Order{
		fixtureOrder("1", "A", "2024-01-01T12:00:00Z", 300, 0),
		fixtureOrder("2", "B", "2024-01-02T12:00:00Z", 300, 0),
	}
	got, err := Analyze(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Diversity.VarietyScore != 100 {
		t.Errorf("variety_score = %v, want saturation at 100", got.Diversity.VarietyScore)
	}
}

func TestComparativeCategories(t *testing.T) {
	// ten orders in one month, 2000 each: mean monthly spend 20000, 10 orders/month
	orders := make([]models.Order, 0, 10)
	days := []string{"01", "03", "05", "08", "10", "13", "17", "21", "25", "28"}
	for i, day := range days {
		orders = append(orders, fixtureOrder(
			string(rune('a'+i)), "A", "2024-01-"+day+"T12:00:00Z", 2000, 0))
	}
	got, err := Analyze(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Comparative.SpendingPercentile != 60 {
		t.Errorf("spending_percentile = %v, want 60 (>15000, not >20000)", got.Comparative.SpendingPercentile)
	}
	if got.Comparative.OrderFrequencyCategory != models.FrequencyModerate {
		t.Errorf("order_frequency_category = %q, want Moderate", got.Comparative.OrderFrequencyCategory)
	}
}
