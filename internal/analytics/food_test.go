package analytics

import (
	"testing"

	"github.com/chrisdamba/foodinsights/internal/models"
)

func TestFoodCategoriesAndUniqueItems(t *testing.T) {
	orders := []models.Order{
		orderWithItems("1", "2024-01-01T12:00:00Z",
			models.OrderItem{Name: "Margherita Pizza", Quantity: 1, Price: 450},
			models.OrderItem{Name: "Coke", Quantity: 1, Price: 40}),
		orderWithItems("2", "2024-01-02T12:00:00Z",
			models.OrderItem{Name: "margherita pizza ", Quantity: 1, Price: 450},
			models.OrderItem{Name: "Chicken Biryani", Quantity: 1, Price: 280}),
	}
	got, err := Analyze(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	food := got.Food
	if food.TotalUniqueItems != 3 {
		t.Errorf("total_unique_items = %d, want 3 (case/space-insensitive)", food.TotalUniqueItems)
	}
	if food.AverageItemsPerOrder != 2 {
		t.Errorf("average_items_per_order = %v, want 2", food.AverageItemsPerOrder)
	}
	if food.FoodCategories["Pizza"] != 2 {
		t.Errorf("food_categories[Pizza] = %d, want 2", food.FoodCategories["Pizza"])
	}
	if food.FoodCategories["Drinks"] != 1 {
		t.Errorf("food_categories[Drinks] = %d, want 1", food.FoodCategories["Drinks"])
	}
	// "Chicken Biryani" counts for both Chicken and Rice/Biriyani
	if food.FoodCategories["Chicken"] != 1 || food.FoodCategories["Rice/Biriyani"] != 1 {
		t.Errorf("food_categories = %v, want biryani in Chicken and Rice/Biriyani", food.FoodCategories)
	}
	if _, ok := food.FoodCategories["Pasta"]; ok {
		t.Error("zero-match categories must be omitted from the map")
	}

	if food.TopFoodItems[0].Name != "margherita pizza" || food.TopFoodItems[0].Count != 2 {
		t.Errorf("top_food_items[0] = %+v, want margherita pizza x2", food.TopFoodItems[0])
	}
}

func TestHealthDietaryClassification(t *testing.T) {
	orders := []models.Order{
		orderWithItems("1", "2024-01-01T08:00:00Z", // breakfast window
			models.OrderItem{Name: "Grilled Chicken Salad", Quantity: 1, Price: 320},
			models.OrderItem{Name: "Orange Juice", Quantity: 1, Price: 60}),
		orderWithItems("2", "2024-01-02T20:00:00Z", // dinner window
			models.OrderItem{Name: "Cheese Burger", Quantity: 1, Price: 250},
			models.OrderItem{Name: "Chocolate Brownie", Quantity: 1, Price: 120}),
	}
	got, err := Analyze(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	health := got.HealthDietary
	// 4 mentions: 1 healthy, 2 indulgent, 1 drink
	if health.HealthyPercentage != 25 {
		t.Errorf("healthy_percentage = %v, want 25", health.HealthyPercentage)
	}
	if health.IndulgentPercentage != 50 {
		t.Errorf("indulgent_percentage = %v, want 50", health.IndulgentPercentage)
	}
	if health.HealthyVsIndulgentRatio != 0.5 {
		t.Errorf("healthy_vs_indulgent_ratio = %v, want 0.5", health.HealthyVsIndulgentRatio)
	}
	if health.MealTypeDistribution["breakfast"] != 1 || health.MealTypeDistribution["dinner"] != 1 {
		t.Errorf("meal_type_distribution = %v, want one breakfast and one dinner", health.MealTypeDistribution)
	}
	// 1 drink vs 3 food mentions
	if health.DrinkToFoodRatio != 0.33 {
		t.Errorf("drink_to_food_ratio = %v, want 0.33", health.DrinkToFoodRatio)
	}
}

func TestHealthyRatioFallbackWithoutIndulgent(t *testing.T) {
	orders := []models.Order{
		orderWithItems("1", "2024-01-01T12:00:00Z",
			models.OrderItem{Name: "Garden Salad", Quantity: 1, Price: 200},
			models.OrderItem{Name: "Vegetable Soup", Quantity: 1, Price: 180}),
	}
	got, err := Analyze(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// no indulgent mentions: the raw healthy count is reported, not a ratio
	if got.HealthDietary.HealthyVsIndulgentRatio != 2 {
		t.Errorf("healthy_vs_indulgent_ratio = %v, want raw count 2", got.HealthDietary.HealthyVsIndulgentRatio)
	}
}
