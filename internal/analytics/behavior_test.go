package analytics

import (
	"testing"

	"github.com/chrisdamba/foodinsights/internal/models"
)

func orderWithItems(id, date string, items ...models.OrderItem) models.Order {
	return models.Order{
		ID:             id,
		RestaurantName: "A",
		TotalValue:     300,
		Subtotal:       250,
		DeliveryFee:    30,
		ServiceFee:     20,
		Status:         models.OrderStatusDelivered,
		Date:           date,
		PaymentMethod:  models.PaymentMethodCard,
		Items:          items,
	}
}

func TestOrderSignature(t *testing.T) {
	order := orderWithItems("1", "2024-01-01T12:00:00Z",
		models.OrderItem{Name: "Coke ", Quantity: 2, Price: 40},
		models.OrderItem{Name: "Beef Burger", Quantity: 1, Price: 200},
		models.OrderItem{Name: "coke", Quantity: 1, Price: 40},
	)
	if got, want := orderSignature(order), "beef burger|coke"; got != want {
		t.Errorf("orderSignature = %q, want %q", got, want)
	}
}

func TestExactReorderCount(t *testing.T) {
	burgerCombo := []models.OrderItem{
		{Name: "Beef Burger", Quantity: 1, Price: 200},
		{Name: "Coke", Quantity: 1, Price: 40},
	}
	orders := []models.Order{
		orderWithItems("1", "2024-01-01T12:00:00Z", burgerCombo...),
		orderWithItems("2", "2024-01-08T12:00:00Z", burgerCombo...),
		orderWithItems("3", "2024-01-15T12:00:00Z", models.OrderItem{Name: "Pizza", Quantity: 1, Price: 300}),
	}
	got, err := Analyze(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Behavior.ExactReorderCount != 1 {
		t.Errorf("exact_reorder_count = %d, want 1", got.Behavior.ExactReorderCount)
	}
}

func TestOrderSizeDistribution(t *testing.T) {
	orders := []models.Order{
		orderWithItems("1", "2024-01-01T12:00:00Z", models.OrderItem{Name: "Pizza", Quantity: 2, Price: 300}),
		orderWithItems("2", "2024-01-02T12:00:00Z", models.OrderItem{Name: "Pizza", Quantity: 5, Price: 300}),
		orderWithItems("3", "2024-01-03T12:00:00Z", models.OrderItem{Name: "Pizza", Quantity: 6, Price: 300}),
	}
	got, err := Analyze(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dist := got.Behavior.OrderSizeDistribution
	if dist.Small != 1 || dist.Medium != 1 || dist.Large != 1 {
		t.Errorf("order_size_distribution = %+v, want 1/1/1", dist)
	}
	// baskets of 2, 5 and 6 items
	if got.Behavior.AverageBasketSize != 4.33 {
		t.Errorf("average_basket_size = %v, want 4.33", got.Behavior.AverageBasketSize)
	}
}

func TestSimilarItemsRequireThreeOrders(t *testing.T) {
	coke := models.OrderItem{Name: "Coke", Quantity: 1, Price: 40}
	pizza := models.OrderItem{Name: "Pizza", Quantity: 1, Price: 300}
	orders := []models.Order{
		orderWithItems("1", "2024-01-01T12:00:00Z", coke, pizza),
		orderWithItems("2", "2024-01-02T12:00:00Z", coke),
		orderWithItems("3", "2024-01-03T12:00:00Z", coke, pizza),
	}
	got, err := Analyze(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frequent := got.Behavior.SimilarItemsFrequency
	if len(frequent) != 1 {
		t.Fatalf("similar_items_frequency = %v, want only the 3x item", frequent)
	}
	if frequent[0].Name != "coke" || frequent[0].Count != 3 {
		t.Errorf("similar_items_frequency[0] = %+v, want coke x3", frequent[0])
	}
}

func TestAddonRates(t *testing.T) {
	orders := []models.Order{
		orderWithItems("1", "2024-01-01T12:00:00Z",
			models.OrderItem{Name: "Beef Burger", Quantity: 1, Price: 200},
			models.OrderItem{Name: "Coke", Quantity: 1, Price: 40}),
		orderWithItems("2", "2024-01-02T12:00:00Z",
			models.OrderItem{Name: "Chocolate Cake", Quantity: 1, Price: 150}),
		orderWithItems("3", "2024-01-03T12:00:00Z",
			models.OrderItem{Name: "Plain Rice", Quantity: 1, Price: 80}),
		orderWithItems("4", "2024-01-04T12:00:00Z",
			models.OrderItem{Name: "Chicken Curry", Quantity: 1, Price: 220}),
	}
	got, err := Analyze(orders)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Behavior.DrinkAddonRate != 25 {
		t.Errorf("drink_addon_rate = %v, want 25", got.Behavior.DrinkAddonRate)
	}
	if got.Behavior.DessertAddonRate != 25 {
		t.Errorf("dessert_addon_rate = %v, want 25", got.Behavior.DessertAddonRate)
	}
}
