package ingest

import (
	"testing"

	"github.com/chrisdamba/foodinsights/internal/models"
)

func TestNormalizeFieldPrecedence(t *testing.T) {
	raw := RawOrder{
		"order_id":    "abc123",
		"vendor_name": "Kacchi Bhai",
		"total":       "450.50",
		"deliveryFee": 40.0,
		"status":      "Delivered",
		"ordered_at":  "2024-01-05T12:00:00Z",
		"payment":     "bKash",
		"items": []interface{}{
			map[string]interface{}{"title": "Kacchi Biryani", "qty": 2.0, "unit_price": 180.0},
			map[string]interface{}{"name": "Borhani"},
		},
	}

	order := Normalize(raw)
	if order.ID != "abc123" {
		t.Errorf("ID = %q, want abc123", order.ID)
	}
	if order.RestaurantName != "Kacchi Bhai" {
		t.Errorf("RestaurantName = %q, want Kacchi Bhai", order.RestaurantName)
	}
	if order.TotalValue != 450.50 {
		t.Errorf("TotalValue = %v, want 450.50 (string coercion)", order.TotalValue)
	}
	if order.DeliveryFee != 40 {
		t.Errorf("DeliveryFee = %v, want 40", order.DeliveryFee)
	}
	if order.Date != "2024-01-05T12:00:00Z" {
		t.Errorf("Date = %q, want the ordered_at value", order.Date)
	}
	if order.PaymentMethod != models.PaymentMethodBkash {
		t.Errorf("PaymentMethod = %q, want %q", order.PaymentMethod, models.PaymentMethodBkash)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	if order.Items[0].Name != "Kacchi Biryani" || order.Items[0].Quantity != 2 || order.Items[0].Price != 180 {
		t.Errorf("items[0] = %+v", order.Items[0])
	}
	// missing quantity defaults to 1
	if order.Items[1].Quantity != 1 {
		t.Errorf("items[1].Quantity = %d, want 1", order.Items[1].Quantity)
	}
}

func TestNormalizeFallbacks(t *testing.T) {
	order := Normalize(RawOrder{"id": "x"})
	if order.RestaurantName != models.UnknownRestaurant {
		t.Errorf("RestaurantName = %q, want the sentinel", order.RestaurantName)
	}
	if order.PaymentMethod != models.PaymentMethodCash {
		t.Errorf("PaymentMethod = %q, want cash default", order.PaymentMethod)
	}
	if order.Date != "" {
		t.Errorf("missing date must stay empty (the engine rejects it), got %q", order.Date)
	}
}

func TestCanonicalPayment(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"CARD", models.PaymentMethodCard},
		{"cash on delivery", models.PaymentMethodCash},
		{"cod", models.PaymentMethodCash},
		{"BKASH", models.PaymentMethodBkash},
		{"Nagad", "Nagad"}, // unknown labels pass through
	}
	for _, tt := range tests {
		if got := canonicalPayment(tt.in); got != tt.want {
			t.Errorf("canonicalPayment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseItemsColumn(t *testing.T) {
	items := parseItemsColumn("Beef Burger:2:250|Coke")
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].Name != "Beef Burger" || items[0].Quantity != 2 || items[0].Price != 250 {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Name != "Coke" || items[1].Quantity != 1 {
		t.Errorf("items[1] = %+v", items[1])
	}
}
