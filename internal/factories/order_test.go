package factories

import (
	"reflect"
	"testing"
	"time"

	"github.com/chrisdamba/foodinsights/internal/models"
)

func sampleConfig() *models.Config {
	return &models.Config{
		SampleOrderCount: 50,
		SampleSeed:       42,
		SampleStartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		SampleEndDate:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateOrdersIsDeterministicForSeed(t *testing.T) {
	first := NewOrderFactory(42).CreateOrders(sampleConfig())
	second := NewOrderFactory(42).CreateOrders(sampleConfig())

	if len(first) != 50 {
		t.Fatalf("orders = %d, want 50", len(first))
	}
	for i := range first {
		// ids are generated fresh each run; everything else must match
		first[i].ID, second[i].ID = "", ""
		first[i].OrderCode, second[i].OrderCode = "", ""
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different histories")
	}
}

func TestCreateOrdersStayInWindow(t *testing.T) {
	cfg := sampleConfig()
	orders := NewOrderFactory(7).CreateOrders(cfg)

	for _, order := range orders {
		placedAt, err := time.Parse(time.RFC3339, order.Date)
		if err != nil {
			t.Fatalf("order date %q does not parse: %v", order.Date, err)
		}
		if placedAt.Before(cfg.SampleStartDate) || placedAt.After(cfg.SampleEndDate.AddDate(0, 0, 1)) {
			t.Errorf("order at %s is outside the configured window", order.Date)
		}
	}
}

func TestCreateOrdersShapes(t *testing.T) {
	orders := NewOrderFactory(7).CreateOrders(sampleConfig())

	sawVoucher := false
	sawInvalid := false
	for _, order := range orders {
		if order.RestaurantName == "" {
			t.Fatal("order has no restaurant")
		}
		if len(order.Items) == 0 {
			t.Fatalf("order %s has no items", order.OrderCode)
		}
		if order.TotalValue < 0 {
			t.Fatalf("order %s has negative total", order.OrderCode)
		}
		if order.VoucherDiscount > 0 {
			sawVoucher = true
		}
		if !order.IsValid() {
			sawInvalid = true
		}
	}
	if !sawVoucher {
		t.Error("expected at least one voucher order in 50 samples")
	}
	if !sawInvalid {
		t.Error("expected at least one cancelled or failed order in 50 samples")
	}
}
