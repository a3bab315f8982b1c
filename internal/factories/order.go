package factories

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chrisdamba/foodinsights/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

// OrderFactory generates a synthetic order history for demo runs and
// end-to-end exercises. The generator is seeded so the same configuration
// produces the same history.
type OrderFactory struct {
	rng  *rand.Rand
	fake faker.Faker
}

func NewOrderFactory(seed int64) *OrderFactory {
	source := rand.NewSource(seed)
	return &OrderFactory{
		rng:  rand.New(source),
		fake: faker.NewWithSeed(source),
	}
}

type sampleRestaurant struct {
	name  string
	items []sampleItem
}

type sampleItem struct {
	name  string
	price float64
}

var sampleRestaurants = []sampleRestaurant{
	{"Kacchi Bhai", []sampleItem{
		{"Kacchi Biryani", 320}, {"Chicken Biriyani", 280}, {"Borhani", 60}, {"Firni", 80},
	}},
	{"Burger Factory", []sampleItem{
		{"Beef Burger", 250}, {"Crispy Fried Chicken Burger", 220}, {"French Fries", 120}, {"Coke", 40},
	}},
	{"Pizza Roma", []sampleItem{
		{"Margherita Pizza", 450}, {"Pepperoni Pizza", 550}, {"Pasta Alfredo", 380}, {"Garlic Bread", 150},
	}},
	{"Green Bowl", []sampleItem{
		{"Grilled Chicken Salad", 280}, {"Quinoa Bowl", 320}, {"Fresh Juice", 120}, {"Vegetable Soup", 180},
	}},
	{"Dhaka Kitchen", []sampleItem{
		{"Plain Rice", 60}, {"Chicken Curry", 220}, {"Dal", 80}, {"Vegetable Bhaji", 100},
	}},
	{"Sweet Tooth", []sampleItem{
		{"Chocolate Cake", 350}, {"Vanilla Ice Cream", 150}, {"Brownie", 180}, {"Milkshake", 200},
	}},
}

var samplePaymentMethods = []string{
	models.PaymentMethodBkash,
	models.PaymentMethodBkash,
	models.PaymentMethodCash,
	models.PaymentMethodCash,
	models.PaymentMethodCash,
	models.PaymentMethodCard,
	models.PaymentMethodWallet,
}

var sampleStatuses = []string{
	models.OrderStatusDelivered,
	models.OrderStatusDelivered,
	models.OrderStatusDelivered,
	models.OrderStatusDelivered,
	models.OrderStatusDelivered,
	models.OrderStatusDelivered,
	models.OrderStatusDelivered,
	models.OrderStatusDelivered,
	models.OrderStatusCancelled,
	models.OrderStatusFailed,
}

// CreateOrders builds a chronological history across the configured window.
func (of *OrderFactory) CreateOrders(config *models.Config) []models.Order {
	start, end := sampleWindow(config)
	count := config.SampleOrderCount
	if count <= 0 {
		count = 100
	}

	span := end.Sub(start)
	orders := make([]models.Order, 0, count)
	for i := 0; i < count; i++ {
		placedAt := start.Add(time.Duration(float64(span) * float64(i) / float64(count)))
		// jitter toward lunch and dinner hours
		hour := []int{12, 13, 19, 20, 21, 8, 15, 23}[of.rng.Intn(8)]
		placedAt = time.Date(placedAt.Year(), placedAt.Month(), placedAt.Day(), hour, of.rng.Intn(60), 0, 0, time.UTC)
		orders = append(orders, of.createOrder(placedAt))
	}
	return orders
}

func (of *OrderFactory) createOrder(placedAt time.Time) models.Order {
	restaurant := sampleRestaurants[of.rng.Intn(len(sampleRestaurants))]

	itemCount := of.rng.Intn(3) + 1
	items := make([]models.OrderItem, 0, itemCount)
	subtotal := 0.0
	for i := 0; i < itemCount; i++ {
		sample := restaurant.items[of.rng.Intn(len(restaurant.items))]
		quantity := of.rng.Intn(2) + 1
		items = append(items, models.OrderItem{
			Name:     sample.name,
			Quantity: quantity,
			Price:    sample.price,
		})
		subtotal += sample.price * float64(quantity)
	}

	deliveryFee := float64(of.rng.Intn(5)*10 + 20)
	serviceFee := float64(of.rng.Intn(3) * 10)
	voucherDiscount := 0.0
	if of.rng.Float64() < 0.3 {
		voucherDiscount = float64(of.rng.Intn(8)*10 + 30)
	}

	total := subtotal + deliveryFee + serviceFee - voucherDiscount
	if total < 0 {
		total = 0
	}

	return models.Order{
		ID:              cuid.New(),
		OrderCode:       fmt.Sprintf("FI-%s", of.fake.RandomStringWithLength(8)),
		RestaurantName:  restaurant.name,
		TotalValue:      total,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		ServiceFee:      serviceFee,
		VoucherDiscount: voucherDiscount,
		Status:          sampleStatuses[of.rng.Intn(len(sampleStatuses))],
		Date:            placedAt.Format(time.RFC3339),
		Items:           items,
		PaymentMethod:   samplePaymentMethods[of.rng.Intn(len(samplePaymentMethods))],
	}
}

func sampleWindow(config *models.Config) (time.Time, time.Time) {
	end := config.SampleEndDate
	if end.IsZero() {
		end = time.Now().UTC().Truncate(24 * time.Hour)
	}
	start := config.SampleStartDate
	if start.IsZero() || !start.Before(end) {
		start = end.AddDate(-1, 0, 0)
	}
	return start, end
}
