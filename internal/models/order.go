package models

import "strings"

// UnknownRestaurant is the fallback label for orders whose restaurant name is missing.
const UnknownRestaurant = "Unknown Restaurant"

// OrderItem is a single line entry on an order. Name matching across the
// analytics engine is case-insensitive; Price is the line-applicable amount.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is one normalized order from the user's delivery history. Orders are
// immutable once constructed; every analyzer reads them as-is.
type Order struct {
	ID              string      `json:"id"`
	OrderCode       string      `json:"order_code"`
	RestaurantName  string      `json:"restaurant_name"`
	TotalValue      float64     `json:"total_value"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"delivery_fee"`
	ServiceFee      float64     `json:"service_fee"`
	VoucherDiscount float64     `json:"voucher_discount"`
	Status          string      `json:"status"`
	Date            string      `json:"date"` // ISO-8601 timestamp
	Items           []OrderItem `json:"items"`
	PaymentMethod   string      `json:"payment_method"`
}

// IsValid reports whether the order counts towards analytics. Cancelled and
// failed orders are excluded by substring match on the free-text status.
func (o *Order) IsValid() bool {
	status := strings.ToLower(o.Status)
	return !strings.Contains(status, "cancel") && !strings.Contains(status, "fail")
}

// Restaurant returns the restaurant name, falling back to the sentinel when
// the upstream record carried none.
func (o *Order) Restaurant() string {
	if o.RestaurantName == "" {
		return UnknownRestaurant
	}
	return o.RestaurantName
}

// ItemMentions counts line entries on the order, independent of quantity.
func (o *Order) ItemMentions() int {
	return len(o.Items)
}

// BasketSize is the summed quantity across all line entries.
func (o *Order) BasketSize() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
