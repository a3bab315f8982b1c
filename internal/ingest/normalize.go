package ingest

import (
	"strconv"
	"strings"

	"github.com/chrisdamba/foodinsights/internal/models"
)

// RawOrder is one untyped record from a provider export. Providers disagree
// on field names, so normalization tries each known alias in a fixed
// precedence order.
type RawOrder map[string]interface{}

var (
	idKeys         = []string{"id", "order_id", "orderId"}
	codeKeys       = []string{"order_code", "code", "orderCode"}
	restaurantKeys = []string{"restaurant_name", "restaurant", "vendor_name", "vendor"}
	totalKeys      = []string{"total_value", "total", "total_amount", "totalAmount"}
	subtotalKeys   = []string{"subtotal", "sub_total", "subTotal"}
	deliveryKeys   = []string{"delivery_fee", "deliveryFee", "delivery_cost"}
	serviceKeys    = []string{"service_fee", "serviceFee", "service_charge"}
	voucherKeys    = []string{"voucher_discount", "discount", "voucher"}
	statusKeys     = []string{"status", "order_status", "state"}
	dateKeys       = []string{"date", "ordered_at", "order_time", "created_at", "createdAt"}
	paymentKeys    = []string{"payment_method", "payment", "paymentMethod"}
	itemsKeys      = []string{"items", "order_items", "products"}

	itemNameKeys  = []string{"name", "title", "item_name"}
	itemQtyKeys   = []string{"quantity", "qty", "count"}
	itemPriceKeys = []string{"price", "unit_price", "unitPrice", "amount"}
)

var paymentLabels = map[string]string{
	"card":             models.PaymentMethodCard,
	"credit_card":      models.PaymentMethodCard,
	"debit_card":       models.PaymentMethodCard,
	"bkash":            models.PaymentMethodBkash,
	"cash":             models.PaymentMethodCash,
	"cod":              models.PaymentMethodCash,
	"cash_on_delivery": models.PaymentMethodCash,
	"wallet":           models.PaymentMethodWallet,
}

// Normalize maps a raw provider record onto the internal Order shape.
// Dates are passed through as-is: the engine owns timestamp validation and
// a missing date must fail there, not be defaulted here.
func Normalize(raw RawOrder) models.Order {
	order := models.Order{
		ID:              stringField(raw, idKeys),
		OrderCode:       stringField(raw, codeKeys),
		RestaurantName:  stringField(raw, restaurantKeys),
		TotalValue:      floatField(raw, totalKeys),
		Subtotal:        floatField(raw, subtotalKeys),
		DeliveryFee:     floatField(raw, deliveryKeys),
		ServiceFee:      floatField(raw, serviceKeys),
		VoucherDiscount: floatField(raw, voucherKeys),
		Status:          stringField(raw, statusKeys),
		Date:            stringField(raw, dateKeys),
		PaymentMethod:   canonicalPayment(stringField(raw, paymentKeys)),
	}
	if order.RestaurantName == "" {
		order.RestaurantName = models.UnknownRestaurant
	}
	order.Items = normalizeItems(raw)
	return order
}

func normalizeItems(raw RawOrder) []models.OrderItem {
	for _, key := range itemsKeys {
		list, ok := raw[key].([]interface{})
		if !ok {
			continue
		}
		items := make([]models.OrderItem, 0, len(list))
		for _, entry := range list {
			rawItem, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			quantity := intField(rawItem, itemQtyKeys)
			if quantity <= 0 {
				quantity = 1
			}
			items = append(items, models.OrderItem{
				Name:     stringField(rawItem, itemNameKeys),
				Quantity: quantity,
				Price:    floatField(rawItem, itemPriceKeys),
			})
		}
		return items
	}
	return nil
}

func canonicalPayment(label string) string {
	normalized := strings.ToLower(strings.TrimSpace(label))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	if canonical, ok := paymentLabels[normalized]; ok {
		return canonical
	}
	if label == "" {
		return models.PaymentMethodCash
	}
	return label
}

func stringField(raw map[string]interface{}, keys []string) string {
	for _, key := range keys {
		if value, ok := raw[key]; ok {
			switch v := value.(type) {
			case string:
				if v != "" {
					return v
				}
			case map[string]interface{}:
				// nested object, e.g. {"restaurant": {"name": "..."}}
				if name, ok := v["name"].(string); ok && name != "" {
					return name
				}
			}
		}
	}
	return ""
}

func floatField(raw map[string]interface{}, keys []string) float64 {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}

func intField(raw map[string]interface{}, keys []string) int {
	return int(floatField(raw, keys))
}
