package output

import (
	"fmt"

	"github.com/xitongsys/parquet-go/schema"
)

// Report topics. Every destination receives messages keyed by one of these.
const (
	TopicReports        = "analytics_reports"
	TopicInsights       = "analytics_insights"
	TopicOrderRows      = "order_rows"
	TopicMonthlySummary = "monthly_summary"
)

// OrderRow is the flattened per-order export row.
type OrderRow struct {
	OrderID         string  `json:"orderId" parquet:"name=orderId,type=BYTE_ARRAY,convertedtype=UTF8"`
	OrderCode       string  `json:"orderCode" parquet:"name=orderCode,type=BYTE_ARRAY,convertedtype=UTF8"`
	RestaurantName  string  `json:"restaurantName" parquet:"name=restaurantName,type=BYTE_ARRAY,convertedtype=UTF8"`
	TotalValue      float64 `json:"totalValue" parquet:"name=totalValue,type=DOUBLE"`
	Subtotal        float64 `json:"subtotal" parquet:"name=subtotal,type=DOUBLE"`
	DeliveryFee     float64 `json:"deliveryFee" parquet:"name=deliveryFee,type=DOUBLE"`
	ServiceFee      float64 `json:"serviceFee" parquet:"name=serviceFee,type=DOUBLE"`
	VoucherDiscount float64 `json:"voucherDiscount" parquet:"name=voucherDiscount,type=DOUBLE"`
	PaymentMethod   string  `json:"paymentMethod" parquet:"name=paymentMethod,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemCount       int64   `json:"itemCount" parquet:"name=itemCount,type=INT64"`
	BasketSize      int64   `json:"basketSize" parquet:"name=basketSize,type=INT64"`
	PlacedAt        string  `json:"placedAt" parquet:"name=placedAt,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// MonthlySummaryRow is one month of aggregated history.
type MonthlySummaryRow struct {
	Month      string  `json:"month" parquet:"name=month,type=BYTE_ARRAY,convertedtype=UTF8"`
	TotalSpent float64 `json:"totalSpent" parquet:"name=totalSpent,type=DOUBLE"`
	OrderCount int64   `json:"orderCount" parquet:"name=orderCount,type=INT64"`
}

// InsightRow mirrors one narrative insight for export.
type InsightRow struct {
	Category    string `json:"category" parquet:"name=category,type=BYTE_ARRAY,convertedtype=UTF8"`
	Title       string `json:"title" parquet:"name=title,type=BYTE_ARRAY,convertedtype=UTF8"`
	Description string `json:"description" parquet:"name=description,type=BYTE_ARRAY,convertedtype=UTF8"`
	Color       string `json:"color" parquet:"name=color,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// GetSchema returns the parquet schema handler for a row topic.
func GetSchema(topic string) (*schema.SchemaHandler, error) {
	switch topic {
	case TopicOrderRows:
		return schema.NewSchemaHandlerFromStruct(new(OrderRow))
	case TopicMonthlySummary:
		return schema.NewSchemaHandlerFromStruct(new(MonthlySummaryRow))
	case TopicInsights:
		return schema.NewSchemaHandlerFromStruct(new(InsightRow))
	default:
		return nil, fmt.Errorf("no parquet schema for topic: %s", topic)
	}
}
