package output

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/chrisdamba/foodinsights/internal/models"
)

// Publisher fans one analysis run out over the report topics: the full
// report as a single message, then row-level exports for insights, orders
// and monthly summaries.
type Publisher struct {
	destination OutputDestination
}

func NewPublisher(destination OutputDestination) *Publisher {
	return &Publisher{destination: destination}
}

func (p *Publisher) Publish(analytics *models.FullAnalytics, orders []models.Order) error {
	if err := p.publishReport(analytics); err != nil {
		return err
	}
	if err := p.publishInsights(analytics.Insights); err != nil {
		return err
	}
	if err := p.publishOrderRows(orders); err != nil {
		return err
	}
	return p.publishMonthlySummaries(analytics)
}

func (p *Publisher) publishReport(analytics *models.FullAnalytics) error {
	msg, err := json.Marshal(analytics)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	return p.destination.WriteMessage(TopicReports, msg)
}

func (p *Publisher) publishInsights(insights []models.Insight) error {
	for _, insight := range insights {
		msg, err := json.Marshal(InsightRow{
			Category:    insight.Category,
			Title:       insight.Title,
			Description: insight.Description,
			Color:       insight.Color,
		})
		if err != nil {
			return err
		}
		if err := p.destination.WriteMessage(TopicInsights, msg); err != nil {
			return fmt.Errorf("failed to publish insight: %w", err)
		}
	}
	return nil
}

// publishOrderRows exports the valid orders only, in the order given. The
// caller passes the same slice the analysis ran over.
func (p *Publisher) publishOrderRows(orders []models.Order) error {
	for _, order := range orders {
		if !order.IsValid() {
			continue
		}
		msg, err := json.Marshal(OrderRow{
			OrderID:         order.ID,
			OrderCode:       order.OrderCode,
			RestaurantName:  order.Restaurant(),
			TotalValue:      order.TotalValue,
			Subtotal:        order.Subtotal,
			DeliveryFee:     order.DeliveryFee,
			ServiceFee:      order.ServiceFee,
			VoucherDiscount: order.VoucherDiscount,
			PaymentMethod:   order.PaymentMethod,
			ItemCount:       int64(order.ItemMentions()),
			BasketSize:      int64(order.BasketSize()),
			PlacedAt:        order.Date,
		})
		if err != nil {
			return err
		}
		if err := p.destination.WriteMessage(TopicOrderRows, msg); err != nil {
			return fmt.Errorf("failed to publish order row: %w", err)
		}
	}
	return nil
}

func (p *Publisher) publishMonthlySummaries(analytics *models.FullAnalytics) error {
	months := make([]string, 0, len(analytics.Spending.MonthlySpending))
	for month := range analytics.Spending.MonthlySpending {
		months = append(months, month)
	}
	sort.Strings(months)

	for _, month := range months {
		msg, err := json.Marshal(MonthlySummaryRow{
			Month:      month,
			TotalSpent: analytics.Spending.MonthlySpending[month],
			OrderCount: int64(analytics.TimeAnalysis.OrderFrequencyTrend[month]),
		})
		if err != nil {
			return err
		}
		if err := p.destination.WriteMessage(TopicMonthlySummary, msg); err != nil {
			return fmt.Errorf("failed to publish monthly summary: %w", err)
		}
	}
	return nil
}
