package output

import (
	"encoding/json"
	"testing"

	"github.com/chrisdamba/foodinsights/internal/models"
)

type memoryDestination struct {
	messages map[string][][]byte
}

func newMemoryDestination() *memoryDestination {
	return &memoryDestination{messages: make(map[string][][]byte)}
}

func (m *memoryDestination) WriteMessage(topic string, msg []byte) error {
	m.messages[topic] = append(m.messages[topic], msg)
	return nil
}

func (m *memoryDestination) Close() error { return nil }

func fixtureAnalytics() *models.FullAnalytics {
	return &models.FullAnalytics{
		TotalOrders: 2,
		Spending: models.SpendingAnalytics{
			TotalSpent:      800,
			MonthlySpending: map[string]float64{"2024-01": 500, "2024-02": 300},
		},
		TimeAnalysis: models.TimeAnalytics{
			OrderFrequencyTrend: map[string]int{"2024-01": 1, "2024-02": 1},
		},
		Insights: []models.Insight{
			{Category: models.InsightSpending, Title: "Total Spending", Description: "x", Color: "#e74c3c"},
			{Category: models.InsightTiming, Title: "Night Owl", Description: "y", Color: "#f39c12"},
		},
	}
}

func TestPublishFansOutTopics(t *testing.T) {
	dest := newMemoryDestination()
	orders := []models.Order{
		{ID: "1", RestaurantName: "Kacchi Bhai", TotalValue: 500, Status: "delivered", Date: "2024-01-05T13:00:00Z"},
		{ID: "2", RestaurantName: "Burger Factory", TotalValue: 300, Status: "delivered", Date: "2024-02-10T20:00:00Z"},
		{ID: "3", RestaurantName: "Burger Factory", TotalValue: 100, Status: "cancelled", Date: "2024-02-11T20:00:00Z"},
	}

	if err := NewPublisher(dest).Publish(fixtureAnalytics(), orders); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}

	if got := len(dest.messages[TopicReports]); got != 1 {
		t.Errorf("reports = %d messages, want 1", got)
	}
	if got := len(dest.messages[TopicInsights]); got != 2 {
		t.Errorf("insights = %d messages, want 2", got)
	}
	// cancelled order is excluded from row export
	if got := len(dest.messages[TopicOrderRows]); got != 2 {
		t.Errorf("order rows = %d messages, want 2", got)
	}
	if got := len(dest.messages[TopicMonthlySummary]); got != 2 {
		t.Errorf("monthly summaries = %d messages, want 2", got)
	}
}

func TestPublishMonthlySummariesAreSorted(t *testing.T) {
	dest := newMemoryDestination()
	if err := NewPublisher(dest).Publish(fixtureAnalytics(), nil); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}

	var first, second MonthlySummaryRow
	if err := json.Unmarshal(dest.messages[TopicMonthlySummary][0], &first); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(dest.messages[TopicMonthlySummary][1], &second); err != nil {
		t.Fatal(err)
	}
	if first.Month != "2024-01" || second.Month != "2024-02" {
		t.Errorf("months = %q, %q, want chronological order", first.Month, second.Month)
	}
	if first.TotalSpent != 500 || first.OrderCount != 1 {
		t.Errorf("first summary = %+v", first)
	}
}

func TestPublishReportRoundTrips(t *testing.T) {
	dest := newMemoryDestination()
	if err := NewPublisher(dest).Publish(fixtureAnalytics(), nil); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}

	var report models.FullAnalytics
	if err := json.Unmarshal(dest.messages[TopicReports][0], &report); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if report.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", report.TotalOrders)
	}
	if report.Spending.MonthlySpending["2024-01"] != 500 {
		t.Errorf("monthly spending lost in round trip: %+v", report.Spending.MonthlySpending)
	}
}

func TestGetSchemaKnownTopics(t *testing.T) {
	for _, topic := range []string{TopicOrderRows, TopicMonthlySummary, TopicInsights} {
		if _, err := GetSchema(topic); err != nil {
			t.Errorf("GetSchema(%q) returned error: %v", topic, err)
		}
	}
	if _, err := GetSchema(TopicReports); err == nil {
		t.Error("GetSchema for the full report should fail; it has no row schema")
	}
}
