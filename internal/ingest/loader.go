package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chrisdamba/foodinsights/internal/models"
	"github.com/schollz/progressbar/v3"
)

// Loader reads an order-history export from disk and normalizes it.
type Loader struct {
	Path   string
	Format string // "json" or "csv"
}

func NewLoader(path, format string) *Loader {
	return &Loader{Path: path, Format: format}
}

func (l *Loader) Load() ([]models.Order, error) {
	switch l.Format {
	case "json", "":
		return l.loadJSON()
	case "csv":
		return l.loadCSV()
	default:
		return nil, fmt.Errorf("unsupported input format: %s", l.Format)
	}
}

// loadJSON accepts either a bare array of raw orders or an object with an
// "orders" array, which is what most provider exports look like.
func (l *Loader) loadJSON() ([]models.Order, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var rawList []RawOrder
	if err := json.Unmarshal(data, &rawList); err != nil {
		var wrapper struct {
			Orders []RawOrder `json:"orders"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("failed to parse order history: %w", err)
		}
		rawList = wrapper.Orders
	}

	bar := progressbar.Default(int64(len(rawList)), "normalizing orders")
	orders := make([]models.Order, 0, len(rawList))
	for _, raw := range rawList {
		orders = append(orders, Normalize(raw))
		_ = bar.Add(1)
	}
	return orders, nil
}

// loadCSV reads a flat export with a header row. The items column holds
// pipe-separated "name:quantity:price" entries.
func (l *Loader) loadCSV() ([]models.Order, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	bar := progressbar.Default(-1, "normalizing orders")
	var orders []models.Order
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		raw := make(RawOrder, len(columns))
		for name, index := range columns {
			if index < len(fields) && name != "items" {
				raw[name] = fields[index]
			}
		}
		order := Normalize(raw)
		if index, ok := columns["items"]; ok && index < len(fields) {
			order.Items = parseItemsColumn(fields[index])
		}
		orders = append(orders, order)
		_ = bar.Add(1)
	}
	return orders, nil
}

func parseItemsColumn(value string) []models.OrderItem {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	entries := strings.Split(value, "|")
	items := make([]models.OrderItem, 0, len(entries))
	for _, entry := range entries {
		parts := strings.Split(entry, ":")
		item := models.OrderItem{Name: strings.TrimSpace(parts[0]), Quantity: 1}
		if len(parts) > 1 {
			if qty, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && qty > 0 {
				item.Quantity = qty
			}
		}
		if len(parts) > 2 {
			if price, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err == nil {
				item.Price = price
			}
		}
		items = append(items, item)
	}
	return items
}
