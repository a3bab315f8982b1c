package repositories

import (
	"context"

	"github.com/chrisdamba/foodinsights/internal/models"
)

// SnapshotRepository persists analysis runs so a report can be compared
// against earlier ones without re-reading the raw history.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, analytics *models.FullAnalytics) (string, error)
	LatestSnapshot(ctx context.Context) (*models.FullAnalytics, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type OrderRepository interface {
	BulkCreate(ctx context.Context, orders []models.Order) error
	GetAll(ctx context.Context) ([]models.Order, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
