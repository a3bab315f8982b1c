package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chrisdamba/foodinsights/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"
)

// SnapshotRepository stores each analysis run as a JSONB document keyed by a
// generated snapshot id.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, analytics *models.FullAnalytics) (string, error) {
	report, err := json.Marshal(analytics)
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	id := cuid.New()
	query := `
        INSERT INTO analytics_snapshots (id, total_orders, report)
        VALUES ($1, $2, $3)
    `
	if _, err := r.pool.Exec(ctx, query, id, analytics.TotalOrders, report); err != nil {
		return "", err
	}
	return id, nil
}

func (r *SnapshotRepository) LatestSnapshot(ctx context.Context) (*models.FullAnalytics, error) {
	query := `
        SELECT report FROM analytics_snapshots
        ORDER BY created_at DESC
        LIMIT 1
    `
	var report []byte
	if err := r.pool.QueryRow(ctx, query).Scan(&report); err != nil {
		return nil, err
	}

	analytics := &models.FullAnalytics{}
	if err := json.Unmarshal(report, analytics); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return analytics, nil
}

func (r *SnapshotRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM analytics_snapshots").Scan(&count)
	return count, err
}

func (r *SnapshotRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE analytics_snapshots CASCADE")
	return err
}
