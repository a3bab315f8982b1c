package postgres

import (
	"context"
	"encoding/json"

	"github.com/chrisdamba/foodinsights/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) BulkCreate(ctx context.Context, orders []models.Order) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"orders"},
		[]string{
			"id", "order_code", "restaurant_name", "total_value", "subtotal",
			"delivery_fee", "service_fee", "voucher_discount", "status",
			"placed_at", "payment_method", "items",
		},
		pgx.CopyFromSlice(len(orders), func(i int) ([]interface{}, error) {
			items, err := json.Marshal(orders[i].Items)
			if err != nil {
				return nil, err
			}
			return []interface{}{
				orders[i].ID,
				orders[i].OrderCode,
				orders[i].Restaurant(),
				orders[i].TotalValue,
				orders[i].Subtotal,
				orders[i].DeliveryFee,
				orders[i].ServiceFee,
				orders[i].VoucherDiscount,
				orders[i].Status,
				orders[i].Date,
				orders[i].PaymentMethod,
				items,
			}, nil
		}),
	)
	return err
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	query := `
        SELECT
            id,
            order_code,
            restaurant_name,
            total_value,
            subtotal,
            delivery_fee,
            service_fee,
            voucher_discount,
            status,
            placed_at,
            payment_method,
            items
        FROM orders
        ORDER BY placed_at
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		var items []byte
		err := rows.Scan(
			&order.ID,
			&order.OrderCode,
			&order.RestaurantName,
			&order.TotalValue,
			&order.Subtotal,
			&order.DeliveryFee,
			&order.ServiceFee,
			&order.VoucherDiscount,
			&order.Status,
			&order.Date,
			&order.PaymentMethod,
			&items,
		)
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &order.Items); err != nil {
				return nil, err
			}
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE orders CASCADE")
	return err
}
