package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
)

// ReportingRepository serves the admin read path: counts and listings. It
// runs over a plain database/sql connection via sqlx, separate from the pgx
// write path.
type ReportingRepository interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	ListOrders(ctx context.Context) ([]OrderReport, error)
	ListCustomers(ctx context.Context) ([]CustomerRecord, error)
}

type sqlxReportingRepository struct {
	db *sqlx.DB
}

func NewReportingRepository(db *sqlx.DB) ReportingRepository {
	return &sqlxReportingRepository{db: db}
}

func (r *sqlxReportingRepository) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	err := r.db.GetContext(ctx, &d,
		`SELECT
			(SELECT count(*) FROM products)  AS products_count,
			(SELECT count(*) FROM orders)    AS orders_count,
			(SELECT count(*) FROM customers) AS customers_count`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load dashboard counts: %w", err)
	}
	return &d, nil
}

type orderReportRow struct {
	ID            uuid.UUID `db:"id"`
	CustomerID    uuid.UUID `db:"customer_id"`
	TotalAmount   float64   `db:"total_amount"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	CustomerPhone string    `db:"customer_phone"`
}

func (r *sqlxReportingRepository) ListOrders(ctx context.Context) ([]OrderReport, error) {
	var rows []orderReportRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT o.id, o.customer_id, o.total_amount, o.status, o.created_at,
		        c.name AS customer_name, c.email AS customer_email, c.phone AS customer_phone
		 FROM orders o
		 JOIN customers c ON c.id = o.customer_id
		 ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list orders: %w", err)
	}

	orders := make([]OrderReport, 0, len(rows))
	for _, row := range rows {
		var items []OrderReportItem
		err := r.db.SelectContext(ctx, &items,
			`SELECT product_id, quantity, price FROM order_items WHERE order_id = $1`, row.ID)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to list order items: %w", err)
		}

		orders = append(orders, OrderReport{
			ID:          row.ID,
			CustomerID:  row.CustomerID,
			TotalAmount: row.TotalAmount,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt,
			Customer: CustomerSummary{
				Name:  row.CustomerName,
				Email: row.CustomerEmail,
				Phone: row.CustomerPhone,
			},
			Items: items,
		})
	}

	return orders, nil
}

func (r *sqlxReportingRepository) ListCustomers(ctx context.Context) ([]CustomerRecord, error) {
	var customers []CustomerRecord
	err := r.db.SelectContext(ctx, &customers,
		`SELECT id, name, email, phone, created_at FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list customers: %w", err)
	}
	return customers, nil
}
