package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"storedesk/internal/domain"
)

// ReportRepo holds the aggregate queries over orders joined to products.
type ReportRepo struct{ db *sqlx.DB }

func NewReportRepo(db *sqlx.DB) *ReportRepo { return &ReportRepo{db: db} }

// TotalSales is SUM(price * quantity); NULL (Valid=false) when there are no orders.
func (r *ReportRepo) TotalSales(ctx context.Context) (sql.NullFloat64, error) {
	var v sql.NullFloat64
	err := r.db.GetContext(ctx, &v, `
	  SELECT SUM(p.price * o.quantity)
	  FROM orders o
	  JOIN products p ON o.product_id = p.product_id
	`)
	return v, err
}

// AverageOrderValue is AVG(price * quantity); NULL when there are no orders.
func (r *ReportRepo) AverageOrderValue(ctx context.Context) (sql.NullFloat64, error) {
	var v sql.NullFloat64
	err := r.db.GetContext(ctx, &v, `
	  SELECT AVG(p.price * o.quantity)
	  FROM orders o
	  JOIN products p ON o.product_id = p.product_id
	`)
	return v, err
}

// CountedOrders counts the orders that take part in the sales aggregates,
// i.e. the ones whose product still resolves.
func (r *ReportRepo) CountedOrders(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `
	  SELECT COUNT(*)
	  FROM orders o
	  JOIN products p ON o.product_id = p.product_id
	`)
	return n, err
}

// TopCategory returns the category with the most orders. Ties fall to whatever
// order SQLite produces. ErrNotFound when there are no orders.
func (r *ReportRepo) TopCategory(ctx context.Context) (domain.CategoryCount, error) {
	var c domain.CategoryCount
	err := r.db.GetContext(ctx, &c, `
	  SELECT p.category, COUNT(*) AS count
	  FROM orders o
	  JOIN products p ON o.product_id = p.product_id
	  GROUP BY p.category
	  ORDER BY count DESC
	  LIMIT 1
	`)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CategoryCount{}, ErrNotFound
	}
	return c, err
}

// OrdersPerCustomer returns the customer's full name and order count. A known
// customer with no orders yields one row with 0; an unknown id yields no rows.
func (r *ReportRepo) OrdersPerCustomer(ctx context.Context, customerID int64) ([]domain.CustomerOrders, error) {
	out := []domain.CustomerOrders{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT c.id, c.first_name || ' ' || c.last_name AS customer, COUNT(o.id) AS total_orders
	  FROM customers c
	  LEFT JOIN orders o ON c.id = o.customer_id
	  WHERE c.id = ?
	  GROUP BY c.id
	`, customerID)
	return out, err
}
