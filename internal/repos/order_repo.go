package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"storedesk/internal/domain"
)

// OrderRepo runs on a *sqlx.DB or inside a *sqlx.Tx.
type OrderRepo struct{ db sqlx.ExtContext }

func NewOrderRepo(db sqlx.ExtContext) *OrderRepo { return &OrderRepo{db: db} }

// Create inserts one order row. Customer and product ids are not checked here;
// only an enforcing foreign key setup rejects dangling references.
func (r *OrderRepo) Create(ctx context.Context, o domain.Order) (int64, error) {
	res, err := sqlx.NamedExecContext(ctx, r.db, `
	  INSERT INTO orders (customer_id, product_id, quantity, order_date)
	  VALUES (:customer_id, :product_id, :quantity, :order_date)
	`, o)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
