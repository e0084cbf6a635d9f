package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"storedesk/internal/domain"
)

// ProductRepo runs on a *sqlx.DB or inside a *sqlx.Tx.
type ProductRepo struct{ db sqlx.ExtContext }

func NewProductRepo(db sqlx.ExtContext) *ProductRepo { return &ProductRepo{db: db} }

// Create inserts a product and returns its surrogate key.
func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (int64, error) {
	res, err := sqlx.NamedExecContext(ctx, r.db, `
	  INSERT INTO products (name, category, price)
	  VALUES (:name, :category, :price)
	`, p)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	err := sqlx.SelectContext(ctx, r.db, &out, `
	  SELECT product_id, name, category, price
	  FROM products
	  ORDER BY product_id
	`)
	return out, err
}

// SetPrice sets one product's price when it belongs to category.
// A product in another category is left alone; the caller sees 0 rows affected.
func (r *ProductRepo) SetPrice(ctx context.Context, id int64, category string, price float64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET price = ? WHERE product_id = ? AND category = ?`,
		price, id, category)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ScalePrices multiplies the price of every product in category by factor.
func (r *ProductRepo) ScalePrices(ctx context.Context, category string, factor float64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET price = price * ? WHERE category = ?`,
		factor, category)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountByCategory returns the number of products per category.
func (r *ProductRepo) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	out := []domain.CategoryCount{}
	err := sqlx.SelectContext(ctx, r.db, &out, `
	  SELECT category, COUNT(*) AS count
	  FROM products
	  GROUP BY category
	  ORDER BY category
	`)
	return out, err
}
