package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"storedesk/internal/domain"
)

// CustomerRepo runs on a *sqlx.DB or inside a *sqlx.Tx.
type CustomerRepo struct{ db sqlx.ExtContext }

func NewCustomerRepo(db sqlx.ExtContext) *CustomerRepo { return &CustomerRepo{db: db} }

// Create inserts a customer. A taken email yields ErrDuplicateEmail and no row.
func (r *CustomerRepo) Create(ctx context.Context, c domain.Customer) (int64, error) {
	res, err := sqlx.NamedExecContext(ctx, r.db, `
	  INSERT INTO customers (first_name, last_name, email)
	  VALUES (:first_name, :last_name, :email)
	`, c)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateEmail, c.Email)
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *CustomerRepo) ByEmail(ctx context.Context, email string) (domain.Customer, error) {
	var c domain.Customer
	err := sqlx.GetContext(ctx, r.db, &c, `
	  SELECT id, first_name, last_name, email
	  FROM customers
	  WHERE email = ?
	`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, ErrNotFound
	}
	return c, err
}

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	out := []domain.Customer{}
	err := sqlx.SelectContext(ctx, r.db, &out, `
	  SELECT id, first_name, last_name, email
	  FROM customers
	  ORDER BY id
	`)
	return out, err
}
