package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"storedesk/internal/domain"
	applog "storedesk/internal/log"
)

// OpenDB opens the SQLite file behind dsn on a single connection.
// SQLite ships with foreign keys off; foreignKeys turns enforcement on.
func OpenDB(dsn string, foreignKeys bool) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection for the whole process; also keeps a :memory: database alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragma := `PRAGMA foreign_keys = OFF`
	if foreignKeys {
		pragma = `PRAGMA foreign_keys = ON`
	}
	if _, err := db.Exec(pragma); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting foreign keys: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the three tables if they are missing. Safe on every start.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS products (
    product_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT,
    category TEXT,
    price REAL
);

CREATE TABLE IF NOT EXISTS customers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT,
    last_name TEXT,
    email TEXT UNIQUE
);

CREATE TABLE IF NOT EXISTS orders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    customer_id INTEGER,
    product_id INTEGER,
    quantity INTEGER,
    order_date TEXT,
    FOREIGN KEY (customer_id) REFERENCES customers(id),
    FOREIGN KEY (product_id) REFERENCES products(product_id)
);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

type seedStep struct {
	Product  domain.Product
	Customer domain.Customer
	// Order references customer/product keys positionally, not the rows above.
	CustomerID, ProductID, Quantity int64
}

var demoData = []seedStep{
	{
		Product:    domain.Product{Name: "iPhone 13", Category: domain.SmartphoneCategory, Price: 799.99},
		Customer:   domain.Customer{FirstName: "Олег", LastName: "Петренко", Email: "oleg@example.com"},
		CustomerID: 1, ProductID: 1, Quantity: 2,
	},
	{
		Product:    domain.Product{Name: "Samsung Galaxy S21", Category: domain.SmartphoneCategory, Price: 699.99},
		Customer:   domain.Customer{FirstName: "Марія", LastName: "Іванова", Email: "maria@example.com"},
		CustomerID: 2, ProductID: 2, Quantity: 1,
	},
}

// SeedDemoData inserts the demonstration rows in one transaction.
// Customers are skipped when their email is already present; products and
// orders are inserted again on every call, so repeated runs duplicate them.
func SeedDemoData(ctx context.Context, db *sqlx.DB, now time.Time) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	products := NewProductRepo(tx)
	customers := NewCustomerRepo(tx)
	orders := NewOrderRepo(tx)

	orderDate := now.Format(domain.OrderDateLayout)
	for _, s := range demoData {
		if _, err := products.Create(ctx, s.Product); err != nil {
			return fmt.Errorf("seeding product %s: %w", s.Product.Name, err)
		}

		_, err := customers.ByEmail(ctx, s.Customer.Email)
		switch {
		case errors.Is(err, ErrNotFound):
			if _, err := customers.Create(ctx, s.Customer); err != nil {
				return fmt.Errorf("seeding customer %s: %w", s.Customer.Email, err)
			}
		case err != nil:
			return fmt.Errorf("seeding customer %s: %w", s.Customer.Email, err)
		}

		order := domain.Order{
			CustomerID: s.CustomerID,
			ProductID:  s.ProductID,
			Quantity:   s.Quantity,
			OrderDate:  orderDate,
		}
		if _, err := orders.Create(ctx, order); err != nil {
			return fmt.Errorf("seeding order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	applog.Info("seed.demo", map[string]any{"steps": len(demoData)})
	return nil
}
