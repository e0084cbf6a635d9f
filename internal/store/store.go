// Package store wires the repositories and services behind one SQLite
// connection. A Store is opened once per process and must be closed.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"storedesk/internal/config"
	applog "storedesk/internal/log"
	"storedesk/internal/repos"
	"storedesk/internal/services"
)

type Store struct {
	db  *sqlx.DB
	now func() time.Time

	Catalog   *services.CatalogService
	Orders    *services.OrderService
	Reports   *services.ReportService
	Inventory *services.InventoryService
	Pricing   *services.PricingService
}

// Open connects to cfg.DBDSN. The caller owns the result and must Close it.
func Open(cfg config.Config) (*Store, error) {
	db, err := repos.OpenDB(cfg.DBDSN, cfg.ForeignKeys)
	if err != nil {
		return nil, err
	}
	applog.Info("db.open", map[string]any{"dsn": cfg.DBDSN, "foreign_keys": cfg.ForeignKeys})
	return New(db, time.Now), nil
}

// New builds a Store over an already opened connection; it takes ownership of db.
func New(db *sqlx.DB, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	prods := repos.NewProductRepo(db)
	customers := repos.NewCustomerRepo(db)

	return &Store{
		db:        db,
		now:       now,
		Catalog:   services.NewCatalogService(prods, customers),
		Orders:    services.NewOrderService(repos.NewOrderRepo(db), now),
		Reports:   services.NewReportService(repos.NewReportRepo(db)),
		Inventory: services.NewInventoryService(prods),
		Pricing:   services.NewPricingService(prods),
	}
}

func (s *Store) InitSchema(ctx context.Context) error {
	return repos.EnsureSchema(ctx, s.db)
}

// SeedDemoData re-inserts the demonstration products and orders on every call.
func (s *Store) SeedDemoData(ctx context.Context) error {
	return repos.SeedDemoData(ctx, s.db, s.now())
}

// Commit is the explicit save point offered to the operator. Every mutation is
// already committed on its own, so this only confirms the database is reachable.
func (s *Store) Commit(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return err
	}
	applog.Info("db.close", nil)
	return nil
}
