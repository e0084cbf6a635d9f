// Package report collects every aggregate into one snapshot and renders it.
package report

import (
	"context"
	"errors"
	"time"

	"storedesk/internal/domain"
	"storedesk/internal/services"
	"storedesk/internal/store"
)

// Snapshot is every report at one point in time, plus the product catalog it
// was computed over. Nil pointers mean "no data".
type Snapshot struct {
	GeneratedAt         string                  `json:"generated_at"`
	OrderCount          int64                   `json:"order_count"`
	TotalSales          *float64                `json:"total_sales"`
	AverageOrderValue   *float64                `json:"average_order_value"`
	MostPopularCategory *domain.CategoryCount   `json:"most_popular_category"`
	ProductsPerCategory []domain.CategoryCount  `json:"products_per_category"`
	OrdersPerCustomer   []domain.CustomerOrders `json:"orders_per_customer"`
	Products            []domain.Product        `json:"products"`
}

func Build(ctx context.Context, st *store.Store, now time.Time) (Snapshot, error) {
	snap := Snapshot{GeneratedAt: now.Format(domain.OrderDateLayout)}

	var err error
	if snap.OrderCount, err = st.Reports.OrderCount(ctx); err != nil {
		return Snapshot{}, err
	}

	total, ok, err := st.Reports.TotalSales(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if ok {
		snap.TotalSales = &total
	}

	avg, err := st.Reports.AverageOrderValue(ctx)
	switch {
	case errors.Is(err, services.ErrNoOrders):
	case err != nil:
		return Snapshot{}, err
	default:
		snap.AverageOrderValue = &avg
	}

	top, ok, err := st.Reports.MostPopularCategory(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if ok {
		snap.MostPopularCategory = &top
	}

	if snap.ProductsPerCategory, err = st.Inventory.ProductsPerCategory(ctx); err != nil {
		return Snapshot{}, err
	}

	// One per-customer count for each known customer, in id order.
	customers, err := st.Catalog.ListCustomers(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	snap.OrdersPerCustomer = []domain.CustomerOrders{}
	for _, c := range customers {
		rows, err := st.Reports.OrdersPerCustomer(ctx, c.ID)
		if err != nil {
			return Snapshot{}, err
		}
		snap.OrdersPerCustomer = append(snap.OrdersPerCustomer, rows...)
	}

	if snap.Products, err = st.Catalog.ListProducts(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
