package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storedesk/internal/domain"
	"storedesk/internal/repos"
	"storedesk/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repos.EnsureSchema(context.Background(), db))
	return db
}

type fixture struct {
	catalog *services.CatalogService
	orders  *services.OrderService
	reports *services.ReportService
	pricing *services.PricingService
	inv     *services.InventoryService
}

func newFixture(t *testing.T) fixture {
	db := memdb(t)
	prods := repos.NewProductRepo(db)
	clock := func() time.Time { return time.Date(2025, 1, 31, 23, 59, 1, 0, time.Local) }
	return fixture{
		catalog: services.NewCatalogService(prods, repos.NewCustomerRepo(db)),
		orders:  services.NewOrderService(repos.NewOrderRepo(db), clock),
		reports: services.NewReportService(repos.NewReportRepo(db)),
		pricing: services.NewPricingService(prods),
		inv:     services.NewInventoryService(prods),
	}
}

// price reads a product's current price back through the catalog listing.
func (f fixture) price(t *testing.T, id int64) float64 {
	t.Helper()
	list, err := f.catalog.ListProducts(context.Background())
	require.NoError(t, err)
	for _, p := range list {
		if p.ID == id {
			return p.Price
		}
	}
	t.Fatalf("product %d not listed", id)
	return 0
}

func TestPlaceStampsOrderDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	o, err := f.orders.Place(ctx, 3, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.Order{ID: 1, CustomerID: 3, ProductID: 4, Quantity: 5, OrderDate: "2025-01-31 23:59:01"}, o)
}

func TestSalesReportsWithoutOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, ok, err := f.reports.TotalSales(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.reports.AverageOrderValue(ctx)
	assert.ErrorIs(t, err, services.ErrNoOrders)

	_, ok, err = f.reports.MostPopularCategory(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTotalMatchesAverageTimesCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	phone, err := f.catalog.AddProduct(ctx, "iPhone 13", "Смартфони", 799.99)
	require.NoError(t, err)
	laptop, err := f.catalog.AddProduct(ctx, "ThinkPad", "Ноутбуки", 1234.56)
	require.NoError(t, err)
	tablet, err := f.catalog.AddProduct(ctx, "iPad", "Планшети", 0.1)
	require.NoError(t, err)

	for _, o := range []struct{ pid, qty int64 }{{phone, 2}, {laptop, 1}, {tablet, 7}, {phone, 3}} {
		_, err := f.orders.Place(ctx, 1, o.pid, o.qty)
		require.NoError(t, err)
	}

	total, ok, err := f.reports.TotalSales(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	avg, err := f.reports.AverageOrderValue(ctx)
	require.NoError(t, err)
	n, err := f.reports.OrderCount(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), n)
	assert.InDelta(t, 799.99*5+1234.56+0.7, total, 1e-6)
	assert.InDelta(t, total, avg*float64(n), 1e-6)
}

func TestMostPopularCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.catalog.AddProduct(ctx, "A", "Смартфони", 10)
	require.NoError(t, err)
	b, err := f.catalog.AddProduct(ctx, "B", "Ноутбуки", 10)
	require.NoError(t, err)

	for _, pid := range []int64{a, a, b} {
		_, err := f.orders.Place(ctx, 1, pid, 1)
		require.NoError(t, err)
	}

	top, ok, err := f.reports.MostPopularCategory(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryCount{Category: "Смартфони", Count: 2}, top)
}

func TestUpdatePriceSingleProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	laptop, err := f.catalog.AddProduct(ctx, "X", "Ноутбуки", 1000.0)
	require.NoError(t, err)
	phone, err := f.catalog.AddProduct(ctx, "Y", "Смартфони", 500.0)
	require.NoError(t, err)

	n, err := f.pricing.UpdatePrice(ctx, laptop, 1200.0)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 1000.0, f.price(t, laptop))

	n, err = f.pricing.UpdatePrice(ctx, phone, 450.0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 450.0, f.price(t, phone))
}

func TestUpdatePriceBulk(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before := map[string]float64{"Смартфони": 799.99, "Ноутбуки": 1000.0, "Планшети": 333.33}
	ids := map[string]int64{}
	for cat, price := range before {
		id, err := f.catalog.AddProduct(ctx, "p-"+cat, cat, price)
		require.NoError(t, err)
		ids[cat] = id
	}
	extra, err := f.catalog.AddProduct(ctx, "S21", "Смартфони", 699.99)
	require.NoError(t, err)

	// a missing price falls back to the bulk increase
	n, err := f.pricing.UpdatePrice(ctx, ids["Ноутбуки"], 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	for cat, id := range ids {
		if cat == domain.SmartphoneCategory {
			assert.InDelta(t, before[cat]*1.10, f.price(t, id), 1e-9)
		} else {
			assert.Equal(t, before[cat], f.price(t, id), cat)
		}
	}
	assert.InDelta(t, 699.99*1.10, f.price(t, extra), 1e-9)
}

func TestProductsPerCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	counts, err := f.inv.ProductsPerCategory(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)

	_, err = f.catalog.AddProduct(ctx, "A", "Планшети", 1)
	require.NoError(t, err)
	counts, err = f.inv.ProductsPerCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryCount{{Category: "Планшети", Count: 1}}, counts)
}

func TestAddCustomerDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalog.AddCustomer(ctx, "Марія", "Іванова", "maria@example.com")
	require.NoError(t, err)
	_, err = f.catalog.AddCustomer(ctx, "Марія", "Іванова", "maria@example.com")
	require.ErrorIs(t, err, repos.ErrDuplicateEmail)

	list, err := f.catalog.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
