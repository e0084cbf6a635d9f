package services

import (
	"context"

	"storedesk/internal/domain"
	"storedesk/internal/repos"
)

type CatalogService struct {
	Prods     *repos.ProductRepo
	Customers *repos.CustomerRepo
}

func NewCatalogService(prods *repos.ProductRepo, customers *repos.CustomerRepo) *CatalogService {
	return &CatalogService{Prods: prods, Customers: customers}
}

// AddProduct stores the product as given; category is a free-form label.
func (s *CatalogService) AddProduct(ctx context.Context, name, category string, price float64) (int64, error) {
	return s.Prods.Create(ctx, domain.Product{Name: name, Category: category, Price: price})
}

// AddCustomer fails with repos.ErrDuplicateEmail when the email is taken.
func (s *CatalogService) AddCustomer(ctx context.Context, firstName, lastName, email string) (int64, error) {
	return s.Customers.Create(ctx, domain.Customer{FirstName: firstName, LastName: lastName, Email: email})
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.Prods.List(ctx)
}

func (s *CatalogService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.Customers.List(ctx)
}
