package services

import (
	"context"

	"storedesk/internal/domain"
	"storedesk/internal/repos"
)

type InventoryService struct {
	Prods *repos.ProductRepo
}

func NewInventoryService(prods *repos.ProductRepo) *InventoryService {
	return &InventoryService{Prods: prods}
}

// ProductsPerCategory counts products in each category.
func (s *InventoryService) ProductsPerCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	return s.Prods.CountByCategory(ctx)
}
