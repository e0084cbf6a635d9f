package services

import (
	"context"

	"storedesk/internal/domain"
	"storedesk/internal/repos"
)

// SmartphoneMarkup is the across-the-board increase applied when no single
// product is targeted.
const SmartphoneMarkup = 1.10

type PricingService struct {
	Prods *repos.ProductRepo
}

func NewPricingService(prods *repos.ProductRepo) *PricingService {
	return &PricingService{Prods: prods}
}

// UpdatePrice sets productID's price to newPrice when both are non-zero, and
// only if the product is a smartphone. With either left zero it raises every
// smartphone price by SmartphoneMarkup. It returns the rows changed; a
// non-smartphone target is not an error, just 0 rows.
func (s *PricingService) UpdatePrice(ctx context.Context, productID int64, newPrice float64) (int64, error) {
	if productID != 0 && newPrice != 0 {
		return s.Prods.SetPrice(ctx, productID, domain.SmartphoneCategory, newPrice)
	}
	return s.Prods.ScalePrices(ctx, domain.SmartphoneCategory, SmartphoneMarkup)
}
