package services

import (
	"context"
	"time"

	"storedesk/internal/domain"
	"storedesk/internal/repos"
)

type OrderService struct {
	Orders *repos.OrderRepo
	Now    func() time.Time
}

func NewOrderService(orders *repos.OrderRepo, now func() time.Time) *OrderService {
	if now == nil {
		now = time.Now
	}
	return &OrderService{Orders: orders, Now: now}
}

// Place records one order stamped with the current local time. Customer and
// product ids are taken on trust.
func (s *OrderService) Place(ctx context.Context, customerID, productID, quantity int64) (domain.Order, error) {
	o := domain.Order{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
		OrderDate:  s.Now().Format(domain.OrderDateLayout),
	}
	id, err := s.Orders.Create(ctx, o)
	if err != nil {
		return domain.Order{}, err
	}
	o.ID = id
	return o, nil
}
