package services

import (
	"context"
	"errors"

	"storedesk/internal/domain"
	"storedesk/internal/repos"
)

// ErrNoOrders is returned when an average is requested over zero orders.
var ErrNoOrders = errors.New("no orders")

type ReportService struct {
	Reports *repos.ReportRepo
}

func NewReportService(reports *repos.ReportRepo) *ReportService {
	return &ReportService{Reports: reports}
}

// TotalSales reports ok=false when there are no orders to sum.
func (s *ReportService) TotalSales(ctx context.Context) (total float64, ok bool, err error) {
	v, err := s.Reports.TotalSales(ctx)
	if err != nil {
		return 0, false, err
	}
	return v.Float64, v.Valid, nil
}

func (s *ReportService) AverageOrderValue(ctx context.Context) (float64, error) {
	v, err := s.Reports.AverageOrderValue(ctx)
	if err != nil {
		return 0, err
	}
	if !v.Valid {
		return 0, ErrNoOrders
	}
	return v.Float64, nil
}

func (s *ReportService) OrderCount(ctx context.Context) (int64, error) {
	return s.Reports.CountedOrders(ctx)
}

// MostPopularCategory reports ok=false when there is no sales data.
func (s *ReportService) MostPopularCategory(ctx context.Context) (domain.CategoryCount, bool, error) {
	c, err := s.Reports.TopCategory(ctx)
	if errors.Is(err, repos.ErrNotFound) {
		return domain.CategoryCount{}, false, nil
	}
	if err != nil {
		return domain.CategoryCount{}, false, err
	}
	return c, true, nil
}

func (s *ReportService) OrdersPerCustomer(ctx context.Context, customerID int64) ([]domain.CustomerOrders, error) {
	return s.Reports.OrdersPerCustomer(ctx, customerID)
}
