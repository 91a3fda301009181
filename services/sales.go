package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
)

// DefaultSalesWindow is used when a sales query gives no start date.
const DefaultSalesWindow = 7 * 24 * time.Hour

type SalesService struct {
	repo storage.Repository
}

func NewSalesService(repo storage.Repository) *SalesService {
	return &SalesService{repo: repo}
}

// GetSalesData sums order totals for a location over [start, end], bucketed by
// UTC calendar day. Every order counts regardless of status.
func (s *SalesService) GetSalesData(ctx context.Context, locationID string, start, end time.Time) (models.SalesData, error) {
	orders, err := s.repo.ListOrders(ctx, storage.OrderFilter{
		LocationID:  locationID,
		CreatedFrom: start,
		CreatedTo:   end,
	})
	if err != nil {
		return models.SalesData{}, fmt.Errorf("list orders: %w", err)
	}

	type bucket struct {
		sales  decimal.Decimal
		orders int
	}
	buckets := map[string]*bucket{}
	revenue := decimal.Zero

	for _, o := range orders {
		total, err := decimal.NewFromString(o.Total)
		if err != nil {
			return models.SalesData{}, fmt.Errorf("order %s has invalid total %q: %w", o.ID, o.Total, err)
		}
		day := o.CreatedAt.UTC().Format(time.DateOnly)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.sales = b.sales.Add(total)
		b.orders++
		revenue = revenue.Add(total)
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	slices.Sort(days)

	data := models.SalesData{
		TotalRevenue: revenue.InexactFloat64(),
		TotalOrders:  len(orders),
		DailySales:   make([]models.DailySales, 0, len(days)),
	}
	if len(orders) > 0 {
		data.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(len(orders)))).InexactFloat64()
	}
	for _, day := range days {
		b := buckets[day]
		data.DailySales = append(data.DailySales, models.DailySales{
			Date:   day,
			Sales:  b.sales.InexactFloat64(),
			Orders: b.orders,
		})
	}
	return data, nil
}
