package services

import (
	"context"
	"fmt"
	"time"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
)

// FloorService builds the table and reservation read models.
type FloorService struct {
	repo storage.Repository
}

func NewFloorService(repo storage.Repository) *FloorService {
	return &FloorService{repo: repo}
}

func (s *FloorService) ListTables(ctx context.Context, locationID string) ([]models.TableWithDetails, error) {
	tables, err := s.repo.ListTables(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	areas := newLookup(s.repo.GetArea)
	staff := newLookup(s.repo.GetStaff)

	out := make([]models.TableWithDetails, 0, len(tables))
	for _, t := range tables {
		view := models.TableWithDetails{Table: t}
		if view.Area, err = areas.optional(ctx, t.AreaID); err != nil {
			return nil, err
		}
		if view.Server, err = staff.optional(ctx, t.ServerID); err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

// ListReservations returns reservations by date, earliest first. A non-zero
// day limits the result to that UTC calendar day. Contact details on the
// reservation are returned as stored, even when they differ from the linked
// customer.
func (s *FloorService) ListReservations(ctx context.Context, locationID string, day time.Time) ([]models.ReservationWithDetails, error) {
	f := storage.ReservationFilter{LocationID: locationID}
	if !day.IsZero() {
		y, m, d := day.UTC().Date()
		f.From = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		f.To = f.From.AddDate(0, 0, 1)
	}
	reservations, err := s.repo.ListReservations(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	customers := newLookup(s.repo.GetCustomer)
	tables := newLookup(s.repo.GetTable)

	out := make([]models.ReservationWithDetails, 0, len(reservations))
	for _, r := range reservations {
		view := models.ReservationWithDetails{Reservation: r}
		if view.Customer, err = customers.optional(ctx, r.CustomerID); err != nil {
			return nil, err
		}
		if view.Table, err = tables.optional(ctx, r.TableID); err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}
