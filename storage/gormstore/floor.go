package gormstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
)

func (s *Store) ListAreas(ctx context.Context, locationID string) ([]models.Area, error) {
	return list[models.Area](ctx, s.db.Where("location_id = ?", locationID), "name ASC, id ASC")
}

func (s *Store) GetArea(ctx context.Context, id string) (models.Area, error) {
	return find[models.Area](ctx, s.db, id)
}

func (s *Store) CreateArea(ctx context.Context, in models.NewArea) (models.Area, error) {
	a := in.Build(uuid.NewString())
	if err := insert(ctx, s.db, &a); err != nil {
		return models.Area{}, err
	}
	return a, nil
}

func (s *Store) UpdateArea(ctx context.Context, id string, p models.AreaPatch) (models.Area, error) {
	return modify(ctx, s.db, id, p.Apply)
}

func (s *Store) ListTables(ctx context.Context, locationID string) ([]models.Table, error) {
	return list[models.Table](ctx, s.db.Where("location_id = ?", locationID), "table_number ASC, id ASC")
}

func (s *Store) GetTable(ctx context.Context, id string) (models.Table, error) {
	return find[models.Table](ctx, s.db, id)
}

func (s *Store) CreateTable(ctx context.Context, in models.NewTable) (models.Table, error) {
	t := in.Build(uuid.NewString())
	if err := insert(ctx, s.db, &t); err != nil {
		return models.Table{}, err
	}
	return t, nil
}

func (s *Store) UpdateTable(ctx context.Context, id string, p models.TablePatch) (models.Table, error) {
	return modify(ctx, s.db, id, p.Apply)
}

func (s *Store) ListReservations(ctx context.Context, f storage.ReservationFilter) ([]models.Reservation, error) {
	q := s.db
	if f.LocationID != "" {
		q = q.Where("location_id = ?", f.LocationID)
	}
	if !f.From.IsZero() {
		q = q.Where("reservation_date >= ?", f.From.UTC())
	}
	if !f.To.IsZero() {
		q = q.Where("reservation_date < ?", f.To.UTC())
	}
	return list[models.Reservation](ctx, q, "reservation_date ASC, id ASC")
}

func (s *Store) GetReservation(ctx context.Context, id string) (models.Reservation, error) {
	return find[models.Reservation](ctx, s.db, id)
}

func (s *Store) CreateReservation(ctx context.Context, in models.NewReservation) (models.Reservation, error) {
	r := in.Build(uuid.NewString(), s.stamp())
	r.ReservationDate = storage.Stamp(r.ReservationDate)
	if err := insert(ctx, s.db, &r); err != nil {
		return models.Reservation{}, err
	}
	return r, nil
}

func (s *Store) UpdateReservation(ctx context.Context, id string, p models.ReservationPatch) (models.Reservation, error) {
	return modify(ctx, s.db, id, func(r *models.Reservation) {
		p.Apply(r)
		r.ReservationDate = storage.Stamp(r.ReservationDate)
	})
}
