package gormstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/judyrop/restaurant-pos/models"
)

func (s *Store) ListStaff(ctx context.Context, locationID string) ([]models.Staff, error) {
	q := s.db
	if locationID != "" {
		q = q.Where("location_id = ?", locationID)
	}
	return list[models.Staff](ctx, q, "created_at ASC, id ASC")
}

func (s *Store) GetStaff(ctx context.Context, id string) (models.Staff, error) {
	return find[models.Staff](ctx, s.db, id)
}

func (s *Store) CreateStaff(ctx context.Context, in models.NewStaff) (models.Staff, error) {
	st := in.Build(uuid.NewString(), s.stamp())
	if err := insert(ctx, s.db, &st); err != nil {
		return models.Staff{}, err
	}
	return st, nil
}

func (s *Store) UpdateStaff(ctx context.Context, id string, p models.StaffPatch) (models.Staff, error) {
	return modify(ctx, s.db, id, p.Apply)
}

func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return list[models.Customer](ctx, s.db, "created_at DESC, id DESC")
}

func (s *Store) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	return find[models.Customer](ctx, s.db, id)
}

func (s *Store) CreateCustomer(ctx context.Context, in models.NewCustomer) (models.Customer, error) {
	c := in.Build(uuid.NewString(), s.stamp())
	if err := insert(ctx, s.db, &c); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, id string, p models.CustomerPatch) (models.Customer, error) {
	return modify(ctx, s.db, id, p.Apply)
}

func (s *Store) ListSettings(ctx context.Context, locationID string) ([]models.RestaurantSettings, error) {
	q := s.db
	if locationID != "" {
		q = q.Where("location_id = ?", locationID)
	}
	return list[models.RestaurantSettings](ctx, q, "id ASC")
}

func (s *Store) GetSettings(ctx context.Context, id string) (models.RestaurantSettings, error) {
	return find[models.RestaurantSettings](ctx, s.db, id)
}

func (s *Store) CreateSettings(ctx context.Context, in models.NewRestaurantSettings) (models.RestaurantSettings, error) {
	st := in.Build(uuid.NewString(), s.stamp())
	if err := insert(ctx, s.db, &st); err != nil {
		return models.RestaurantSettings{}, err
	}
	return st, nil
}

func (s *Store) UpdateSettings(ctx context.Context, id string, p models.RestaurantSettingsPatch) (models.RestaurantSettings, error) {
	now := s.stamp()
	return modify(ctx, s.db, id, func(st *models.RestaurantSettings) {
		p.Apply(st, now)
	})
}
