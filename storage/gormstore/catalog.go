package gormstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
)

func (s *Store) ListLocations(ctx context.Context) ([]models.Location, error) {
	return list[models.Location](ctx, s.db, "created_at ASC, id ASC")
}

func (s *Store) GetLocation(ctx context.Context, id string) (models.Location, error) {
	return find[models.Location](ctx, s.db, id)
}

func (s *Store) CreateLocation(ctx context.Context, in models.NewLocation) (models.Location, error) {
	loc := in.Build(uuid.NewString(), s.stamp())
	if err := insert(ctx, s.db, &loc); err != nil {
		return models.Location{}, err
	}
	return loc, nil
}

func (s *Store) UpdateLocation(ctx context.Context, id string, p models.LocationPatch) (models.Location, error) {
	return modify(ctx, s.db, id, p.Apply)
}

func (s *Store) ListMenuCategories(ctx context.Context) ([]models.MenuCategory, error) {
	return list[models.MenuCategory](ctx, s.db, "display_order ASC, id ASC")
}

func (s *Store) GetMenuCategory(ctx context.Context, id string) (models.MenuCategory, error) {
	return find[models.MenuCategory](ctx, s.db, id)
}

func (s *Store) CreateMenuCategory(ctx context.Context, in models.NewMenuCategory) (models.MenuCategory, error) {
	c := in.Build(uuid.NewString())
	if err := insert(ctx, s.db, &c); err != nil {
		return models.MenuCategory{}, err
	}
	return c, nil
}

func (s *Store) UpdateMenuCategory(ctx context.Context, id string, p models.MenuCategoryPatch) (models.MenuCategory, error) {
	return modify(ctx, s.db, id, p.Apply)
}

func (s *Store) ListMenuItems(ctx context.Context, categoryID string) ([]models.MenuItem, error) {
	q := s.db
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	return list[models.MenuItem](ctx, q, "created_at ASC, id ASC")
}

func (s *Store) GetMenuItem(ctx context.Context, id string) (models.MenuItem, error) {
	return find[models.MenuItem](ctx, s.db, id)
}

func (s *Store) CreateMenuItem(ctx context.Context, in models.NewMenuItem) (models.MenuItem, error) {
	item := in.Build(uuid.NewString(), s.stamp())
	if err := insert(ctx, s.db, &item); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *Store) UpdateMenuItem(ctx context.Context, id string, p models.MenuItemPatch) (models.MenuItem, error) {
	return modify(ctx, s.db, id, p.Apply)
}

func (s *Store) DeleteMenuItem(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MenuItem{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
