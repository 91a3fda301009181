package gormstore

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
)

// ListOrders compares time bounds in UTC, the zone every row is stored in.
func (s *Store) ListOrders(ctx context.Context, f storage.OrderFilter) ([]models.Order, error) {
	q := s.db
	if f.LocationID != "" {
		q = q.Where("location_id = ?", f.LocationID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.CreatedFrom.IsZero() {
		q = q.Where("created_at >= ?", f.CreatedFrom.UTC())
	}
	if !f.CreatedTo.IsZero() {
		q = q.Where("created_at <= ?", f.CreatedTo.UTC())
	}
	return list[models.Order](ctx, q, "created_at DESC, id DESC")
}

func (s *Store) GetOrder(ctx context.Context, id string) (models.Order, error) {
	return find[models.Order](ctx, s.db, id)
}

// CreateOrder writes the order and its lines in one transaction.
func (s *Store) CreateOrder(ctx context.Context, in models.NewOrder, items []models.NewOrderItem) (models.Order, error) {
	order := in.Build(uuid.NewString(), s.stamp())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		lines := make([]models.OrderItem, len(items))
		for i, it := range items {
			lines[i] = it.Build(uuid.NewString(), order.ID, i)
		}
		return tx.Omit(clause.Associations).Create(&lines).Error
	})
	if err != nil {
		return models.Order{}, translate(err)
	}
	return order, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	now := s.stamp()
	return modify(ctx, s.db, id, func(o *models.Order) {
		o.Status = status
		o.UpdatedAt = now
	})
}

func (s *Store) ListOrderItems(ctx context.Context, orderIDs ...string) ([]models.OrderItem, error) {
	if len(orderIDs) == 0 {
		return []models.OrderItem{}, nil
	}
	return list[models.OrderItem](ctx, s.db.Where("order_id IN ?", orderIDs), "order_id ASC, position ASC")
}

func (s *Store) ListPayments(ctx context.Context, orderID string) ([]models.Payment, error) {
	return list[models.Payment](ctx, s.db.Where("order_id = ?", orderID), "created_at ASC, id ASC")
}

func (s *Store) GetPayment(ctx context.Context, id string) (models.Payment, error) {
	return find[models.Payment](ctx, s.db, id)
}

func (s *Store) CreatePayment(ctx context.Context, in models.NewPayment) (models.Payment, error) {
	p := in.Build(uuid.NewString(), s.stamp())
	if err := insert(ctx, s.db, &p); err != nil {
		return models.Payment{}, err
	}
	return p, nil
}
