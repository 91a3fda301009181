package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
)

// OrderService builds OrderWithItems read models and drives order writes.
// It trusts caller-supplied subtotal, tax and total.
type OrderService struct {
	repo        storage.Repository
	now         func() time.Time
	orderNumber func(now time.Time) string
}

type OrderOption func(*OrderService)

// WithOrderNumbers replaces the order number generator.
func WithOrderNumbers(gen func(now time.Time) string) OrderOption {
	return func(s *OrderService) { s.orderNumber = gen }
}

// WithOrderClock replaces the clock used for order numbers.
func WithOrderClock(now func() time.Time) OrderOption {
	return func(s *OrderService) { s.now = now }
}

func NewOrderService(repo storage.Repository, opts ...OrderOption) *OrderService {
	s := &OrderService{repo: repo, now: time.Now, orderNumber: NewOrderNumber}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NewOrderNumber renders "#<last 6 digits of unix millis>-<6 random hex>".
// The timestamp part keeps numbers short for tickets; the random part keeps
// orders created in the same millisecond apart.
func NewOrderNumber(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("#%06d-%s", now.UnixMilli()%1_000_000, random[:6])
}

func (s *OrderService) ListOrders(ctx context.Context, locationID string, status models.OrderStatus) ([]models.OrderWithItems, error) {
	orders, err := s.repo.ListOrders(ctx, storage.OrderFilter{LocationID: locationID, Status: status})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return s.compose(ctx, orders)
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (models.OrderWithItems, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return models.OrderWithItems{}, fmt.Errorf("get order %s: %w", id, err)
	}
	views, err := s.compose(ctx, []models.Order{order})
	if err != nil {
		return models.OrderWithItems{}, err
	}
	return views[0], nil
}

// CreateOrder assigns an order number, stores the order with its lines and
// returns the freshly read model.
func (s *OrderService) CreateOrder(ctx context.Context, in models.NewOrder, items []models.NewOrderItem) (models.OrderWithItems, error) {
	if err := models.Validate(in); err != nil {
		return models.OrderWithItems{}, err
	}
	for i, it := range items {
		if err := models.Validate(it); err != nil {
			return models.OrderWithItems{}, fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	in.OrderNumber = s.orderNumber(s.now())
	order, err := s.repo.CreateOrder(ctx, in, items)
	if err != nil {
		return models.OrderWithItems{}, fmt.Errorf("create order: %w", err)
	}
	return s.GetOrder(ctx, order.ID)
}

// UpdateOrderStatus overwrites the status. Any state may follow any other.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status string) (models.Order, error) {
	st, err := models.ParseOrderStatus(status)
	if err != nil {
		return models.Order{}, err
	}
	order, err := s.repo.UpdateOrderStatus(ctx, id, st)
	if err != nil {
		return models.Order{}, fmt.Errorf("update order %s: %w", id, err)
	}
	return order, nil
}

func (s *OrderService) compose(ctx context.Context, orders []models.Order) ([]models.OrderWithItems, error) {
	out := make([]models.OrderWithItems, 0, len(orders))
	if len(orders) == 0 {
		return out, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := s.repo.ListOrderItems(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	byOrder := make(map[string][]models.OrderItem, len(orders))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}

	tables := newLookup(s.repo.GetTable)
	customers := newLookup(s.repo.GetCustomer)
	staff := newLookup(s.repo.GetStaff)
	menu := newLookup(s.repo.GetMenuItem)

	for _, o := range orders {
		view := models.OrderWithItems{Order: o, Items: []models.OrderLine{}}
		for _, it := range byOrder[o.ID] {
			mi, err := menu.get(ctx, it.MenuItemID)
			if err != nil {
				return nil, err
			}
			view.Items = append(view.Items, models.OrderLine{OrderItem: it, MenuItem: mi})
		}
		if view.Table, err = tables.optional(ctx, o.TableID); err != nil {
			return nil, err
		}
		if view.Customer, err = customers.optional(ctx, o.CustomerID); err != nil {
			return nil, err
		}
		if view.Server, err = staff.optional(ctx, o.ServerID); err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}
