package jsonstore

import (
	"context"
	"slices"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
)

func (s *Store) ListLocations(_ context.Context) ([]models.Location, error) {
	return selectWhere(s, locations, nil, byLocationCreated), nil
}

func (s *Store) GetLocation(_ context.Context, id string) (models.Location, error) {
	return get(s, locations, id, locationKey)
}

func (s *Store) CreateLocation(_ context.Context, in models.NewLocation) (models.Location, error) {
	loc := in.Build(s.newID(), s.stamp())
	if err := insert(s, locations, loc); err != nil {
		return models.Location{}, err
	}
	return loc, nil
}

func (s *Store) UpdateLocation(_ context.Context, id string, p models.LocationPatch) (models.Location, error) {
	return update(s, locations, id, locationKey, p.Apply)
}

func (s *Store) ListMenuCategories(_ context.Context) ([]models.MenuCategory, error) {
	return selectWhere(s, menuCategories, nil, byDisplayOrder), nil
}

func (s *Store) GetMenuCategory(_ context.Context, id string) (models.MenuCategory, error) {
	return get(s, menuCategories, id, menuCategoryKey)
}

func (s *Store) CreateMenuCategory(_ context.Context, in models.NewMenuCategory) (models.MenuCategory, error) {
	c := in.Build(s.newID())
	if err := insert(s, menuCategories, c); err != nil {
		return models.MenuCategory{}, err
	}
	return c, nil
}

func (s *Store) UpdateMenuCategory(_ context.Context, id string, p models.MenuCategoryPatch) (models.MenuCategory, error) {
	return update(s, menuCategories, id, menuCategoryKey, p.Apply)
}

func (s *Store) ListMenuItems(_ context.Context, categoryID string) ([]models.MenuItem, error) {
	var keep func(models.MenuItem) bool
	if categoryID != "" {
		keep = func(m models.MenuItem) bool { return m.CategoryID != nil && *m.CategoryID == categoryID }
	}
	return selectWhere(s, menuItems, keep, byMenuItemCreated), nil
}

func (s *Store) GetMenuItem(_ context.Context, id string) (models.MenuItem, error) {
	return get(s, menuItems, id, menuItemKey)
}

func (s *Store) CreateMenuItem(_ context.Context, in models.NewMenuItem) (models.MenuItem, error) {
	item := in.Build(s.newID(), s.stamp())
	if err := insert(s, menuItems, item); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *Store) UpdateMenuItem(_ context.Context, id string, p models.MenuItemPatch) (models.MenuItem, error) {
	return update(s, menuItems, id, menuItemKey, p.Apply)
}

func (s *Store) DeleteMenuItem(_ context.Context, id string) error {
	return s.mutate(func(d *document) error {
		i := slices.IndexFunc(d.MenuItems, func(m models.MenuItem) bool { return m.ID == id })
		if i < 0 {
			return storage.ErrNotFound
		}
		d.MenuItems = slices.Delete(d.MenuItems, i, i+1)
		return nil
	})
}

func (s *Store) ListAreas(_ context.Context, locationID string) ([]models.Area, error) {
	keep := func(a models.Area) bool { return a.LocationID == locationID }
	return selectWhere(s, areas, keep, byAreaName), nil
}

func (s *Store) GetArea(_ context.Context, id string) (models.Area, error) {
	return get(s, areas, id, areaKey)
}

func (s *Store) CreateArea(_ context.Context, in models.NewArea) (models.Area, error) {
	a := in.Build(s.newID())
	if err := insert(s, areas, a); err != nil {
		return models.Area{}, err
	}
	return a, nil
}

func (s *Store) UpdateArea(_ context.Context, id string, p models.AreaPatch) (models.Area, error) {
	return update(s, areas, id, areaKey, p.Apply)
}

func (s *Store) ListTables(_ context.Context, locationID string) ([]models.Table, error) {
	keep := func(t models.Table) bool { return t.LocationID == locationID }
	return selectWhere(s, tables, keep, byTableNumber), nil
}

func (s *Store) GetTable(_ context.Context, id string) (models.Table, error) {
	return get(s, tables, id, tableKey)
}

func (s *Store) CreateTable(_ context.Context, in models.NewTable) (models.Table, error) {
	t := in.Build(s.newID())
	if err := insert(s, tables, t); err != nil {
		return models.Table{}, err
	}
	return t, nil
}

func (s *Store) UpdateTable(_ context.Context, id string, p models.TablePatch) (models.Table, error) {
	return update(s, tables, id, tableKey, p.Apply)
}

func (s *Store) ListOrders(_ context.Context, f storage.OrderFilter) ([]models.Order, error) {
	return selectWhere(s, orders, f.Match, byOrderNewest), nil
}

func (s *Store) GetOrder(_ context.Context, id string) (models.Order, error) {
	return get(s, orders, id, orderKey)
}

// CreateOrder appends the order and its lines in a single file rewrite.
func (s *Store) CreateOrder(_ context.Context, in models.NewOrder, items []models.NewOrderItem) (models.Order, error) {
	order := in.Build(s.newID(), s.stamp())
	lines := make([]models.OrderItem, len(items))
	for i, it := range items {
		lines[i] = it.Build(s.newID(), order.ID, i)
	}
	err := s.mutate(func(d *document) error {
		d.Orders = append(d.Orders, order)
		d.OrderItems = append(d.OrderItems, lines...)
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *Store) UpdateOrderStatus(_ context.Context, id string, status models.OrderStatus) (models.Order, error) {
	now := s.stamp()
	return update(s, orders, id, orderKey, func(o *models.Order) {
		o.Status = status
		o.UpdatedAt = now
	})
}

// ListOrderItems keeps file order, which is submission order.
func (s *Store) ListOrderItems(_ context.Context, orderIDs ...string) ([]models.OrderItem, error) {
	keep := func(it models.OrderItem) bool { return slices.Contains(orderIDs, it.OrderID) }
	return selectWhere(s, orderItems, keep, nil), nil
}

func (s *Store) ListStaff(_ context.Context, locationID string) ([]models.Staff, error) {
	var keep func(models.Staff) bool
	if locationID != "" {
		keep = func(m models.Staff) bool { return m.LocationID != nil && *m.LocationID == locationID }
	}
	return selectWhere(s, staff, keep, byStaffCreated), nil
}

func (s *Store) GetStaff(_ context.Context, id string) (models.Staff, error) {
	return get(s, staff, id, staffKey)
}

func (s *Store) CreateStaff(_ context.Context, in models.NewStaff) (models.Staff, error) {
	m := in.Build(s.newID(), s.stamp())
	if err := insert(s, staff, m); err != nil {
		return models.Staff{}, err
	}
	return m, nil
}

func (s *Store) UpdateStaff(_ context.Context, id string, p models.StaffPatch) (models.Staff, error) {
	return update(s, staff, id, staffKey, p.Apply)
}

func (s *Store) ListCustomers(_ context.Context) ([]models.Customer, error) {
	return selectWhere(s, customers, nil, byCustomerNewest), nil
}

func (s *Store) GetCustomer(_ context.Context, id string) (models.Customer, error) {
	return get(s, customers, id, customerKey)
}

func (s *Store) CreateCustomer(_ context.Context, in models.NewCustomer) (models.Customer, error) {
	c := in.Build(s.newID(), s.stamp())
	if err := insert(s, customers, c); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (s *Store) UpdateCustomer(_ context.Context, id string, p models.CustomerPatch) (models.Customer, error) {
	return update(s, customers, id, customerKey, p.Apply)
}

func (s *Store) ListReservations(_ context.Context, f storage.ReservationFilter) ([]models.Reservation, error) {
	return selectWhere(s, reservations, f.Match, byReservationDate), nil
}

func (s *Store) GetReservation(_ context.Context, id string) (models.Reservation, error) {
	return get(s, reservations, id, reservationKey)
}

func (s *Store) CreateReservation(_ context.Context, in models.NewReservation) (models.Reservation, error) {
	r := in.Build(s.newID(), s.stamp())
	r.ReservationDate = storage.Stamp(r.ReservationDate)
	if err := insert(s, reservations, r); err != nil {
		return models.Reservation{}, err
	}
	return r, nil
}

func (s *Store) UpdateReservation(_ context.Context, id string, p models.ReservationPatch) (models.Reservation, error) {
	return update(s, reservations, id, reservationKey, func(r *models.Reservation) {
		p.Apply(r)
		r.ReservationDate = storage.Stamp(r.ReservationDate)
	})
}

func (s *Store) ListPayments(_ context.Context, orderID string) ([]models.Payment, error) {
	keep := func(p models.Payment) bool { return p.OrderID == orderID }
	return selectWhere(s, payments, keep, byPaymentCreated), nil
}

func (s *Store) GetPayment(_ context.Context, id string) (models.Payment, error) {
	return get(s, payments, id, paymentKey)
}

func (s *Store) CreatePayment(_ context.Context, in models.NewPayment) (models.Payment, error) {
	p := in.Build(s.newID(), s.stamp())
	if err := insert(s, payments, p); err != nil {
		return models.Payment{}, err
	}
	return p, nil
}

func (s *Store) ListSettings(_ context.Context, locationID string) ([]models.RestaurantSettings, error) {
	var keep func(models.RestaurantSettings) bool
	if locationID != "" {
		keep = func(st models.RestaurantSettings) bool { return st.LocationID != nil && *st.LocationID == locationID }
	}
	return selectWhere(s, settings, keep, bySettingsID), nil
}

func (s *Store) GetSettings(_ context.Context, id string) (models.RestaurantSettings, error) {
	return get(s, settings, id, settingsKey)
}

func (s *Store) CreateSettings(_ context.Context, in models.NewRestaurantSettings) (models.RestaurantSettings, error) {
	st := in.Build(s.newID(), s.stamp())
	if err := insert(s, settings, st); err != nil {
		return models.RestaurantSettings{}, err
	}
	return st, nil
}

func (s *Store) UpdateSettings(_ context.Context, id string, p models.RestaurantSettingsPatch) (models.RestaurantSettings, error) {
	now := s.stamp()
	return update(s, settings, id, settingsKey, func(st *models.RestaurantSettings) {
		p.Apply(st, now)
	})
}
