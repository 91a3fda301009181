// Package storage defines the repository contract shared by every backend.
// Backends live in the gormstore and jsonstore subpackages and are chosen
// once, at startup.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/judyrop/restaurant-pos/models"
)

var (
	// ErrNotFound is returned by Get, Update and Delete for an unknown id.
	ErrNotFound = errors.New("not found")
	// ErrConstraint is returned when a write breaks a uniqueness or foreign
	// key rule. Only the relational backend enforces these.
	ErrConstraint = errors.New("constraint violation")
)

// OrderFilter selects orders. Zero fields do not filter.
type OrderFilter struct {
	LocationID  string
	Status      models.OrderStatus
	CreatedFrom time.Time
	CreatedTo   time.Time
}

// Match reports whether o passes the filter. Both time bounds are inclusive.
func (f OrderFilter) Match(o models.Order) bool {
	if f.LocationID != "" && o.LocationID != f.LocationID {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if !f.CreatedFrom.IsZero() && o.CreatedAt.Before(f.CreatedFrom) {
		return false
	}
	if !f.CreatedTo.IsZero() && o.CreatedAt.After(f.CreatedTo) {
		return false
	}
	return true
}

// ReservationFilter selects reservations for a location, optionally within
// [From, To).
type ReservationFilter struct {
	LocationID string
	From       time.Time
	To         time.Time
}

// Match reports whether r passes the filter. From is inclusive, To exclusive.
func (f ReservationFilter) Match(r models.Reservation) bool {
	if f.LocationID != "" && r.LocationID != f.LocationID {
		return false
	}
	if !f.From.IsZero() && r.ReservationDate.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !r.ReservationDate.Before(f.To) {
		return false
	}
	return true
}

type LocationRepository interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	GetLocation(ctx context.Context, id string) (models.Location, error)
	CreateLocation(ctx context.Context, in models.NewLocation) (models.Location, error)
	UpdateLocation(ctx context.Context, id string, p models.LocationPatch) (models.Location, error)
}

type MenuRepository interface {
	ListMenuCategories(ctx context.Context) ([]models.MenuCategory, error)
	GetMenuCategory(ctx context.Context, id string) (models.MenuCategory, error)
	CreateMenuCategory(ctx context.Context, in models.NewMenuCategory) (models.MenuCategory, error)
	UpdateMenuCategory(ctx context.Context, id string, p models.MenuCategoryPatch) (models.MenuCategory, error)

	// ListMenuItems filters by category when categoryID is not empty.
	ListMenuItems(ctx context.Context, categoryID string) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (models.MenuItem, error)
	CreateMenuItem(ctx context.Context, in models.NewMenuItem) (models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, p models.MenuItemPatch) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
}

type FloorRepository interface {
	ListAreas(ctx context.Context, locationID string) ([]models.Area, error)
	GetArea(ctx context.Context, id string) (models.Area, error)
	CreateArea(ctx context.Context, in models.NewArea) (models.Area, error)
	UpdateArea(ctx context.Context, id string, p models.AreaPatch) (models.Area, error)

	ListTables(ctx context.Context, locationID string) ([]models.Table, error)
	GetTable(ctx context.Context, id string) (models.Table, error)
	CreateTable(ctx context.Context, in models.NewTable) (models.Table, error)
	UpdateTable(ctx context.Context, id string, p models.TablePatch) (models.Table, error)
}

type OrderRepository interface {
	ListOrders(ctx context.Context, f OrderFilter) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
	// CreateOrder stores the order and its lines in a single call.
	CreateOrder(ctx context.Context, in models.NewOrder, items []models.NewOrderItem) (models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error)
	// ListOrderItems returns the lines of the given orders, grouped by order
	// and in the order they were submitted.
	ListOrderItems(ctx context.Context, orderIDs ...string) ([]models.OrderItem, error)
}

type StaffRepository interface {
	// ListStaff filters by location when locationID is not empty.
	ListStaff(ctx context.Context, locationID string) ([]models.Staff, error)
	GetStaff(ctx context.Context, id string) (models.Staff, error)
	CreateStaff(ctx context.Context, in models.NewStaff) (models.Staff, error)
	UpdateStaff(ctx context.Context, id string, p models.StaffPatch) (models.Staff, error)
}

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)
	CreateCustomer(ctx context.Context, in models.NewCustomer) (models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, p models.CustomerPatch) (models.Customer, error)
}

type ReservationRepository interface {
	ListReservations(ctx context.Context, f ReservationFilter) ([]models.Reservation, error)
	GetReservation(ctx context.Context, id string) (models.Reservation, error)
	CreateReservation(ctx context.Context, in models.NewReservation) (models.Reservation, error)
	UpdateReservation(ctx context.Context, id string, p models.ReservationPatch) (models.Reservation, error)
}

type PaymentRepository interface {
	ListPayments(ctx context.Context, orderID string) ([]models.Payment, error)
	GetPayment(ctx context.Context, id string) (models.Payment, error)
	CreatePayment(ctx context.Context, in models.NewPayment) (models.Payment, error)
}

type SettingsRepository interface {
	// ListSettings filters by location when locationID is not empty.
	ListSettings(ctx context.Context, locationID string) ([]models.RestaurantSettings, error)
	GetSettings(ctx context.Context, id string) (models.RestaurantSettings, error)
	CreateSettings(ctx context.Context, in models.NewRestaurantSettings) (models.RestaurantSettings, error)
	UpdateSettings(ctx context.Context, id string, p models.RestaurantSettingsPatch) (models.RestaurantSettings, error)
}

// Repository is the full persistence contract. Implementations own their
// storage exclusively and release it on Close.
type Repository interface {
	LocationRepository
	MenuRepository
	FloorRepository
	OrderRepository
	StaffRepository
	CustomerRepository
	ReservationRepository
	PaymentRepository
	SettingsRepository
	Close() error
}

// Clock supplies timestamps to a backend. Stored times are UTC with
// microsecond precision so both backends round-trip them identically.
type Clock func() time.Time

// SystemClock is the default Clock.
func SystemClock() time.Time {
	return Stamp(time.Now())
}

// Stamp normalizes t to the precision every backend can store.
func Stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
