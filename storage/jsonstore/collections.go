package jsonstore

import (
	"cmp"
	"strings"

	"github.com/judyrop/restaurant-pos/models"
)

var (
	locations      collection[models.Location]           = func(d *document) *[]models.Location { return &d.Locations }
	menuCategories collection[models.MenuCategory]       = func(d *document) *[]models.MenuCategory { return &d.MenuCategories }
	menuItems      collection[models.MenuItem]           = func(d *document) *[]models.MenuItem { return &d.MenuItems }
	areas          collection[models.Area]               = func(d *document) *[]models.Area { return &d.Areas }
	tables         collection[models.Table]              = func(d *document) *[]models.Table { return &d.Tables }
	orders         collection[models.Order]              = func(d *document) *[]models.Order { return &d.Orders }
	orderItems     collection[models.OrderItem]          = func(d *document) *[]models.OrderItem { return &d.OrderItems }
	staff          collection[models.Staff]              = func(d *document) *[]models.Staff { return &d.Staff }
	customers      collection[models.Customer]           = func(d *document) *[]models.Customer { return &d.Customers }
	reservations   collection[models.Reservation]        = func(d *document) *[]models.Reservation { return &d.Reservations }
	payments       collection[models.Payment]            = func(d *document) *[]models.Payment { return &d.Payments }
	settings       collection[models.RestaurantSettings] = func(d *document) *[]models.RestaurantSettings { return &d.RestaurantSettings }
)

func locationKey(v models.Location) string { return v.ID }
func menuCategoryKey(v models.MenuCategory) string { return v.ID }
func menuItemKey(v models.MenuItem) string { return v.ID }
func areaKey(v models.Area) string { return v.ID }
func tableKey(v models.Table) string { return v.ID }
func orderKey(v models.Order) string { return v.ID }
func staffKey(v models.Staff) string { return v.ID }
func customerKey(v models.Customer) string { return v.ID }
func reservationKey(v models.Reservation) string { return v.ID }
func paymentKey(v models.Payment) string { return v.ID }
func settingsKey(v models.RestaurantSettings) string { return v.ID }

// Orderings mirror the ORDER BY clauses of the relational backend.

func byLocationCreated(a, b models.Location) int {
	return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), strings.Compare(a.ID, b.ID))
}

func byDisplayOrder(a, b models.MenuCategory) int {
	return cmp.Or(cmp.Compare(a.DisplayOrder, b.DisplayOrder), strings.Compare(a.ID, b.ID))
}

func byMenuItemCreated(a, b models.MenuItem) int {
	return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), strings.Compare(a.ID, b.ID))
}

func byAreaName(a, b models.Area) int {
	return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.ID, b.ID))
}

func byTableNumber(a, b models.Table) int {
	return cmp.Or(strings.Compare(a.TableNumber, b.TableNumber), strings.Compare(a.ID, b.ID))
}

func byOrderNewest(a, b models.Order) int {
	return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(b.ID, a.ID))
}

func byStaffCreated(a, b models.Staff) int {
	return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), strings.Compare(a.ID, b.ID))
}

func byCustomerNewest(a, b models.Customer) int {
	return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(b.ID, a.ID))
}

func byReservationDate(a, b models.Reservation) int {
	return cmp.Or(a.ReservationDate.Compare(b.ReservationDate), strings.Compare(a.ID, b.ID))
}

func byPaymentCreated(a, b models.Payment) int {
	return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), strings.Compare(a.ID, b.ID))
}

func bySettingsID(a, b models.RestaurantSettings) int {
	return strings.Compare(a.ID, b.ID)
}
