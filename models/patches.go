package models

import (
	"errors"
	"time"
)

// Patches describe PATCH bodies. Absent keys leave a field untouched, null
// clears a nullable field, and null on a required field fails Validate.

type LocationPatch struct {
	Name    Optional[string] `json:"name"`
	Address Optional[string] `json:"address"`
	Phone   Optional[string] `json:"phone"`
	Active  Optional[bool]   `json:"active"`
}

func (p LocationPatch) Validate() error {
	return errors.Join(
		check("name", p.Name, false, "min=1"),
		check("address", p.Address, false, "min=1"),
		check("phone", p.Phone, true, ""),
		check("active", p.Active, false, ""),
	)
}

func (p LocationPatch) Apply(l *Location) {
	p.Name.assign(&l.Name)
	p.Address.assign(&l.Address)
	p.Phone.assignNullable(&l.Phone)
	p.Active.assign(&l.Active)
}

type MenuCategoryPatch struct {
	Name         Optional[string] `json:"name"`
	DisplayOrder Optional[int]    `json:"displayOrder"`
}

func (p MenuCategoryPatch) Validate() error {
	return errors.Join(
		check("name", p.Name, false, "min=1"),
		check("displayOrder", p.DisplayOrder, false, ""),
	)
}

func (p MenuCategoryPatch) Apply(c *MenuCategory) {
	p.Name.assign(&c.Name)
	p.DisplayOrder.assign(&c.DisplayOrder)
}

type MenuItemPatch struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
	Price       Optional[string] `json:"price"`
	CategoryID  Optional[string] `json:"categoryId"`
	ImageURL    Optional[string] `json:"imageUrl"`
	Available   Optional[bool]   `json:"available"`
}

func (p MenuItemPatch) Validate() error {
	return errors.Join(
		check("name", p.Name, false, "min=1"),
		check("price", p.Price, false, "money"),
		check("available", p.Available, false, ""),
	)
}

func (p MenuItemPatch) Apply(m *MenuItem) {
	p.Name.assign(&m.Name)
	p.Description.assignNullable(&m.Description)
	if p.Price.Set && p.Price.Value != nil {
		m.Price = Money(*p.Price.Value)
	}
	p.CategoryID.assignNullable(&m.CategoryID)
	p.ImageURL.assignNullable(&m.ImageURL)
	p.Available.assign(&m.Available)
}

type AreaPatch struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
}

func (p AreaPatch) Validate() error {
	return check("name", p.Name, false, "min=1")
}

func (p AreaPatch) Apply(a *Area) {
	p.Name.assign(&a.Name)
	p.Description.assignNullable(&a.Description)
}

// TablePatch leaves status and party size independent of each other.
type TablePatch struct {
	AreaID           Optional[string]      `json:"areaId"`
	TableNumber      Optional[string]      `json:"tableNumber"`
	Capacity         Optional[int]         `json:"capacity"`
	Status           Optional[TableStatus] `json:"status"`
	CurrentPartySize Optional[int]         `json:"currentPartySize"`
	ServerID         Optional[string]      `json:"serverId"`
}

func (p TablePatch) Validate() error {
	return errors.Join(
		check("tableNumber", p.TableNumber, false, "min=1"),
		check("capacity", p.Capacity, false, "gt=0"),
		check("status", p.Status, false, "oneof=available occupied reserved cleaning"),
		check("currentPartySize", p.CurrentPartySize, true, "gte=0"),
	)
}

func (p TablePatch) Apply(t *Table) {
	p.AreaID.assignNullable(&t.AreaID)
	p.TableNumber.assign(&t.TableNumber)
	p.Capacity.assign(&t.Capacity)
	p.Status.assign(&t.Status)
	p.CurrentPartySize.assignNullable(&t.CurrentPartySize)
	p.ServerID.assignNullable(&t.ServerID)
}

type StaffPatch struct {
	Name       Optional[string]    `json:"name"`
	Email      Optional[string]    `json:"email"`
	Role       Optional[StaffRole] `json:"role"`
	LocationID Optional[string]    `json:"locationId"`
	Active     Optional[bool]      `json:"active"`
}

func (p StaffPatch) Validate() error {
	return errors.Join(
		check("name", p.Name, false, "min=1"),
		check("email", p.Email, false, "email"),
		check("role", p.Role, false, "oneof=admin manager server chef host"),
		check("active", p.Active, false, ""),
	)
}

func (p StaffPatch) Apply(s *Staff) {
	p.Name.assign(&s.Name)
	p.Email.assign(&s.Email)
	p.Role.assign(&s.Role)
	p.LocationID.assignNullable(&s.LocationID)
	p.Active.assign(&s.Active)
}

// CustomerPatch is the only way the visit and spend accumulators change.
type CustomerPatch struct {
	Name        Optional[string] `json:"name"`
	Email       Optional[string] `json:"email"`
	Phone       Optional[string] `json:"phone"`
	TotalVisits Optional[int]    `json:"totalVisits"`
	TotalSpent  Optional[string] `json:"totalSpent"`
	Notes       Optional[string] `json:"notes"`
}

func (p CustomerPatch) Validate() error {
	return errors.Join(
		check("name", p.Name, false, "min=1"),
		check("email", p.Email, true, "email"),
		check("totalVisits", p.TotalVisits, false, "gte=0"),
		check("totalSpent", p.TotalSpent, false, "money"),
	)
}

func (p CustomerPatch) Apply(c *Customer) {
	p.Name.assign(&c.Name)
	p.Email.assignNullable(&c.Email)
	p.Phone.assignNullable(&c.Phone)
	p.TotalVisits.assign(&c.TotalVisits)
	if p.TotalSpent.Set && p.TotalSpent.Value != nil {
		c.TotalSpent = Money(*p.TotalSpent.Value)
	}
	p.Notes.assignNullable(&c.Notes)
}

type ReservationPatch struct {
	CustomerID      Optional[string]            `json:"customerId"`
	TableID         Optional[string]            `json:"tableId"`
	CustomerName    Optional[string]            `json:"customerName"`
	CustomerPhone   Optional[string]            `json:"customerPhone"`
	CustomerEmail   Optional[string]            `json:"customerEmail"`
	PartySize       Optional[int]               `json:"partySize"`
	ReservationDate Optional[time.Time]         `json:"reservationDate"`
	Status          Optional[ReservationStatus] `json:"status"`
	Notes           Optional[string]            `json:"notes"`
}

func (p ReservationPatch) Validate() error {
	return errors.Join(
		check("customerName", p.CustomerName, false, "min=1"),
		check("customerEmail", p.CustomerEmail, true, "email"),
		check("partySize", p.PartySize, false, "gt=0"),
		check("reservationDate", p.ReservationDate, false, ""),
		check("status", p.Status, false, "oneof=pending confirmed cancelled completed"),
	)
}

func (p ReservationPatch) Apply(r *Reservation) {
	p.CustomerID.assignNullable(&r.CustomerID)
	p.TableID.assignNullable(&r.TableID)
	p.CustomerName.assign(&r.CustomerName)
	p.CustomerPhone.assignNullable(&r.CustomerPhone)
	p.CustomerEmail.assignNullable(&r.CustomerEmail)
	p.PartySize.assign(&r.PartySize)
	if p.ReservationDate.Set && p.ReservationDate.Value != nil {
		r.ReservationDate = p.ReservationDate.Value.UTC()
	}
	p.Status.assign(&r.Status)
	p.Notes.assignNullable(&r.Notes)
}

type RestaurantSettingsPatch struct {
	LocationID     Optional[string] `json:"locationId"`
	RestaurantName Optional[string] `json:"restaurantName"`
	LogoURL        Optional[string] `json:"logoUrl"`
	PrimaryColor   Optional[string] `json:"primaryColor"`
	Tagline        Optional[string] `json:"tagline"`
	TaxRate        Optional[string] `json:"taxRate"`
	Currency       Optional[string] `json:"currency"`
}

func (p RestaurantSettingsPatch) Validate() error {
	return errors.Join(
		check("restaurantName", p.RestaurantName, false, "min=1"),
		check("primaryColor", p.PrimaryColor, false, "hexcolor"),
		check("taxRate", p.TaxRate, false, "decimal"),
		check("currency", p.Currency, false, "len=3"),
	)
}

// Apply also refreshes UpdatedAt.
func (p RestaurantSettingsPatch) Apply(s *RestaurantSettings, now time.Time) {
	p.LocationID.assignNullable(&s.LocationID)
	p.RestaurantName.assign(&s.RestaurantName)
	p.LogoURL.assignNullable(&s.LogoURL)
	p.PrimaryColor.assign(&s.PrimaryColor)
	p.Tagline.assignNullable(&s.Tagline)
	p.TaxRate.assign(&s.TaxRate)
	p.Currency.assign(&s.Currency)
	s.UpdatedAt = now
}
