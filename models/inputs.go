package models

import "time"

// Insert shapes. Pointer fields are optional; a nil pointer picks up the
// default in Build.

const (
	DefaultPrimaryColor = "#ea580c"
	DefaultTaxRate      = "0.10"
	DefaultCurrency     = "USD"
)

type NewLocation struct {
	Name    string  `json:"name" binding:"required"`
	Address string  `json:"address" binding:"required"`
	Phone   *string `json:"phone"`
	Active  *bool   `json:"active"`
}

func (in NewLocation) Build(id string, now time.Time) Location {
	return Location{
		ID:        id,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Active:    boolOr(in.Active, true),
		CreatedAt: now,
	}
}

type NewMenuCategory struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder *int   `json:"displayOrder"`
}

func (in NewMenuCategory) Build(id string) MenuCategory {
	c := MenuCategory{ID: id, Name: in.Name}
	if in.DisplayOrder != nil {
		c.DisplayOrder = *in.DisplayOrder
	}
	return c
}

type NewMenuItem struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       string  `json:"price" binding:"required,money"`
	CategoryID  *string `json:"categoryId"`
	ImageURL    *string `json:"imageUrl"`
	Available   *bool   `json:"available"`
}

func (in NewMenuItem) Build(id string, now time.Time) MenuItem {
	return MenuItem{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       Money(in.Price),
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
		Available:   boolOr(in.Available, true),
		CreatedAt:   now,
	}
}

type NewArea struct {
	LocationID  string  `json:"locationId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (in NewArea) Build(id string) Area {
	return Area{ID: id, LocationID: in.LocationID, Name: in.Name, Description: in.Description}
}

type NewTable struct {
	LocationID       string       `json:"locationId" binding:"required"`
	AreaID           *string      `json:"areaId"`
	TableNumber      string       `json:"tableNumber" binding:"required"`
	Capacity         int          `json:"capacity" binding:"required,gt=0"`
	Status           *TableStatus `json:"status" binding:"omitempty,oneof=available occupied reserved cleaning"`
	CurrentPartySize *int         `json:"currentPartySize" binding:"omitempty,gte=0"`
	ServerID         *string      `json:"serverId"`
}

func (in NewTable) Build(id string) Table {
	t := Table{
		ID:               id,
		LocationID:       in.LocationID,
		AreaID:           in.AreaID,
		TableNumber:      in.TableNumber,
		Capacity:         in.Capacity,
		Status:           TableAvailable,
		CurrentPartySize: in.CurrentPartySize,
		ServerID:         in.ServerID,
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	return t
}

type NewStaff struct {
	Name       string    `json:"name" binding:"required"`
	Email      string    `json:"email" binding:"required,email"`
	Role       StaffRole `json:"role" binding:"required,oneof=admin manager server chef host"`
	LocationID *string   `json:"locationId"`
	Active     *bool     `json:"active"`
}

func (in NewStaff) Build(id string, now time.Time) Staff {
	return Staff{
		ID:         id,
		Name:       in.Name,
		Email:      in.Email,
		Role:       in.Role,
		LocationID: in.LocationID,
		Active:     boolOr(in.Active, true),
		CreatedAt:  now,
	}
}

type NewCustomer struct {
	Name        string  `json:"name" binding:"required"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	TotalVisits *int    `json:"totalVisits" binding:"omitempty,gte=0"`
	TotalSpent  *string `json:"totalSpent" binding:"omitempty,money"`
	Notes       *string `json:"notes"`
}

func (in NewCustomer) Build(id string, now time.Time) Customer {
	c := Customer{
		ID:         id,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		TotalSpent: "0.00",
		Notes:      in.Notes,
		CreatedAt:  now,
	}
	if in.TotalVisits != nil {
		c.TotalVisits = *in.TotalVisits
	}
	if in.TotalSpent != nil {
		c.TotalSpent = Money(*in.TotalSpent)
	}
	return c
}

// NewOrder carries the caller's totals as-is. OrderNumber is assigned by the
// order service and overwrites anything the client sent.
type NewOrder struct {
	OrderNumber string       `json:"orderNumber"`
	LocationID  string       `json:"locationId" binding:"required"`
	TableID     *string      `json:"tableId"`
	CustomerID  *string      `json:"customerId"`
	ServerID    *string      `json:"serverId"`
	Status      *OrderStatus `json:"status" binding:"omitempty,oneof=new preparing ready completed cancelled"`
	Subtotal    string       `json:"subtotal" binding:"required,money"`
	Tax         string       `json:"tax" binding:"required,money"`
	Total       string       `json:"total" binding:"required,money"`
	Notes       *string      `json:"notes"`
}

func (in NewOrder) Build(id string, now time.Time) Order {
	o := Order{
		ID:          id,
		OrderNumber: in.OrderNumber,
		LocationID:  in.LocationID,
		TableID:     in.TableID,
		CustomerID:  in.CustomerID,
		ServerID:    in.ServerID,
		Status:      OrderNew,
		Subtotal:    Money(in.Subtotal),
		Tax:         Money(in.Tax),
		Total:       Money(in.Total),
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Status != nil {
		o.Status = *in.Status
	}
	return o
}

type NewOrderItem struct {
	MenuItemID string  `json:"menuItemId" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,gt=0"`
	Price      string  `json:"price" binding:"required,money"`
	Notes      *string `json:"notes"`
}

// Build ties the line to its order. position keeps lines in request order.
func (in NewOrderItem) Build(id, orderID string, position int) OrderItem {
	return OrderItem{
		ID:         id,
		OrderID:    orderID,
		MenuItemID: in.MenuItemID,
		Quantity:   in.Quantity,
		Price:      Money(in.Price),
		Notes:      in.Notes,
		Position:   position,
	}
}

type NewPayment struct {
	OrderID       string         `json:"orderId" binding:"required"`
	Amount        string         `json:"amount" binding:"required,money"`
	Method        PaymentMethod  `json:"method" binding:"required,oneof=cash card split"`
	Status        *PaymentStatus `json:"status" binding:"omitempty,oneof=pending completed partial refunded"`
	TransactionID *string        `json:"transactionId"`
}

func (in NewPayment) Build(id string, now time.Time) Payment {
	p := Payment{
		ID:            id,
		OrderID:       in.OrderID,
		Amount:        Money(in.Amount),
		Method:        in.Method,
		Status:        PaymentPending,
		TransactionID: in.TransactionID,
		CreatedAt:     now,
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	return p
}

type NewReservation struct {
	LocationID      string             `json:"locationId" binding:"required"`
	CustomerID      *string            `json:"customerId"`
	TableID         *string            `json:"tableId"`
	CustomerName    string             `json:"customerName" binding:"required"`
	CustomerPhone   *string            `json:"customerPhone"`
	CustomerEmail   *string            `json:"customerEmail" binding:"omitempty,email"`
	PartySize       int                `json:"partySize" binding:"required,gt=0"`
	ReservationDate time.Time          `json:"reservationDate" binding:"required"`
	Status          *ReservationStatus `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes           *string            `json:"notes"`
}

func (in NewReservation) Build(id string, now time.Time) Reservation {
	r := Reservation{
		ID:              id,
		LocationID:      in.LocationID,
		CustomerID:      in.CustomerID,
		TableID:         in.TableID,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		PartySize:       in.PartySize,
		ReservationDate: in.ReservationDate.UTC(),
		Status:          ReservationPending,
		Notes:           in.Notes,
		CreatedAt:       now,
	}
	if in.Status != nil {
		r.Status = *in.Status
	}
	return r
}

type NewRestaurantSettings struct {
	LocationID     *string `json:"locationId"`
	RestaurantName string  `json:"restaurantName" binding:"required"`
	LogoURL        *string `json:"logoUrl"`
	PrimaryColor   *string `json:"primaryColor" binding:"omitempty,hexcolor"`
	Tagline        *string `json:"tagline"`
	TaxRate        *string `json:"taxRate" binding:"omitempty,decimal"`
	Currency       *string `json:"currency" binding:"omitempty,len=3"`
}

func (in NewRestaurantSettings) Build(id string, now time.Time) RestaurantSettings {
	return RestaurantSettings{
		ID:             id,
		LocationID:     in.LocationID,
		RestaurantName: in.RestaurantName,
		LogoURL:        in.LogoURL,
		PrimaryColor:   stringOr(in.PrimaryColor, DefaultPrimaryColor),
		Tagline:        in.Tagline,
		TaxRate:        stringOr(in.TaxRate, DefaultTaxRate),
		Currency:       stringOr(in.Currency, DefaultCurrency),
		UpdatedAt:      now,
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func stringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
