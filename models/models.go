package models

import "time"

type OrderStatus string

const (
	OrderNew       OrderStatus = "new"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableCleaning  TableStatus = "cleaning"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

type StaffRole string

const (
	RoleAdmin   StaffRole = "admin"
	RoleManager StaffRole = "manager"
	RoleServer  StaffRole = "server"
	RoleChef    StaffRole = "chef"
	RoleHost    StaffRole = "host"
)

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentSplit PaymentMethod = "split"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentPartial   PaymentStatus = "partial"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Fields ending in Ref exist only so gorm can declare foreign keys.
// They are never loaded and never serialized.

type Location struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `gorm:"not null" json:"address"`
	Phone     *string   `json:"phone"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
}

type MenuCategory struct {
	ID           string `gorm:"primaryKey;size:64" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	DisplayOrder int    `gorm:"not null" json:"displayOrder"`
}

type MenuItem struct {
	ID          string        `gorm:"primaryKey;size:64" json:"id"`
	Name        string        `gorm:"not null" json:"name"`
	Description *string       `json:"description"`
	Price       string        `gorm:"type:varchar(32);not null" json:"price"`
	CategoryID  *string       `gorm:"size:64;index" json:"categoryId"`
	CategoryRef *MenuCategory `gorm:"foreignKey:CategoryID" json:"-"`
	ImageURL    *string       `json:"imageUrl"`
	Available   bool          `gorm:"not null" json:"available"`
	CreatedAt   time.Time     `gorm:"autoCreateTime:false" json:"createdAt"`
}

type Area struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	LocationID  string    `gorm:"size:64;not null;index" json:"locationId"`
	LocationRef *Location `gorm:"foreignKey:LocationID" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description"`
}

// Table.ServerID is a plain staff id with no constraint.
type Table struct {
	ID               string      `gorm:"primaryKey;size:64" json:"id"`
	LocationID       string      `gorm:"size:64;not null;index" json:"locationId"`
	LocationRef      *Location   `gorm:"foreignKey:LocationID" json:"-"`
	AreaID           *string     `gorm:"size:64" json:"areaId"`
	AreaRef          *Area       `gorm:"foreignKey:AreaID" json:"-"`
	TableNumber      string      `gorm:"not null" json:"tableNumber"`
	Capacity         int         `gorm:"not null" json:"capacity"`
	Status           TableStatus `gorm:"type:varchar(16);not null" json:"status"`
	CurrentPartySize *int        `json:"currentPartySize"`
	ServerID         *string     `gorm:"size:64" json:"serverId"`
}

type Staff struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Role        StaffRole `gorm:"type:varchar(16);not null" json:"role"`
	LocationID  *string   `gorm:"size:64;index" json:"locationId"`
	LocationRef *Location `gorm:"foreignKey:LocationID" json:"-"`
	Active      bool      `gorm:"not null" json:"active"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
}

func (Staff) TableName() string { return "staff" }

type Customer struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	TotalVisits int       `gorm:"not null" json:"totalVisits"`
	TotalSpent  string    `gorm:"type:varchar(32);not null" json:"totalSpent"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
}

type Order struct {
	ID          string      `gorm:"primaryKey;size:64" json:"id"`
	OrderNumber string      `gorm:"uniqueIndex;not null" json:"orderNumber"`
	LocationID  string      `gorm:"size:64;not null;index" json:"locationId"`
	LocationRef *Location   `gorm:"foreignKey:LocationID" json:"-"`
	TableID     *string     `gorm:"size:64" json:"tableId"`
	TableRef    *Table      `gorm:"foreignKey:TableID" json:"-"`
	CustomerID  *string     `gorm:"size:64" json:"customerId"`
	CustomerRef *Customer   `gorm:"foreignKey:CustomerID" json:"-"`
	ServerID    *string     `gorm:"size:64" json:"serverId"`
	ServerRef   *Staff      `gorm:"foreignKey:ServerID" json:"-"`
	Status      OrderStatus `gorm:"type:varchar(16);not null;index" json:"status"`
	Subtotal    string      `gorm:"type:varchar(32);not null" json:"subtotal"`
	Tax         string      `gorm:"type:varchar(32);not null" json:"tax"`
	Total       string      `gorm:"type:varchar(32);not null" json:"total"`
	Notes       *string     `json:"notes"`
	CreatedAt   time.Time   `gorm:"autoCreateTime:false;index" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// OrderItem.MenuItemID carries no constraint so menu items stay deletable
// while orders still reference them.
type OrderItem struct {
	ID         string  `gorm:"primaryKey;size:64" json:"id"`
	OrderID    string  `gorm:"size:64;not null;index" json:"orderId"`
	OrderRef   *Order  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	MenuItemID string  `gorm:"size:64;not null" json:"menuItemId"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	Price      string  `gorm:"type:varchar(32);not null" json:"price"`
	Notes      *string `json:"notes"`
	Position   int     `gorm:"not null" json:"-"`
}

type Payment struct {
	ID            string        `gorm:"primaryKey;size:64" json:"id"`
	OrderID       string        `gorm:"size:64;not null;index" json:"orderId"`
	OrderRef      *Order        `gorm:"foreignKey:OrderID" json:"-"`
	Amount        string        `gorm:"type:varchar(32);not null" json:"amount"`
	Method        PaymentMethod `gorm:"type:varchar(16);not null" json:"method"`
	Status        PaymentStatus `gorm:"type:varchar(16);not null" json:"status"`
	TransactionID *string       `json:"transactionId"`
	CreatedAt     time.Time     `gorm:"autoCreateTime:false" json:"createdAt"`
}

type Reservation struct {
	ID              string            `gorm:"primaryKey;size:64" json:"id"`
	LocationID      string            `gorm:"size:64;not null;index" json:"locationId"`
	LocationRef     *Location         `gorm:"foreignKey:LocationID" json:"-"`
	CustomerID      *string           `gorm:"size:64" json:"customerId"`
	CustomerRef     *Customer         `gorm:"foreignKey:CustomerID" json:"-"`
	TableID         *string           `gorm:"size:64" json:"tableId"`
	TableRef        *Table            `gorm:"foreignKey:TableID" json:"-"`
	CustomerName    string            `gorm:"not null" json:"customerName"`
	CustomerPhone   *string           `json:"customerPhone"`
	CustomerEmail   *string           `json:"customerEmail"`
	PartySize       int               `gorm:"not null" json:"partySize"`
	ReservationDate time.Time         `gorm:"not null;index" json:"reservationDate"`
	Status          ReservationStatus `gorm:"type:varchar(16);not null" json:"status"`
	Notes           *string           `json:"notes"`
	CreatedAt       time.Time         `gorm:"autoCreateTime:false" json:"createdAt"`
}

// RestaurantSettings holds branding and tax configuration, one row per location.
type RestaurantSettings struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	LocationID     *string   `gorm:"size:64;uniqueIndex" json:"locationId"`
	LocationRef    *Location `gorm:"foreignKey:LocationID" json:"-"`
	RestaurantName string    `gorm:"not null" json:"restaurantName"`
	LogoURL        *string   `json:"logoUrl"`
	PrimaryColor   string    `gorm:"not null" json:"primaryColor"`
	Tagline        *string   `json:"tagline"`
	TaxRate        string    `gorm:"type:varchar(32);not null" json:"taxRate"`
	Currency       string    `gorm:"type:varchar(8);not null" json:"currency"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// All returns every persisted model in dependency order, for migrations.
func All() []any {
	return []any{
		&Location{},
		&MenuCategory{},
		&MenuItem{},
		&Area{},
		&Staff{},
		&Table{},
		&Customer{},
		&Order{},
		&OrderItem{},
		&Payment{},
		&Reservation{},
		&RestaurantSettings{},
	}
}

func (RestaurantSettings) TableName() string { return "restaurant_settings" }
