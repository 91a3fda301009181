package models

// Read models. A reference that cannot be resolved is left nil and dropped
// from the JSON output.

type OrderLine struct {
	OrderItem
	MenuItem *MenuItem `json:"menuItem,omitempty"`
}

type OrderWithItems struct {
	Order
	Items    []OrderLine `json:"items"`
	Table    *Table      `json:"table,omitempty"`
	Customer *Customer   `json:"customer,omitempty"`
	Server   *Staff      `json:"server,omitempty"`
}

type TableWithDetails struct {
	Table
	Area   *Area  `json:"area,omitempty"`
	Server *Staff `json:"server,omitempty"`
}

type ReservationWithDetails struct {
	Reservation
	Customer *Customer `json:"customer,omitempty"`
	Table    *Table    `json:"table,omitempty"`
}

type DailySales struct {
	Date   string  `json:"date"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

type SalesData struct {
	TotalRevenue      float64      `json:"totalRevenue"`
	TotalOrders       int          `json:"totalOrders"`
	AverageOrderValue float64      `json:"averageOrderValue"`
	DailySales        []DailySales `json:"dailySales"`
}
