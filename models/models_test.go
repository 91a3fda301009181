package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)

func TestMenuItemDefaults(t *testing.T) {
	item := NewMenuItem{Name: "Pizza", Price: "10"}.Build("m1", epoch)

	assert.True(t, item.Available)
	assert.Equal(t, epoch, item.CreatedAt)
	assert.Equal(t, "10.00", item.Price)
	assert.Nil(t, item.CategoryID)
}

func TestMenuItemExplicitUnavailable(t *testing.T) {
	off := false
	item := NewMenuItem{Name: "Soup", Price: "4.5", Available: &off}.Build("m2", epoch)

	assert.False(t, item.Available)
	assert.Equal(t, "4.50", item.Price)
}

func TestEntityDefaults(t *testing.T) {
	table := NewTable{LocationID: "l1", TableNumber: "A1", Capacity: 4}.Build("t1")
	assert.Equal(t, TableAvailable, table.Status)

	customer := NewCustomer{Name: "Ana"}.Build("c1", epoch)
	assert.Equal(t, 0, customer.TotalVisits)
	assert.Equal(t, "0.00", customer.TotalSpent)

	order := NewOrder{LocationID: "l1", Subtotal: "20", Tax: "2", Total: "22"}.Build("o1", epoch)
	assert.Equal(t, OrderNew, order.Status)
	assert.Equal(t, "22.00", order.Total)
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)

	res := NewReservation{LocationID: "l1", CustomerName: "Bo", PartySize: 2, ReservationDate: epoch}.Build("r1", epoch)
	assert.Equal(t, ReservationPending, res.Status)

	pay := NewPayment{OrderID: "o1", Amount: "22", Method: PaymentCard}.Build("p1", epoch)
	assert.Equal(t, PaymentPending, pay.Status)

	settings := NewRestaurantSettings{RestaurantName: "Trattoria"}.Build("s1", epoch)
	assert.Equal(t, DefaultPrimaryColor, settings.PrimaryColor)
	assert.Equal(t, DefaultTaxRate, settings.TaxRate)
	assert.Equal(t, DefaultCurrency, settings.Currency)

	loc := NewLocation{Name: "Downtown", Address: "1 Main St"}.Build("l1", epoch)
	assert.True(t, loc.Active)

	staff := NewStaff{Name: "Sam", Email: "sam@example.com", Role: RoleServer}.Build("st1", epoch)
	assert.True(t, staff.Active)
}

func TestOptionalDistinguishesAbsentFromNull(t *testing.T) {
	var p TablePatch
	require.NoError(t, json.Unmarshal([]byte(`{"currentPartySize": null, "status": "occupied"}`), &p))

	assert.True(t, p.CurrentPartySize.IsNull())
	assert.True(t, p.Status.Set)
	assert.False(t, p.ServerID.Set)

	size := 3
	server := "st1"
	table := Table{Status: TableAvailable, CurrentPartySize: &size, ServerID: &server}
	p.Apply(&table)

	assert.Equal(t, TableOccupied, table.Status)
	assert.Nil(t, table.CurrentPartySize)
	require.NotNil(t, table.ServerID)
	assert.Equal(t, "st1", *table.ServerID)
}

func TestPatchValidate(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{"empty patch", `{}`, true},
		{"null nullable field", `{"description": null}`, true},
		{"null required field", `{"name": null}`, false},
		{"bad price", `{"price": "ten"}`, false},
		{"negative price", `{"price": "-1"}`, false},
		{"good price", `{"price": "12.5"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p MenuItemPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			err := p.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, IsValidationError(err))
			}
		})
	}
}

func TestValidateInsert(t *testing.T) {
	err := Validate(NewOrder{Subtotal: "1", Tax: "0", Total: "1"})
	require.Error(t, err)
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "locationId", ve.Field)

	assert.NoError(t, Validate(NewOrderItem{MenuItemID: "m1", Quantity: 2, Price: "10.00"}))
	assert.Error(t, Validate(NewOrderItem{MenuItemID: "m1", Quantity: 0, Price: "10.00"}))
}

func TestParseOrderStatus(t *testing.T) {
	st, err := ParseOrderStatus("ready")
	require.NoError(t, err)
	assert.Equal(t, OrderReady, st)

	_, err = ParseOrderStatus("served")
	assert.True(t, IsValidationError(err))
}

func TestOrderWithItemsOmitsDanglingRefs(t *testing.T) {
	view := OrderWithItems{
		Order: Order{ID: "o1", Total: "22.00"},
		Items: []OrderLine{{OrderItem: OrderItem{ID: "i1", Quantity: 2}}},
	}
	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "22.00", decoded["total"])
	assert.NotContains(t, decoded, "table")
	assert.NotContains(t, decoded, "customer")

	items := decoded["items"].([]any)
	assert.NotContains(t, items[0].(map[string]any), "menuItem")
}
