package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
)

// Factory opens a fresh, empty repository that takes its timestamps from clock.
type Factory func(t *testing.T, clock storage.Clock) storage.Repository

var start = time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// Run exercises the repository contract against open.
func Run(t *testing.T, open Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, repo storage.Repository, clock *Clock)
	}{
		{"Locations", testLocations},
		{"MenuCategoriesSortByDisplayOrder", testMenuCategories},
		{"MenuItems", testMenuItems},
		{"AreasAndTables", testAreasAndTables},
		{"OrdersRoundTrip", testOrdersRoundTrip},
		{"OrderFilters", testOrderFilters},
		{"OrderStatusUpdate", testOrderStatusUpdate},
		{"DeletedMenuItemKeepsOrderLines", testDeletedMenuItemKeepsOrderLines},
		{"Staff", testStaff},
		{"Customers", testCustomers},
		{"Reservations", testReservations},
		{"Payments", testPayments},
		{"Settings", testSettings},
		{"UnknownIDs", testUnknownIDs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewClock(start)
			repo := open(t, clock.Now)
			t.Cleanup(func() { _ = repo.Close() })
			tt.fn(t, repo, clock)
		})
	}
}

func mustLocation(t *testing.T, repo storage.Repository, name string) models.Location {
	t.Helper()
	loc, err := repo.CreateLocation(context.Background(), models.NewLocation{Name: name, Address: name + " street"})
	require.NoError(t, err)
	return loc
}

func mustMenuItem(t *testing.T, repo storage.Repository, name, price string) models.MenuItem {
	t.Helper()
	item, err := repo.CreateMenuItem(context.Background(), models.NewMenuItem{Name: name, Price: price})
	require.NoError(t, err)
	return item
}

func mustOrder(t *testing.T, repo storage.Repository, locationID, number string, items ...models.NewOrderItem) models.Order {
	t.Helper()
	o, err := repo.CreateOrder(context.Background(), models.NewOrder{
		OrderNumber: number,
		LocationID:  locationID,
		Subtotal:    "20.00",
		Tax:         "2.00",
		Total:       "22.00",
	}, items)
	require.NoError(t, err)
	return o
}

func testLocations(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	first := mustLocation(t, repo, "Downtown")
	second := mustLocation(t, repo, "West Side")

	assert.NotEmpty(t, first.ID)
	assert.True(t, first.Active)
	assert.False(t, first.CreatedAt.IsZero())

	got, err := repo.GetLocation(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Downtown", got.Name)

	updated, err := repo.UpdateLocation(ctx, second.ID, models.LocationPatch{
		Active: models.Some(false),
		Phone:  models.Some("555-0100"),
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-0100", *updated.Phone)
	assert.Equal(t, "West Side", updated.Name)

	all, err := repo.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.False(t, all[1].Active)
}

func testMenuCategories(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	three, two := 3, 2
	_, err := repo.CreateMenuCategory(ctx, models.NewMenuCategory{Name: "Desserts", DisplayOrder: &three})
	require.NoError(t, err)
	_, err = repo.CreateMenuCategory(ctx, models.NewMenuCategory{Name: "Appetizers"})
	require.NoError(t, err)
	mains, err := repo.CreateMenuCategory(ctx, models.NewMenuCategory{Name: "Main Courses", DisplayOrder: &two})
	require.NoError(t, err)

	cats, err := repo.ListMenuCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, []string{"Appetizers", "Main Courses", "Desserts"},
		[]string{cats[0].Name, cats[1].Name, cats[2].Name})

	renamed, err := repo.UpdateMenuCategory(ctx, mains.ID, models.MenuCategoryPatch{Name: models.Some("Mains")})
	require.NoError(t, err)
	assert.Equal(t, "Mains", renamed.Name)
	assert.Equal(t, 2, renamed.DisplayOrder)
}

func testMenuItems(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	cat, err := repo.CreateMenuCategory(ctx, models.NewMenuCategory{Name: "Pizza"})
	require.NoError(t, err)

	pizza, err := repo.CreateMenuItem(ctx, models.NewMenuItem{
		Name:        "Margherita",
		Price:       "10",
		CategoryID:  &cat.ID,
		Description: strPtr("tomato, basil"),
	})
	require.NoError(t, err)
	assert.True(t, pizza.Available)
	assert.Equal(t, "10.00", pizza.Price)
	assert.False(t, pizza.CreatedAt.IsZero())

	soda := mustMenuItem(t, repo, "Soda", "2.5")

	inCat, err := repo.ListMenuItems(ctx, cat.ID)
	require.NoError(t, err)
	require.Len(t, inCat, 1)
	assert.Equal(t, pizza.ID, inCat[0].ID)

	all, err := repo.ListMenuItems(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	patched, err := repo.UpdateMenuItem(ctx, pizza.ID, models.MenuItemPatch{
		Description: models.Null[string](),
		Price:       models.Some("11.5"),
		Available:   models.Some(false),
	})
	require.NoError(t, err)
	assert.Nil(t, patched.Description)
	assert.Equal(t, "11.50", patched.Price)
	assert.False(t, patched.Available)
	require.NotNil(t, patched.CategoryID)

	require.NoError(t, repo.DeleteMenuItem(ctx, soda.ID))
	_, err = repo.GetMenuItem(ctx, soda.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteMenuItem(ctx, soda.ID), storage.ErrNotFound)
}

func testAreasAndTables(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	loc := mustLocation(t, repo, "Downtown")
	other := mustLocation(t, repo, "North End")

	patio, err := repo.CreateArea(ctx, models.NewArea{LocationID: loc.ID, Name: "Patio"})
	require.NoError(t, err)
	_, err = repo.CreateArea(ctx, models.NewArea{LocationID: loc.ID, Name: "Bar"})
	require.NoError(t, err)
	_, err = repo.CreateArea(ctx, models.NewArea{LocationID: other.ID, Name: "Main"})
	require.NoError(t, err)

	got, err := repo.ListAreas(ctx, loc.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Bar", got[0].Name)
	assert.Equal(t, "Patio", got[1].Name)

	b2, err := repo.CreateTable(ctx, models.NewTable{LocationID: loc.ID, AreaID: &patio.ID, TableNumber: "B2", Capacity: 2})
	require.NoError(t, err)
	assert.Equal(t, models.TableAvailable, b2.Status)
	assert.Nil(t, b2.CurrentPartySize)

	_, err = repo.CreateTable(ctx, models.NewTable{LocationID: loc.ID, TableNumber: "A1", Capacity: 4})
	require.NoError(t, err)
	_, err = repo.CreateTable(ctx, models.NewTable{LocationID: other.ID, TableNumber: "A1", Capacity: 4})
	require.NoError(t, err)

	tables, err := repo.ListTables(ctx, loc.ID)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "A1", tables[0].TableNumber)
	assert.Equal(t, "B2", tables[1].TableNumber)

	// Status and party size move independently.
	occupied, err := repo.UpdateTable(ctx, b2.ID, models.TablePatch{Status: models.Some(models.TableOccupied)})
	require.NoError(t, err)
	assert.Equal(t, models.TableOccupied, occupied.Status)
	assert.Nil(t, occupied.CurrentPartySize)

	seated, err := repo.UpdateTable(ctx, b2.ID, models.TablePatch{CurrentPartySize: models.Some(2)})
	require.NoError(t, err)
	require.NotNil(t, seated.CurrentPartySize)
	assert.Equal(t, 2, *seated.CurrentPartySize)
	assert.Equal(t, models.TableOccupied, seated.Status)
}

func testOrdersRoundTrip(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	loc := mustLocation(t, repo, "L1")
	pizza := mustMenuItem(t, repo, "Pizza", "10.00")
	salad := mustMenuItem(t, repo, "Salad", "7.00")

	order := mustOrder(t, repo, loc.ID, "#000001",
		models.NewOrderItem{MenuItemID: pizza.ID, Quantity: 2, Price: "10.00"},
		models.NewOrderItem{MenuItemID: salad.ID, Quantity: 1, Price: "7"},
	)
	assert.Equal(t, models.OrderNew, order.Status)
	assert.Equal(t, "22.00", order.Total)
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)

	got, err := repo.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "#000001", got.OrderNumber)
	assert.Equal(t, "22.00", got.Total)
	assert.WithinDuration(t, order.CreatedAt, got.CreatedAt, 0)

	items, err := repo.ListOrderItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, pizza.ID, items[0].MenuItemID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "10.00", items[0].Price)
	assert.Equal(t, salad.ID, items[1].MenuItemID)
	assert.Equal(t, "7.00", items[1].Price)
	for _, it := range items {
		assert.Equal(t, order.ID, it.OrderID)
	}

	empty := mustOrder(t, repo, loc.ID, "#000002")
	none, err := repo.ListOrderItems(ctx, empty.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testOrderFilters(t *testing.T, repo storage.Repository, clock *Clock) {
	ctx := context.Background()
	l1 := mustLocation(t, repo, "L1")
	l2 := mustLocation(t, repo, "L2")

	clock.Set(start.Add(time.Hour))
	first := mustOrder(t, repo, l1.ID, "#1")
	clock.Set(start.Add(2 * time.Hour))
	second := mustOrder(t, repo, l1.ID, "#2")
	clock.Set(start.Add(3 * time.Hour))
	mustOrder(t, repo, l2.ID, "#3")
	clock.Set(start.Add(4 * time.Hour))
	third := mustOrder(t, repo, l1.ID, "#4")

	_, err := repo.UpdateOrderStatus(ctx, second.ID, models.OrderReady)
	require.NoError(t, err)

	all, err := repo.ListOrders(ctx, storage.OrderFilter{LocationID: l1.ID})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	ready, err := repo.ListOrders(ctx, storage.OrderFilter{LocationID: l1.ID, Status: models.OrderReady})
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, second.ID, ready[0].ID)

	// Bounds are inclusive on both ends.
	window, err := repo.ListOrders(ctx, storage.OrderFilter{
		LocationID:  l1.ID,
		CreatedFrom: first.CreatedAt,
		CreatedTo:   second.CreatedAt,
	})
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, second.ID, window[0].ID)
	assert.Equal(t, first.ID, window[1].ID)

	// Bounds written in another zone select the same instants.
	est := time.FixedZone("EST", -5*60*60)
	shifted, err := repo.ListOrders(ctx, storage.OrderFilter{
		LocationID:  l1.ID,
		CreatedFrom: first.CreatedAt.In(est),
		CreatedTo:   second.CreatedAt.Add(30 * time.Minute).In(est),
	})
	require.NoError(t, err)
	require.Len(t, shifted, 2)
	assert.Equal(t, second.ID, shifted[0].ID)
	assert.Equal(t, first.ID, shifted[1].ID)

	batch, err := repo.ListOrderItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, batch)
}

func testOrderStatusUpdate(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	loc := mustLocation(t, repo, "L1")
	order := mustOrder(t, repo, loc.ID, "#1")

	// No transition graph: new may jump straight to completed.
	done, err := repo.UpdateOrderStatus(ctx, order.ID, models.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, done.Status)
	assert.True(t, done.UpdatedAt.After(order.CreatedAt))

	again, err := repo.UpdateOrderStatus(ctx, order.ID, models.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, again.Status)

	stored, err := repo.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, stored.Status)
	assert.WithinDuration(t, again.UpdatedAt, stored.UpdatedAt, 0)
}

func testDeletedMenuItemKeepsOrderLines(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	loc := mustLocation(t, repo, "L1")
	pizza := mustMenuItem(t, repo, "Pizza", "10.00")
	order := mustOrder(t, repo, loc.ID, "#1", models.NewOrderItem{MenuItemID: pizza.ID, Quantity: 1, Price: "10.00"})

	require.NoError(t, repo.DeleteMenuItem(ctx, pizza.ID))

	items, err := repo.ListOrderItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, pizza.ID, items[0].MenuItemID)
}

func testStaff(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	loc := mustLocation(t, repo, "L1")

	sam, err := repo.CreateStaff(ctx, models.NewStaff{Name: "Sam", Email: "sam@example.com", Role: models.RoleServer, LocationID: &loc.ID})
	require.NoError(t, err)
	assert.True(t, sam.Active)
	_, err = repo.CreateStaff(ctx, models.NewStaff{Name: "Kim", Email: "kim@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	atLoc, err := repo.ListStaff(ctx, loc.ID)
	require.NoError(t, err)
	require.Len(t, atLoc, 1)
	assert.Equal(t, sam.ID, atLoc[0].ID)

	everyone, err := repo.ListStaff(ctx, "")
	require.NoError(t, err)
	assert.Len(t, everyone, 2)

	chef, err := repo.UpdateStaff(ctx, sam.ID, models.StaffPatch{Role: models.Some(models.RoleChef), LocationID: models.Null[string]()})
	require.NoError(t, err)
	assert.Equal(t, models.RoleChef, chef.Role)
	assert.Nil(t, chef.LocationID)
}

func testCustomers(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	ana, err := repo.CreateCustomer(ctx, models.NewCustomer{Name: "Ana", Email: strPtr("ana@example.com")})
	require.NoError(t, err)
	assert.Equal(t, 0, ana.TotalVisits)
	assert.Equal(t, "0.00", ana.TotalSpent)

	bo, err := repo.CreateCustomer(ctx, models.NewCustomer{Name: "Bo"})
	require.NoError(t, err)

	list, err := repo.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, bo.ID, list[0].ID)
	assert.Equal(t, ana.ID, list[1].ID)

	regular, err := repo.UpdateCustomer(ctx, ana.ID, models.CustomerPatch{
		TotalVisits: models.Some(5),
		TotalSpent:  models.Some("120.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, regular.TotalVisits)
	assert.Equal(t, "120.50", regular.TotalSpent)
	require.NotNil(t, regular.Email)
}

func testReservations(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	loc := mustLocation(t, repo, "L1")
	cust, err := repo.CreateCustomer(ctx, models.NewCustomer{Name: "Ana"})
	require.NoError(t, err)

	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	late, err := repo.CreateReservation(ctx, models.NewReservation{
		LocationID: loc.ID, CustomerName: "Late", PartySize: 2, ReservationDate: day.Add(20 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, late.Status)

	early, err := repo.CreateReservation(ctx, models.NewReservation{
		LocationID: loc.ID, CustomerID: &cust.ID, CustomerName: "Someone Else", PartySize: 4, ReservationDate: day.Add(18 * time.Hour),
	})
	require.NoError(t, err)

	nextDay, err := repo.CreateReservation(ctx, models.NewReservation{
		LocationID: loc.ID, CustomerName: "Tomorrow", PartySize: 3, ReservationDate: day.Add(30 * time.Hour),
	})
	require.NoError(t, err)

	all, err := repo.ListReservations(ctx, storage.ReservationFilter{LocationID: loc.ID})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{early.ID, late.ID, nextDay.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	onDay, err := repo.ListReservations(ctx, storage.ReservationFilter{LocationID: loc.ID, From: day, To: day.Add(24 * time.Hour)})
	require.NoError(t, err)
	assert.Len(t, onDay, 2)

	// [14:00-05:00, 19:00-05:00) is [19:00Z, 00:00Z), so only the 20:00Z reservation falls inside.
	est := time.FixedZone("EST", -5*60*60)
	evening, err := repo.ListReservations(ctx, storage.ReservationFilter{
		LocationID: loc.ID,
		From:       day.Add(19 * time.Hour).In(est),
		To:         day.Add(24 * time.Hour).In(est),
	})
	require.NoError(t, err)
	require.Len(t, evening, 1)
	assert.Equal(t, late.ID, evening[0].ID)

	confirmed, err := repo.UpdateReservation(ctx, late.ID, models.ReservationPatch{Status: models.Some(models.ReservationConfirmed)})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationConfirmed, confirmed.Status)
	assert.Equal(t, "Late", confirmed.CustomerName)
}

func testPayments(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	loc := mustLocation(t, repo, "L1")
	order := mustOrder(t, repo, loc.ID, "#1")
	other := mustOrder(t, repo, loc.ID, "#2")

	cash, err := repo.CreatePayment(ctx, models.NewPayment{OrderID: order.ID, Amount: "12", Method: models.PaymentCash})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, cash.Status)
	assert.Equal(t, "12.00", cash.Amount)

	completed := models.PaymentCompleted
	_, err = repo.CreatePayment(ctx, models.NewPayment{OrderID: order.ID, Amount: "10", Method: models.PaymentCard, Status: &completed})
	require.NoError(t, err)
	_, err = repo.CreatePayment(ctx, models.NewPayment{OrderID: other.ID, Amount: "22", Method: models.PaymentCard})
	require.NoError(t, err)

	list, err := repo.ListPayments(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, cash.ID, list[0].ID)
	assert.Equal(t, models.PaymentCompleted, list[1].Status)

	// Payments never touch the order.
	stored, err := repo.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderNew, stored.Status)
}

func testSettings(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	loc := mustLocation(t, repo, "L1")

	st, err := repo.CreateSettings(ctx, models.NewRestaurantSettings{LocationID: &loc.ID, RestaurantName: "Trattoria"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPrimaryColor, st.PrimaryColor)
	assert.Equal(t, models.DefaultTaxRate, st.TaxRate)
	assert.Equal(t, models.DefaultCurrency, st.Currency)

	found, err := repo.ListSettings(ctx, loc.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, st.ID, found[0].ID)

	none, err := repo.ListSettings(ctx, "elsewhere")
	require.NoError(t, err)
	assert.Empty(t, none)

	updated, err := repo.UpdateSettings(ctx, st.ID, models.RestaurantSettingsPatch{Tagline: models.Some("Since 1999")})
	require.NoError(t, err)
	require.NotNil(t, updated.Tagline)
	assert.True(t, updated.UpdatedAt.After(st.UpdatedAt))
}

func testUnknownIDs(t *testing.T, repo storage.Repository, _ *Clock) {
	ctx := context.Background()
	const missing = "does-not-exist"

	_, err := repo.GetLocation(ctx, missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.UpdateLocation(ctx, missing, models.LocationPatch{Name: models.Some("x")})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetMenuItem(ctx, missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.UpdateMenuItem(ctx, missing, models.MenuItemPatch{})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteMenuItem(ctx, missing), storage.ErrNotFound)
	_, err = repo.GetTable(ctx, missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.UpdateTable(ctx, missing, models.TablePatch{})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetOrder(ctx, missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.UpdateOrderStatus(ctx, missing, models.OrderReady)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetStaff(ctx, missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.UpdateCustomer(ctx, missing, models.CustomerPatch{})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetReservation(ctx, missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.UpdateSettings(ctx, missing, models.RestaurantSettingsPatch{})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetPayment(ctx, missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetArea(ctx, missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetMenuCategory(ctx, missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
