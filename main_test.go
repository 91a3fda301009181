package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"github.com/judyrop/restaurant-pos/logger"
	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
	"github.com/judyrop/restaurant-pos/storage/gormstore"
	"github.com/judyrop/restaurant-pos/storage/jsonstore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Create a fresh sqlite database for each test
func getTestRepo(t *testing.T) storage.Repository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	repo, err := gormstore.Open(gormstore.DriverSQLite, dsn, gormstore.WithLogLevel(gormlogger.Silent))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func getTestRouter(t *testing.T, repo storage.Repository) *gin.Engine {
	t.Helper()
	router, err := SetupRouter(repo, logger.Discard(), RouterConfig{CORSOrigins: []string{"*"}})
	require.NoError(t, err)
	return router
}

// Helper: send a JSON request and return the recorder
func doJSON(router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// ----------------------- TESTS ----------------------- //

func TestHealth(t *testing.T) {
	router := getTestRouter(t, getTestRepo(t))

	w := doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestOrderLifecycle(t *testing.T) {
	backends := map[string]storage.Repository{"sqlite": getTestRepo(t)}
	js, err := jsonstore.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = js.Close() })
	backends["json"] = js

	for name, repo := range backends {
		t.Run(name, func(t *testing.T) {
			router := getTestRouter(t, repo)

			w := doJSON(router, http.MethodPost, "/api/locations", gin.H{"name": "L1", "address": "1 Main St"})
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			loc := decode[models.Location](t, w)

			w = doJSON(router, http.MethodPost, "/api/menu-categories", gin.H{"name": "Mains", "displayOrder": 1})
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			cat := decode[models.MenuCategory](t, w)

			w = doJSON(router, http.MethodPost, "/api/menu-items", gin.H{"name": "Pizza", "price": "10.00", "categoryId": cat.ID})
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			pizza := decode[models.MenuItem](t, w)
			assert.Equal(t, "10.00", pizza.Price)

			w = doJSON(router, http.MethodPost, "/api/orders", gin.H{
				"locationId": loc.ID,
				"subtotal":   "20.00",
				"tax":        "2.00",
				"total":      "22.00",
				"items":      []gin.H{{"menuItemId": pizza.ID, "quantity": 2, "price": "10.00"}},
			})
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			created := decode[models.OrderWithItems](t, w)
			assert.Regexp(t, `^#\d{6}-[0-9a-f]{6}$`, created.OrderNumber)
			assert.Equal(t, models.OrderNew, created.Status)

			w = doJSON(router, http.MethodGet, "/api/orders/"+created.ID, nil)
			require.Equal(t, http.StatusOK, w.Code)
			got := decode[models.OrderWithItems](t, w)
			assert.Equal(t, "22.00", got.Total)
			require.Len(t, got.Items, 1)
			assert.Equal(t, 2, got.Items[0].Quantity)
			require.NotNil(t, got.Items[0].MenuItem)
			assert.Equal(t, "Pizza", got.Items[0].MenuItem.Name)

			time.Sleep(2 * time.Millisecond)
			w = doJSON(router, http.MethodPatch, "/api/orders/"+created.ID+"/status", gin.H{"status": "ready"})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			updated := decode[models.Order](t, w)
			assert.Equal(t, models.OrderReady, updated.Status)
			assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

			w = doJSON(router, http.MethodGet, "/api/orders?locationId="+loc.ID+"&status=ready", nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Len(t, decode[[]models.OrderWithItems](t, w), 1)

			w = doJSON(router, http.MethodGet, "/api/orders?locationId="+loc.ID+"&status=new", nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[]`, w.Body.String())

			w = doJSON(router, http.MethodPost, "/api/payments", gin.H{"orderId": created.ID, "amount": "22", "method": "card"})
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			w = doJSON(router, http.MethodGet, "/api/payments/order/"+created.ID, nil)
			require.Equal(t, http.StatusOK, w.Code)
			payments := decode[[]models.Payment](t, w)
			require.Len(t, payments, 1)
			assert.Equal(t, "22.00", payments[0].Amount)
			assert.Equal(t, models.PaymentPending, payments[0].Status)

			w = doJSON(router, http.MethodGet, "/api/analytics/sales?locationId="+loc.ID, nil)
			require.Equal(t, http.StatusOK, w.Code)
			sales := decode[models.SalesData](t, w)
			assert.Equal(t, 1, sales.TotalOrders)
			assert.InDelta(t, 22.0, sales.TotalRevenue, 1e-9)
		})
	}
}

func TestMissingLocationIDIsRejected(t *testing.T) {
	router := getTestRouter(t, getTestRepo(t))

	for _, path := range []string{"/api/orders", "/api/tables", "/api/areas", "/api/reservations", "/api/analytics/sales"} {
		w := doJSON(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.JSONEq(t, `{"error":"locationId is required"}`, w.Body.String(), path)
	}
}

func TestUnknownIDsReturnNotFound(t *testing.T) {
	router := getTestRouter(t, getTestRepo(t))

	tests := []struct {
		method, path string
		payload      any
		message      string
	}{
		{http.MethodGet, "/api/orders/missing", nil, "Order not found"},
		{http.MethodPatch, "/api/orders/missing/status", gin.H{"status": "ready"}, "Order not found"},
		{http.MethodGet, "/api/locations/missing", nil, "Location not found"},
		{http.MethodPatch, "/api/tables/missing", gin.H{"capacity": 4}, "Table not found"},
		{http.MethodPatch, "/api/customers/missing", gin.H{"name": "X"}, "Customer not found"},
		{http.MethodDelete, "/api/menu-items/missing", nil, "Menu item not found"},
		{http.MethodGet, "/api/settings", nil, "Settings not found"},
	}
	for _, tt := range tests {
		w := doJSON(router, tt.method, tt.path, tt.payload)
		assert.Equal(t, http.StatusNotFound, w.Code, tt.path)
		assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.message), w.Body.String(), tt.path)
	}
}

func TestDeleteMenuItem(t *testing.T) {
	router := getTestRouter(t, getTestRepo(t))

	w := doJSON(router, http.MethodPost, "/api/menu-items", gin.H{"name": "Soup", "price": "4.5"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	item := decode[models.MenuItem](t, w)
	assert.Equal(t, "4.50", item.Price)
	assert.Nil(t, item.CategoryID)

	w = doJSON(router, http.MethodDelete, "/api/menu-items/"+item.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(router, http.MethodDelete, "/api/menu-items/"+item.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidBodiesAreRejected(t *testing.T) {
	router := getTestRouter(t, getTestRepo(t))

	tests := []struct {
		method, path string
		payload      any
		message      string
	}{
		{http.MethodPost, "/api/locations", gin.H{"name": "No address"}, "Invalid location data"},
		{http.MethodPost, "/api/menu-items", gin.H{"name": "Soup", "price": "-1"}, "Invalid menu item data"},
		{http.MethodPost, "/api/staff", gin.H{"name": "A", "email": "not-an-email", "role": "server"}, "Invalid staff data"},
		{http.MethodPost, "/api/orders", gin.H{"locationId": "l", "subtotal": "1", "tax": "0", "total": "1"}, "Invalid order data"},
		{http.MethodPatch, "/api/orders/any/status", gin.H{"status": "eaten"}, "Invalid order data"},
		{http.MethodPatch, "/api/locations/any", gin.H{"name": nil}, "Invalid location data"},
		{http.MethodPost, "/api/settings", gin.H{"restaurantName": "R", "taxRate": "ten"}, "Invalid settings data"},
	}
	for _, tt := range tests {
		w := doJSON(router, tt.method, tt.path, tt.payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, tt.path)
		assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.message), w.Body.String(), tt.path)
	}
}

func TestDuplicateStaffEmailIsBadRequest(t *testing.T) {
	router := getTestRouter(t, getTestRepo(t))

	member := gin.H{"name": "Sarah", "email": "sarah@restaurant.com", "role": "server"}
	w := doJSON(router, http.MethodPost, "/api/staff", member)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, http.MethodPost, "/api/staff", member)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettings(t *testing.T) {
	router := getTestRouter(t, getTestRepo(t))

	w := doJSON(router, http.MethodPost, "/api/locations", gin.H{"name": "L1", "address": "1 Main St"})
	require.Equal(t, http.StatusCreated, w.Code)
	loc := decode[models.Location](t, w)

	w = doJSON(router, http.MethodGet, "/api/settings?locationId="+loc.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPost, "/api/settings", gin.H{"locationId": loc.ID, "restaurantName": "The Fine Dining"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.RestaurantSettings](t, w)
	assert.Equal(t, models.DefaultPrimaryColor, created.PrimaryColor)
	assert.Equal(t, models.DefaultCurrency, created.Currency)

	w = doJSON(router, http.MethodPatch, "/api/settings/"+created.ID, gin.H{"tagline": "Fresh daily", "logoUrl": nil})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/settings?locationId="+loc.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.RestaurantSettings](t, w)
	require.NotNil(t, got.Tagline)
	assert.Equal(t, "Fresh daily", *got.Tagline)
	assert.Nil(t, got.LogoURL)

	w = doJSON(router, http.MethodGet, "/api/settings", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFloorAndReservations(t *testing.T) {
	router := getTestRouter(t, getTestRepo(t))

	w := doJSON(router, http.MethodPost, "/api/locations", gin.H{"name": "L1", "address": "1 Main St"})
	require.Equal(t, http.StatusCreated, w.Code)
	loc := decode[models.Location](t, w)

	w = doJSON(router, http.MethodPost, "/api/areas", gin.H{"locationId": loc.ID, "name": "Patio"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	area := decode[models.Area](t, w)

	w = doJSON(router, http.MethodPost, "/api/tables", gin.H{"locationId": loc.ID, "areaId": area.ID, "tableNumber": "7", "capacity": 4})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	table := decode[models.Table](t, w)
	assert.Equal(t, models.TableAvailable, table.Status)

	w = doJSON(router, http.MethodPatch, "/api/tables/"+table.ID, gin.H{"status": "occupied", "currentPartySize": 3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/tables?locationId="+loc.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	tables := decode[[]models.TableWithDetails](t, w)
	require.Len(t, tables, 1)
	assert.Equal(t, models.TableOccupied, tables[0].Status)
	require.NotNil(t, tables[0].Area)
	assert.Equal(t, "Patio", tables[0].Area.Name)
	assert.Nil(t, tables[0].Server)

	for _, date := range []string{"2025-06-02T19:00:00Z", "2025-06-01T19:00:00Z"} {
		w = doJSON(router, http.MethodPost, "/api/reservations", gin.H{
			"locationId": loc.ID, "tableId": table.ID, "customerName": "Alice",
			"partySize": 2, "reservationDate": date,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = doJSON(router, http.MethodGet, "/api/reservations?locationId="+loc.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]models.ReservationWithDetails](t, w)
	require.Len(t, all, 2)
	assert.True(t, all[0].ReservationDate.Before(all[1].ReservationDate))
	require.NotNil(t, all[0].Table)
	assert.Nil(t, all[0].Customer)

	w = doJSON(router, http.MethodGet, "/api/reservations?locationId="+loc.ID+"&date=2025-06-02", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.ReservationWithDetails](t, w), 1)

	w = doJSON(router, http.MethodGet, "/api/reservations?locationId="+loc.ID+"&date=June", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalesDataForEmptyWindow(t *testing.T) {
	router := getTestRouter(t, getTestRepo(t))

	w := doJSON(router, http.MethodGet, "/api/analytics/sales?locationId=l1&startDate=2025-01-01&endDate=2025-01-07", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalRevenue":0,"totalOrders":0,"averageOrderValue":0,"dailySales":[]}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/analytics/sales?locationId=l1&startDate=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/analytics/sales?locationId=l1&startDate=2025-02-01&endDate=2025-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalesDataCountsOrdersInWindow(t *testing.T) {
	backends := map[string]storage.Repository{"sqlite": getTestRepo(t)}
	js, err := jsonstore.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = js.Close() })
	backends["json"] = js

	for name, repo := range backends {
		t.Run(name, func(t *testing.T) {
			router := getTestRouter(t, repo)

			w := doJSON(router, http.MethodPost, "/api/locations", gin.H{"name": "L1", "address": "1 Main St"})
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			loc := decode[models.Location](t, w)

			w = doJSON(router, http.MethodPost, "/api/orders", gin.H{
				"locationId": loc.ID,
				"subtotal":   "10.00",
				"tax":        "2.50",
				"total":      "12.50",
				"items":      []gin.H{},
			})
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			created := decode[models.OrderWithItems](t, w)

			sales := func(t *testing.T, start, end string) models.SalesData {
				t.Helper()
				q := url.Values{"locationId": {loc.ID}, "startDate": {start}, "endDate": {end}}
				w := doJSON(router, http.MethodGet, "/api/analytics/sales?"+q.Encode(), nil)
				require.Equal(t, http.StatusOK, w.Code, w.Body.String())
				return decode[models.SalesData](t, w)
			}
			day := created.CreatedAt.UTC().Format(time.DateOnly)
			want := models.SalesData{
				TotalRevenue:      12.5,
				TotalOrders:       1,
				AverageOrderValue: 12.5,
				DailySales:        []models.DailySales{{Date: day, Sales: 12.5, Orders: 1}},
			}

			for _, zone := range []*time.Location{
				time.FixedZone("EST", -5*60*60),
				time.FixedZone("IST", 5*60*60+30*60),
			} {
				start := created.CreatedAt.Add(-time.Hour).In(zone).Format(time.RFC3339Nano)
				end := created.CreatedAt.Add(time.Hour).In(zone).Format(time.RFC3339Nano)
				assert.Equal(t, want, sales(t, start, end), zone.String())
			}

			// A date-only endDate runs to the end of that day.
			assert.Equal(t, want, sales(t, day, day))
		})
	}
}

func TestAuthGuardsAPI(t *testing.T) {
	verifier := oidc.NewVerifier("https://issuer.test", &oidc.StaticKeySet{}, &oidc.Config{ClientID: "pos"})
	router, err := SetupRouter(getTestRepo(t), logger.Discard(), RouterConfig{Verifier: verifier})
	require.NoError(t, err)

	w := doJSON(router, http.MethodGet, "/api/locations", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
