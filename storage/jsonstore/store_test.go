package jsonstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
	"github.com/judyrop/restaurant-pos/storage/storagetest"
)

func openTestStore(t *testing.T, clock storage.Clock) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "restaurant-data.json")
	s, err := Open(path, WithClock(clock))
	require.NoError(t, err)
	return s, path
}

func TestRepositoryContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T, clock storage.Clock) storage.Repository {
		s, _ := openTestStore(t, clock)
		return s
	})
}

func TestOpenCreatesEmptyDocument(t *testing.T) {
	_, path := openTestStore(t, storage.SystemClock)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{
		"locations", "menuCategories", "menuItems", "areas", "tables", "orders",
		"orderItems", "staff", "customers", "reservations", "payments", "restaurantSettings",
	} {
		assert.JSONEq(t, `[]`, string(doc[key]), key)
	}
}

func TestDataSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	s, path := openTestStore(t, storage.SystemClock)

	loc, err := s.CreateLocation(ctx, models.NewLocation{Name: "Downtown", Address: "1 Main St"})
	require.NoError(t, err)
	order, err := s.CreateOrder(ctx, models.NewOrder{
		OrderNumber: "#1", LocationID: loc.ID, Subtotal: "20", Tax: "2", Total: "22",
	}, []models.NewOrderItem{{MenuItemID: "m1", Quantity: 2, Price: "10"}})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)

	got, err := reopened.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "22.00", got.Total)
	assert.True(t, got.CreatedAt.Equal(order.CreatedAt))

	items, err := reopened.ListOrderItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestIDFormat(t *testing.T) {
	s, _ := openTestStore(t, storage.SystemClock)
	loc, err := s.CreateLocation(context.Background(), models.NewLocation{Name: "L1", Address: "x"})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-z]{9}$`), loc.ID)
}

func TestNoUniquenessOrReferentialChecks(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t, storage.SystemClock)

	in := models.NewStaff{Name: "Sam", Email: "sam@example.com", Role: models.RoleServer}
	_, err := s.CreateStaff(ctx, in)
	require.NoError(t, err)
	_, err = s.CreateStaff(ctx, in)
	assert.NoError(t, err)

	_, err = s.CreateArea(ctx, models.NewArea{LocationID: "nowhere", Name: "Patio"})
	assert.NoError(t, err)
}

func TestCorruptFileFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurant-data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	assert.ErrorContains(t, err, "failed to decode data file")
}

func TestFailedWriteLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "restaurant-data.json")
	s, err := Open(path)
	require.NoError(t, err)

	// Replacing the data file with a directory makes the rename fail.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0o644))

	_, err = s.CreateLocation(ctx, models.NewLocation{Name: "L1", Address: "x"})
	require.Error(t, err)

	locs, err := s.ListLocations(ctx)
	require.NoError(t, err)
	assert.Empty(t, locs)
}
