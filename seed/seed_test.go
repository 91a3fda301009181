package seed

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

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

func backends(t *testing.T) map[string]storage.Repository {
	t.Helper()
	js, err := jsonstore.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	gs, err := gormstore.Open(gormstore.DriverSQLite, dsn, gormstore.WithLogLevel(gormlogger.Silent))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = js.Close()
		_ = gs.Close()
	})
	return map[string]storage.Repository{"json": js, "sqlite": gs}
}

func TestRunSeedsDemoRestaurant(t *testing.T) {
	ctx := context.Background()
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			seeded, err := Run(ctx, repo, logger.Discard())
			require.NoError(t, err)
			assert.True(t, seeded)

			locs, err := repo.ListLocations(ctx)
			require.NoError(t, err)
			require.Len(t, locs, 3)
			home := locs[0]
			assert.Equal(t, "Downtown", home.Name)

			cats, err := repo.ListMenuCategories(ctx)
			require.NoError(t, err)
			require.Len(t, cats, 4)
			assert.Equal(t, "Appetizers", cats[0].Name)

			items, err := repo.ListMenuItems(ctx, "")
			require.NoError(t, err)
			assert.Len(t, items, 5)

			tables, err := repo.ListTables(ctx, home.ID)
			require.NoError(t, err)
			require.Len(t, tables, 12)
			occupied := 0
			for _, tb := range tables {
				if tb.Status == models.TableOccupied {
					occupied++
					require.NotNil(t, tb.ServerID)
					require.NotNil(t, tb.CurrentPartySize)
					assert.Equal(t, tb.Capacity-1, *tb.CurrentPartySize)
				}
			}
			assert.Equal(t, 3, occupied)

			staff, err := repo.ListStaff(ctx, home.ID)
			require.NoError(t, err)
			assert.Len(t, staff, 4)

			settings, err := repo.ListSettings(ctx, home.ID)
			require.NoError(t, err)
			require.Len(t, settings, 1)
			assert.Equal(t, "The Fine Dining", settings[0].RestaurantName)
			assert.Equal(t, models.DefaultTaxRate, settings[0].TaxRate)
		})
	}
}

func TestRunSkipsPopulatedRepository(t *testing.T) {
	ctx := context.Background()
	repo := backends(t)["json"]

	_, err := repo.CreateLocation(ctx, models.NewLocation{Name: "Existing", Address: "1 Main St"})
	require.NoError(t, err)

	seeded, err := Run(ctx, repo, logger.Discard())
	require.NoError(t, err)
	assert.False(t, seeded)

	cats, err := repo.ListMenuCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestDemoTableLayout(t *testing.T) {
	tests := []struct {
		n        int
		capacity int
		status   models.TableStatus
		area     string
	}{
		{1, 2, models.TableOccupied, "odd"},
		{4, 2, models.TableReserved, "even"},
		{5, 4, models.TableAvailable, "odd"},
		{10, 6, models.TableAvailable, "even"},
		{12, 8, models.TableAvailable, "even"},
	}
	for _, tt := range tests {
		tb := demoTable(tt.n, "loc", "even", "odd", "srv")
		assert.Equal(t, tt.capacity, tb.Capacity, "table %d", tt.n)
		assert.Equal(t, tt.status, *tb.Status, "table %d", tt.n)
		assert.Equal(t, tt.area, *tb.AreaID, "table %d", tt.n)
		if tt.status != models.TableOccupied {
			assert.Nil(t, tb.ServerID, "table %d", tt.n)
		}
	}
}
