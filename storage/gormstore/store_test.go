package gormstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
	"github.com/judyrop/restaurant-pos/storage/storagetest"
)

// Each test gets its own named in-memory database.
func openTestStore(t *testing.T, clock storage.Clock) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	s, err := Open(DriverSQLite, dsn, WithClock(clock), WithLogLevel(gormlogger.Silent))
	require.NoError(t, err)
	return s
}

func TestRepositoryContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T, clock storage.Clock) storage.Repository {
		return openTestStore(t, clock)
	})
}

func TestDeletingOrderCascadesToItems(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, storage.SystemClock)
	defer s.Close()

	loc, err := s.CreateLocation(ctx, models.NewLocation{Name: "L1", Address: "1 Main St"})
	require.NoError(t, err)
	order, err := s.CreateOrder(ctx, models.NewOrder{
		OrderNumber: "#1", LocationID: loc.ID, Subtotal: "1", Tax: "0", Total: "1",
	}, []models.NewOrderItem{
		{MenuItemID: "m1", Quantity: 1, Price: "1"},
		{MenuItemID: "m2", Quantity: 1, Price: "1"},
	})
	require.NoError(t, err)

	require.NoError(t, s.db.Where("id = ?", order.ID).Delete(&models.Order{}).Error)

	var remaining int64
	require.NoError(t, s.db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestDuplicateStaffEmailIsConstraintError(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, storage.SystemClock)
	defer s.Close()

	in := models.NewStaff{Name: "Sam", Email: "sam@example.com", Role: models.RoleServer}
	_, err := s.CreateStaff(ctx, in)
	require.NoError(t, err)

	_, err = s.CreateStaff(ctx, in)
	assert.ErrorIs(t, err, storage.ErrConstraint)
}

func TestUnknownParentIsConstraintError(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, storage.SystemClock)
	defer s.Close()

	_, err := s.CreateArea(ctx, models.NewArea{LocationID: "nowhere", Name: "Patio"})
	assert.ErrorIs(t, err, storage.ErrConstraint)

	// The order insert fails, so no orphan lines may be left behind.
	_, err = s.CreateOrder(ctx, models.NewOrder{
		OrderNumber: "#1", LocationID: "nowhere", Subtotal: "1", Tax: "0", Total: "1",
	}, []models.NewOrderItem{{MenuItemID: "m1", Quantity: 1, Price: "1"}})
	assert.ErrorIs(t, err, storage.ErrConstraint)

	var lines int64
	require.NoError(t, s.db.Model(&models.OrderItem{}).Count(&lines).Error)
	assert.Zero(t, lines)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("mysql", "whatever")
	assert.ErrorContains(t, err, "unsupported database driver")
}
