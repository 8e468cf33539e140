package services

import (
	"fmt"
	"testing"

	"github.com/mustafa3m/TastyTable-final-1/entity"
	"github.com/mustafa3m/TastyTable-final-1/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own named in-memory database so tests
// cannot see each other's rows.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.MenuItem{}, &entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newTestOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewMenuRepository(db))
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price int64, available bool) entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{Name: name, Price: decimal.NewFromInt(price), IsAvailable: available}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func requireAmount(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.NewFromInt(want)), "amount = %s, want %d", got, want)
}
