package services

import (
	"testing"

	"github.com/mustafa3m/TastyTable-final-1/pkg/apperr"
	"github.com/mustafa3m/TastyTable-final-1/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenu_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	item, err := svc.Create(&CreateMenuItemReq{
		Name:        "Margherita Pizza",
		Description: "Classic pizza",
		Price:       decimal.NewFromInt(1200),
		IsAvailable: true,
	})
	require.NoError(t, err)

	got, err := svc.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Margherita Pizza", got.Name)
	requireAmount(t, 1200, got.Price)
}

func TestMenu_NegativePriceRejected(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	_, err := svc.Create(&CreateMenuItemReq{Name: "X", Price: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestMenu_SetAvailabilityHidesFromCatalogLookup(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewMenuRepository(db)
	svc := NewMenuService(repo)
	a := seedMenuItem(t, db, "A", 100, true)
	b := seedMenuItem(t, db, "B", 50, true)

	_, err := svc.SetAvailability(b.ID, false)
	require.NoError(t, err)

	menus, err := repo.FindAvailableByIDs([]uint{a.ID, b.ID})
	require.NoError(t, err)
	assert.Contains(t, menus, a.ID)
	assert.NotContains(t, menus, b.ID)
}

func TestMenu_MissingID(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	_, err := svc.GetByID(404)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.SetAvailability(404, true)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	err = svc.Delete(404)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMenu_Delete(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))
	a := seedMenuItem(t, db, "A", 100, true)

	require.NoError(t, svc.Delete(a.ID))

	_, err := svc.GetByID(a.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
