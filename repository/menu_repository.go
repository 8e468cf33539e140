package repository

import (
	"github.com/mustafa3m/TastyTable-final-1/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ListAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAvailableByIDs resolves the requested ids to their current catalog
// rows, filtered to available items. Missing or unavailable ids are simply
// absent from the map; the caller decides what absence means.
func (r *MenuRepository) FindAvailableByIDs(ids []uint) (map[uint]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := r.DB.Where("id IN ? AND is_available = ?", ids, true).Find(&items).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]entity.MenuItem, len(items))
	for _, m := range items {
		out[m.ID] = m
	}
	return out, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateAvailability(id uint, available bool) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("is_available", available)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}
