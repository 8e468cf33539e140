package repository

import (
	"github.com/mustafa3m/TastyTable-final-1/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create inserts the order together with its items.
func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// GetByID loads the bare order without items. Used by the policy check
// before any mutation.
func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetWithItems loads the order with its items and each item's menu row.
func (r *OrderRepository) GetWithItems(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items.MenuItem").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetWithItemsForUser is the owner-scoped detail read: the user id is part
// of the query, so someone else's order looks exactly like a missing one.
func (r *OrderRepository) GetWithItemsForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items.MenuItem").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForUser returns the user's orders, newest first, without items.
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ReplaceItems swaps the full item set and the recomputed total in one
// shot. Callers must run it inside a transaction.
func (r *OrderRepository) ReplaceItems(tx *gorm.DB, orderID uint, items []entity.OrderItem, total decimal.Decimal) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := tx.Create(&items).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("total", total).Error
}

// DeleteWithItems removes the order and its items together.
func (r *OrderRepository) DeleteWithItems(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("status", status).Error
}
