package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Total  decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	Status string          `gorm:"not null;default:Pending" json:"status"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"` // preload only for user detail

	// lines never outlive their order
	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
