package services

import (
	"errors"
	"fmt"

	"github.com/mustafa3m/TastyTable-final-1/entity"
	"github.com/mustafa3m/TastyTable-final-1/pkg/apperr"
	"github.com/mustafa3m/TastyTable-final-1/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type CreateMenuItemReq struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"isAvailable"`
}

func (s *MenuService) GetAll() ([]entity.MenuItem, error) {
	return s.Repo.ListAll()
}

func (s *MenuService) GetByID(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("menu item %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Create(req *CreateMenuItemReq) (*entity.MenuItem, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative: %w", apperr.ErrValidation)
	}
	item := &entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) SetAvailability(id uint, available bool) (*entity.MenuItem, error) {
	affected, err := s.Repo.UpdateAvailability(id, available)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("menu item %d: %w", id, apperr.ErrNotFound)
	}
	return s.Repo.FindByID(id)
}

func (s *MenuService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("menu item %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}
