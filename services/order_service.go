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

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}
type OrderItemsReq struct {
	Items []OrderItemIn `json:"items"`
}

// buildItems validates the requested lines against the available catalog
// and prices them. Unit prices are snapshotted here; the catalog can change
// afterwards without touching existing orders.
func (s *OrderService) buildItems(items []OrderItemIn) ([]entity.OrderItem, decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, decimal.Zero, fmt.Errorf("order must contain at least one item: %w", apperr.ErrValidation)
	}

	ids := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, it := range items {
		if !seen[it.MenuItemID] {
			seen[it.MenuItemID] = true
			ids = append(ids, it.MenuItemID)
		}
	}

	menus, err := s.MenuRepo.FindAvailableByIDs(ids)
	if err != nil {
		return nil, decimal.Zero, err
	}

	lines := make([]entity.OrderItem, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, decimal.Zero, fmt.Errorf("quantity must be > 0 for item %d: %w", it.MenuItemID, apperr.ErrValidation)
		}
		m, ok := menus[it.MenuItemID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("menu item %d: %w", it.MenuItemID, apperr.ErrItemUnavailable)
		}
		lines = append(lines, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			UnitPrice:  m.Price,
		})
		total = total.Add(m.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return lines, total, nil
}

// Create builds a priced Pending order for the user. Order and items land
// in one transaction.
func (s *OrderService) Create(userID uint, req *OrderItemsReq) (*entity.Order, error) {
	lines, total, err := s.buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID: userID,
		Status: StatusPending,
		Total:  total,
		Items:  lines,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListForUser returns the requester's own orders, newest first, no items.
func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

// DetailForUser is the owner-scoped detail read. Someone else's order is
// indistinguishable from a missing one on this path.
func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetWithItemsForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", orderID, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// loadForPolicy fetches the bare order, mapping record-not-found to nil so
// the policy can produce DecisionNotFound.
func (s *OrderService) loadForPolicy(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return o, err
}

func decisionErr(d Decision, orderID uint) error {
	switch d {
	case DecisionNotFound:
		return fmt.Errorf("order %d: %w", orderID, apperr.ErrNotFound)
	case DecisionDeny:
		return fmt.Errorf("order %d: %w", orderID, apperr.ErrForbidden)
	default:
		return nil
	}
}

// UpdateItems replaces the full item set and recomputes the total.
// Admins may edit any order; owners only their own Pending orders.
func (s *OrderService) UpdateItems(orderID, requesterID uint, isAdmin bool, req *OrderItemsReq) (*entity.Order, error) {
	o, err := s.loadForPolicy(orderID)
	if err != nil {
		return nil, err
	}
	if d := AuthorizeOrder(o, requesterID, isAdmin, OpUpdate); d != DecisionAllow {
		return nil, decisionErr(d, orderID)
	}

	lines, total, err := s.buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.ReplaceItems(tx, o.ID, lines, total)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetWithItems(o.ID)
}

// Delete removes the order and its items together. Same policy as update.
func (s *OrderService) Delete(orderID, requesterID uint, isAdmin bool) error {
	o, err := s.loadForPolicy(orderID)
	if err != nil {
		return err
	}
	if d := AuthorizeOrder(o, requesterID, isAdmin, OpDelete); d != DecisionAllow {
		return decisionErr(d, orderID)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteWithItems(tx, o.ID)
	})
}

// UpdateStatus overwrites the order status. The vocabulary is closed and
// case-insensitive; anything between the four statuses goes, in any order.
// Admin-only at the route level.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*entity.Order, error) {
	canon, ok := CanonicalStatus(status)
	if !ok {
		return nil, fmt.Errorf("status %q is not allowed: %w", status, apperr.ErrValidation)
	}

	o, err := s.loadForPolicy(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("order %d: %w", orderID, apperr.ErrNotFound)
	}

	if err := s.Repo.UpdateStatus(s.DB, o.ID, canon); err != nil {
		return nil, err
	}
	o.Status = canon
	return o, nil
}
