package controllers

import (
	"time"

	"github.com/mustafa3m/TastyTable-final-1/entity"
	"github.com/mustafa3m/TastyTable-final-1/pkg/resp"
	"github.com/mustafa3m/TastyTable-final-1/services"
	"github.com/mustafa3m/TastyTable-final-1/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// ----- response shapes -----

type OrderSummaryOut struct {
	ID        uint            `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
}

type OrderLineOut struct {
	ID           uint            `json:"id"`
	MenuItemID   uint            `json:"menuItemId"`
	MenuItemName string          `json:"menuItemName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

type OrderDetailOut struct {
	OrderSummaryOut
	Items []OrderLineOut `json:"items"`
}

func summaryOut(o *entity.Order) OrderSummaryOut {
	return OrderSummaryOut{ID: o.ID, CreatedAt: o.CreatedAt, Total: o.Total, Status: o.Status}
}

func detailOut(o *entity.Order) OrderDetailOut {
	out := OrderDetailOut{OrderSummaryOut: summaryOut(o), Items: make([]OrderLineOut, 0, len(o.Items))}
	for _, it := range o.Items {
		out.Items = append(out.Items, OrderLineOut{
			ID:           it.ID,
			MenuItemID:   it.MenuItemID,
			MenuItemName: it.MenuItem.Name,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
		})
	}
	return out
}

// ----- handlers -----

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.OrderItemsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, summaryOut(order))
}

// GET /orders — the requester's own orders, no line detail
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.Orders.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	out := make([]OrderSummaryOut, 0, len(orders))
	for i := range orders {
		out = append(out, summaryOut(&orders[i]))
	}
	resp.OK(c, out)
}

// GET /orders/:id — owner-scoped detail with expanded lines
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := oc.Orders.DetailForUser(utils.CurrentUserID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detailOut(order))
}

// PUT /orders/:id — replace the full item set
func (oc *OrderController) UpdateItems(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.OrderItemsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.UpdateItems(id, utils.CurrentUserID(c), utils.IsAdmin(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detailOut(order))
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := oc.Orders.Delete(id, utils.CurrentUserID(c), utils.IsAdmin(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/status (admin)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.UpdateStatus(id, req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "status updated", "id": order.ID, "status": order.Status})
}
