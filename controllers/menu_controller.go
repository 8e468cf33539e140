package controllers

import (
	"strconv"

	"github.com/mustafa3m/TastyTable-final-1/pkg/resp"
	"github.com/mustafa3m/TastyTable-final-1/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /menu (public)
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Menu.GetAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id (public)
func (mc *MenuController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := mc.Menu.GetByID(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu (admin)
func (mc *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Menu.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /menu/:id/availability?isAvailable= (admin)
func (mc *MenuController) SetAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	available, err := strconv.ParseBool(c.DefaultQuery("isAvailable", "true"))
	if err != nil {
		resp.BadRequest(c, "invalid isAvailable")
		return
	}
	item, err := mc.Menu.SetAvailability(id, available)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id (admin)
func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := mc.Menu.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
