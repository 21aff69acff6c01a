package controllers

import (
	"errors"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	Repo *repository.MenuRepository
}

func NewMenuController(repo *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: repo}
}

// GET /menu → เมนูทั้งหมดพร้อมหมวดและ stock
func (ctl *MenuController) List(c *gin.Context) {
	rows, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

type CreateMenuItemRequest struct {
	ItemName   string   `json:"itemName" binding:"required"`
	Detail     string   `json:"detail"`
	Price      float64  `json:"price" binding:"required,gt=0"`
	Modifiers  []string `json:"modifiers"`
	Stock      int      `json:"stock" binding:"gte=0"`
	CategoryID string   `json:"categoryId" binding:"required"`
}

// POST /menu (admin)
func (ctl *MenuController) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		ItemName:   req.ItemName,
		Detail:     req.Detail,
		Price:      req.Price,
		Modifiers:  req.Modifiers,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	}
	if err := ctl.Repo.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

type PutStockRequest struct {
	Stock int `json:"stock" binding:"gte=0"`
}

// PATCH /menu/:id/stock (admin) → เติม/ตั้งยอด stock ใหม่ตรง ๆ
// ledger ตัดอย่างเดียว การเติมเป็นงาน admin
func (ctl *MenuController) PutStock(c *gin.Context) {
	var req PutStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := ctl.Repo.FindByID(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if err := ctl.Repo.PutStock(c.Param("id"), req.Stock); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id"), "stock": req.Stock})
}
