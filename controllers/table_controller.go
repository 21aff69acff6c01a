package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TableController struct {
	Repo *repository.TableRepository
}

func NewTableController(repo *repository.TableRepository) *TableController {
	return &TableController{Repo: repo}
}

// GET /tables
func (ctl *TableController) List(c *gin.Context) {
	tables, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

type PutTableStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied reserved"`
}

// PATCH /tables/:id/status → ปล่อยโต๊ะ/จองโต๊ะเป็น action ภายนอก
// (core ไม่คืนโต๊ะเป็น available ให้เอง)
func (ctl *TableController) PutStatus(c *gin.Context) {
	var req PutTableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := ctl.Repo.FindByID(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "table not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if err := ctl.Repo.PutStatus(c.Param("id"), req.Status); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id"), "status": req.Status})
}
