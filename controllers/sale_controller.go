package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type SaleController struct {
	Service *services.SaleService
}

func NewSaleController(svc *services.SaleService) *SaleController {
	return &SaleController{Service: svc}
}

// POST /pos/sales → ขายด่วนหน้าเคาน์เตอร์ (ตัด stock + จ่ายจบในครั้งเดียว)
func (ctl *SaleController) Create(c *gin.Context) {
	var req services.SaleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := ctl.Service.Sell(utils.CurrentUserID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, res)
}
