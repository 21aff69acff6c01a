package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// POST /orders → เปิด order บนโต๊ะ
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := ctl.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /orders → board รวม (ทุกสถานะ) — หน้า list โหลดซ้ำทุก 10 วิ
// GET /orders?view=kitchen → เฉพาะคิวครัว — โหลดซ้ำทุก 5 วิ
func (ctl *OrderController) List(c *gin.Context) {
	kitchen := c.Query("view") == "kitchen"
	rows, err := ctl.Service.Board(kitchen)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	d, err := ctl.Service.Detail(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, d)
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/status → ขยับ state machine ตาม role ของผู้เรียก
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.Transition(c.Param("id"), req.Status, utils.CurrentRole(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id"), "status": req.Status})
}

// POST /orders/:id/payments → แคชเชียร์บันทึกการจ่าย
func (ctl *OrderController) CreatePayment(c *gin.Context) {
	var req services.PaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := ctl.Service.RecordPayment(c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, p)
}

// GET /orders/:id/receipt → ใบเสร็จ text ธรรมดา
func (ctl *OrderController) Receipt(c *gin.Context) {
	d, err := ctl.Service.Detail(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	receipt := utils.FormatReceipt(d.BoardRow, d.Total, d.Tax, d.ServiceCharge, d.Discount)
	c.String(200, receipt)
}
