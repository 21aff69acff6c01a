package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Bus *services.NotificationService
}

func NewNotificationController(bus *services.NotificationService) *NotificationController {
	return &NotificationController{Bus: bus}
}

// GET /notifications → log กลางทั้งก้อน (view ใหม่ใช้ตั้งต้น list ตัวเอง)
func (ctl *NotificationController) List(c *gin.Context) {
	list, err := ctl.Bus.ReadAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, list)
}

// DELETE /notifications (admin) → ล้างทั้ง log กลางและ list ในหน่วยความจำ
func (ctl *NotificationController) Clear(c *gin.Context) {
	if err := ctl.Bus.Clear(); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
