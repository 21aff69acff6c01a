package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// NotificationRepository คือ log กลางแบบ append-only ที่ทุก view อ่านร่วมกัน
type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Append(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

// อ่านทั้ง log เรียงใหม่สุดก่อน
func (r *NotificationRepository) ReadAll() ([]entity.Notification, error) {
	var out []entity.Notification
	err := r.DB.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *NotificationRepository) Clear() error {
	return r.DB.Where("1 = 1").Delete(&entity.Notification{}).Error
}
