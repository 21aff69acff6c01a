package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model ใช้แทน gorm.Model แต่ id เป็น string (UUID)
// ทุก collection ใช้ id แบบ globally unique เหมือนกันหมด
type Model struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
