package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindByID(id string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GET /menu → เมนูทั้งร้าน พร้อมชื่อหมวด
type MenuItemRow struct {
	ID           string   `json:"id"`
	ItemName     string   `json:"itemName"`
	Detail       string   `json:"detail"`
	Price        float64  `json:"price"`
	Modifiers    []string `gorm:"serializer:json" json:"modifiers"`
	Stock        int      `json:"stock"`
	CategoryID   string   `json:"categoryId"`
	CategoryName string   `json:"categoryName"`
}

func (r *MenuRepository) List() ([]MenuItemRow, error) {
	var out []MenuItemRow
	err := r.DB.Table("menu_items AS m").
		Select("m.id, m.item_name, m.detail, m.price, m.modifiers, m.stock, m.category_id, c.category_name").
		Joins("LEFT JOIN categories c ON c.id = m.category_id").
		Order("c.category_name, m.item_name").
		Scan(&out).Error
	return out, err
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

// ตัด/ตั้ง stock เป็นค่าใหม่ตรง ๆ (last-writer-wins ตามโมเดล single-workstation)
func (r *MenuRepository) PutStock(id string, stock int) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("stock", stock).Error
}
