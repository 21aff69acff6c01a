package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Order("number ASC").Find(&out).Error
	return out, err
}

func (r *TableRepository) FindByID(id string) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// เปลี่ยนสถานะโต๊ะแบบมี guard — กันสองคนเปิดโต๊ะเดียวกันพร้อมกัน
func (r *TableRepository) UpdateStatusGuard(tx *gorm.DB, tableID, from, to string) (int64, error) {
	res := tx.Model(&entity.Table{}).
		Where("id = ? AND status = ?", tableID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ปล่อยโต๊ะกลับ available เป็น action ภายนอก ไม่ผูกกับ lifecycle ของ order
func (r *TableRepository) PutStatus(tableID, status string) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", tableID).Update("status", status).Error
}
