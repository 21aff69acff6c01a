package services

import (
	"errors"
	"time"

	"backend/repository"

	"gorm.io/gorm"
)

func nowUTC() time.Time { return time.Now().UTC() }

// StockService คือ Stock Ledger — ตัดสต็อกเฉพาะหน้าขายด่วน (sale_service.go)
// order แบบนั่งโต๊ะไม่ผ่านตัวนี้ (นับสต็อกเองนอกระบบ — พฤติกรรมเดิม อย่ารวมสองทางเข้าด้วยกัน)
type StockService struct {
	Menus *repository.MenuRepository
}

func NewStockService(menus *repository.MenuRepository) *StockService {
	return &StockService{Menus: menus}
}

// ReserveAndDeduct ตรวจว่าพอแล้วตัดทันที คืนจำนวนคงเหลือ
// การเขียนเป็น last-writer-wins: อ่าน-เช็ค-เขียนไม่มี isolation ระหว่างกัน
// ยอมรับได้เพราะหนึ่ง role มีเครื่องเดียว แต่ขายชนกันสอง view มี race window จริง
func (s *StockService) ReserveAndDeduct(menuItemID string, qty int) (int, error) {
	if qty <= 0 {
		return 0, &ValidationError{Msg: "quantity must be positive"}
	}

	m, err := s.Menus.FindByID(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &NotFoundError{Entity: "menu item", ID: menuItemID}
		}
		return 0, &PersistenceError{Op: "menu item load", Err: err}
	}

	if m.Stock < qty {
		return m.Stock, &InsufficientStockError{
			MenuItemID: menuItemID, Requested: qty, Available: m.Stock,
		}
	}

	remaining := m.Stock - qty
	if err := s.Menus.PutStock(menuItemID, remaining); err != nil {
		return m.Stock, &PersistenceError{Op: "stock update", Err: err}
	}
	return remaining, nil
}
