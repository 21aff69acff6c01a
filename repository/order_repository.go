package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (CRUD หลัก) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// PATCH /orders/:id/status → อัปเดตสถานะ (มี guard กัน stale/ซ้ำ)
// affected = 0 แปลว่า order ไม่ได้อยู่สถานะ from แล้ว
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// บรรทัดใน order พร้อมชื่อเมนู (join ตอนอ่าน ไม่เก็บ back-reference)
type OrderLine struct {
	ID         string   `json:"id"`
	MenuItemID string   `json:"menuItemId"`
	ItemName   string   `json:"itemName"`
	Qty        int      `json:"qty"`
	UnitPrice  float64  `json:"unitPrice"`
	Modifiers  []string `gorm:"serializer:json" json:"modifiers"`
	TotalPrice float64  `json:"totalPrice"`
}

func (r *OrderRepository) GetOrderLines(orderID string) ([]OrderLine, error) {
	var out []OrderLine
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.menu_item_id, m.item_name, oi.qty, oi.unit_price, oi.modifiers, oi.total_price").
		Joins("JOIN menu_items m ON m.id = oi.menu_item_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.created_at ASC").
		Scan(&out).Error
	return out, err
}

// ---------------- Board (สำหรับหน้า list ที่ poll ใหม่ทุกรอบ) ----------------

// แถวเดียวของ board = order + เลขโต๊ะ + รายการอาหาร (rebuild ทั้งก้อนทุกครั้ง)
type BoardRow struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	TableNumber *int        `json:"tableNumber,omitempty"`
	FinalTotal  float64     `json:"finalTotal"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Lines       []OrderLine `json:"lines"`
}

func (r *OrderRepository) ListBoard(statuses []string) ([]BoardRow, error) {
	var rows []BoardRow
	q := r.DB.Table("orders AS o").
		Select("o.id, o.status, t.number AS table_number, o.final_total, o.created_at, o.updated_at").
		Joins("LEFT JOIN tables t ON t.id = o.table_id")
	if len(statuses) > 0 {
		q = q.Where("o.status IN ?", statuses)
	}
	if err := q.Order("o.created_at ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	// ไม่มี secondary index — ดึง items ต่อ order ตรง ๆ
	for i := range rows {
		lines, err := r.GetOrderLines(rows[i].ID)
		if err != nil {
			return nil, err
		}
		rows[i].Lines = lines
	}
	return rows, nil
}

// ---------------- Payments ----------------

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) GetPayments(orderID string) ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.Where("order_id = ?", orderID).Order("created_at ASC").Find(&out).Error
	return out, err
}
