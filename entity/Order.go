package entity

// สถานะของ order — เดินหน้าอย่างเดียว ไม่ย้อนกลับ (ดู services/order_transitions.go)
const (
	OrderPending    = "pending"
	OrderInProgress = "in-progress"
	OrderReady      = "ready"
	OrderServed     = "served"
	OrderCancelled  = "cancelled"
)

type Order struct {
	Model
	Status string `gorm:"not null;default:pending" json:"status"`

	Total         float64 `json:"total"`
	Discount      float64 `json:"discount"`
	Tax           float64 `json:"tax"`
	ServiceCharge float64 `json:"serviceCharge"`
	FinalTotal    float64 `json:"finalTotal"`

	// nil = ขายหน้าเคาน์เตอร์ (ไม่มีโต๊ะ)
	TableID *string `json:"tableId,omitempty"`
	Table   *Table  `json:"-"` // preload เมื่อจำเป็น

	CreatedByID string `json:"createdById"`
	CreatedBy   User   `gorm:"foreignKey:CreatedByID" json:"-"`

	// preload แค่ตอน detail
	OrderItems []OrderItem `json:"-"`
	Payments   []Payment   `json:"-"`
}
