package entity

// ชนิด event ที่วิ่งผ่าน Notification Bus
const (
	NotifyOrderCreated = "order_created"
	NotifyOrderReady   = "order_ready"
)

// Notification คือ log กลางที่ทุก view เปิดอ่านร่วมกัน (append-only จนกว่าจะ clear)
type Notification struct {
	Model
	Type       string `gorm:"not null" json:"type"`
	Message    string `json:"message"`
	TargetRole string `gorm:"not null;index" json:"targetRole"`

	OrderID string `json:"orderId"`
	Order   Order  `json:"-"`
}
