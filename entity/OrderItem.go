package entity

type OrderItem struct {
	Model
	Qty       int     `gorm:"not null" json:"qty"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice"` // snapshot ราคาตอนสั่ง

	// modifier ที่ลูกค้าเลือกจริงในบรรทัดนี้
	Modifiers []string `gorm:"serializer:json" json:"modifiers"`

	TotalPrice float64 `gorm:"not null" json:"totalPrice"`

	OrderID string `gorm:"not null;index" json:"orderId"`
	Order   Order  `json:"-"` // preload แค่ตอนต้องการ order detail

	MenuItemID string   `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload เฉพาะตอนต้องการชื่อเมนู
}
