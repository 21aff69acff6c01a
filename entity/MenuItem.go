package entity

type MenuItem struct {
	Model
	ItemName string  `gorm:"not null" json:"itemName"`
	Detail   string  `json:"detail"`
	Price    float64 `gorm:"not null" json:"price"`

	// รายชื่อ modifier ที่เลือกได้ เช่น "Extra Spicy"
	Modifiers []string `gorm:"serializer:json" json:"modifiers"`

	// จำนวนคงเหลือ — Stock Ledger เป็นคนตัดอย่างเดียว (หน้าขายด่วน)
	Stock int `gorm:"not null;default:0" json:"stock"`

	CategoryID string   `json:"categoryId"`
	Category   Category `json:"-"` // preload เฉพาะตอน detail

	OrderItems []OrderItem `json:"-"`
}
