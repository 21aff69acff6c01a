package entity

import "time"

const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentQR   = "qr"
)

type Payment struct {
	Model
	Method string     `gorm:"not null" json:"method"`
	Amount float64    `gorm:"not null" json:"amount"`
	PaidAt *time.Time `json:"paidAt,omitempty"`

	OrderID string `gorm:"not null;index" json:"orderId"`
	Order   Order  `json:"-"` // preload เฉพาะ endpoint /orders/:id
}
