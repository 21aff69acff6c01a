package entity

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

type Table struct {
	Model
	Number int    `gorm:"uniqueIndex;not null" json:"number"`
	Status string `gorm:"not null;default:available" json:"status"`

	Orders []Order `json:"-"`
}
