package entity

type Category struct {
	Model
	CategoryName string `gorm:"uniqueIndex;not null" json:"categoryName"`

	MenuItems []MenuItem `json:"-"`
}
