package entity

// Role ของพนักงานในร้าน
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
	RoleWaiter  = "waiter"
	RoleChef    = "chef"
)

type User struct {
	Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"` // ปลอดภัย
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:waiter" json:"role"`

	// Relations — preload เฉพาะตอนจำเป็น
	Orders []Order `gorm:"foreignKey:CreatedByID" json:"-"`
}
