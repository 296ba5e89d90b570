package domain

const (
	RoleCustomer = "customer"
	RoleDelivery = "delivery"
)

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:100;not null"`
	Email    string `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password string `json:"-" gorm:"size:100;not null"` // bcrypt hash, never serialised
	Type     string `json:"type" gorm:"size:20;not null"`
}

func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleDelivery
}
