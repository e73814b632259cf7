package models

import "gorm.io/gorm"

// Roles a user can hold. A role is fixed at creation time; there is no
// role-change operation.
const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
	RoleUser  = "user"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOwner || role == RoleUser
}

// User represents an account: an administrator, a store owner, or a regular
// rating user.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialized
	Address    string `json:"address" gorm:"type:varchar(400)" validate:"omitempty,max=400"`
	Role       string `json:"role" gorm:"type:varchar(10);default:user" validate:"omitempty,oneof=admin owner user"`
	gorm.Model `json:"-"`
}
