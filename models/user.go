package models

import "gorm.io/gorm"

const (
	RoleAdmin      = "admin"
	RoleUser       = "user"
	RoleSalesAgent = "sales_agent"
)

type User struct {
	gorm.Model
	Username   string `gorm:"unique;not null" json:"username"`
	Password   string `gorm:"not null" json:"-"`
	Role       string `gorm:"not null" json:"role"`
	Name       string `json:"name"`
	CustomerID *uint  `json:"customer_id,omitempty"`
}
