package models

import "gorm.io/gorm"

type Order struct {
	gorm.Model
	Username     string   `gorm:"index;not null" json:"username"`
	ShippingMark string   `gorm:"not null" json:"shipping_mark"`
	Destination  string   `gorm:"not null" json:"destination"`
	TotalCartons int      `gorm:"not null" json:"total_cartons"`
	Description  string    `json:"description"`
	Cartons      []Carton  `gorm:"constraint:OnDelete:CASCADE" json:"cartons,omitempty"`
	Consoles     []Console `gorm:"many2many:console_orders" json:"-"`
}
