package models

import "gorm.io/gorm"

const (
	ConsoleStatusActive          = "active"
	ConsoleStatusReadyForLoading = "ready_for_loading"
)

// ConsoleMaxCBM is the loading capacity of one container in cubic meters.
const ConsoleMaxCBM = 68.0

type Console struct {
	gorm.Model
	ConsoleNo       string  `gorm:"column:console_no;unique;not null" json:"console_no"`
	ContainerNo     string  `gorm:"column:container_no" json:"container_no"`
	Date            string  `json:"date"`
	BLNo            string  `gorm:"column:bl_no" json:"bl_no"`
	Carrier         string  `json:"carrier"`
	ShippingOrderNo string  `gorm:"column:shipping_order_no" json:"shipping_order_no"`
	TotalCartons    int     `gorm:"default:0" json:"total_cartons"`
	TotalCBM        float64 `gorm:"column:total_cbm;default:0" json:"total_cbm"`
	Status          string  `gorm:"default:'active'" json:"status"`
	Orders          []Order `gorm:"many2many:console_orders" json:"orders,omitempty"`
}
