package models

import (
	"fmt"

	"gorm.io/gorm"
)

type Carton struct {
	gorm.Model
	SerialNo    string  `gorm:"column:serial_no;unique;not null" json:"serial_no"`
	OrderID     uint    `gorm:"index;not null" json:"order_id"`
	CartonIndex int     `gorm:"column:carton_index" json:"carton_index"`
	Weight      float64 `json:"weight"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Unit        string  `gorm:"default:'cm'" json:"unit"`
}

// FormatSerial renders an allocated serial number the way it is printed on
// carton labels, e.g. 1 -> "0000001".
func FormatSerial(n int64) string {
	return fmt.Sprintf("%07d", n)
}

// Volume returns the carton volume in cubic meters. Dimensions are in
// centimeters; a carton missing any dimension measures zero.
func (ct *Carton) Volume() float64 {
	if ct.Length <= 0 || ct.Width <= 0 || ct.Height <= 0 {
		return 0
	}
	return ct.Length * ct.Width * ct.Height / 1000000
}
