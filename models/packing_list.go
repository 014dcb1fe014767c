package models

import "gorm.io/gorm"

type PackingList struct {
	gorm.Model
	ListNo    string            `gorm:"column:list_no;unique;not null" json:"list_no"`
	Date      string            `json:"date"`
	Shipper   string            `json:"shipper"`
	Consignee string            `json:"consignee"`
	Items     []PackingListItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type PackingListItem struct {
	gorm.Model
	PackingListID uint    `gorm:"index;not null" json:"packing_list_id"`
	Product       string  `gorm:"not null" json:"product"`
	HSCode        string  `gorm:"column:hs_code" json:"hs_code"`
	Cartons       int     `json:"cartons"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	GrossWeight   float64 `json:"gross_weight"`
	NetWeight     float64 `json:"net_weight"`
	Measurement   float64 `json:"measurement"`
}
