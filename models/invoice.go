package models

import "gorm.io/gorm"

type ImportInvoice struct {
	gorm.Model
	InvoiceNo    string        `gorm:"column:invoice_no;unique;not null" json:"invoice_no"`
	Date         string        `json:"date"`
	CustomerName string        `json:"customer_name"`
	Address      string        `json:"address"`
	Country      string        `json:"country"`
	Currency     string        `gorm:"default:'USD'" json:"currency"`
	Items        []InvoiceItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type InvoiceItem struct {
	gorm.Model
	ImportInvoiceID uint    `gorm:"index;not null" json:"import_invoice_id"`
	Product         string  `gorm:"not null" json:"product"`
	HSCode          string  `gorm:"column:hs_code" json:"hs_code"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	UnitPrice       float64 `json:"unit_price"`
	Amount          float64 `json:"amount"`
	Cartons         int     `json:"cartons"`
	Weight          float64 `json:"weight"`
}
