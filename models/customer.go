package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	Name         string  `gorm:"not null" json:"name"`
	Company      string  `json:"company"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	Country      string  `json:"country"`
	SequenceNo   int     `gorm:"unique;not null" json:"sequence_no"`
	CustomerCode *string `gorm:"uniqueIndex" json:"customer_code,omitempty"`
	SalesAgentID *uint   `gorm:"index" json:"sales_agent_id,omitempty"`
	LeadID       *uint   `gorm:"uniqueIndex" json:"lead_id,omitempty"`
}
