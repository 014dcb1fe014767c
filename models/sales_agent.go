package models

import "gorm.io/gorm"

// Capability names one area of the back office a sales agent can be granted
// access to. Admins are never gated on capabilities.
type Capability string

const (
	CapabilityOrder       Capability = "order"
	CapabilityConsole     Capability = "console"
	CapabilityCustomer    Capability = "customer"
	CapabilityLead        Capability = "lead"
	CapabilityInvoice     Capability = "invoice"
	CapabilityPackingList Capability = "packing_list"
)

var AllCapabilities = []Capability{
	CapabilityOrder,
	CapabilityConsole,
	CapabilityCustomer,
	CapabilityLead,
	CapabilityInvoice,
	CapabilityPackingList,
}

func ValidCapability(c Capability) bool {
	for _, known := range AllCapabilities {
		if c == known {
			return true
		}
	}
	return false
}

type SalesAgent struct {
	gorm.Model
	Name        string       `gorm:"not null" json:"name"`
	Username    string       `gorm:"unique;not null" json:"username"`
	Password    string       `gorm:"not null" json:"-"`
	Code        int          `gorm:"unique;not null" json:"code"`
	Permissions []Capability `gorm:"serializer:json" json:"permissions"`
}

func (a *SalesAgent) HasCapability(c Capability) bool {
	for _, granted := range a.Permissions {
		if granted == c {
			return true
		}
	}
	return false
}
