package models

import (
	"github.com/looplab/fsm"
	"gorm.io/gorm"
)

// Pipeline stages, in board order.
const (
	LeadStatusLeads       = "Leads"
	LeadStatusInquiry     = "Inquiry Received"
	LeadStatusQuotation   = "Quotation Sent"
	LeadStatusNegotiation = "Negotiation"
	LeadStatusWin         = "Win"
)

var LeadStatuses = []string{
	LeadStatusLeads,
	LeadStatusInquiry,
	LeadStatusQuotation,
	LeadStatusNegotiation,
	LeadStatusWin,
}

const (
	LeadSourceMeta     = "Meta"
	LeadSourceLinkedIn = "LinkedIn"
	LeadSourceWhatsApp = "WhatsApp"
	LeadSourceOthers   = "Others"
)

var LeadSources = []string{LeadSourceMeta, LeadSourceLinkedIn, LeadSourceWhatsApp, LeadSourceOthers}

func ValidLeadSource(s string) bool {
	for _, known := range LeadSources {
		if s == known {
			return true
		}
	}
	return false
}

type Lead struct {
	gorm.Model
	Name         string        `gorm:"not null" json:"name"`
	Company      string        `json:"company"`
	Phone        string        `gorm:"not null" json:"phone"`
	Email        string        `json:"email"`
	Country      string        `json:"country"`
	Source       string        `gorm:"not null" json:"source"`
	Status       string        `gorm:"default:'Leads'" json:"status"`
	SalesAgentID uint          `gorm:"index;not null" json:"sales_agent_id"`
	Converted    bool          `gorm:"default:false" json:"converted"`
	Comments     []LeadComment `gorm:"constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

type LeadComment struct {
	gorm.Model
	LeadID uint   `gorm:"index;not null" json:"lead_id"`
	Text   string `gorm:"not null" json:"text"`
}

// MoveEvent names the pipeline event that lands a lead on the given stage.
func MoveEvent(status string) string {
	return "move_to_" + status
}

// Pipeline returns a state machine seeded at the lead's current stage. The
// kanban board drags cards in both directions, so every stage is reachable
// from every stage; the machine's job is to reject stage names that are not
// part of the pipeline. Only conversion is gated, and that lives in the
// conversion handler, not here.
func (l *Lead) Pipeline() *fsm.FSM {
	events := make(fsm.Events, 0, len(LeadStatuses))
	for _, status := range LeadStatuses {
		events = append(events, fsm.EventDesc{
			Name: MoveEvent(status),
			Src:  LeadStatuses,
			Dst:  status,
		})
	}
	return fsm.NewFSM(l.Status, events, fsm.Callbacks{})
}
