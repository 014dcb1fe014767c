package models

// Sequence is a named counter row. Allocation bumps Value with a single
// UPDATE statement so two concurrent writers can never be handed the same
// number.
type Sequence struct {
	Name  string `gorm:"primaryKey" json:"name"`
	Value int64  `gorm:"not null" json:"value"`
}
