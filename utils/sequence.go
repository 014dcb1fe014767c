package utils

import (
	"fmt"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"gorm.io/gorm"
)

// Sequence names used across the back office.
const (
	SeqCartonSerial   = "carton_serial"
	SeqCustomerNumber = "customer_number"
	SeqSalesAgentCode = "sales_agent_code"
)

// Agent codes are handed out from 101; everything else counts from 1.
const SalesAgentCodeStart = 101

// CustomerCodeSequence names the per-agent counter behind the two-digit
// customer code suffix.
func CustomerCodeSequence(agentID uint) string {
	return fmt.Sprintf("customer_code_agent_%d", agentID)
}

// NextSequence allocates the next value of a named counter. The increment is
// a single UPDATE, so concurrent callers inside separate transactions each
// get their own number. The first allocation of a name creates the row at
// start; if two first allocations race, the loser gets a primary-key
// conflict back and the caller's transaction rolls up the error.
func NextSequence(tx *gorm.DB, name string, start int64) (int64, error) {
	res := tx.Model(&models.Sequence{}).Where("name = ?", name).
		Update("value", gorm.Expr("value + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		seq := models.Sequence{Name: name, Value: start}
		if err := tx.Create(&seq).Error; err != nil {
			return 0, err
		}
		return seq.Value, nil
	}

	var seq models.Sequence
	if err := tx.Where("name = ?", name).First(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}
